package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"depsolve/internal/app"
)

type validateOptions struct {
	Manifest      string
	Job           string
	RequestAdd    []string
	RequestDelete []string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and encode a manifest, reporting encoding warnings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Universe manifest path")
	cmd.Flags().StringVar(&opts.Job, "job", "", "Job type: install, upgrade, delete, fetch")
	cmd.Flags().StringSliceVar(&opts.RequestAdd, "request-add", nil, "Request installation of uid or uid=version")
	cmd.Flags().StringSliceVar(&opts.RequestDelete, "request-delete", nil, "Request removal of uid or uid=version")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("job", cmd.Flags().Lookup("job"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService(cmd, "", nil)
	result, err := service.Validate(ctx, app.ValidateRequest{
		ManifestPath:  resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Job:           resolveString(cmd, opts.Job, "job", "job"),
		RequestAdd:    opts.RequestAdd,
		RequestDelete: opts.RequestDelete,
	})
	if err != nil {
		return err
	}
	fmt.Printf("encoded: %d variables, %d clauses\n", result.Variables, result.Clauses)
	for _, warning := range result.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}
	return nil
}
