package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"depsolve/internal/app"
)

type exportDimacsOptions struct {
	Manifest      string
	Job           string
	RequestAdd    []string
	RequestDelete []string
	Output        string
}

func newExportDimacsCommand() *cobra.Command {
	opts := exportDimacsOptions{}
	cmd := &cobra.Command{
		Use:   "export-dimacs",
		Short: "Encode a manifest and write the problem in DIMACS CNF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExportDimacs(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Universe manifest path")
	cmd.Flags().StringVar(&opts.Job, "job", "", "Job type: install, upgrade, delete, fetch")
	cmd.Flags().StringSliceVar(&opts.RequestAdd, "request-add", nil, "Request installation of uid or uid=version")
	cmd.Flags().StringSliceVar(&opts.RequestDelete, "request-delete", nil, "Request removal of uid or uid=version")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "problem.cnf", "DIMACS output path")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("job", cmd.Flags().Lookup("job"))
	return cmd
}

func runExportDimacs(ctx context.Context, cmd *cobra.Command, opts exportDimacsOptions) error {
	service := newAppService(cmd, "", nil)
	result, err := service.ExportDIMACS(ctx, app.ExportRequest{
		ManifestPath:  resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Job:           resolveString(cmd, opts.Job, "job", "job"),
		RequestAdd:    opts.RequestAdd,
		RequestDelete: opts.RequestDelete,
		OutputPath:    opts.Output,
	})
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s: %d variables, %d clauses\n", result.OutputPath, result.Variables, result.Clauses)
	return nil
}
