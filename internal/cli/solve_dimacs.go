package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"depsolve/internal/app"
)

type solveDimacsOptions struct {
	Manifest      string
	Job           string
	RequestAdd    []string
	RequestDelete []string
	Model         string
	OutputDir     string
}

func newSolveDimacsCommand() *cobra.Command {
	opts := solveDimacsOptions{}
	cmd := &cobra.Command{
		Use:   "solve-dimacs",
		Short: "Project a saved external solver model onto a manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolveDimacs(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Universe manifest path")
	cmd.Flags().StringVar(&opts.Job, "job", "", "Job type: install, upgrade, delete, fetch")
	cmd.Flags().StringSliceVar(&opts.RequestAdd, "request-add", nil, "Request installation of uid or uid=version")
	cmd.Flags().StringSliceVar(&opts.RequestDelete, "request-delete", nil, "Request removal of uid or uid=version")
	cmd.Flags().StringVar(&opts.Model, "model", "", "External solver output file")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Directory for plan outputs (optional)")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("job", cmd.Flags().Lookup("job"))
	return cmd
}

func runSolveDimacs(ctx context.Context, cmd *cobra.Command, opts solveDimacsOptions) error {
	service := newAppService(cmd, "", nil)
	result, err := service.Solve(ctx, app.SolveRequest{
		ManifestPath:  resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Job:           resolveString(cmd, opts.Job, "job", "job"),
		RequestAdd:    opts.RequestAdd,
		RequestDelete: opts.RequestDelete,
		ModelPath:     opts.Model,
		OutputDir:     resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}
	printPlan(result)
	return nil
}
