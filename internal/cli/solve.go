package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"depsolve/internal/adapters"
	"depsolve/internal/app"
)

type solveOptions struct {
	Manifest      string
	Job           string
	RequestAdd    []string
	RequestDelete []string
	OutputDir     string
	ExportDIMACS  bool
	External      bool
	SolverBin     string
	SolverArgs    []string
}

func newSolveCommand() *cobra.Command {
	opts := solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a transaction and print the action plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Universe manifest path")
	cmd.Flags().StringVar(&opts.Job, "job", "", "Job type: install, upgrade, delete, fetch")
	cmd.Flags().StringSliceVar(&opts.RequestAdd, "request-add", nil, "Request installation of uid or uid=version")
	cmd.Flags().StringSliceVar(&opts.RequestDelete, "request-delete", nil, "Request removal of uid or uid=version")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Directory for plan outputs (optional)")
	cmd.Flags().BoolVar(&opts.ExportDIMACS, "export-dimacs", false, "Also write the CNF next to the plan")
	cmd.Flags().BoolVar(&opts.External, "external", false, "Decide with the configured external solver")
	cmd.Flags().StringVar(&opts.SolverBin, "solver-bin", "", "External solver binary")
	cmd.Flags().StringSliceVar(&opts.SolverArgs, "solver-arg", nil, "Extra argument for the external solver")

	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("job", cmd.Flags().Lookup("job"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("export_dimacs", cmd.Flags().Lookup("export-dimacs"))
	_ = viper.BindPFlag("external", cmd.Flags().Lookup("external"))
	_ = viper.BindPFlag("solver_bin", cmd.Flags().Lookup("solver-bin"))
	_ = viper.BindPFlag("solver_args", cmd.Flags().Lookup("solver-arg"))

	return cmd
}

func runSolve(ctx context.Context, cmd *cobra.Command, opts solveOptions) error {
	service := newAppService(cmd, opts.SolverBin, opts.SolverArgs)
	result, err := service.Solve(ctx, app.SolveRequest{
		ManifestPath:  resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Job:           resolveString(cmd, opts.Job, "job", "job"),
		RequestAdd:    opts.RequestAdd,
		RequestDelete: opts.RequestDelete,
		OutputDir:     resolveString(cmd, opts.OutputDir, "output", "output"),
		ExportDIMACS:  resolveBool(cmd, opts.ExportDIMACS, "export_dimacs", "export-dimacs"),
		UseExternal:   resolveBool(cmd, opts.External, "external", "external"),
	})
	if err != nil {
		return err
	}
	printPlan(result)
	return nil
}

func printPlan(result app.SolveResult) {
	if len(result.Actions) == 0 {
		fmt.Println("nothing to do")
		return
	}
	for _, action := range result.Actions {
		fmt.Println(adapters.FormatAction(action))
	}
}

func newAppService(cmd *cobra.Command, solverBin string, solverArgs []string) app.Service {
	service := app.NewService()
	bin := resolveString(cmd, solverBin, "solver_bin", "solver-bin")
	if bin != "" {
		service.External = adapters.NewSolverExecAdapter(bin, resolveStrings(cmd, solverArgs, "solver_args", "solver-arg"))
	}
	return service
}
