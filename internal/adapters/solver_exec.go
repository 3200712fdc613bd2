package adapters

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve/internal/ports"
	"depsolve/internal/shared"
)

// SolverExecAdapter runs an external DIMACS solver binary. The CNF is
// written to a temporary file passed as the last argument; anything
// the solver prints on stdout is returned for the model parser. Exit
// status is deliberately not inspected: SAT solvers conventionally
// exit non-zero for UNSATISFIABLE, so the verdict is read from the
// output, not the status.
type SolverExecAdapter struct {
	Binary string
	Args   []string
}

func NewSolverExecAdapter(binary string, args []string) SolverExecAdapter {
	return SolverExecAdapter{Binary: binary, Args: args}
}

func (a SolverExecAdapter) Solve(ctx context.Context, dimacs string) (string, error) {
	if strings.TrimSpace(a.Binary) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("external solver binary is not configured")
	}
	dir, err := os.MkdirTemp("", "depsolve-cnf-")
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create solver scratch directory").
			WithCause(err)
	}
	defer os.RemoveAll(dir)

	cnfPath := filepath.Join(dir, "problem.cnf")
	if err := os.WriteFile(cnfPath, []byte(dimacs), 0644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write problem file for external solver").
			WithCause(err)
	}

	args := append(append([]string{}, a.Args...), cnfPath)
	cmd := exec.CommandContext(ctx, a.Binary, args...)
	output, err := cmd.Output()
	if err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			return string(output), nil
		}
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("external solver failed to run").
			WithCause(shared.CommandError(output, err))
	}
	return string(output), nil
}

var _ ports.ExternalSolverPort = SolverExecAdapter{}
