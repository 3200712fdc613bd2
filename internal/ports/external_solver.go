package ports

import "context"

// ExternalSolverPort hands a DIMACS CNF body to an external SAT solver
// process and returns its raw output (competition-style or `v`-line
// prefixed) for the model parser to consume. The internal search never
// needs it; it is only consulted when the caller explicitly asks for
// external solving.
type ExternalSolverPort interface {
	Solve(ctx context.Context, dimacs string) (output string, err error)
}
