package app

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ExportDIMACS encodes the manifest and writes the CNF where an
// external solver can pick it up; nothing is decided.
func (s Service) ExportDIMACS(ctx context.Context, req ExportRequest) (ExportResult, error) {
	if strings.TrimSpace(req.OutputPath) == "" {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("export output path is required")
	}
	problem, err := s.buildProblem(ctx, req.ManifestPath, req.Job, req.RequestAdd, req.RequestDelete)
	if err != nil {
		return ExportResult{}, err
	}
	if err := os.WriteFile(req.OutputPath, []byte(problem.ExportDIMACS()), 0644); err != nil {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write DIMACS file").
			WithCause(err)
	}
	return ExportResult{
		OutputPath: req.OutputPath,
		Variables:  problem.NumVars(),
		Clauses:    problem.NumClauses(),
	}, nil
}
