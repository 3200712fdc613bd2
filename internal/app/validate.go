package app

import (
	"context"
)

// Validate loads and encodes without deciding anything, surfacing the
// soft encoding warnings (unknown dependency UIDs, providerless shared
// libraries) a solve would silently work around.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	problem, err := s.buildProblem(ctx, req.ManifestPath, req.Job, req.RequestAdd, req.RequestDelete)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		Variables: problem.NumVars(),
		Clauses:   problem.NumClauses(),
		Warnings:  problem.Warnings(),
	}, nil
}
