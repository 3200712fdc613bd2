package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"depsolve/internal/adapters"
	"depsolve/internal/core"
)

// Solve runs one full transaction: load the manifest, build the
// universe, encode, decide (internally, externally, or from a saved
// model), and project the actions.
func (s Service) Solve(ctx context.Context, req SolveRequest) (SolveResult, error) {
	problem, err := s.buildProblem(ctx, req.ManifestPath, req.Job, req.RequestAdd, req.RequestDelete)
	if err != nil {
		return SolveResult{}, err
	}

	switch {
	case strings.TrimSpace(req.ModelPath) != "":
		output, err := s.ModelReader.ReadModel(req.ModelPath)
		if err != nil {
			return SolveResult{}, err
		}
		if err := problem.ApplyModel(output); err != nil {
			return SolveResult{}, err
		}
	case req.UseExternal:
		if s.External == nil {
			return SolveResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("external solving requested but no solver is configured")
		}
		output, err := s.External.Solve(ctx, problem.ExportDIMACS())
		if err != nil {
			return SolveResult{}, err
		}
		if err := problem.ApplyModel(output); err != nil {
			return SolveResult{}, err
		}
	default:
		if err := problem.Solve(ctx); err != nil {
			return SolveResult{}, err
		}
	}

	actions, err := problem.Project()
	if err != nil {
		return SolveResult{}, err
	}
	log.Info().
		Int("actions", len(actions)).
		Int("decisions", problem.Decisions()).
		Msg("transaction projected")

	if strings.TrimSpace(req.OutputDir) != "" {
		writer := adapters.NewPlanFileAdapter(req.OutputDir)
		if err := writer.WriteActions(actions); err != nil {
			return SolveResult{}, err
		}
		if req.ExportDIMACS {
			if err := writer.WriteDIMACS(problem.ExportDIMACS()); err != nil {
				return SolveResult{}, err
			}
		}
	}

	return SolveResult{
		Actions:   actions,
		Decisions: problem.Decisions(),
		Warnings:  problem.Warnings(),
		Variables: problem.NumVars(),
		Clauses:   problem.NumClauses(),
	}, nil
}

// buildProblem is the shared front half of every verb: manifest in,
// encoded problem out.
func (s Service) buildProblem(ctx context.Context, manifestPath, job string, add, del []string) (*core.Problem, error) {
	manifest, err := s.Manifest.LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	universe, err := core.NewUniverseBuilder().Build(ctx, manifest, core.RequestOverrides{
		Job:     job,
		Install: add,
		Delete:  del,
	})
	if err != nil {
		return nil, err
	}
	return core.NewProblem(&universe), nil
}
