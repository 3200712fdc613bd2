package app

import "depsolve/internal/types"

type SolveRequest struct {
	ManifestPath  string
	Job           string
	RequestAdd    []string
	RequestDelete []string

	// OutputDir, when set, persists the plan (and the CNF when
	// ExportDIMACS is also set) beside the returned actions.
	OutputDir    string
	ExportDIMACS bool

	// UseExternal routes the decision to the configured external
	// solver instead of the internal search.
	UseExternal bool

	// ModelPath projects a saved external solver output instead of
	// running any solver.
	ModelPath string
}

type SolveResult struct {
	Actions   []types.Action
	Decisions int
	Warnings  []string
	Variables int
	Clauses   int
}

type ValidateRequest struct {
	ManifestPath  string
	Job           string
	RequestAdd    []string
	RequestDelete []string
}

type ValidateResult struct {
	Variables int
	Clauses   int
	Warnings  []string
}

type ExportRequest struct {
	ManifestPath  string
	Job           string
	RequestAdd    []string
	RequestDelete []string
	OutputPath    string
}

type ExportResult struct {
	OutputPath string
	Variables  int
	Clauses    int
}
