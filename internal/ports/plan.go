package ports

import "depsolve/internal/types"

// PlanWriterPort persists the downstream action list and the exported
// CNF so a caller that is not embedding the library directly can
// inspect a solve's result.
type PlanWriterPort interface {
	WriteActions(actions []types.Action) error
	WriteDIMACS(body string) error
}
