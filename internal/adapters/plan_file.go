package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve/internal/ports"
	"depsolve/internal/types"
)

// PlanFileAdapter writes solve outputs under one directory: the action
// plan as `transaction.plan` and the exported CNF as `problem.cnf`.
type PlanFileAdapter struct {
	Dir string
}

func NewPlanFileAdapter(dir string) PlanFileAdapter {
	return PlanFileAdapter{Dir: dir}
}

// WriteActions renders one action per line in transaction order, the
// same shape the CLI prints.
func (a PlanFileAdapter) WriteActions(actions []types.Action) error {
	path, err := a.ensurePath("transaction.plan")
	if err != nil {
		return err
	}
	var lines []string
	for _, action := range actions {
		lines = append(lines, FormatAction(action))
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}

// WriteDIMACS persists the exported CNF body verbatim.
func (a PlanFileAdapter) WriteDIMACS(body string) error {
	path, err := a.ensurePath("problem.cnf")
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(body), 0644)
}

func (a PlanFileAdapter) ensurePath(name string) (string, error) {
	if strings.TrimSpace(a.Dir) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, name), nil
}

// FormatAction renders one action the way both the plan file and the
// CLI present it.
func FormatAction(action types.Action) string {
	switch action.Kind {
	case types.ActionUpgrade:
		return fmt.Sprintf("upgrade %s %s -> %s", action.Add.UID, action.Del.Version, action.Add.Version)
	case types.ActionDelete:
		return fmt.Sprintf("delete %s %s", action.Del.UID, action.Del.Version)
	case types.ActionFetch:
		return fmt.Sprintf("fetch %s %s", action.Add.UID, action.Add.Version)
	default:
		return fmt.Sprintf("install %s %s", action.Add.UID, action.Add.Version)
	}
}

var _ ports.PlanWriterPort = PlanFileAdapter{}
