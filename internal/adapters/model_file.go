package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve/internal/ports"
)

// ModelFileAdapter reads an external SAT solver's saved output so a
// model produced out of band can be projected back onto a problem.
type ModelFileAdapter struct{}

func NewModelFileAdapter() ModelFileAdapter {
	return ModelFileAdapter{}
}

func (a ModelFileAdapter) ReadModel(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("model file not found").
			WithCause(err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("model file is empty")
	}
	return string(content), nil
}

var _ ports.ModelReaderPort = ModelFileAdapter{}
