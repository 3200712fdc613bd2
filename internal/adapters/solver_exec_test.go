package adapters

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolverExecRequiresBinary(t *testing.T) {
	_, err := NewSolverExecAdapter("", nil).Solve(t.Context(), "p cnf 1 1\n1 0\n")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestSolverExecMissingBinary(t *testing.T) {
	_, err := NewSolverExecAdapter("/nonexistent/sat-solver", nil).Solve(t.Context(), "p cnf 1 1\n1 0\n")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}

func TestSolverExecReadsStdout(t *testing.T) {
	// sh -c ignores the appended problem path argument and plays back
	// a canned satisfiable model
	adapter := NewSolverExecAdapter("sh", []string{"-c", "echo 'SAT'; echo '1 0'"})
	output, err := adapter.Solve(t.Context(), "p cnf 1 1\n1 0\n")
	require.NoError(t, err)
	assert.Contains(t, output, "SAT")
}
