package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{"solve", "validate", "export-dimacs", "solve-dimacs"}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestSolveCommandFlags(t *testing.T) {
	cmd := newSolveCommand()
	flags := []string{
		"manifest", "job", "request-add", "request-delete",
		"output", "export-dimacs", "external", "solver-bin", "solver-arg",
	}
	for _, name := range flags {
		flag := cmd.Flags().Lookup(name)
		assert.NotNil(t, flag, "missing flag: %s", name)
	}
}

func TestExportDimacsCommandFlags(t *testing.T) {
	cmd := newExportDimacsCommand()
	for _, name := range []string{"manifest", "job", "request-add", "request-delete", "output"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestSolveDimacsCommandFlags(t *testing.T) {
	cmd := newSolveDimacsCommand()
	for _, name := range []string{"manifest", "job", "model", "output"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestValidateCommandFlags(t *testing.T) {
	cmd := newValidateCommand()
	assert.NotNil(t, cmd.Flags().Lookup("manifest"))
	assert.NotNil(t, cmd.Flags().Lookup("job"))
}

// ---------- Exit code mapping tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "invalid argument",
			err:  errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("bad flag"),
			want: 2,
		},
		{
			name: "top-level conflict",
			err:  errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("top-level conflict: remote a(want install)"),
			want: 3,
		},
		{
			name: "unsatisfiable",
			err:  errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("transaction is unsatisfiable after 4 decisions"),
			want: 4,
		},
		{
			name: "not found",
			err:  errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("manifest file not found"),
			want: 5,
		},
		{
			name: "internal",
			err:  errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("broken"),
			want: 6,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, exitCodeForError(tc.err))
		})
	}
}

func TestResolveStringPrefersChangedFlag(t *testing.T) {
	cmd := newSolveCommand()
	err := cmd.Flags().Set("manifest", "from-flag.yaml")
	assert.NoError(t, err)
	assert.Equal(t, "from-flag.yaml", resolveString(cmd, "from-flag.yaml", "manifest", "manifest"))
}

func TestResolveStringNilCommandFallsBack(t *testing.T) {
	assert.Equal(t, "direct", resolveString(nil, "direct", "missing_key", "missing"))
}
