package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyWritesPlannedFiles(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "repos")
	report := &Report{Files: []PlannedWrite{
		{Path: filepath.Join(outDir, "user_repository.py"), Status: StatusCreate, WouldWrite: true, Content: "# user\n"},
		{Path: filepath.Join(outDir, "invoice_repository.py"), Status: StatusUpToDate, Content: "# invoice\n"},
	}}

	written, err := Apply(report, outDir)
	require.NoError(t, err)
	require.Len(t, written, 1)

	got, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Equal(t, "# user\n", string(got))
	assert.FileExists(t, filepath.Join(outDir, "__init__.py"))
	assert.NoFileExists(t, filepath.Join(outDir, "invoice_repository.py"))

	// No temp files survive the run.
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}

func TestApplyRefusesConflicts(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "repos")
	report := &Report{Files: []PlannedWrite{
		{Path: filepath.Join(outDir, "user_repository.py"), Status: StatusCreate, WouldWrite: true, Content: "# user\n"},
		{Path: filepath.Join(outDir, "invoice_repository.py"), Status: StatusWouldChange, Existed: true, Content: "# invoice\n"},
	}}

	written, err := Apply(report, outDir)
	require.Error(t, err)
	assert.Empty(t, written)
	assert.Contains(t, err.Error(), "refusing to overwrite")
	assert.Contains(t, err.Error(), "use --force")

	// Nothing was written, not even the conflict-free entry.
	assert.NoFileExists(t, filepath.Join(outDir, "user_repository.py"))
	assert.NoFileExists(t, filepath.Join(outDir, "__init__.py"))
}

func TestApplyNoPendingWritesTouchesNothing(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "repos")
	report := &Report{Files: []PlannedWrite{
		{Path: filepath.Join(outDir, "user_repository.py"), Status: StatusSkipExisting, Existed: true},
	}}

	written, err := Apply(report, outDir)
	require.NoError(t, err)
	assert.Empty(t, written)
	assert.NoDirExists(t, outDir)
}

func TestApplyPreservesExistingInit(t *testing.T) {
	outDir := t.TempDir()
	initFile := filepath.Join(outDir, "__init__.py")
	require.NoError(t, os.WriteFile(initFile, []byte("# package exports\n"), 0644))

	report := &Report{Files: []PlannedWrite{
		{Path: filepath.Join(outDir, "user_repository.py"), Status: StatusCreate, WouldWrite: true, Content: "# user\n"},
	}}
	_, err := Apply(report, outDir)
	require.NoError(t, err)

	got, err := os.ReadFile(initFile)
	require.NoError(t, err)
	assert.Equal(t, "# package exports\n", string(got))
}
