package workflows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailworks/sessiontrail/internal/audit"
)

// chdir moves the test into dir and restores the original working
// directory on cleanup. Workflows resolve the project from the process
// working directory, the same way the CLI does.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})
}

// setupProject creates an initialized project in a temp dir and enters it.
// Returns the project root with symlinks resolved, so it compares equal
// to paths derived from os.Getwd.
func setupProject(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, audit.DirName), 0755))
	chdir(t, root)
	return root
}

// appendRecords writes the given records to the project's lifecycle log.
func appendRecords(t *testing.T, root string, records ...audit.Record) {
	t.Helper()
	logPath := audit.Layout(root).LifecycleLog
	for _, rec := range records {
		require.NoError(t, audit.Append(logPath, rec))
	}
}
