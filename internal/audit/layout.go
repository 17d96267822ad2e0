package audit

import (
	"os"
	"path/filepath"
)

// DirName is the marker directory that holds audit state at a project root.
const DirName = ".sessiontrail"

// LifecycleLogName is the file inside DirName that receives lifecycle records.
const LifecycleLogName = "lifecycle.jsonl"

// Paths holds the resolved audit locations for one project root. It is a
// plain value recomputed per invocation, never cached.
type Paths struct {
	// Dir is the audit state directory at the project root.
	Dir string

	// LifecycleLog is the JSON Lines file holding lifecycle records.
	LifecycleLog string
}

// Layout computes the audit paths for a project root without touching
// the filesystem.
func Layout(root string) Paths {
	dir := filepath.Join(root, DirName)
	return Paths{
		Dir:          dir,
		LifecycleLog: filepath.Join(dir, LifecycleLogName),
	}
}

// EnsureLayout computes the audit paths for a project root and creates the
// audit directory (with any missing parents) if it is absent. Creation is
// idempotent; an existing directory is not an error.
func EnsureLayout(root string) (Paths, error) {
	paths := Layout(root)
	if err := os.MkdirAll(paths.Dir, 0755); err != nil {
		return paths, err
	}
	return paths, nil
}
