package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// MarkerDir is the directory whose presence marks a sessiontrail project root.
const MarkerDir = ".sessiontrail"

// RootEnvVar overrides root resolution when set to an existing directory.
const RootEnvVar = "SESSIONTRAIL_ROOT"

// Resolve returns the directory that anchors audit state for the given
// working directory. Resolution order:
//
//  1. The SESSIONTRAIL_ROOT environment variable, if it names a directory.
//  2. The nearest ancestor of cwd containing a .sessiontrail directory.
//  3. The nearest ancestor of cwd containing a .git entry.
//  4. cwd itself.
//
// Resolve is total: any probing error degrades to the next step rather
// than propagating, so callers always get a usable root.
func Resolve(cwd string) string {
	if root := os.Getenv(RootEnvVar); root != "" {
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			return root
		}
	}

	if root, err := FindRoot(cwd); err == nil && root != "" {
		return root
	}

	if root := findAncestorWith(cwd, ".git"); root != "" {
		return root
	}

	return cwd
}

// FindRoot walks up from cwd to find the nearest directory containing a
// .sessiontrail marker directory. Returns the project root if found,
// empty string otherwise. Stops searching when it passes the user's
// home directory.
func FindRoot(cwd string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	currentDir := cwd
	for {
		// Stop searching one level above the home directory.
		if currentDir == filepath.Dir(homeDir) {
			return "", nil
		}

		markerDir := filepath.Join(currentDir, MarkerDir)
		fileInfo, err := os.Stat(markerDir)
		// No error means the path exists.
		if err == nil {
			if fileInfo.IsDir() {
				return currentDir, nil
			}
		} else if !os.IsNotExist(err) {
			// Return any error that's not "file not found" (like permission issues).
			return "", fmt.Errorf("error checking for %s directory at %s: %w", MarkerDir, currentDir, err)
		}

		parentDir := filepath.Dir(currentDir)

		// Reached the filesystem root without finding a marker.
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

// findAncestorWith walks up from cwd to the nearest directory containing
// the named entry. Unlike the marker walk this accepts files too, since
// .git is a file in worktree checkouts.
func findAncestorWith(cwd, name string) string {
	currentDir := cwd
	for {
		if _, err := os.Stat(filepath.Join(currentDir, name)); err == nil {
			return currentDir
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}
