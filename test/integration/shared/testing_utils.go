// Package shared contains testing utilities shared between integration tests.
// It provides common functions for setting up test environments, capturing
// output, and driving the CLI the way a user (or the host process) would.
package shared

import (
	"bytes"
	"io"
	"log"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/trailworks/sessiontrail/cmd"
	"github.com/trailworks/sessiontrail/internal/configs"
	logger "github.com/trailworks/sessiontrail/internal/logging"
	"github.com/trailworks/sessiontrail/internal/project"
)

// SetupTestEnvironment moves the test into tempDir and restores all global
// state afterwards. It also clears the root override env var so resolution
// runs against the temp directory tree.
func SetupTestEnvironment(t *testing.T, tempDir, originalWd string) {
	t.Helper()

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Setenv(project.RootEnvVar, "")
	cmd.ResetGlobalState()

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		cmd.ResetGlobalState()
		configs.ProjectTrailSettings = &configs.ProjectSettings{}
	})
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to copy captured stdout: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to copy captured stderr: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// WithStdin runs fn with os.Stdin replaced by a pipe containing data, the
// way the host process feeds the hook.
func WithStdin(t *testing.T, data string, fn func()) {
	t.Helper()

	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stdin pipe: %v", err)
	}

	originalStdin := os.Stdin
	os.Stdin = reader
	defer func() {
		os.Stdin = originalStdin
		reader.Close()
	}()

	go func() {
		_, _ = writer.WriteString(data)
		writer.Close()
	}()

	fn()
}

// CreateTestCLI returns the root command configured with the given
// subcommand and flags, with the global logger set up for testing.
func CreateTestCLI(args []string, verboseFlag, debugFlag bool) *cobra.Command {
	cmd.SetVerbose(verboseFlag)
	cmd.SetDebug(debugFlag)
	cmd.SetLogger(logger.Logger{
		Verbose: verboseFlag,
		Debug:   debugFlag,
	})

	root := cmd.GetRootCmd()
	root.SetArgs(args)
	return root
}
