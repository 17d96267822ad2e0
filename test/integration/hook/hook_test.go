package hook_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/trailworks/sessiontrail/internal/audit"
	"github.com/trailworks/sessiontrail/test/integration/shared"
)

// TestHookIntegration exercises the `sessiontrail hook` command end to end,
// the way a host process would invoke it.
func TestHookIntegration(t *testing.T) {
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}

	t.Run("RecordsSessionStart", func(t *testing.T) {
		testHookRecordsSessionStart(t, originalWd)
	})

	t.Run("RecordsPairAcrossInvocations", func(t *testing.T) {
		testHookRecordsPairAcrossInvocations(t, originalWd)
	})

	t.Run("SkipsUnrecognizedEvent", func(t *testing.T) {
		testHookSkipsUnrecognizedEvent(t, originalWd)
	})

	t.Run("SkipsEmptyStdin", func(t *testing.T) {
		testHookSkipsEmptyStdin(t, originalWd)
	})

	t.Run("SkipsMalformedStdin", func(t *testing.T) {
		testHookSkipsMalformedStdin(t, originalWd)
	})

	t.Run("ExitsZeroWhenLayoutCannotBeCreated", func(t *testing.T) {
		testHookExitsZeroWhenLayoutCannotBeCreated(t, originalWd)
	})

	t.Run("ProducesNoStdout", func(t *testing.T) {
		testHookProducesNoStdout(t, originalWd)
	})
}

func setupTempProject(t *testing.T, originalWd string) string {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "sessiontrail-test-hook-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	tempDir, err = filepath.EvalSymlinks(tempDir)
	if err != nil {
		t.Fatalf("Failed to resolve temp directory: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(tempDir, audit.DirName), 0755); err != nil {
		t.Fatalf("Failed to create marker directory: %v", err)
	}

	shared.SetupTestEnvironment(t, tempDir, originalWd)
	return tempDir
}

func runHook(t *testing.T, stdin string) error {
	t.Helper()

	var runErr error
	shared.WithStdin(t, stdin, func() {
		cli := shared.CreateTestCLI([]string{"hook"}, false, false)
		runErr = cli.Execute()
	})
	return runErr
}

func logLines(t *testing.T, root string) []string {
	t.Helper()

	data, err := os.ReadFile(audit.Layout(root).LifecycleLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("Failed to read lifecycle log: %v", err)
	}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func testHookRecordsSessionStart(t *testing.T, originalWd string) {
	tempDir := setupTempProject(t, originalWd)

	if err := runHook(t, `{"hook_event_name":"SessionStart","cwd":"/repo","session_id":"abc"}`); err != nil {
		t.Errorf("Hook command failed unexpectedly: %v", err)
	}

	lines := logLines(t, tempDir)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(lines))
	}

	var rec audit.Record
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("Record is not valid JSON: %v", err)
	}
	if rec.Event != audit.EventSessionStart {
		t.Errorf("Expected event SessionStart, got %s", rec.Event)
	}
	if rec.Cwd != "/repo" {
		t.Errorf("Expected cwd /repo, got %s", rec.Cwd)
	}
	if rec.SessionID != "abc" {
		t.Errorf("Expected session_id abc, got %s", rec.SessionID)
	}
	if rec.Version != audit.SchemaVersion {
		t.Errorf("Expected version %d, got %d", audit.SchemaVersion, rec.Version)
	}
	if rec.Timestamp == "" {
		t.Errorf("Expected timestamp to be set")
	}
}

func testHookRecordsPairAcrossInvocations(t *testing.T, originalWd string) {
	tempDir := setupTempProject(t, originalWd)

	if err := runHook(t, `{"hook_event_name":"SessionStart","session_id":"s1"}`); err != nil {
		t.Errorf("First hook failed: %v", err)
	}
	if err := runHook(t, `{"hook_event_name":"SessionEnd","session_id":"s1"}`); err != nil {
		t.Errorf("Second hook failed: %v", err)
	}

	lines := logLines(t, tempDir)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(lines))
	}
}

func testHookSkipsUnrecognizedEvent(t *testing.T, originalWd string) {
	tempDir := setupTempProject(t, originalWd)

	if err := runHook(t, `{"hook_event_name":"PromptSubmit"}`); err != nil {
		t.Errorf("Hook command failed unexpectedly: %v", err)
	}

	if lines := logLines(t, tempDir); len(lines) != 0 {
		t.Errorf("Expected no records for unrecognized event, got %d", len(lines))
	}
}

func testHookSkipsEmptyStdin(t *testing.T, originalWd string) {
	tempDir := setupTempProject(t, originalWd)

	if err := runHook(t, ""); err != nil {
		t.Errorf("Hook command failed unexpectedly: %v", err)
	}

	if lines := logLines(t, tempDir); len(lines) != 0 {
		t.Errorf("Expected no records for empty stdin, got %d", len(lines))
	}
}

func testHookSkipsMalformedStdin(t *testing.T, originalWd string) {
	tempDir := setupTempProject(t, originalWd)

	if err := runHook(t, `{"hook_event_name": `); err != nil {
		t.Errorf("Hook command failed unexpectedly: %v", err)
	}

	if lines := logLines(t, tempDir); len(lines) != 0 {
		t.Errorf("Expected no records for malformed stdin, got %d", len(lines))
	}
}

func testHookExitsZeroWhenLayoutCannotBeCreated(t *testing.T, originalWd string) {
	tempDir, err := os.MkdirTemp("", "sessiontrail-test-hook-broken-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	// A file squatting on the marker name breaks directory creation.
	if err := os.WriteFile(filepath.Join(tempDir, audit.DirName), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create squatting file: %v", err)
	}

	shared.SetupTestEnvironment(t, tempDir, originalWd)

	if err := runHook(t, `{"hook_event_name":"SessionStart"}`); err != nil {
		t.Errorf("Hook must exit zero even when persistence fails, got: %v", err)
	}
}

func testHookProducesNoStdout(t *testing.T, originalWd string) {
	setupTempProject(t, originalWd)

	output, err := shared.CaptureOutput(func() error {
		var runErr error
		shared.WithStdin(t, `{"hook_event_name":"SessionStart","session_id":"q"}`, func() {
			cli := shared.CreateTestCLI([]string{"hook"}, false, false)
			runErr = cli.Execute()
		})
		return runErr
	})
	if err != nil {
		t.Errorf("Hook command failed unexpectedly: %v", err)
	}

	if output != "" {
		t.Errorf("Hook must stay silent on success, got output: %q", output)
	}
}
