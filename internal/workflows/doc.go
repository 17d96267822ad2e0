// Package workflows provides high-level orchestration for sessiontrail
// commands.
//
// Workflows coordinate configs, project resolution, and the audit log to
// implement complete user-facing features, independent of CLI concerns
// like flag parsing, spinners, and output formatting. The cmd/ package
// stays a thin layer: parse flags, call the workflow, format the result.
//
// # Available Workflows
//
//   - Init: marks a directory as a project root and writes its config
//   - Log: reads and filters the lifecycle log
//   - Status: summarizes recorded activity and open sessions
//   - Verify: resolves the deprecated verify pass-through command
//
// The hook dispatcher is intentionally NOT a workflow: it has a different
// error contract (swallow everything, exit zero) and lives in
// internal/hook.
//
// Workflows return typed errors from internal/errors; the CLI layer
// checks them with errors.Is() to pick user-facing messages.
package workflows
