// Package audit persists session lifecycle events as an append-only log.
//
// # Log Format
//
// The log is stored as JSON Lines (one JSON object per line) at:
//
//	.sessiontrail/lifecycle.jsonl
//
// Each record carries:
//   - version (schema version, currently 1)
//   - ts (RFC3339 with microseconds, UTC, set at write time)
//   - event (SessionStart or SessionEnd)
//   - cwd and session_id as reported by the host, omitted when absent
//
// # Concurrency
//
// Hooks for overlapping sessions may append to the same log at once.
// There is no lock: each record is one short line written with a single
// Write call on a descriptor opened with O_APPEND, so the platform
// guarantees whole lines never interleave. Nothing in this package reads
// back or rewrites existing content, so there are no read/write races.
//
// Ordering across concurrent host processes is not guaranteed beyond
// file-offset atomicity; within one process timestamps are non-decreasing.
//
// # Reading
//
// Use ReadRecords to parse the log for display or analysis. Malformed
// lines are silently skipped, which tolerates logs truncated by external
// tools.
package audit
