package audit

import (
	"encoding/json"
	"os"
	"time"
)

// SchemaVersion is the shape version stamped into every persisted record.
const SchemaVersion = 1

// TimestampFormat is RFC3339 with microseconds, always UTC.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Event identifies a session lifecycle notification from the host.
type Event string

// The closed set of recognized lifecycle events. Payloads carrying any
// other event name are legal input that produces no record.
const (
	EventSessionStart Event = "SessionStart"
	EventSessionEnd   Event = "SessionEnd"
)

// Recognized reports whether the event is one of the lifecycle kinds
// this tool records.
func (e Event) Recognized() bool {
	return e == EventSessionStart || e == EventSessionEnd
}

// Record is a single entry in the lifecycle log.
type Record struct {
	Version   int    `json:"version"` // Schema version, currently 1.
	Timestamp string `json:"ts"`      // UTC, set at write time.
	Event     Event  `json:"event"`   // SessionStart or SessionEnd.

	// Optional fields reported by the host.
	Cwd       string `json:"cwd,omitempty"`        // Working directory at event time.
	SessionID string `json:"session_id,omitempty"` // Correlates start/end pairs.
}

// NewRecord builds a record for a recognized event, stamping the schema
// version and the current UTC time.
func NewRecord(event Event, cwd, sessionID string) Record {
	return Record{
		Version:   SchemaVersion,
		Timestamp: time.Now().UTC().Format(TimestampFormat),
		Event:     event,
		Cwd:       cwd,
		SessionID: sessionID,
	}
}

// Append writes one record as one JSON line to the log at path, creating
// the file if it does not exist.
//
// The line is written with a single Write call on a descriptor opened in
// append mode, so concurrent invocations appending to the same log cannot
// interleave partial lines. Append does not retry; I/O errors are returned
// to the caller, which decides whether they matter.
func Append(path string, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	// #nosec G306 -- the lifecycle log is project state, readable by the team.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(data, '\n'))
	return err
}

// ReadRecords reads all records from the log at path.
// Returns nil if the log does not exist.
func ReadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseRecords(data)
}

// ParseRecords parses JSON Lines data into records. Malformed lines are
// silently skipped, which also tolerates a trailing partial line left by
// external truncation.
func ParseRecords(data []byte) ([]Record, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var records []Record
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var rec Record
			if err := json.Unmarshal(line, &rec); err != nil {
				// Skip malformed lines.
				continue
			}
			records = append(records, rec)
		}
	}

	return records, nil
}
