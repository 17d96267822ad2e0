package hook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/trailworks/sessiontrail/internal/audit"
	"github.com/trailworks/sessiontrail/internal/project"
)

// Payload is the untrusted JSON the host writes to the hook's stdin.
// Extra fields are ignored.
type Payload struct {
	HookEventName string `json:"hook_event_name"`
	Cwd           string `json:"cwd,omitempty"`
	SessionID     string `json:"session_id,omitempty"`
}

// Outcome classifies how a dispatch ended. Every path through Dispatch
// maps to exactly one outcome; none of them fail the host process.
type Outcome int

const (
	// OutcomeRecorded means one record was appended to the lifecycle log.
	OutcomeRecorded Outcome = iota

	// OutcomeSkippedBadPayload means stdin was empty, unreadable, or not
	// a JSON object. Nothing to do.
	OutcomeSkippedBadPayload

	// OutcomeSkippedUnknownEvent means the payload parsed but named an
	// event outside the recognized lifecycle set. Nothing to do.
	OutcomeSkippedUnknownEvent

	// OutcomeFailed means a qualifying event could not be persisted
	// (layout or write failure). The error is retained for diagnostics.
	OutcomeFailed
)

// String returns a short name for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeRecorded:
		return "recorded"
	case OutcomeSkippedBadPayload:
		return "skipped_bad_payload"
	case OutcomeSkippedUnknownEvent:
		return "skipped_unknown_event"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the terminal state of one hook invocation.
type Result struct {
	// Outcome classifies how the invocation ended.
	Outcome Outcome

	// Event is the parsed event name, when parsing got that far.
	Event audit.Event

	// LogPath is the lifecycle log that was (or would have been) written.
	LogPath string

	// Err carries the diagnostic for skip and failure outcomes. It is
	// informational only; callers must not fail the host because of it.
	Err error
}

// Dispatch runs one hook invocation: read the payload from in, filter by
// event kind, build a record, and append it to the lifecycle log anchored
// at the project root resolved from cwd.
//
// Dispatch never panics and never returns an error; every internal
// failure is folded into the Result so the caller can report success
// to the host unconditionally.
func Dispatch(in io.Reader, cwd string) Result {
	data, err := io.ReadAll(in)
	if err != nil {
		return Result{Outcome: OutcomeSkippedBadPayload, Err: fmt.Errorf("reading payload: %w", err)}
	}

	// Only a top-level JSON object is a payload. This also catches a bare
	// null, which would otherwise unmarshal cleanly into the zero Payload.
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Result{Outcome: OutcomeSkippedBadPayload, Err: fmt.Errorf("payload is not a JSON object")}
	}

	var payload Payload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return Result{Outcome: OutcomeSkippedBadPayload, Err: fmt.Errorf("parsing payload: %w", err)}
	}

	event := audit.Event(payload.HookEventName)
	if !event.Recognized() {
		return Result{Outcome: OutcomeSkippedUnknownEvent, Event: event}
	}

	rec := audit.NewRecord(event, payload.Cwd, payload.SessionID)

	root := project.Resolve(cwd)
	paths, err := audit.EnsureLayout(root)
	if err != nil {
		return Result{
			Outcome: OutcomeFailed,
			Event:   event,
			LogPath: paths.LifecycleLog,
			Err:     fmt.Errorf("ensuring audit layout at %s: %w", root, err),
		}
	}

	if err := audit.Append(paths.LifecycleLog, rec); err != nil {
		return Result{
			Outcome: OutcomeFailed,
			Event:   event,
			LogPath: paths.LifecycleLog,
			Err:     fmt.Errorf("appending lifecycle record: %w", err),
		}
	}

	return Result{Outcome: OutcomeRecorded, Event: event, LogPath: paths.LifecycleLog}
}
