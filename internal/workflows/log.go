package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/trailworks/sessiontrail/internal/audit"
	"github.com/trailworks/sessiontrail/internal/configs"
	kerrors "github.com/trailworks/sessiontrail/internal/errors"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of records to return. 0 means no limit.
	Limit int

	// Reverse orders records from most recent to oldest when true.
	Reverse bool

	// Session filters records by session ID.
	Session string

	// Events filters records by event kinds (comma-separated).
	Events string

	// Since filters records after this date (YYYY-MM-DD format).
	Since string

	// Until filters records before this date (YYYY-MM-DD format).
	Until string
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	// Records are the filtered lifecycle records.
	Records []audit.Record

	// TotalRecordsBeforeFilter is the count of records before filtering.
	TotalRecordsBeforeFilter int

	// LogPath is the lifecycle log that was read.
	LogPath string
}

// Log reads and filters the lifecycle log.
//
// Returns ErrProjectNotInitialized if no .sessiontrail directory is found.
// Returns ErrNoAuditLog if no lifecycle log exists yet.
// Returns ErrInvalidDateFormat if a date filter cannot be parsed.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	if err := configs.InitProjectSettings(); err != nil {
		return nil, fmt.Errorf("initializing project settings: %w", err)
	}

	projectPath := configs.ProjectTrailSettings.ProjectPath
	if projectPath == "" {
		return nil, kerrors.ErrProjectNotInitialized
	}

	logPath := audit.Layout(projectPath).LifecycleLog

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, kerrors.ErrNoAuditLog
	}
	if err != nil {
		return nil, fmt.Errorf("reading lifecycle log: %w", err)
	}

	records, err := audit.ParseRecords(data)
	if err != nil {
		return nil, fmt.Errorf("parsing lifecycle log: %w", err)
	}

	result := &LogResult{
		TotalRecordsBeforeFilter: len(records),
		LogPath:                  logPath,
	}

	if len(records) == 0 {
		result.Records = records
		return result, nil
	}

	filtered := records

	if opts.Session != "" {
		filtered = filterBySession(filtered, opts.Session)
	}

	if opts.Events != "" {
		events := strings.Split(opts.Events, ",")
		for i := range events {
			events[i] = strings.TrimSpace(events[i])
		}
		filtered = filterByEvents(filtered, events)
	}

	if opts.Since != "" {
		sinceTime, err := time.Parse("2006-01-02", opts.Since)
		if err != nil {
			return nil, fmt.Errorf("%w: --since date format invalid, use YYYY-MM-DD", kerrors.ErrInvalidDateFormat)
		}
		filtered = filterSince(filtered, sinceTime)
	}

	if opts.Until != "" {
		untilTime, err := time.Parse("2006-01-02", opts.Until)
		if err != nil {
			return nil, fmt.Errorf("%w: --until date format invalid, use YYYY-MM-DD", kerrors.ErrInvalidDateFormat)
		}
		// Include the entire day by setting to end of day.
		untilTime = untilTime.Add(24*time.Hour - time.Nanosecond)
		filtered = filterUntil(filtered, untilTime)
	}

	if opts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		if opts.Reverse {
			// When reversed, limit takes first N (most recent).
			filtered = filtered[:opts.Limit]
		} else {
			// When not reversed, limit takes last N (most recent).
			filtered = filtered[len(filtered)-opts.Limit:]
		}
	}

	result.Records = filtered
	return result, nil
}

// filterBySession filters records by exact session ID.
func filterBySession(records []audit.Record, session string) []audit.Record {
	var result []audit.Record
	for _, r := range records {
		if r.SessionID == session {
			result = append(result, r)
		}
	}
	return result
}

// filterByEvents filters records by event kinds (case-insensitive).
func filterByEvents(records []audit.Record, events []string) []audit.Record {
	eventSet := make(map[string]bool)
	for _, e := range events {
		eventSet[strings.ToLower(e)] = true
	}

	var result []audit.Record
	for _, r := range records {
		if eventSet[strings.ToLower(string(r.Event))] {
			result = append(result, r)
		}
	}
	return result
}

// filterSince keeps records at or after the given time.
func filterSince(records []audit.Record, since time.Time) []audit.Record {
	var result []audit.Record
	for _, r := range records {
		t, ok := parseTimestamp(r.Timestamp)
		if !ok {
			continue
		}
		if !t.Before(since) {
			result = append(result, r)
		}
	}
	return result
}

// filterUntil keeps records at or before the given time.
func filterUntil(records []audit.Record, until time.Time) []audit.Record {
	var result []audit.Record
	for _, r := range records {
		t, ok := parseTimestamp(r.Timestamp)
		if !ok {
			continue
		}
		if !t.After(until) {
			result = append(result, r)
		}
	}
	return result
}

// parseTimestamp parses a record timestamp, accepting plain RFC3339 as a
// fallback for logs written by other tools.
func parseTimestamp(ts string) (time.Time, bool) {
	t, err := time.Parse(audit.TimestampFormat, ts)
	if err != nil {
		t, err = time.Parse(time.RFC3339, ts)
	}
	return t, err == nil
}

// FormatDate formats a record timestamp as YYYY-MM-DD.
func FormatDate(ts string) string {
	t, ok := parseTimestamp(ts)
	if !ok {
		if len(ts) >= 10 {
			return ts[:10]
		}
		return ts
	}
	return t.Format("2006-01-02")
}

// FormatDateTime formats a record timestamp as YYYY-MM-DD HH:MM:SS.
func FormatDateTime(ts string) string {
	t, ok := parseTimestamp(ts)
	if !ok {
		if len(ts) >= 19 {
			return ts[:19]
		}
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}
