package workflows

import (
	"context"
	"fmt"
	"sort"

	"github.com/trailworks/sessiontrail/internal/audit"
	"github.com/trailworks/sessiontrail/internal/configs"
	kerrors "github.com/trailworks/sessiontrail/internal/errors"
)

// StatusOptions configures the status workflow.
type StatusOptions struct {
	// No options currently needed - included for consistency.
}

// StatusResult summarizes the lifecycle log for the current project.
type StatusResult struct {
	// ProjectName is the name of the project.
	ProjectName string

	// ProjectPath is the resolved project root.
	ProjectPath string

	// LogPath is the lifecycle log location.
	LogPath string

	// TotalRecords is the number of parseable records in the log.
	TotalRecords int

	// Starts is the count of SessionStart records.
	Starts int

	// Ends is the count of SessionEnd records.
	Ends int

	// OpenSessions are session IDs with more starts than ends, in
	// sorted order. Sessions without IDs cannot be paired and are
	// excluded.
	OpenSessions []string
}

// Status summarizes recorded lifecycle activity for the current project.
//
// Returns ErrProjectNotInitialized if no .sessiontrail directory is found.
// A missing log is not an error: it reports zero activity.
func Status(ctx context.Context, opts StatusOptions) (*StatusResult, error) {
	if err := configs.InitProjectSettings(); err != nil {
		return nil, fmt.Errorf("initializing project settings: %w", err)
	}

	projectPath := configs.ProjectTrailSettings.ProjectPath
	if projectPath == "" {
		return nil, kerrors.ErrProjectNotInitialized
	}

	logPath := audit.Layout(projectPath).LifecycleLog

	records, err := audit.ReadRecords(logPath)
	if err != nil {
		return nil, fmt.Errorf("reading lifecycle log: %w", err)
	}

	result := &StatusResult{
		ProjectName:  configs.ProjectTrailSettings.ProjectName,
		ProjectPath:  projectPath,
		LogPath:      logPath,
		TotalRecords: len(records),
	}

	// Balance starts against ends per session to find sessions that
	// never reported an end.
	balance := make(map[string]int)
	for _, r := range records {
		switch r.Event {
		case audit.EventSessionStart:
			result.Starts++
			if r.SessionID != "" {
				balance[r.SessionID]++
			}
		case audit.EventSessionEnd:
			result.Ends++
			if r.SessionID != "" {
				balance[r.SessionID]--
			}
		}
	}

	for id, n := range balance {
		if n > 0 {
			result.OpenSessions = append(result.OpenSessions, id)
		}
	}
	sort.Strings(result.OpenSessions)

	return result, nil
}
