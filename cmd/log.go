package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trailworks/sessiontrail/internal/audit"
	kerrors "github.com/trailworks/sessiontrail/internal/errors"
	"github.com/trailworks/sessiontrail/internal/ui"
	"github.com/trailworks/sessiontrail/internal/workflows"
)

var (
	logLimit   int
	logReverse bool
	logSession string
	logEvents  string
	logSince   string
	logUntil   string
	logOneline bool
	logJSON    bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of records shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent records first")
	logCmd.Flags().StringVar(&logSession, "session", "", "filter by session ID")
	logCmd.Flags().StringVar(&logEvents, "event", "", "filter by event kind (comma-separated)")
	logCmd.Flags().StringVar(&logSince, "since", "", "show records after date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "show records before date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "compact one-line format")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logSession = ""
	logEvents = ""
	logSince = ""
	logUntil = ""
	logOneline = false
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View recorded lifecycle events",
	Long: `Displays the project's lifecycle log.

Shows when sessions started and ended. Use filters to narrow down the
results.

Examples:
  sessiontrail log                         # View full log
  sessiontrail log -n 10                   # Last 10 records
  sessiontrail log --reverse               # Most recent first
  sessiontrail log --session abc-123       # Filter by session
  sessiontrail log --event SessionStart    # Filter by event kind
  sessiontrail log --since 2026-01-01      # Filter by date
  sessiontrail log --json                  # JSON output`,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	spinner, cleanup := startSpinner("Loading lifecycle log...", verbose)
	defer cleanup()

	opts := workflows.LogOptions{
		Limit:   logLimit,
		Reverse: logReverse,
		Session: logSession,
		Events:  logEvents,
		Since:   logSince,
		Until:   logUntil,
	}

	result, err := workflows.Log(context.Background(), opts)
	if err != nil {
		spinner.FinalMSG = formatLogError(err)
		if isLogUnexpectedError(err) {
			return err
		}
		return nil
	}

	Logger.Debugf("Parsed %d records from lifecycle log", result.TotalRecordsBeforeFilter)
	Logger.Debugf("After filtering: %d records", len(result.Records))

	spinner.FinalMSG = ""
	if len(result.Records) == 0 {
		if result.TotalRecordsBeforeFilter == 0 {
			fmt.Println("No lifecycle records found.")
		} else {
			fmt.Println("No lifecycle records found matching the filters.")
		}
		return nil
	}

	if logJSON {
		return outputLogJSON(result.Records)
	}

	if logOneline {
		outputLogOneline(result.Records)
		return nil
	}

	outputLogDefault(result.Records)
	return nil
}

// formatLogError formats a log error for display to the user.
func formatLogError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrProjectNotInitialized):
		return ui.Error.Sprint("✗") + " Sessiontrail has not been initialized\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("sessiontrail init") + " first"

	case errors.Is(err, kerrors.ErrNoAuditLog):
		return ui.Info.Sprint("ℹ") + " No lifecycle log found. Records appear once the host emits a session event.\n"

	case errors.Is(err, kerrors.ErrInvalidDateFormat):
		return ui.Error.Sprint("✗") + " " + err.Error()

	default:
		return ui.Error.Sprint("✗") + " Failed to read lifecycle log: " + err.Error()
	}
}

// isLogUnexpectedError returns true if the error is unexpected and should cause a non-zero exit.
func isLogUnexpectedError(err error) bool {
	switch {
	case errors.Is(err, kerrors.ErrProjectNotInitialized),
		errors.Is(err, kerrors.ErrNoAuditLog),
		errors.Is(err, kerrors.ErrInvalidDateFormat):
		return false
	default:
		return true
	}
}

func outputLogJSON(records []audit.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func outputLogOneline(records []audit.Record) {
	for _, r := range records {
		date := workflows.FormatDate(r.Timestamp)
		fmt.Printf("%s %s %s\n", date, r.Event, formatRecordDetails(r))
	}
}

func outputLogDefault(records []audit.Record) {
	for _, r := range records {
		datetime := workflows.FormatDateTime(r.Timestamp)
		fmt.Printf("%-19s  %-12s  %s\n", datetime, r.Event, formatRecordDetails(r))
	}
}

// formatRecordDetails renders the optional record fields for display.
func formatRecordDetails(r audit.Record) string {
	details := ""
	if r.SessionID != "" {
		details = ui.Highlight.Sprint(r.SessionID)
	} else {
		details = ui.Muted.Sprint("no session id")
	}
	if r.Cwd != "" {
		details += "  " + ui.Path.Sprint(r.Cwd)
	}
	return details
}
