package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/trailworks/sessiontrail/internal/hook"
)

var hookCmd = &cobra.Command{
	Use:    "hook",
	Short:  "Record one lifecycle event from stdin",
	Hidden: true,
	Long: `Reads a single JSON hook payload from stdin and, when it names a
SessionStart or SessionEnd event, appends one record to the project's
lifecycle log.

This command is intended to be invoked by the host process, not by hand.
Its exit status is always zero: an observability hook must never be the
reason its host fails. Diagnostics, if any, go to stderr only.`,
	RunE: runHook,
}

func runHook(cmd *cobra.Command, args []string) error {
	in := io.Reader(os.Stdin)
	if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
		// Interactive invocation with no piped payload: nothing to record.
		in = bytes.NewReader(nil)
	}

	cwd, err := os.Getwd()
	if err != nil {
		Logger.Warnf("Failed to get working directory: %v", err)
		cwd = "."
	}

	result := hook.Dispatch(in, cwd)

	switch result.Outcome {
	case hook.OutcomeRecorded:
		Logger.Debugf("Recorded %s to %s", result.Event, result.LogPath)
	case hook.OutcomeSkippedBadPayload:
		Logger.Debugf("Skipping: %v", result.Err)
	case hook.OutcomeSkippedUnknownEvent:
		Logger.Debugf("Skipping unrecognized event %q", result.Event)
	case hook.OutcomeFailed:
		Logger.Warnf("Lifecycle record not written: %v", result.Err)
	}

	// Never report failure to the host.
	return nil
}
