package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	logger "github.com/trailworks/sessiontrail/internal/logging"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "sessiontrail",
		Short: "Record host session lifecycle events to a project-scoped audit trail.",
		Long: `Sessiontrail captures session start and end notifications emitted by a
host process and records them durably as an append-only JSON Lines log
under the project's .sessiontrail directory.

The hook entry point is wired into the host's hook configuration and is
best-effort: it never fails the host, whatever happens.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				Logger.Debugf("flag --%s=%s", f.Name, f.Value.String())
			})
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(hookCmd)
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(verifyCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetInitCommandState()
	resetLogCommandState()
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
