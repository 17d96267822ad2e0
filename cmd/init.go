package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	kerrors "github.com/trailworks/sessiontrail/internal/errors"
	"github.com/trailworks/sessiontrail/internal/ui"
	"github.com/trailworks/sessiontrail/internal/workflows"
)

var initName string

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "project name (defaults to the directory name)")
}

// resetInitCommandState resets the init command's global state for testing.
func resetInitCommandState() {
	initName = ""
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Mark the current directory as a project root",
	Long: `Creates the .sessiontrail directory and a project config with a fresh
project UUID.

Initialization is optional for recording: the hook also anchors on a .git
boundary or the working directory. Initializing pins the root explicitly
and enables the log, status, and verify commands.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	spinner, cleanup := startSpinner("Initializing sessiontrail...", verbose)
	defer cleanup()

	result, err := workflows.Init(context.Background(), workflows.InitOptions{Name: initName})
	if err != nil {
		if errors.Is(err, kerrors.ErrProjectAlreadyInitialized) {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " This project has already been initialized\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("sessiontrail status") + " to see recorded activity"
			return nil
		}
		spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to initialize project: " + err.Error()
		return err
	}

	cleanup()
	if !verbose && !debug {
		figure.NewColorFigure("sessiontrail", "", "green", true).Print()
	}

	Logger.Infof("Project %s initialized with UUID %s", result.ProjectName, result.ProjectUUID)

	// cleanup already ran; print the summary directly.
	fmt.Print(ui.Success.Sprint("✓") + " Initialized project " + ui.Highlight.Sprint(result.ProjectName) + "\n" +
		ui.Info.Sprint("→") + " Lifecycle events will be recorded to " + ui.Path.Sprint(result.LogPath) + "\n")
	return nil
}
