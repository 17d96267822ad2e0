package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	kerrors "github.com/trailworks/sessiontrail/internal/errors"
	"github.com/trailworks/sessiontrail/internal/ui"
	"github.com/trailworks/sessiontrail/internal/workflows"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize recorded activity and open sessions",
	Long: `Shows the resolved project root, the lifecycle log location, record
counts per event kind, and sessions that started but never reported an
end.`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	spinner, cleanup := startSpinner("Reading lifecycle log...", verbose)
	defer cleanup()

	result, err := workflows.Status(context.Background(), workflows.StatusOptions{})
	if err != nil {
		if errors.Is(err, kerrors.ErrProjectNotInitialized) {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Sessiontrail has not been initialized\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("sessiontrail init") + " first"
			return nil
		}
		spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to read status: " + err.Error()
		return err
	}

	spinner.FinalMSG = ""

	fmt.Printf("Project:  %s %s\n", ui.Highlight.Sprint(result.ProjectName), ui.Muted.Sprint(result.ProjectPath))
	fmt.Printf("Log:      %s\n", ui.Path.Sprint(result.LogPath))
	fmt.Printf("Records:  %d total, %d starts, %d ends\n", result.TotalRecords, result.Starts, result.Ends)

	if len(result.OpenSessions) == 0 {
		fmt.Println(ui.Success.Sprint("✓") + " No open sessions")
		return nil
	}

	fmt.Printf("%s %d open session(s):\n", ui.Warning.Sprint("⚠"), len(result.OpenSessions))
	for _, id := range result.OpenSessions {
		fmt.Printf("  %s\n", ui.Highlight.Sprint(id))
	}
	return nil
}
