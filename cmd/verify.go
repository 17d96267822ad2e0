package cmd

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	kerrors "github.com/trailworks/sessiontrail/internal/errors"
	"github.com/trailworks/sessiontrail/internal/ui"
	"github.com/trailworks/sessiontrail/internal/workflows"
)

var verifyCmd = &cobra.Command{
	Use:        "verify",
	Short:      "(deprecated) Forward to the project's verification command",
	Deprecated: "configure your host to run the verification command directly",
	Long: `Runs the verify_command configured in .sessiontrail/config.toml and
reports that command's own exit status. Sessiontrail adds nothing beyond
the forwarding; this command exists only for hosts still wired to the
old entry point.`,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	Logger.Warnf("`sessiontrail verify` is deprecated and only forwards to the configured command")

	result, err := workflows.Verify(context.Background())
	if err != nil {
		switch {
		case errors.Is(err, kerrors.ErrProjectNotInitialized):
			Logger.Errorf("Sessiontrail has not been initialized; run %s first", ui.Code.Sprint("sessiontrail init"))
		case errors.Is(err, kerrors.ErrNoVerifyCommand):
			Logger.Errorf("No verify_command configured in %s", ui.Path.Sprint(".sessiontrail/config.toml"))
		default:
			Logger.Errorf("Failed to resolve verification command: %v", err)
		}
		return err
	}

	Logger.Infof("Forwarding to: %s", result.Command)

	child := exec.Command("sh", "-c", result.Command)
	child.Dir = result.ProjectPath
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Report the child's own status, untouched.
			os.Exit(exitErr.ExitCode())
		}
		return err
	}
	return nil
}
