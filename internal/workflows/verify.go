package workflows

import (
	"context"
	"fmt"

	"github.com/trailworks/sessiontrail/internal/configs"
	kerrors "github.com/trailworks/sessiontrail/internal/errors"
)

// VerifyResult holds the resolved verification command for the project.
type VerifyResult struct {
	// Command is the configured shell command to forward to.
	Command string

	// ProjectPath is the directory the command should run in.
	ProjectPath string
}

// Verify resolves the project's configured verification command for the
// deprecated `verify` pass-through. The command itself is executed by
// the CLI layer so its exit status can be forwarded untouched.
//
// Returns ErrProjectNotInitialized if no .sessiontrail directory is found.
// Returns ErrNoVerifyCommand if the project configures no command.
func Verify(ctx context.Context) (*VerifyResult, error) {
	if err := configs.InitProjectSettings(); err != nil {
		return nil, fmt.Errorf("initializing project settings: %w", err)
	}

	projectPath := configs.ProjectTrailSettings.ProjectPath
	if projectPath == "" {
		return nil, kerrors.ErrProjectNotInitialized
	}

	config, err := configs.LoadProjectConfig(projectPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidProjectConfig, err)
	}

	if config.Project.VerifyCommand == "" {
		return nil, kerrors.ErrNoVerifyCommand
	}

	return &VerifyResult{
		Command:     config.Project.VerifyCommand,
		ProjectPath: projectPath,
	}, nil
}
