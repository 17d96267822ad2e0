package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/trailworks/sessiontrail/internal/audit"
	"github.com/trailworks/sessiontrail/internal/configs"
	kerrors "github.com/trailworks/sessiontrail/internal/errors"
	"github.com/trailworks/sessiontrail/internal/project"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// Name overrides the project name. Defaults to the directory name.
	Name string
}

// InitResult contains the outcome of initializing a project.
type InitResult struct {
	ProjectName string
	ProjectUUID string
	ProjectPath string
	ConfigPath  string
	LogPath     string
}

// Init marks the current directory as a project root: it creates the
// .sessiontrail audit layout and writes a config with a fresh project
// UUID.
//
// Initialization is optional for the hook itself, which falls back to
// other project markers. It pins the root explicitly and enables the
// log, status, and verify commands.
//
// Returns ErrProjectAlreadyInitialized if the directory is already
// inside an initialized project.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	existing, err := project.FindRoot(cwd)
	if err != nil {
		return nil, fmt.Errorf("checking for existing project: %w", err)
	}
	if existing != "" {
		return nil, kerrors.ErrProjectAlreadyInitialized
	}

	name := opts.Name
	if name == "" {
		name = filepath.Base(cwd)
	}

	paths, err := audit.EnsureLayout(cwd)
	if err != nil {
		return nil, fmt.Errorf("creating audit layout: %w", err)
	}

	config := &configs.ProjectConfig{
		Project: configs.Project{
			UUID: uuid.New().String(),
			Name: name,
		},
	}
	if err := configs.SaveProjectConfig(cwd, config); err != nil {
		return nil, fmt.Errorf("writing project config: %w", err)
	}

	return &InitResult{
		ProjectName: name,
		ProjectUUID: config.Project.UUID,
		ProjectPath: cwd,
		ConfigPath:  configs.ProjectConfigPath(cwd),
		LogPath:     paths.LifecycleLog,
	}, nil
}
