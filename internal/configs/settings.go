package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/trailworks/sessiontrail/internal/audit"
	"github.com/trailworks/sessiontrail/internal/project"
)

type UserSettings struct {
	UserConfigsPath string
}

type ProjectSettings struct {
	ProjectUUID string
	ProjectName string
	ProjectPath string
	AuditPath   string
}

var (
	UserTrailSettings    *UserSettings
	ProjectTrailSettings *ProjectSettings
)

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// No config dir in the environment. Degrade to empty rather than
		// aborting: the hook entry point must keep working regardless.
		configDir = ""
	}

	UserTrailSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "sessiontrail"),
	}
	ProjectTrailSettings = &ProjectSettings{}
}

// InitProjectSettings resolves the current project and fills in
// ProjectTrailSettings. ProjectPath is empty when the working directory
// is not inside an initialized project.
func InitProjectSettings() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("error getting working directory: %w", err)
	}

	projectPath, err := project.FindRoot(cwd)
	if err != nil {
		return fmt.Errorf("error getting project root: %w", err)
	}

	settings := &ProjectSettings{
		ProjectPath: projectPath,
	}
	if projectPath != "" {
		settings.ProjectName = filepath.Base(projectPath)
		settings.AuditPath = audit.Layout(projectPath).Dir

		// Pick up identity from the project config when present.
		if cfg, err := LoadProjectConfig(projectPath); err == nil {
			if cfg.Project.Name != "" {
				settings.ProjectName = cfg.Project.Name
			}
			settings.ProjectUUID = cfg.Project.UUID
		}
	}

	ProjectTrailSettings = settings
	return nil
}
