package configs

import (
	"os"
	"path/filepath"

	"github.com/trailworks/sessiontrail/internal/audit"
)

// ProjectConfig is the TOML config stored at .sessiontrail/config.toml.
type ProjectConfig struct {
	Project Project `toml:"project"`
}

type Project struct {
	UUID string `toml:"project_uuid"`
	Name string `toml:"name"`

	// VerifyCommand is the shell command the deprecated `verify`
	// pass-through forwards to, if the project configures one.
	VerifyCommand string `toml:"verify_command,omitempty"`
}

// ProjectConfigPath returns the config file path for a project root.
func ProjectConfigPath(projectPath string) string {
	return filepath.Join(audit.Layout(projectPath).Dir, "config.toml")
}

// LoadProjectConfig loads the project configuration for a project root.
func LoadProjectConfig(projectPath string) (*ProjectConfig, error) {
	config := &ProjectConfig{}
	if err := LoadTOML(ProjectConfigPath(projectPath), config); err != nil {
		if os.IsNotExist(err) {
			// Initialized layout without a config file is fine; the hook
			// creates the directory lazily and never writes config.
			return config, nil
		}
		return nil, err
	}
	return config, nil
}

// SaveProjectConfig writes the project configuration for a project root.
func SaveProjectConfig(projectPath string, config *ProjectConfig) error {
	return SaveTOML(ProjectConfigPath(projectPath), config)
}
