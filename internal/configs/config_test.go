package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/trailworks/sessiontrail/internal/audit"
)

func TestProjectConfig_SaveAndLoad(t *testing.T) {
	root := t.TempDir()

	config := &ProjectConfig{
		Project: Project{
			UUID:          "11111111-2222-3333-4444-555555555555",
			Name:          "demo",
			VerifyCommand: "make check",
		},
	}

	if err := SaveProjectConfig(root, config); err != nil {
		t.Fatalf("SaveProjectConfig failed: %v", err)
	}

	loaded, err := LoadProjectConfig(root)
	if err != nil {
		t.Fatalf("LoadProjectConfig failed: %v", err)
	}

	if loaded.Project.UUID != config.Project.UUID {
		t.Errorf("Expected UUID %s, got %s", config.Project.UUID, loaded.Project.UUID)
	}
	if loaded.Project.Name != "demo" {
		t.Errorf("Expected name demo, got %s", loaded.Project.Name)
	}
	if loaded.Project.VerifyCommand != "make check" {
		t.Errorf("Expected verify command preserved, got %s", loaded.Project.VerifyCommand)
	}
}

func TestLoadProjectConfig_MissingFileIsEmptyConfig(t *testing.T) {
	root := t.TempDir()

	config, err := LoadProjectConfig(root)
	if err != nil {
		t.Fatalf("LoadProjectConfig failed: %v", err)
	}
	if config.Project.UUID != "" || config.Project.Name != "" {
		t.Errorf("Expected empty config for missing file, got %+v", config)
	}
}

func TestProjectConfigPath(t *testing.T) {
	got := ProjectConfigPath("/repo")
	want := filepath.Join("/repo", audit.DirName, "config.toml")
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestInitProjectSettings_OutsideProject(t *testing.T) {
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	defer func() {
		if err := os.Chdir(origWd); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	}()

	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	if err := InitProjectSettings(); err != nil {
		t.Fatalf("InitProjectSettings failed: %v", err)
	}

	if ProjectTrailSettings.ProjectPath != "" {
		t.Errorf("Expected empty project path outside a project, got %s", ProjectTrailSettings.ProjectPath)
	}
}

func TestInitProjectSettings_InsideProject(t *testing.T) {
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	defer func() {
		if err := os.Chdir(origWd); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	}()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, audit.DirName), 0755); err != nil {
		t.Fatalf("Failed to create marker dir: %v", err)
	}
	config := &ProjectConfig{Project: Project{UUID: "u-1", Name: "named"}}
	if err := SaveProjectConfig(root, config); err != nil {
		t.Fatalf("SaveProjectConfig failed: %v", err)
	}

	if err := os.Chdir(root); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	if err := InitProjectSettings(); err != nil {
		t.Fatalf("InitProjectSettings failed: %v", err)
	}

	if ProjectTrailSettings.ProjectPath != root {
		t.Errorf("Expected project path %s, got %s", root, ProjectTrailSettings.ProjectPath)
	}
	if ProjectTrailSettings.ProjectName != "named" {
		t.Errorf("Expected project name from config, got %s", ProjectTrailSettings.ProjectName)
	}
	if ProjectTrailSettings.ProjectUUID != "u-1" {
		t.Errorf("Expected project UUID from config, got %s", ProjectTrailSettings.ProjectUUID)
	}
}
