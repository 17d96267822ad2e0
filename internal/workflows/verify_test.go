package workflows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailworks/sessiontrail/internal/configs"
	kerrors "github.com/trailworks/sessiontrail/internal/errors"
)

func TestVerify_NotInitialized(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Verify(context.Background())
	assert.ErrorIs(t, err, kerrors.ErrProjectNotInitialized)
}

func TestVerify_NoCommandConfigured(t *testing.T) {
	setupProject(t)

	_, err := Verify(context.Background())
	assert.ErrorIs(t, err, kerrors.ErrNoVerifyCommand)
}

func TestVerify_ResolvesConfiguredCommand(t *testing.T) {
	root := setupProject(t)

	config := &configs.ProjectConfig{
		Project: configs.Project{
			UUID:          "u",
			Name:          "n",
			VerifyCommand: "go test ./...",
		},
	}
	require.NoError(t, configs.SaveProjectConfig(root, config))

	result, err := Verify(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "go test ./...", result.Command)
	assert.Equal(t, root, result.ProjectPath)
}
