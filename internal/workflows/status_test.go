package workflows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailworks/sessiontrail/internal/audit"
	kerrors "github.com/trailworks/sessiontrail/internal/errors"
)

func TestStatus_NotInitialized(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Status(context.Background(), StatusOptions{})
	assert.ErrorIs(t, err, kerrors.ErrProjectNotInitialized)
}

func TestStatus_EmptyLogIsNotAnError(t *testing.T) {
	root := setupProject(t)

	result, err := Status(context.Background(), StatusOptions{})
	require.NoError(t, err)

	assert.Equal(t, root, result.ProjectPath)
	assert.Equal(t, 0, result.TotalRecords)
	assert.Empty(t, result.OpenSessions)
}

func TestStatus_CountsAndOpenSessions(t *testing.T) {
	root := setupProject(t)
	appendRecords(t, root,
		rec("2026-01-01T10:00:00.000000Z", audit.EventSessionStart, "a"),
		rec("2026-01-01T10:05:00.000000Z", audit.EventSessionStart, "b"),
		rec("2026-01-01T11:00:00.000000Z", audit.EventSessionEnd, "a"),
		rec("2026-01-01T12:00:00.000000Z", audit.EventSessionStart, "c"),
	)

	result, err := Status(context.Background(), StatusOptions{})
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalRecords)
	assert.Equal(t, 3, result.Starts)
	assert.Equal(t, 1, result.Ends)
	assert.Equal(t, []string{"b", "c"}, result.OpenSessions)
}

func TestStatus_RecordsWithoutSessionIDAreCountedNotPaired(t *testing.T) {
	root := setupProject(t)
	appendRecords(t, root,
		rec("2026-01-01T10:00:00.000000Z", audit.EventSessionStart, ""),
		rec("2026-01-01T11:00:00.000000Z", audit.EventSessionEnd, ""),
	)

	result, err := Status(context.Background(), StatusOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Starts)
	assert.Equal(t, 1, result.Ends)
	assert.Empty(t, result.OpenSessions)
}

func TestStatus_BalancedSessionsAreClosed(t *testing.T) {
	root := setupProject(t)
	appendRecords(t, root,
		rec("2026-01-01T10:00:00.000000Z", audit.EventSessionStart, "a"),
		rec("2026-01-01T11:00:00.000000Z", audit.EventSessionEnd, "a"),
		rec("2026-01-02T10:00:00.000000Z", audit.EventSessionStart, "a"),
		rec("2026-01-02T11:00:00.000000Z", audit.EventSessionEnd, "a"),
	)

	result, err := Status(context.Background(), StatusOptions{})
	require.NoError(t, err)

	assert.Empty(t, result.OpenSessions)
}
