package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/calebmoran/checkin/internal/repository"
	"github.com/calebmoran/checkin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *repository.SQLiteUpdateRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteUpdateRepo(database)
	return &App{Updates: repo}, repo
}

func runCommand(t *testing.T, app *App, args ...string) string {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestHistoryCmd_ListsRecentUpdates(t *testing.T) {
	app, repo := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestUpdate("ada@example.com", "Shipped the importer.")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestUpdate("bob@example.com", "Fixed the flaky tests.")))

	out := runCommand(t, app, "history")

	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "bob@example.com")
	assert.Contains(t, out, "Shipped the importer.")
}

func TestHistoryCmd_FiltersByEmail(t *testing.T) {
	app, repo := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestUpdate("ada@example.com", "Shipped the importer.")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestUpdate("bob@example.com", "Fixed the flaky tests.")))

	out := runCommand(t, app, "history", "--email", "ada@example.com")

	assert.Contains(t, out, "ada@example.com")
	assert.NotContains(t, out, "bob@example.com")
}

func TestHistoryCmd_EmptyHistory(t *testing.T) {
	app, _ := newTestApp(t)

	out := runCommand(t, app, "history")

	assert.Contains(t, out, "No saved updates")
}

func TestHistoryClearCmd_WithYesFlag(t *testing.T) {
	app, repo := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestUpdate("ada@example.com", "Shipped the importer.")))

	out := runCommand(t, app, "history", "clear", "--yes")
	assert.Contains(t, out, "All updates deleted.")

	updates, err := repo.ListRecent(ctx, 52)
	require.NoError(t, err)
	assert.Empty(t, updates)
}
