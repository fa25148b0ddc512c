package client

import (
	"context"
	"testing"

	"gamelog/internal/client/models"
	"gamelog/internal/client/repositories/metadata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_MigratesAndWires(t *testing.T) {
	repos, err := InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	ctx := context.Background()

	require.NoError(t, repos.Entries.Upsert(ctx, models.JournalEntry{
		Title:    "Hades",
		Platform: "PC",
		Status:   models.StatusStarted,
	}))

	all, err := repos.Entries.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repos.Metadata.Set(ctx, metadata.KeyUsername, []byte("sam")))
	v, err := repos.Metadata.Get(ctx, metadata.KeyUsername)
	require.NoError(t, err)
	assert.Equal(t, []byte("sam"), v)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	repos, err := InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	require.NoError(t, RunMigrations(context.Background(), repos.DB))
}
