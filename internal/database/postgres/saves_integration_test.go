package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleFarm_Go/internal/database"
	"github.com/osse101/IdleFarm_Go/internal/store"
	"github.com/osse101/IdleFarm_Go/internal/testing/pgtest"
)

func TestSaveRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	connStr, terminate := pgtest.Start(ctx)
	defer terminate()
	if connStr == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := database.NewPool(connStr, 2, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, pool))

	repo := NewSaveRepository(pool)
	defer repo.Close()

	t.Run("missing key", func(t *testing.T) {
		_, err := repo.Get(ctx, "nobody")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("upsert bumps revision", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "farm_game_save", []byte(`{"version":9}`)))
		require.NoError(t, repo.Set(ctx, "farm_game_save", []byte(`{"version":9,"coins":60}`)))

		got, err := repo.Get(ctx, "farm_game_save")
		require.NoError(t, err)
		assert.JSONEq(t, `{"version":9,"coins":60}`, string(got))

		rev, ok, err := store.Revision(ctx, repo, "farm_game_save")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(2), rev)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "farm_game_save"))
		_, err := repo.Get(ctx, "farm_game_save")
		assert.ErrorIs(t, err, store.ErrNotFound)
		_, err = repo.Revision(ctx, "farm_game_save")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}
