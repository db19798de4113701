package sqlstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleFarm_Go/internal/store"
)

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "farm.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)

	_, err = s.Get(ctx, "save")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Set(ctx, "save", []byte("v1")))
	require.NoError(t, s.Set(ctx, "save", []byte("v2")))
	require.NoError(t, s.Set(ctx, "other", []byte("x")))

	got, err := s.Get(ctx, "save")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, s.Delete(ctx, "save"))
	_, err = s.Get(ctx, "save")
	assert.ErrorIs(t, err, store.ErrNotFound)
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err = reopened.Get(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got, "data survives reopen")
}

func TestOpen_Validation(t *testing.T) {
	_, err := OpenSQLite("")
	assert.Error(t, err)

	_, err = OpenMySQL("")
	assert.Error(t, err)
}
