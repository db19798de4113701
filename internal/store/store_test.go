package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/mocks"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "save")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	data := []byte(`{"version":9}`)
	require.NoError(t, m.Set(ctx, "save", data))
	data[0] = 'X'

	got, err := m.Get(ctx, "save")
	require.NoError(t, err)
	assert.Equal(t, `{"version":9}`, string(got), "stored bytes are copied")

	require.NoError(t, m.Delete(ctx, "save"))
	_, err = m.Get(ctx, "save")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, m.Close())
}

func TestCached_ReadThrough(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewMockStore(t)
	backend.On("Get", mock.Anything, "save").Return([]byte("blob"), nil).Once()

	c := NewCached(backend, CacheConfig{Size: 4, TTL: time.Minute})

	for i := 0; i < 3; i++ {
		got, err := c.Get(ctx, "save")
		require.NoError(t, err)
		assert.Equal(t, []byte("blob"), got)
	}

	stats := c.GetStats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestCached_WriteThrough(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewMockStore(t)
	backend.On("Set", mock.Anything, "save", []byte("v2")).Return(nil).Once()

	c := NewCached(backend, DefaultCacheConfig())
	require.NoError(t, c.Set(ctx, "save", []byte("v2")))

	got, err := c.Get(ctx, "save")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestCached_FailedWriteEvicts(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewMockStore(t)
	backend.On("Set", mock.Anything, "save", []byte("v1")).Return(nil).Once()
	backend.On("Set", mock.Anything, "save", []byte("v2")).Return(errors.New("disk full")).Once()
	backend.On("Get", mock.Anything, "save").Return([]byte("v1"), nil).Once()

	c := NewCached(backend, DefaultCacheConfig())
	require.NoError(t, c.Set(ctx, "save", []byte("v1")))
	assert.Error(t, c.Set(ctx, "save", []byte("v2")))

	got, err := c.Get(ctx, "save")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)
}

func TestCached_MissPropagatesNotFound(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewMockStore(t)
	backend.On("Get", mock.Anything, "save").Return(nil, ErrNotFound).Twice()

	c := NewCached(backend, DefaultCacheConfig())
	for i := 0; i < 2; i++ {
		_, err := c.Get(ctx, "save")
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestCached_DeleteAndClose(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewMockStore(t)
	backend.On("Set", mock.Anything, "save", []byte("v1")).Return(nil).Once()
	backend.On("Delete", mock.Anything, "save").Return(nil).Once()
	backend.On("Get", mock.Anything, "save").Return(nil, ErrNotFound).Once()
	backend.On("Close").Return(nil).Once()

	c := NewCached(backend, DefaultCacheConfig())
	require.NoError(t, c.Set(ctx, "save", []byte("v1")))
	require.NoError(t, c.Delete(ctx, "save"))

	_, err := c.Get(ctx, "save")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, c.Close())
}

func TestRevision(t *testing.T) {
	ctx := context.Background()

	counted := NewMemory()
	require.NoError(t, counted.Set(ctx, "save", []byte(`{}`)))
	require.NoError(t, counted.Set(ctx, "save", []byte(`{"coins":1}`)))

	tests := []struct {
		name    string
		st      Store
		wantRev int64
		wantOK  bool
		wantErr error
	}{
		{"memory", counted, 2, true, nil},
		{"through cache", NewCached(counted, DefaultCacheConfig()), 2, true, nil},
		{"never written", NewMemory(), 0, true, ErrNotFound},
		{"not counted", mocks.NewMockStore(t), 0, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rev, ok, err := Revision(ctx, tt.st, "save")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRev, rev)
		})
	}

	t.Run("delete resets", func(t *testing.T) {
		require.NoError(t, counted.Delete(ctx, "save"))
		require.NoError(t, counted.Set(ctx, "save", []byte(`{}`)))
		rev, err := counted.Revision(ctx, "save")
		require.NoError(t, err)
		assert.Equal(t, int64(1), rev)
	})
}
