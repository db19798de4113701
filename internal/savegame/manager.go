package savegame

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/logger"
	"github.com/osse101/IdleFarm_Go/internal/store"
)

// Manager loads and saves the player's snapshot through a store.
type Manager struct {
	codec *Codec
	store store.Store
	key   string
}

// NewManager creates a Manager that persists under key. An empty key uses
// DefaultKey.
func NewManager(codec *Codec, st store.Store, key string) *Manager {
	if key == "" {
		key = DefaultKey
	}
	return &Manager{codec: codec, store: st, key: key}
}

// Key returns the store key of the save.
func (m *Manager) Key() string {
	return m.key
}

// Load returns the saved world. ok is false when no usable snapshot exists;
// invalid snapshots are logged and treated as absent. A non-nil error means
// the store itself failed.
func (m *Manager) Load(ctx context.Context) (w *domain.WorldState, ok bool, err error) {
	log := logger.FromContext(ctx)

	data, err := m.store.Get(ctx, m.key)
	if errors.Is(err, domain.ErrSnapshotNotFound) {
		log.Info("No saved game found", "key", m.key)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load snapshot %q: %w", m.key, err)
	}

	w, err = m.codec.Decode(data)
	if err != nil {
		log.Warn("Discarding unusable saved game", "key", m.key, "error", err)
		return nil, false, nil
	}
	log.Debug("Loaded saved game", "key", m.key, "bytes", len(data))
	return w, true, nil
}

// Save writes a snapshot of w.
func (m *Manager) Save(ctx context.Context, w *domain.WorldState) error {
	data, err := m.codec.Encode(w)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := m.store.Set(ctx, m.key, data); err != nil {
		return fmt.Errorf("save snapshot %q: %w", m.key, err)
	}
	logger.FromContext(ctx).Debug("Saved game", "key", m.key, "bytes", len(data))
	return nil
}

// Delete removes the snapshot. Deleting a missing snapshot is not an error.
func (m *Manager) Delete(ctx context.Context) error {
	err := m.store.Delete(ctx, m.key)
	if err != nil && !errors.Is(err, domain.ErrSnapshotNotFound) {
		return fmt.Errorf("delete snapshot %q: %w", m.key, err)
	}
	return nil
}
