// Package store persists opaque save blobs by key.
package store

import (
	"context"

	"github.com/osse101/IdleFarm_Go/internal/domain"
)

// Store is the persistence collaborator of the save manager.
type Store interface {
	// Get returns the blob stored under key or an error wrapping
	// domain.ErrSnapshotNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ErrNotFound is returned when no blob exists for a key.
var ErrNotFound = domain.ErrSnapshotNotFound

// Revisioner is implemented by stores that count the writes to each key.
type Revisioner interface {
	Revision(ctx context.Context, key string) (int64, error)
}

// Revision reports how many times key has been written. ok is false when
// st, or the store it wraps, does not count writes.
func Revision(ctx context.Context, st Store, key string) (rev int64, ok bool, err error) {
	for {
		if r, is := st.(Revisioner); is {
			rev, err = r.Revision(ctx, key)
			return rev, true, err
		}
		u, is := st.(interface{ Unwrap() Store })
		if !is {
			return 0, false, nil
		}
		st = u.Unwrap()
	}
}
