// Package postgres implements the save store on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleFarm_Go/internal/database/generated"
	"github.com/osse101/IdleFarm_Go/internal/store"
)

// SaveRepository stores save blobs in the saves table.
type SaveRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

var (
	_ store.Store      = (*SaveRepository)(nil)
	_ store.Revisioner = (*SaveRepository)(nil)
)

// NewSaveRepository takes ownership of pool; Close closes it.
func NewSaveRepository(pool *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

func (r *SaveRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.q.GetSave(ctx, key)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get save %s: %w", key, err)
	}
	return data, nil
}

func (r *SaveRepository) Set(ctx context.Context, key string, data []byte) error {
	err := r.q.UpsertSave(ctx, generated.UpsertSaveParams{
		SaveKey: key,
		Data:    data,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert save %s: %w", key, err)
	}
	return nil
}

func (r *SaveRepository) Delete(ctx context.Context, key string) error {
	if err := r.q.DeleteSave(ctx, key); err != nil {
		return fmt.Errorf("failed to delete save %s: %w", key, err)
	}
	return nil
}

// Revision counts how many times key has been written.
func (r *SaveRepository) Revision(ctx context.Context, key string) (int64, error) {
	rev, err := r.q.GetSaveRevision(ctx, key)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", store.ErrNotFound, key)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get revision of save %s: %w", key, err)
	}
	return rev, nil
}

func (r *SaveRepository) Close() error {
	r.pool.Close()
	return nil
}
