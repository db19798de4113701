// Package sqlstore stores save blobs in a single SQL table, on SQLite or MySQL.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/osse101/IdleFarm_Go/internal/store"
)

type dialect struct {
	driver string
	schema string
	upsert string
}

var (
	sqliteDialect = dialect{
		driver: "sqlite",
		schema: `CREATE TABLE IF NOT EXISTS saves (
			save_key TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);`,
		upsert: `INSERT INTO saves (save_key, data, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(save_key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
	}
	mysqlDialect = dialect{
		driver: "mysql",
		schema: `CREATE TABLE IF NOT EXISTS saves (
			save_key VARCHAR(191) NOT NULL PRIMARY KEY,
			data LONGBLOB NOT NULL,
			updated_at BIGINT NOT NULL
		)`,
		upsert: `INSERT INTO saves (save_key, data, updated_at) VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE data = VALUES(data), updated_at = VALUES(updated_at)`,
	}
)

const (
	queryGet    = `SELECT data FROM saves WHERE save_key = ?`
	queryDelete = `DELETE FROM saves WHERE save_key = ?`
)

// Store is a database/sql backed store.Store.
type Store struct {
	db      *sql.DB
	dialect dialect
}

var _ store.Store = (*Store)(nil)

// OpenSQLite opens (or creates) a SQLite database file.
func OpenSQLite(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open(sqliteDialect.driver, path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return open(db, sqliteDialect)
}

// OpenMySQL connects with a go-sql-driver DSN such as
// user:pass@tcp(host:3306)/farm?parseTime=true&charset=utf8mb4.
func OpenMySQL(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty mysql dsn")
	}
	db, err := sql.Open(mysqlDialect.driver, dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return open(db, mysqlDialect)
}

func open(db *sql.DB, d dialect) (*Store, error) {
	if _, err := db.Exec(d.schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db, dialect: d}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, queryGet, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("get save %s: %w", key, err)
	}
	return data, nil
}

func (s *Store) Set(ctx context.Context, key string, data []byte) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.upsert, key, data, time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("set save %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, queryDelete, key); err != nil {
		return fmt.Errorf("delete save %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
