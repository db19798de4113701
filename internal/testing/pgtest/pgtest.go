// Package pgtest starts a throwaway PostgreSQL container for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Image is the PostgreSQL image used by integration tests.
const Image = "postgres:15-alpine"

// Start launches a container and returns its connection string and a
// terminate func. When Docker is unavailable it returns an empty string and a
// no-op terminate so callers can skip.
func Start(ctx context.Context) (connStr string, terminate func()) {
	terminate = func() {}

	// testcontainers panics when no Docker daemon is reachable
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("WARNING: postgres container unavailable: %v\n", r)
			connStr = ""
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		Image,
		postgres.WithDatabase("farmdb"),
		postgres.WithUsername("farm"),
		postgres.WithPassword("farm"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", terminate
	}

	connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", terminate
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}
