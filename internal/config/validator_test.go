package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnings(t *testing.T) {
	base := func() *Config {
		return &Config{BindAddr: "127.0.0.1", StoreDriver: DriverFile, StorePath: "data"}
	}

	t.Run("quiet for the default setup", func(t *testing.T) {
		assert.Empty(t, base().Warnings())
	})

	t.Run("localhost and ipv6 loopback are fine", func(t *testing.T) {
		for _, host := range []string{"localhost", "::1"} {
			cfg := base()
			cfg.BindAddr = host
			assert.Empty(t, cfg.Warnings(), host)
		}
	})

	t.Run("warns on a public bind address", func(t *testing.T) {
		cfg := base()
		cfg.BindAddr = "0.0.0.0"
		warnings := cfg.Warnings()
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "not a loopback address")

		cfg.APIKey = "secret"
		assert.Empty(t, cfg.Warnings(), "an API key makes a public bind acceptable")
	})

	t.Run("warns on memory store", func(t *testing.T) {
		cfg := base()
		cfg.StoreDriver = DriverMemory
		assert.Contains(t, cfg.Warnings()[0], "progress will be lost")
	})

	t.Run("warns on plaintext remote postgres", func(t *testing.T) {
		cfg := base()
		cfg.StoreDriver = DriverPostgres
		cfg.DatabaseURL = "postgres://u:p@db.example.com:5432/farm?sslmode=disable"
		assert.Contains(t, cfg.Warnings()[0], "disables TLS")

		cfg.DatabaseURL = "postgres://u:p@localhost:5432/farm?sslmode=disable"
		assert.Empty(t, cfg.Warnings())
	})
}
