package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	BindAddr    string
	LogLevel    string
	LogFormat   string
	LogDir      string // optional; when set logs are also written to rotated session files
	Environment string
	ServiceName string
	Version     string
	APIKey      string // optional; when set every /api route requires X-API-Key

	// Persistence
	StoreDriver string
	StorePath   string
	DatabaseURL string
	MySQLDSN    string
	SaveKey     string

	// Database pool (postgres driver only)
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	CatalogPath      string
	TickInterval     time.Duration // 0 means use the catalog's tick period
	AutosaveInterval time.Duration
	CacheSize        int // 0 disables the read-through save cache
	CacheTTL         time.Duration
	DeadLetterPath   string
	WorkerCount      int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		BindAddr:    getEnv("BIND_ADDR", DefaultBindAddr),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", ""),
		Environment: getEnv("ENVIRONMENT", EnvDev),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),
		APIKey:      getEnv("API_KEY", ""),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DriverFile)),
		StorePath:   getEnv("STORE_PATH", DefaultStorePath),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		MySQLDSN:    getEnv("MYSQL_DSN", ""),
		SaveKey:     getEnv("SAVE_KEY", DefaultSaveKey),

		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 4),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),

		CatalogPath:      getEnv("CATALOG_PATH", ""),
		AutosaveInterval: getEnvAsDuration("AUTOSAVE_INTERVAL", DefaultAutosaveInterval),
		CacheSize:        getEnvAsInt("CACHE_SIZE", 16),
		CacheTTL:         getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		DeadLetterPath:   getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
		WorkerCount:      getEnvAsInt("WORKER_COUNT", 2),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	tickMs := getEnv("TICK_INTERVAL_MS", "0")
	ms, err := strconv.Atoi(tickMs)
	if err != nil {
		return nil, fmt.Errorf("invalid TICK_INTERVAL_MS value: %w", err)
	}
	cfg.TickInterval = time.Duration(ms) * time.Millisecond

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the driver-specific requirements and numeric ranges.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory:
	case DriverFile, DriverSQLite:
		if c.StorePath == "" {
			return fmt.Errorf("STORE_PATH must be set for the %s store driver", c.StoreDriver)
		}
	case DriverMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("MYSQL_DSN must be set for the mysql store driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must be set for the postgres store driver")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (expected one of %s)", c.StoreDriver, strings.Join(Drivers, ", "))
	}

	if c.TickInterval < 0 {
		return fmt.Errorf("TICK_INTERVAL_MS must not be negative")
	}
	if c.AutosaveInterval <= 0 {
		return fmt.Errorf("AUTOSAVE_INTERVAL must be positive")
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be at least 1")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("CACHE_SIZE must not be negative")
	}
	if c.SaveKey == "" {
		return fmt.Errorf("SAVE_KEY must not be empty")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.BindAddr, strconv.Itoa(c.Port))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return d
}
