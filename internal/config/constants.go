package config

import "time"

// Store drivers
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Drivers lists every accepted STORE_DRIVER value.
var Drivers = []string{DriverMemory, DriverFile, DriverSQLite, DriverMySQL, DriverPostgres}

const (
	DefaultBindAddr         = "127.0.0.1"
	DefaultServiceName      = "idlefarm"
	DefaultStorePath        = "data"
	DefaultSaveKey          = "farm_game_save"
	DefaultDeadLetterPath   = "data/deadletter.jsonl"
	DefaultAutosaveInterval = 30 * time.Second
)

// Environments
const (
	EnvDev        = "dev"
	EnvProduction = "production"
)

// SQLiteFileName is used when STORE_PATH names a directory for the sqlite driver.
const SQLiteFileName = "farm.db"
