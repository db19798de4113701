package config

import (
	"net"
	"strings"
)

// Warnings reports non-fatal configuration issues worth logging at startup.
func (c *Config) Warnings() []string {
	var warnings []string

	if !isLoopback(c.BindAddr) && c.APIKey == "" {
		warnings = append(warnings, "BIND_ADDR "+c.BindAddr+" is not a loopback address and API_KEY is not set - anyone on the network can play your farm")
	}

	if c.StoreDriver == DriverMemory {
		warnings = append(warnings, "STORE_DRIVER is memory - progress will be lost on exit")
	}

	if c.StoreDriver == DriverPostgres && strings.Contains(c.DatabaseURL, "sslmode=disable") && !isLocalDSN(c.DatabaseURL) {
		warnings = append(warnings, "DATABASE_URL disables TLS for a remote host")
	}

	return warnings
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func isLocalDSN(dsn string) bool {
	return strings.Contains(dsn, "@localhost") || strings.Contains(dsn, "@127.0.0.1")
}
