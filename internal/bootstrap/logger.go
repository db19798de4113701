package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/config"
	"github.com/osse101/IdleFarm_Go/internal/logger"
)

// SetupLogger initializes the application logger. Output always goes to
// stdout; when cfg.LogDir is set it is also written to a timestamped session
// file, and old session files beyond the retention limit are removed.
// Returns the log file handle (nil without LogDir; caller must close).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	var w io.Writer = os.Stdout
	var logFile *os.File

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}

		// Leave room for the file about to be created
		cleanupLogs(cfg.LogDir, LogFileRetentionCount-1)

		timestamp := time.Now().Format(LogFileTimestampFormat)
		logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

		f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, logFile)
	}

	// Source locations only help during development
	addSource := cfg.Environment == config.EnvDev || cfg.Environment == "development"
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), w)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingFarm,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"store_driver", cfg.StoreDriver,
		"save_key", cfg.SaveKey,
		"addr", cfg.Addr(),
		"autosave", cfg.AutosaveInterval)

	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "detail", warning)
	}

	return logFile, nil
}

// cleanupLogs removes the oldest session logs until at most keep remain.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	// Timestamped names sort chronologically
	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Printf(LogMsgFailedDeleteOldLog, name, err)
		}
	}
}
