package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, including the new one
	LogFileRetentionCount = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingFarm        = "Starting idle farm"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is used when the config leaves the path empty
	EventDefaultDeadLetterPath = "data/deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Catalog and Store
// =============================================================================

const (
	LogMsgCatalogLoaded   = "Catalog loaded"
	LogMsgStoreOpened     = "Save store opened"
	LogMsgCacheEnabled    = "Save cache enabled"
	LogMsgMigrationsAdded = "Database migrations applied"

	ErrMsgFailedLoadCatalog   = "failed to load catalog"
	ErrMsgInvalidTickOverride = "invalid tick interval override"
	ErrMsgFailedOpenStore     = "failed to open save store"
	ErrMsgFailedMigrate       = "failed to migrate database"
	ErrMsgUnknownDriver       = "unknown store driver"
	ErrMsgFailedCreateCodec   = "failed to create save codec"
	ErrMsgFailedInitGame      = "failed to initialize game"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgStreamSubscribersAttached  = "Stream subscribers attached"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	// JobNameAutosave is the scheduler name of the periodic flush
	JobNameAutosave = "autosave"

	// SaveQueueSize bounds pending save jobs; a full queue drops the job since
	// the next flush covers it
	SaveQueueSize = 8

	LogMsgWorkersStarted = "Background workers started"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgTickWorkerShutdownFailed   = "Tick worker shutdown failed"
	LogMsgStoreCloseFailed           = "Save store close failed"

	// Service names for shutdown logging
	ServiceNameGame = "game"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
