package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, job skipped"
)

// ============================================================================
// Log Messages - Tick Worker
// ============================================================================

// Log messages for the automation tick worker
const (
	LogMsgTickWorkerStarted = "Automation tick worker started"
	LogMsgTickFailed        = "Automation tick failed"
	LogMsgTickScheduled     = "Next automation tick scheduled"
)

// Log messages shared by timer-driven workers
const (
	LogMsgWorkerShuttingDown    = "Worker shutting down"
	LogMsgTimerCancelled        = "Cancelled pending worker run"
	LogMsgWorkerStopped         = "Worker shutdown complete"
	LogMsgWorkerShutdownTimeout = "Worker shutdown timed out"
)

// TickWorkerName names the tick worker in shutdown logs
const TickWorkerName = "tick worker"

// MinTickDelay keeps a misbehaving engine from spinning the timer.
const MinTickDelay = 10 * time.Millisecond

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
