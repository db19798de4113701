package event

import "time"

// EventSchemaVersion is stamped on every event this package builds.
const EventSchemaVersion = "1.0"

// Retry queue sizing and backoff bounds
const (
	// RetryQueueBufferSize is the buffer size for the retry queue. A farm
	// publishes a handful of events per action, so this covers minutes of
	// failures before anything spills to the dead-letter file.
	RetryQueueBufferSize = 256

	// MaxRetryDelay caps the exponential backoff
	MaxRetryDelay = time.Minute
)

// DeadLetterFilePermissions is the file mode for the dead-letter log
const DeadLetterFilePermissions = 0644

// MaxDeadLetterLineBytes bounds one entry when reading the log back
const MaxDeadLetterLineBytes = 1 << 20

// Log messages
const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventDeadLettered     = "Event dead-lettered"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Event dropped during shutdown"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"

	LogMsgHandlerErrorFormat = "%d of the %s handlers failed: %v"
)

// CalculateRetryDelay doubles baseDelay for every attempt after the first,
// capped at MaxRetryDelay. Attempts below 1 count as the first.
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= MaxRetryDelay {
			return MaxRetryDelay
		}
	}
	return delay
}
