package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/IdleFarm_Go/internal/config"
	"github.com/osse101/IdleFarm_Go/internal/event"
	"github.com/osse101/IdleFarm_Go/internal/logger"
)

// InitializeEventSystem returns the in-process bus that subscribers attach to
// and the retrying publisher the game service publishes through.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	deadLetterPath := cfg.DeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	eventBus := event.NewMemoryBus()
	resilientPublisher, err := event.NewResilientPublisher(eventBus, EventDefaultMaxRetries, EventDefaultRetryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	logger.FromContext(context.Background()).Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}
