package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IdleFarm_Go/internal/logger"
)

// BaseWorker tracks the pending timers and in-flight runs of a timer-driven
// worker so that Shutdown can cancel the former and wait for the latter.
type BaseWorker struct {
	mu           sync.Mutex
	timers       map[uuid.UUID]*time.Timer
	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[uuid.UUID]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

func (w *BaseWorker) removeTimer(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.timers, id)
}

// pendingTimers reports how many timers are armed.
func (w *BaseWorker) pendingTimers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

// shutdownInternal is safe to call more than once; later calls only wait.
func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)

	w.shutdownOnce.Do(func() {
		log.Info(LogMsgWorkerShuttingDown, "worker", workerName)

		w.mu.Lock()
		close(w.shutdown)
		for id, timer := range w.timers {
			timer.Stop()
			log.Debug(LogMsgTimerCancelled, "worker", workerName, "timer_id", id)
		}
		w.timers = make(map[uuid.UUID]*time.Timer)
		w.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgWorkerStopped, "worker", workerName)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgWorkerShutdownTimeout, "worker", workerName)
		return ctx.Err()
	}
}
