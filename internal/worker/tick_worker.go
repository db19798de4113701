package worker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IdleFarm_Go/internal/logger"
)

// Engine is what the tick worker drives
type Engine interface {
	// Tick runs one automation pass
	Tick(ctx context.Context) error
	// NextDelay is how long to wait before the next pass
	NextDelay() time.Duration
}

// TickWorker runs Engine.Tick on an adaptive schedule. After every pass it
// re-arms a single timer with the engine's next delay.
type TickWorker struct {
	BaseWorker
	engine  Engine
	current uuid.UUID
}

// NewTickWorker creates a tick worker for engine
func NewTickWorker(engine Engine) *TickWorker {
	w := &TickWorker{engine: engine}
	w.init()
	return w
}

// Start schedules the first pass
func (w *TickWorker) Start() {
	delay := w.engine.NextDelay()
	logger.FromContext(context.Background()).Info(LogMsgTickWorkerStarted, "first_delay", delay)
	w.schedule(delay)
}

// Wake cancels the pending pass and schedules one using the current delay.
// Callers use it after a change that may shorten the cadence.
func (w *TickWorker) Wake() {
	select {
	case <-w.shutdown:
		return
	default:
	}
	w.schedule(w.engine.NextDelay())
}

func (w *TickWorker) schedule(delay time.Duration) {
	if delay < MinTickDelay {
		delay = MinTickDelay
	}

	id := uuid.New()
	timer := time.AfterFunc(delay, func() { w.fire(id) })

	w.mu.Lock()
	select {
	case <-w.shutdown:
		w.mu.Unlock()
		timer.Stop()
		return
	default:
	}
	if prev, ok := w.timers[w.current]; ok {
		prev.Stop()
		delete(w.timers, w.current)
	}
	w.current = id
	w.timers[id] = timer
	w.mu.Unlock()

	logger.FromContext(context.Background()).Debug(LogMsgTickScheduled, "delay", delay)
}

func (w *TickWorker) fire(id uuid.UUID) {
	w.mu.Lock()
	select {
	case <-w.shutdown:
		w.mu.Unlock()
		return
	default:
	}
	if id != w.current {
		// superseded by Wake
		w.mu.Unlock()
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()
	defer w.wg.Done()

	w.removeTimer(id)

	ctx := context.Background()
	if err := w.engine.Tick(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgTickFailed, "error", err)
	}
	w.schedule(w.engine.NextDelay())
}

// Shutdown stops scheduling and waits for an in-flight pass
func (w *TickWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, TickWorkerName)
}
