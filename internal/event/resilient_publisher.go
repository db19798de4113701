package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/logger"
)

type retryEntry struct {
	event     Event
	attempts  int
	nextRetry time.Time
	lastErr   error
}

// ResilientPublisher wraps an Event Bus to add retry logic and dead letter queuing.
// Failed events are retried with exponential backoff on a single worker; events
// that exhaust their retries, or that arrive while the queue is full, are
// appended to the dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewResilientPublisher creates a ResilientPublisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()

	return rp, nil
}

// Publish implements Bus. It never returns an error; failures are retried in
// the background.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// PublishWithRetry publishes once synchronously and queues the event for retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	p.enqueue(retryEntry{
		event:     event,
		attempts:  1,
		nextRetry: time.Now().Add(CalculateRetryDelay(p.retryDelay, 1)),
		lastErr:   err,
	})
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case <-p.shutdown:
		p.writeDeadLetter(entry, LogMsgEventDroppedShutdown)
		return
	default:
	}

	select {
	case p.retryQueue <- entry:
	default:
		p.writeDeadLetter(entry, LogMsgRetryQueueFull)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			if !p.waitUntil(entry.nextRetry) {
				p.finalAttempt(entry)
				p.drain()
				return
			}
			p.retry(entry)

		case <-p.shutdown:
			p.drain()
			return
		}
	}
}

// waitUntil sleeps until t and reports false if shutdown interrupted it.
func (p *ResilientPublisher) waitUntil(t time.Time) bool {
	d := time.Until(t)
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-p.shutdown:
		return false
	}
}

func (p *ResilientPublisher) retry(entry retryEntry) {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	err := p.bus.Publish(ctx, entry.event)
	if err == nil {
		log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempts)
		return
	}

	entry.lastErr = err
	if entry.attempts >= p.maxRetries {
		p.writeDeadLetter(entry, LogMsgEventRetryExhausted)
		return
	}

	entry.attempts++
	entry.nextRetry = time.Now().Add(CalculateRetryDelay(p.retryDelay, entry.attempts))
	log.Debug(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempts, "error", err)
	p.enqueue(entry)
}

// finalAttempt tries once more without backoff during shutdown.
func (p *ResilientPublisher) finalAttempt(entry retryEntry) {
	if err := p.bus.Publish(context.Background(), entry.event); err != nil {
		entry.lastErr = err
		p.writeDeadLetter(entry, LogMsgEventDroppedShutdown)
	}
}

func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			p.finalAttempt(entry)
			drained++
		default:
			if drained > 0 {
				logger.FromContext(context.Background()).Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(entry retryEntry, reason string) {
	logger.FromContext(context.Background()).Warn(reason, "event_type", entry.event.Type, "attempts", entry.attempts)
	if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// Shutdown stops the retry worker, flushing queued events once more, and
// closes the dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	var err error
	p.shutdownOnce.Do(func() {
		close(p.shutdown)

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
			err = ctx.Err()
			return
		}

		if p.deadLetter != nil {
			err = p.deadLetter.Close()
		}
	})
	return err
}
