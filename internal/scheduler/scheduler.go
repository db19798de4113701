package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/logger"
	"github.com/osse101/IdleFarm_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking the caller
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler enqueues jobs on a worker pool at fixed intervals
type Scheduler struct {
	pool     Enqueuer
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run every interval, starting one interval from
// now. A tick is skipped when the pool's queue is full.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.pool.TryEnqueue(job) {
					logger.FromContext(context.Background()).Warn("Scheduled job skipped", "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}
