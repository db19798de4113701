package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

func TestPool_StopDrainsQueue(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	for i := 0; i < 5; i++ {
		assert.True(t, pool.TryEnqueue(JobFunc(func(context.Context) error {
			atomic.AddInt32(&executed, 1)
			return errors.New("logged, not fatal")
		})))
	}
	pool.Start()
	pool.Stop()
	pool.Stop()

	assert.Equal(t, int32(5), atomic.LoadInt32(&executed))
	assert.False(t, pool.Enqueue(JobFunc(func(context.Context) error { return nil })))
	assert.False(t, pool.TryEnqueue(JobFunc(func(context.Context) error { return nil })))
}

func TestPool_TryEnqueueFull(t *testing.T) {
	pool := NewPool(1, 1)
	noop := JobFunc(func(context.Context) error { return nil })
	assert.True(t, pool.TryEnqueue(noop))
	assert.False(t, pool.TryEnqueue(noop))
	pool.Start()
	pool.Stop()
}
