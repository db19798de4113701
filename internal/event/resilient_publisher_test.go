package event

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleFarm_Go/internal/domain"
)

// flakyBus fails the first failures publishes, then delivers.
type flakyBus struct {
	mu        sync.Mutex
	failures  int
	attempts  []time.Time
	delivered []Event
	delay     time.Duration
}

func (b *flakyBus) Publish(_ context.Context, evt Event) error {
	if b.delay > 0 {
		time.Sleep(b.delay)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attempts = append(b.attempts, time.Now())
	if b.failures != 0 {
		if b.failures > 0 {
			b.failures--
		}
		return errors.New("subscriber unavailable")
	}
	b.delivered = append(b.delivered, evt)
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) counts() (attempts, delivered int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.attempts), len(b.delivered)
}

// alwaysFail makes every publish fail.
const alwaysFail = -1

func newPublisher(t *testing.T, bus Bus, maxRetries int, delay time.Duration) (*ResilientPublisher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	p, err := NewResilientPublisher(bus, maxRetries, delay, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	return p, path
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	return entries
}

func harvestEvent() Event {
	plot := 2
	return NewFeedbackEvent(domain.FeedbackPayload{
		Action: domain.EventTypeHarvest,
		Source: domain.SourceMachinery,
		Haptic: domain.HapticMedium,
		SeedID: "corn",
		Plot:   &plot,
	})
}

func TestResilientPublisher_DeliversFirstTime(t *testing.T) {
	bus := &flakyBus{}
	p, path := newPublisher(t, bus, 3, 10*time.Millisecond)

	require.NoError(t, p.Publish(context.Background(), harvestEvent()))

	attempts, delivered := bus.counts()
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, delivered)
	require.NoError(t, p.Shutdown(context.Background()))
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetriesUntilDelivered(t *testing.T) {
	bus := &flakyBus{failures: 2}
	p, path := newPublisher(t, bus, 3, 10*time.Millisecond)

	p.PublishWithRetry(context.Background(), harvestEvent())

	require.Eventually(t, func() bool {
		_, delivered := bus.counts()
		return delivered == 1
	}, 2*time.Second, 5*time.Millisecond)

	attempts, _ := bus.counts()
	assert.Equal(t, 3, attempts, "initial publish plus two retries")
	require.NoError(t, p.Shutdown(context.Background()))
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_DeadLettersAfterMaxRetries(t *testing.T) {
	bus := &flakyBus{failures: alwaysFail}
	p, path := newPublisher(t, bus, 2, 5*time.Millisecond)

	p.PublishWithRetry(context.Background(), NewSaveEvent("farm", 9, time.Millisecond, nil))

	require.Eventually(t, func() bool {
		attempts, _ := bus.counts()
		return attempts == 3
	}, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, p.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, SaveComplete, entries[0].Event.Type)
	assert.Equal(t, 2, entries[0].Attempts)
	assert.Equal(t, "subscriber unavailable", entries[0].LastError)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)

	// The payload comes back as a map and still decodes
	payload, err := DecodePayload[SavePayloadV1](entries[0].Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), payload.Revision)
}

func TestResilientPublisher_BackoffDoubles(t *testing.T) {
	bus := &flakyBus{failures: 3}
	base := 40 * time.Millisecond
	p, _ := newPublisher(t, bus, 5, base)

	p.PublishWithRetry(context.Background(), harvestEvent())
	require.Eventually(t, func() bool {
		_, delivered := bus.counts()
		return delivered == 1
	}, 3*time.Second, 5*time.Millisecond)

	bus.mu.Lock()
	times := append([]time.Time(nil), bus.attempts...)
	bus.mu.Unlock()
	require.Len(t, times, 4)

	// Delays are at least base, 2*base, 4*base
	for i, want := range []time.Duration{base, 2 * base, 4 * base} {
		got := times[i+1].Sub(times[i])
		assert.GreaterOrEqual(t, got, want, "retry %d", i+1)
	}
}

func TestResilientPublisher_QueueOverflowDeadLetters(t *testing.T) {
	bus := &flakyBus{failures: alwaysFail}
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	// No retry worker: the queue only fills
	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, 2),
		maxRetries: 3,
		retryDelay: time.Hour,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}
	for i := 0; i < 5; i++ {
		p.PublishWithRetry(context.Background(), harvestEvent())
	}
	require.NoError(t, dl.Close())

	assert.Len(t, readDeadLetters(t, path), 3)
	assert.Len(t, p.retryQueue, 2)
}

func TestResilientPublisher_ShutdownFlushesPending(t *testing.T) {
	bus := &flakyBus{failures: 1}
	p, path := newPublisher(t, bus, 5, time.Hour)

	p.PublishWithRetry(context.Background(), harvestEvent())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, p.Shutdown(ctx))

	_, delivered := bus.counts()
	assert.Equal(t, 1, delivered, "final attempt runs without waiting out the backoff")
	assert.Empty(t, readDeadLetters(t, path))
	assert.NoError(t, p.Shutdown(ctx), "second shutdown is a no-op")
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	bus := &flakyBus{}
	p, _ := newPublisher(t, bus, 3, 10*time.Millisecond)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				p.PublishWithRetry(context.Background(), NewStateChangedEvent(uint64(i), i, 0, time.Now()))
			}
		}()
	}
	wg.Wait()

	_, delivered := bus.counts()
	assert.Equal(t, 200, delivered)
}
