// Package game owns the authoritative farm state. Every mutation runs under a
// single lock against a clone of the world, which replaces the current world
// only when the operation succeeds.
package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid"

	"github.com/osse101/IdleFarm_Go/internal/automation"
	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/event"
	"github.com/osse101/IdleFarm_Go/internal/farm"
	"github.com/osse101/IdleFarm_Go/internal/growth"
	"github.com/osse101/IdleFarm_Go/internal/logger"
	"github.com/osse101/IdleFarm_Go/internal/market"
	"github.com/osse101/IdleFarm_Go/internal/worker"
)

// Saver persists the world. savegame.Manager implements it.
type Saver interface {
	Load(ctx context.Context) (*domain.WorldState, bool, error)
	Save(ctx context.Context, w *domain.WorldState) error
	Delete(ctx context.Context) error
	Key() string
}

// JobQueue runs save jobs off the request path.
type JobQueue interface {
	TryEnqueue(job worker.Job) bool
}

// Service defines the farm operations
type Service interface {
	// Wallet and purchases
	BuySeeds(ctx context.Context, seedID string, count int) (int, error)
	BuyMachinery(ctx context.Context, id string, count int) (int, error)
	SellMachinery(ctx context.Context, id string, count int) (int, error)
	Maintain(ctx context.Context, id string) (int, error)

	// Machinery placement
	Deploy(ctx context.Context, id string) error
	Recall(ctx context.Context, id string) error

	// Plot actions
	Plant(ctx context.Context, plot int, seedID string) error
	Fertilize(ctx context.Context, plot int) error
	Weed(ctx context.Context, plot int) error
	Water(ctx context.Context, plot int) error
	StartCollection(ctx context.Context, plot int) error
	Harvest(ctx context.Context, plot int) (string, error)

	// Selling, expansion and exchange
	SellFromBarn(ctx context.Context, seedID string, count int) (Sale, error)
	SellAllFromBarn(ctx context.Context) (Sale, error)
	ExpandFarm(ctx context.Context) (Expansion, error)
	BuyCrypto(ctx context.Context, coins int) (domain.Trade, error)
	SellCrypto(ctx context.Context, amount int) (domain.Trade, error)

	// Queries
	PlotState(plot int) (growth.State, error)
	Plots() []growth.State
	State() View
	Rates() market.Rates
	RateHistory(window time.Duration) []market.Point
	FarmLevel() FarmInfo
	MachineryStats(id string) (MachineryStats, error)
	Catalog() *catalog.Catalog

	// Engine
	Tick(ctx context.Context) (TickSummary, error)
	NextDelay() time.Duration

	// Lifecycle
	Init(ctx context.Context) error
	Reset(ctx context.Context) error
	Flush(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type service struct {
	cat    *catalog.Catalog
	sched  *automation.Scheduler
	market market.Config
	clock  Clock
	saver  Saver
	bus    event.Bus
	jobs   JobQueue
	newID  func() (string, error)

	mu       sync.RWMutex
	world    *domain.WorldState
	revision uint64

	saveMu        sync.Mutex
	savedRevision uint64

	wakeMu sync.RWMutex
	wake   func()
}

// NewService creates the farm service with a fresh world. Call Init to load
// the saved game. jobs may be nil, in which case saves only happen on Flush.
func NewService(cat *catalog.Catalog, saver Saver, bus event.Bus, jobs JobQueue, clock Clock, mkt market.Config) Service {
	if clock == nil {
		clock = RealClock()
	}
	return &service{
		cat:    cat,
		sched:  automation.NewScheduler(cat),
		market: mkt,
		clock:  clock,
		saver:  saver,
		bus:    bus,
		jobs:   jobs,
		newID: func() (string, error) {
			return gonanoid.Generate(tradeIDAlphabet, tradeIDLength)
		},
		world: cat.NewWorld(),
	}
}

// SetWaker registers fn to be called after player actions that may change
// the automation cadence.
func SetWaker(svc Service, fn func()) {
	if s, ok := svc.(*service); ok {
		s.wakeMu.Lock()
		s.wake = fn
		s.wakeMu.Unlock()
	}
}

// Init loads the saved world, or keeps a new one when there is none.
func (s *service) Init(ctx context.Context) error {
	log := logger.FromContext(ctx)
	w, ok, err := s.saver.Load(ctx)
	if err != nil {
		return fmt.Errorf("load farm: %w", err)
	}
	if !ok {
		log.Info(LogMsgNoSaveStartingFresh, "key", s.saver.Key())
		return nil
	}

	s.mu.Lock()
	s.world = w
	s.revision++
	rev := s.revision
	s.mu.Unlock()

	// The loaded state is already persisted.
	s.saveMu.Lock()
	s.savedRevision = rev
	s.saveMu.Unlock()

	log.Info(LogMsgSaveLoaded, "key", s.saver.Key(), "coins", w.Coins, "plots", w.PlotCount())
	return nil
}

// commit is the outcome of a successful mutation.
type commit struct {
	revision uint64
	now      time.Time
	coins    int
	crypto   int
}

// mutate runs fn on a clone of the world and installs the clone if fn
// succeeds. The feedback payloads fn returns are published after the lock is
// released.
func (s *service) mutate(ctx context.Context, fn func(w *domain.WorldState, now time.Time) ([]domain.FeedbackPayload, error)) error {
	s.mu.Lock()
	now := s.clock.Now()
	next := s.world.Clone()
	feedback, err := fn(next, now)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if next.Coins != s.world.Coins {
		farm.RecordEarnings(next, now)
	}
	c := s.installLocked(next, now)
	s.mu.Unlock()

	s.afterCommit(ctx, c, feedback)
	return nil
}

// installLocked replaces the world. s.mu must be held for writing.
func (s *service) installLocked(next *domain.WorldState, now time.Time) commit {
	s.world = next
	s.revision++
	return commit{revision: s.revision, now: now, coins: next.Coins, crypto: next.Crypto}
}

func (s *service) afterCommit(ctx context.Context, c commit, feedback []domain.FeedbackPayload) {
	for _, fb := range feedback {
		fb.Coins, fb.Crypto = c.coins, c.crypto
		s.publish(ctx, event.NewFeedbackEvent(fb))
	}
	s.publish(ctx, event.NewStateChangedEvent(c.revision, c.coins, c.crypto, c.now))
	s.scheduleFlush(ctx)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

func (s *service) scheduleFlush(ctx context.Context) {
	if s.jobs == nil {
		return
	}
	if !s.jobs.TryEnqueue(worker.JobFunc(s.Flush)) {
		logger.FromContext(ctx).Debug(LogMsgFlushSkipped)
	}
}

func (s *service) wakeEngine() {
	s.wakeMu.RLock()
	fn := s.wake
	s.wakeMu.RUnlock()
	if fn != nil {
		fn()
	}
}

// Flush saves the current world if it changed since the last save.
func (s *service) Flush(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	rev, w := s.revision, s.world
	s.mu.RUnlock()
	if rev == s.savedRevision {
		return nil
	}

	// w is never mutated after install, so it can be encoded without the lock.
	start := time.Now()
	err := s.saver.Save(ctx, w)
	s.publish(ctx, event.NewSaveEvent(s.saver.Key(), rev, time.Since(start), err))
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "revision", rev, "error", err)
		return err
	}
	s.savedRevision = rev
	return nil
}

// Reset discards the save and starts a new farm.
func (s *service) Reset(ctx context.Context) error {
	if err := s.saver.Delete(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	c := s.installLocked(s.cat.NewWorld(), s.clock.Now())
	s.mu.Unlock()

	s.afterCommit(ctx, c, []domain.FeedbackPayload{{Action: domain.EventTypeReset, Source: domain.SourcePlayer, Haptic: domain.HapticMedium}})
	logger.FromContext(ctx).Info(LogMsgFarmReset)
	s.wakeEngine()
	return nil
}

// Shutdown writes the latest state.
func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShutdownFlush)
	return s.Flush(ctx)
}
