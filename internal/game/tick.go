package game

import (
	"context"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/automation"
	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/farm"
	"github.com/osse101/IdleFarm_Go/internal/logger"
	"github.com/osse101/IdleFarm_Go/internal/worker"
)

// TickSummary reports what one automation pass did.
type TickSummary struct {
	At        time.Time           `json:"at"`
	Applied   []automation.Result `json:"applied"`
	Skipped   int                 `json:"skipped"`
	Harvested []int               `json:"harvested"`
	Revision  uint64              `json:"revision"`
}

// Changed reports whether the pass committed a new world.
func (t TickSummary) Changed() bool {
	return len(t.Applied) > 0 || len(t.Harvested) > 0
}

var actionSounds = map[automation.Action]string{
	automation.ActionPlant:           domain.EventTypePlant,
	automation.ActionFertilize:       domain.EventTypeFertilize,
	automation.ActionWeed:            domain.EventTypeWeed,
	automation.ActionWater:           domain.EventTypeWater,
	automation.ActionStartCollection: domain.EventTypeCollect,
	automation.ActionSell:            domain.EventTypeSell,
}

// Tick runs one automation pass and then harvests every plot whose collection
// finished. Nothing is committed if neither did anything.
func (s *service) Tick(ctx context.Context) (TickSummary, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	now := s.clock.Now()
	next := s.world.Clone()
	summary := TickSummary{At: now}

	var feedback []domain.FeedbackPayload
	for _, res := range s.sched.Pass(next, now) {
		if res.Err != nil {
			summary.Skipped++
			log.Debug(LogMsgCommandSkipped, "kind", res.Command.Kind, "action", res.Command.Action, "error", res.Err)
			continue
		}
		summary.Applied = append(summary.Applied, res)
		feedback = append(feedback, machineFeedback(res))
	}
	grid := append([]*domain.Planting(nil), next.Grid...)
	summary.Harvested = farm.CompleteCollections(next, s.cat, now)

	if !summary.Changed() {
		summary.Revision = s.revision
		s.mu.Unlock()
		return summary, nil
	}

	for _, plot := range summary.Harvested {
		p := plot
		feedback = append(feedback, domain.FeedbackPayload{
			Action: domain.EventTypeHarvest,
			Source: domain.SourceMachinery,
			Haptic: domain.HapticMedium,
			Plot:   &p,
			SeedID: grid[plot].SeedID,
			Amount: 1,
		})
	}
	if next.Coins != s.world.Coins {
		farm.RecordEarnings(next, now)
	}
	c := s.installLocked(next, now)
	summary.Revision = c.revision
	s.mu.Unlock()

	log.Debug(LogMsgTickApplied, "applied", len(summary.Applied), "harvested", len(summary.Harvested), "revision", c.revision)
	s.afterCommit(ctx, c, feedback)
	return summary, nil
}

func machineFeedback(res automation.Result) domain.FeedbackPayload {
	fb := domain.FeedbackPayload{
		Action: actionSounds[res.Command.Action],
		Source: domain.SourceMachinery,
		Haptic: domain.HapticLight,
		Kind:   res.Command.Kind,
		SeedID: res.Command.SeedID,
	}
	if res.Command.Plot != automation.NoPlot {
		p := res.Command.Plot
		fb.Plot = &p
	}
	if res.Command.Action == automation.ActionSell {
		fb.Amount = 1
	}
	return fb
}

// NextDelay is the automation cadence, shortened when a collection finishes
// sooner.
func (s *service) NextDelay() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clock.Now()
	delay := s.sched.NextDelay(s.world, now)
	if due, ok := farm.NextCollectionDue(s.world, s.cat); ok {
		if d := due.Sub(now); d < delay {
			delay = max(d, automation.MinDelay)
		}
	}
	return delay
}

type engine struct {
	svc Service
}

func (e engine) Tick(ctx context.Context) error {
	_, err := e.svc.Tick(ctx)
	return err
}

func (e engine) NextDelay() time.Duration {
	return e.svc.NextDelay()
}

// Engine adapts svc for the tick worker.
func Engine(svc Service) worker.Engine {
	return engine{svc: svc}
}
