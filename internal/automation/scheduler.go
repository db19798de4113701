// Package automation runs deployed machinery. A pass decides one command per
// machinery kind against a single snapshot of the world and then applies the
// commands one by one, re-validating each before it commits.
package automation

import (
	"fmt"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/cooldown"
	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/farm"
)

// MinDelay is the lower bound on the delay until the next pass.
const MinDelay = 100 * time.Millisecond

// Command is one decided machine action.
type Command struct {
	Kind      string    `json:"kind"`
	UnitIndex int       `json:"unit_index"`
	Action    Action    `json:"action"`
	Plot      int       `json:"plot"`
	SeedID    string    `json:"seed_id"`
	At        time.Time `json:"at"`
}

// Result of applying one command.
type Result struct {
	Command Command `json:"command"`
	Earned  int     `json:"earned,omitempty"`
	Err     error   `json:"-"`
}

// Scheduler decides and applies machinery actions. It holds no mutable state.
type Scheduler struct {
	cat         *catalog.Catalog
	cooldowns   cooldown.Config
	descriptors []Descriptor
}

// NewScheduler builds a scheduler for the kinds present in the catalog.
func NewScheduler(cat *catalog.Catalog) *Scheduler {
	s := &Scheduler{
		cat:       cat,
		cooldowns: cooldown.NewConfig(cat.Machinery(), cat.TickPeriod()),
	}
	for _, d := range DefaultDescriptors() {
		if _, ok := cat.MachineryType(d.Kind); ok {
			s.descriptors = append(s.descriptors, d)
		}
	}
	return s
}

// Descriptors returns the active automation table.
func (s *Scheduler) Descriptors() []Descriptor {
	return append([]Descriptor{}, s.descriptors...)
}

// Cooldown returns the interval between actions of a kind.
func (s *Scheduler) Cooldown(kind string) time.Duration {
	return s.cooldowns.GetCooldownDuration(kind)
}

// eligibleUnit returns the index of the first field unit of kind that may act.
func (s *Scheduler) eligibleUnit(w *domain.WorldState, kind string, now time.Time) (int, bool) {
	d := s.cooldowns.GetCooldownDuration(kind)
	for i, u := range w.Field[kind] {
		if u.Operational() && cooldown.Ready(now, u.LastActionAt, d) {
			return i, true
		}
	}
	return 0, false
}

// Decide evaluates every descriptor against the same world and returns at
// most one command per kind. It does not modify w.
func (s *Scheduler) Decide(w *domain.WorldState, now time.Time) []Command {
	var cmds []Command
	for _, d := range s.descriptors {
		unit, ok := s.eligibleUnit(w, d.Kind, now)
		if !ok {
			continue
		}
		target, ok := d.Find(w, s.cat, now)
		if !ok {
			continue
		}
		cmds = append(cmds, Command{
			Kind:      d.Kind,
			UnitIndex: unit,
			Action:    d.Action,
			Plot:      target.Plot,
			SeedID:    target.SeedID,
			At:        now,
		})
	}
	return cmds
}

// Apply commits one command to w. The unit and target are validated again
// first; on error w is unchanged and no resources are consumed.
func (s *Scheduler) Apply(w *domain.WorldState, cmd Command) (Result, error) {
	res := Result{Command: cmd}
	mt, ok := s.cat.MachineryType(cmd.Kind)
	if !ok {
		return res, fmt.Errorf("%w: %s", domain.ErrUnknownMachinery, cmd.Kind)
	}
	field := w.Field[cmd.Kind]
	if cmd.UnitIndex < 0 || cmd.UnitIndex >= len(field) {
		return res, fmt.Errorf("%w: %s unit %d", domain.ErrNoUnitAvailable, cmd.Kind, cmd.UnitIndex)
	}
	u := field[cmd.UnitIndex]
	if !u.Operational() || !cooldown.Ready(cmd.At, u.LastActionAt, s.cooldowns.GetCooldownDuration(cmd.Kind)) {
		return res, fmt.Errorf("%w: %s unit %d", domain.ErrNoUnitAvailable, cmd.Kind, cmd.UnitIndex)
	}

	var err error
	switch cmd.Action {
	case ActionPlant:
		err = farm.Plant(w, s.cat, cmd.Plot, cmd.SeedID, cmd.At)
	case ActionFertilize:
		err = farm.Care(w, s.cat, cmd.Plot, farm.CareFertilize, cmd.At)
	case ActionWeed:
		err = farm.Care(w, s.cat, cmd.Plot, farm.CareWeed, cmd.At)
	case ActionWater:
		err = farm.Care(w, s.cat, cmd.Plot, farm.CareWater, cmd.At)
	case ActionStartCollection:
		err = farm.StartCollection(w, s.cat, cmd.Plot, cmd.At)
	case ActionSell:
		_, res.Earned, err = farm.SellProduce(w, s.cat, cmd.SeedID, 1)
	default:
		err = fmt.Errorf("%w: action %q", domain.ErrInvalidInput, cmd.Action)
	}
	if err != nil {
		return res, err
	}

	return res, farm.UseUnit(w, mt, cmd.UnitIndex, cmd.At)
}

// Pass decides against w and applies the commands to w in table order.
// Commands whose target vanished are reported with Err set.
func (s *Scheduler) Pass(w *domain.WorldState, now time.Time) []Result {
	cmds := s.Decide(w, now)
	results := make([]Result, 0, len(cmds))
	for _, cmd := range cmds {
		res, err := s.Apply(w, cmd)
		res.Err = err
		results = append(results, res)
	}
	return results
}

// NextDelay is the time until the earliest operational field unit comes off
// cooldown, at least MinDelay. With no operational unit it is the shortest
// configured cooldown.
func (s *Scheduler) NextDelay(w *domain.WorldState, now time.Time) time.Duration {
	var next time.Duration
	found := false
	for _, d := range s.descriptors {
		interval := s.cooldowns.GetCooldownDuration(d.Kind)
		for _, u := range w.Field[d.Kind] {
			if !u.Operational() {
				continue
			}
			_, remaining := cooldown.Check(now, u.LastActionAt, interval)
			if !found || remaining < next {
				next, found = remaining, true
			}
		}
	}
	if !found {
		next = s.cooldowns.Smallest()
	}
	if next < MinDelay {
		next = MinDelay
	}
	return next
}
