package game

import (
	"fmt"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/farm"
	"github.com/osse101/IdleFarm_Go/internal/growth"
	"github.com/osse101/IdleFarm_Go/internal/market"
)

// View is a consistent read of the whole game.
type View struct {
	Revision uint64              `json:"revision"`
	Now      time.Time           `json:"now"`
	World    *domain.WorldState  `json:"world"`
	Plots    []growth.State      `json:"plots"`
	Rates    market.Rates        `json:"rates"`
	Farm     FarmInfo            `json:"farm"`
	Pools    map[string]Machines `json:"machinery"`
}

// FarmInfo describes the farm size and the next expansion.
type FarmInfo struct {
	Level      int  `json:"level"`
	MaxLevel   int  `json:"max_level"`
	Cols       int  `json:"cols"`
	Rows       int  `json:"rows"`
	NextCost   int  `json:"next_cost,omitempty"`
	CanExpand  bool `json:"can_expand"`
	Affordable bool `json:"affordable"`
}

// Machines is the garage and field summary of one machinery kind.
type Machines struct {
	Garage farm.PoolStats `json:"garage"`
	Field  farm.PoolStats `json:"field"`
}

// MachineryStats is Machines plus the maintenance quote.
type MachineryStats struct {
	Machines
	Kind            string `json:"kind"`
	NeedMaintenance int    `json:"need_maintenance"`
	MaintenanceCost int    `json:"maintenance_cost"`
}

// read runs fn with a stable world under the read lock.
func (s *service) read(fn func(w *domain.WorldState, rev uint64, now time.Time)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.world, s.revision, s.clock.Now())
}

func (s *service) Catalog() *catalog.Catalog {
	return s.cat
}

func (s *service) PlotState(plot int) (st growth.State, err error) {
	s.read(func(w *domain.WorldState, _ uint64, now time.Time) {
		st, err = farm.PlotState(w, s.cat, plot, now)
	})
	return st, err
}

func (s *service) Plots() (plots []growth.State) {
	s.read(func(w *domain.WorldState, _ uint64, now time.Time) {
		plots = s.plots(w, now)
	})
	return plots
}

func (s *service) plots(w *domain.WorldState, now time.Time) []growth.State {
	plots := make([]growth.State, len(w.Grid))
	for i := range w.Grid {
		plots[i], _ = farm.PlotState(w, s.cat, i, now)
	}
	return plots
}

func (s *service) State() (v View) {
	s.read(func(w *domain.WorldState, rev uint64, now time.Time) {
		v = View{
			Revision: rev,
			Now:      now,
			World:    w.Clone(),
			Plots:    s.plots(w, now),
			Rates:    s.market.At(now),
			Farm:     s.farmInfo(w),
			Pools:    make(map[string]Machines, len(w.Garage)),
		}
		for _, id := range s.cat.MachineryIDs() {
			v.Pools[id] = Machines{Garage: farm.Stats(w.Garage[id]), Field: farm.Stats(w.Field[id])}
		}
	})
	return v
}

func (s *service) Rates() market.Rates {
	return s.market.At(s.clock.Now())
}

func (s *service) RateHistory(window time.Duration) []market.Point {
	now := s.clock.Now()
	return s.market.History(now.Add(-window), now)
}

func (s *service) FarmLevel() (info FarmInfo) {
	s.read(func(w *domain.WorldState, _ uint64, _ time.Time) {
		info = s.farmInfo(w)
	})
	return info
}

func (s *service) farmInfo(w *domain.WorldState) FarmInfo {
	level := farm.FarmLevel(w, s.cat)
	info := FarmInfo{
		Level:    level,
		MaxLevel: len(s.cat.Expansions()) - 1,
		Cols:     w.FarmCols,
		Rows:     w.FarmRows,
	}
	if level < info.MaxLevel {
		info.CanExpand = true
		info.NextCost = farm.ExpandCost(s.cat, level)
		info.Affordable = w.Coins >= info.NextCost
	}
	return info
}

func (s *service) MachineryStats(id string) (ms MachineryStats, err error) {
	if _, ok := s.cat.MachineryType(id); !ok {
		return ms, fmt.Errorf("%w: %s", domain.ErrUnknownMachinery, id)
	}
	s.read(func(w *domain.WorldState, _ uint64, _ time.Time) {
		ms = MachineryStats{
			Machines: Machines{Garage: farm.Stats(w.Garage[id]), Field: farm.Stats(w.Field[id])},
			Kind:     id,
		}
		for _, u := range w.Garage[id] {
			if u.NeedsMaintenance() {
				ms.NeedMaintenance++
			}
		}
		ms.MaintenanceCost = ms.NeedMaintenance * s.cat.Economy().MaintenanceCost
	})
	return ms, nil
}
