package automation

import (
	"time"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/growth"
)

// Action is what a machine does to its target.
type Action string

const (
	ActionPlant           Action = "plant"
	ActionWeed            Action = "weed"
	ActionFertilize       Action = "fertilize"
	ActionWater           Action = "water"
	ActionStartCollection Action = "start_collection"
	ActionSell            Action = "sell"
)

// NoPlot marks a target that is not a plot.
const NoPlot = -1

// Target is the single thing a unit acts on in one pass.
type Target struct {
	Plot   int
	SeedID string
}

// TargetFinder selects a target from a read-only world.
type TargetFinder func(w *domain.WorldState, cat *catalog.Catalog, now time.Time) (Target, bool)

// Descriptor binds a machinery kind to its action and target finder.
type Descriptor struct {
	Kind   string
	Action Action
	Find   TargetFinder
}

// DefaultDescriptors is the automation table in evaluation order.
func DefaultDescriptors() []Descriptor {
	return []Descriptor{
		{Kind: domain.KindSeeder, Action: ActionPlant, Find: findPlanting},
		{Kind: domain.KindCultivator, Action: ActionWeed, Find: plotWhere(func(s growth.State) bool { return s.NeedsWeeding })},
		{Kind: domain.KindFertilizerSpreader, Action: ActionFertilize, Find: plotWhere(func(s growth.State) bool { return s.NeedsFertilizing })},
		{Kind: domain.KindIrrigator, Action: ActionWater, Find: plotWhere(func(s growth.State) bool { return s.NeedsWatering })},
		{Kind: domain.KindHarvester, Action: ActionStartCollection, Find: plotWhere(func(s growth.State) bool { return s.Ready && !s.Collecting })},
		{Kind: domain.KindTruck, Action: ActionSell, Find: findProduce},
	}
}

func findPlanting(w *domain.WorldState, cat *catalog.Catalog, _ time.Time) (Target, bool) {
	plot := NoPlot
	for i, p := range w.Grid {
		if p == nil {
			plot = i
			break
		}
	}
	if plot == NoPlot {
		return Target{}, false
	}
	for _, crop := range cat.Crops() {
		if w.Warehouse[crop.ID] > 0 {
			return Target{Plot: plot, SeedID: crop.ID}, true
		}
	}
	return Target{}, false
}

func findProduce(w *domain.WorldState, cat *catalog.Catalog, _ time.Time) (Target, bool) {
	for _, crop := range cat.Crops() {
		if w.Barn[crop.ID] > 0 {
			return Target{Plot: NoPlot, SeedID: crop.ID}, true
		}
	}
	return Target{}, false
}

func plotWhere(pred func(growth.State) bool) TargetFinder {
	return func(w *domain.WorldState, cat *catalog.Catalog, now time.Time) (Target, bool) {
		for i, p := range w.Grid {
			if p == nil {
				continue
			}
			crop, ok := cat.Crop(p.SeedID)
			if !ok {
				continue
			}
			if pred(growth.Derive(p, crop, now)) {
				return Target{Plot: i, SeedID: p.SeedID}, true
			}
		}
		return Target{}, false
	}
}
