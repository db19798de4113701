// Package farm implements the validate-then-commit mutations of a WorldState.
// Every function checks all preconditions before touching the world, so a
// returned error always means the world is unchanged.
package farm

import (
	"fmt"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/growth"
)

// CareAction is one of the three growth care steps.
type CareAction string

const (
	CareFertilize CareAction = "fertilize"
	CareWeed      CareAction = "weed"
	CareWater     CareAction = "water"
)

func plotAt(w *domain.WorldState, plot int) (*domain.Planting, error) {
	if plot < 0 || plot >= len(w.Grid) {
		return nil, fmt.Errorf("%w: %d", domain.ErrPlotOutOfRange, plot)
	}
	return w.Grid[plot], nil
}

func occupiedPlot(w *domain.WorldState, cat *catalog.Catalog, plot int) (*domain.Planting, domain.CropType, error) {
	p, err := plotAt(w, plot)
	if err != nil {
		return nil, domain.CropType{}, err
	}
	if p == nil {
		return nil, domain.CropType{}, fmt.Errorf("%w: %d", domain.ErrPlotEmpty, plot)
	}
	crop, ok := cat.Crop(p.SeedID)
	if !ok {
		return nil, domain.CropType{}, fmt.Errorf("%w: %s", domain.ErrUnknownCrop, p.SeedID)
	}
	return p, crop, nil
}

// PlotState derives the lifecycle state of a plot.
func PlotState(w *domain.WorldState, cat *catalog.Catalog, plot int, now time.Time) (growth.State, error) {
	p, err := plotAt(w, plot)
	if err != nil {
		return growth.State{}, err
	}
	if p == nil {
		return growth.Derive(nil, domain.CropType{}, now), nil
	}
	crop, ok := cat.Crop(p.SeedID)
	if !ok {
		return growth.State{}, fmt.Errorf("%w: %s", domain.ErrUnknownCrop, p.SeedID)
	}
	return growth.Derive(p, crop, now), nil
}

// Plant moves one seed from the warehouse into an empty plot.
func Plant(w *domain.WorldState, cat *catalog.Catalog, plot int, seedID string, now time.Time) error {
	if _, ok := cat.Crop(seedID); !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCrop, seedID)
	}
	p, err := plotAt(w, plot)
	if err != nil {
		return err
	}
	if p != nil {
		return fmt.Errorf("%w: %d", domain.ErrPlotOccupied, plot)
	}
	if w.Warehouse[seedID] < 1 {
		return fmt.Errorf("%w: no %s seeds in warehouse", domain.ErrInsufficientStock, seedID)
	}

	w.Warehouse[seedID]--
	w.Grid[plot] = &domain.Planting{SeedID: seedID, PlantedAt: now}
	return nil
}

// Care applies a care action. The plot must currently need it, which keeps
// the fertilize, weed, water order intact.
func Care(w *domain.WorldState, cat *catalog.Catalog, plot int, action CareAction, now time.Time) error {
	p, crop, err := occupiedPlot(w, cat, plot)
	if err != nil {
		return err
	}
	s := growth.Derive(p, crop, now)

	var needed bool
	switch action {
	case CareFertilize:
		needed = s.NeedsFertilizing
	case CareWeed:
		needed = s.NeedsWeeding
	case CareWater:
		needed = s.NeedsWatering
	default:
		return fmt.Errorf("%w: care action %q", domain.ErrInvalidInput, action)
	}
	if !needed {
		return fmt.Errorf("%w: plot %d does not need %s", domain.ErrNotEligible, plot, action)
	}

	next := p.Clone()
	switch action {
	case CareFertilize:
		next.FertilizedAt = domain.TimePtr(now)
	case CareWeed:
		next.WeededAt = domain.TimePtr(now)
	case CareWater:
		next.WateredAt = domain.TimePtr(now)
	}
	w.Grid[plot] = next
	return nil
}

// StartCollection opens the collection window on a ready plot.
func StartCollection(w *domain.WorldState, cat *catalog.Catalog, plot int, now time.Time) error {
	p, crop, err := occupiedPlot(w, cat, plot)
	if err != nil {
		return err
	}
	if !growth.IsReady(p, crop, now) || p.CollectingStartedAt != nil {
		return fmt.Errorf("%w: plot %d cannot start collecting", domain.ErrNotEligible, plot)
	}

	next := p.Clone()
	next.CollectingStartedAt = domain.TimePtr(now)
	w.Grid[plot] = next
	return nil
}

// Harvest clears a ready plot whose collection window has elapsed and credits
// the barn. Without an explicit start the window counts from the end of growth.
func Harvest(w *domain.WorldState, cat *catalog.Catalog, plot int, now time.Time) (string, error) {
	p, crop, err := occupiedPlot(w, cat, plot)
	if err != nil {
		return "", err
	}
	if !growth.IsReady(p, crop, now) || !growth.CollectionDone(p, crop, now) {
		return "", fmt.Errorf("%w: plot %d is not ready to harvest", domain.ErrNotEligible, plot)
	}

	w.Grid[plot] = nil
	w.Barn[p.SeedID]++
	return p.SeedID, nil
}

// CompleteCollections harvests every plot whose explicit collection window
// finished, returning the harvested plot indexes.
func CompleteCollections(w *domain.WorldState, cat *catalog.Catalog, now time.Time) []int {
	var harvested []int
	for i, p := range w.Grid {
		if p == nil || p.CollectingStartedAt == nil {
			continue
		}
		crop, ok := cat.Crop(p.SeedID)
		if !ok || !growth.Derive(p, crop, now).CollectionComplete {
			continue
		}
		if _, err := Harvest(w, cat, i, now); err == nil {
			harvested = append(harvested, i)
		}
	}
	return harvested
}

// NextCollectionDue returns the earliest pending explicit collection end.
func NextCollectionDue(w *domain.WorldState, cat *catalog.Catalog) (time.Time, bool) {
	var next time.Time
	found := false
	for _, p := range w.Grid {
		if p == nil || p.CollectingStartedAt == nil {
			continue
		}
		crop, ok := cat.Crop(p.SeedID)
		if !ok {
			continue
		}
		due := p.CollectingStartedAt.Add(crop.HarvestDuration())
		if !found || due.Before(next) {
			next, found = due, true
		}
	}
	return next, found
}
