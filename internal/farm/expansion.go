package farm

import (
	"fmt"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/domain"
)

// FarmLevel returns the index of the current size in the expansion table. A
// size missing from the table maps to the largest entry not bigger than it.
func FarmLevel(w *domain.WorldState, cat *catalog.Catalog) int {
	level := 0
	for i, size := range cat.Expansions() {
		if size.Cols == w.FarmCols && size.Rows == w.FarmRows {
			return i
		}
		if size.Cols*size.Rows <= w.PlotCount() {
			level = i
		}
	}
	return level
}

// ExpandCost is the price of the next expansion from level.
func ExpandCost(cat *catalog.Catalog, level int) int {
	return cat.Economy().ExpandCost * (level + 1)
}

// ExpandFarm grows the farm to the next size, keeping existing plots in index
// order and appending empty ones. It returns the cost.
func ExpandFarm(w *domain.WorldState, cat *catalog.Catalog) (int, error) {
	level := FarmLevel(w, cat)
	sizes := cat.Expansions()
	if level+1 >= len(sizes) {
		return 0, domain.ErrMaxFarmSize
	}
	cost := ExpandCost(cat, level)
	if w.Coins < cost {
		return 0, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, cost, w.Coins)
	}

	next := sizes[level+1]
	grid := make([]*domain.Planting, next.Cols*next.Rows)
	copy(grid, w.Grid)
	w.Coins -= cost
	w.FarmCols, w.FarmRows = next.Cols, next.Rows
	w.Grid = grid
	return cost, nil
}
