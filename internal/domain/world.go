package domain

import "time"

// Trade is one crypto exchange transaction.
type Trade struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Amount    int       `json:"amount"`
	Rate      int       `json:"rate"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// EarningsPoint samples the coin balance for the earnings chart.
type EarningsPoint struct {
	Coins int       `json:"coins"`
	Time  time.Time `json:"time"`
}

// WorldState is the complete mutable game state of one player.
//
// Readers must treat a WorldState obtained from the game service as immutable;
// mutation happens on a Clone which is then swapped in.
type WorldState struct {
	Coins           int               `json:"coins"`
	Crypto          int               `json:"crypto"`
	FarmCols        int               `json:"farm_cols"`
	FarmRows        int               `json:"farm_rows"`
	Grid            []*Planting       `json:"grid"`
	Warehouse       map[string]int    `json:"warehouse"`
	Barn            map[string]int    `json:"barn"`
	Garage          map[string][]Unit `json:"garage"`
	Field           map[string][]Unit `json:"field"`
	TradeHistory    []Trade           `json:"trade_history"`
	EarningsHistory []EarningsPoint   `json:"earnings_history"`
}

// NewWorldState returns the starting state for a fresh game.
func NewWorldState(cropIDs, machineryIDs []string) *WorldState {
	w := &WorldState{
		Coins:           StartingCoins,
		Crypto:          StartingCrypto,
		FarmCols:        InitialCols,
		FarmRows:        InitialRows,
		Grid:            make([]*Planting, InitialCols*InitialRows),
		Warehouse:       make(map[string]int, len(cropIDs)),
		Barn:            make(map[string]int, len(cropIDs)),
		Garage:          make(map[string][]Unit, len(machineryIDs)),
		Field:           make(map[string][]Unit, len(machineryIDs)),
		TradeHistory:    []Trade{},
		EarningsHistory: []EarningsPoint{},
	}
	for _, id := range cropIDs {
		w.Warehouse[id] = 0
		w.Barn[id] = 0
	}
	for _, id := range machineryIDs {
		w.Garage[id] = []Unit{}
		w.Field[id] = []Unit{}
	}
	return w
}

// PlotCount is cols*rows.
func (w *WorldState) PlotCount() int {
	return w.FarmCols * w.FarmRows
}

// Clone returns a deep copy of the world.
func (w *WorldState) Clone() *WorldState {
	c := *w
	c.Grid = make([]*Planting, len(w.Grid))
	for i, p := range w.Grid {
		c.Grid[i] = p.Clone()
	}
	c.Warehouse = cloneCounts(w.Warehouse)
	c.Barn = cloneCounts(w.Barn)
	c.Garage = clonePools(w.Garage)
	c.Field = clonePools(w.Field)
	c.TradeHistory = append([]Trade{}, w.TradeHistory...)
	c.EarningsHistory = append([]EarningsPoint{}, w.EarningsHistory...)
	return &c
}

func cloneCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func clonePools(m map[string][]Unit) map[string][]Unit {
	out := make(map[string][]Unit, len(m))
	for k, units := range m {
		cp := make([]Unit, len(units))
		for i, u := range units {
			cp[i] = u
			cp[i].LastActionAt = cloneTime(u.LastActionAt)
		}
		out[k] = cp
	}
	return out
}
