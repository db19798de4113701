// Package savegame converts between a WorldState and its versioned JSON save
// snapshot, and reconciles older or damaged snapshots on load.
package savegame

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/domain"
)

// Version is the current snapshot schema version. Snapshots with any other
// version are treated as absent.
const Version = 9

// DefaultKey is the store key of the player's save.
const DefaultKey = "farm_game_save"

// MaxPoolUnits bounds one machinery pool in a snapshot. It matches the
// pools limits in snapshot.schema.json.
const MaxPoolUnits = domain.MaxPoolUnits

// Snapshot is the on-disk layout. Timestamps are Unix milliseconds.
type Snapshot struct {
	Version           Whole               `json:"version"`
	Coins             Whole               `json:"coins"`
	Crypto            Whole               `json:"crypto"`
	FarmCols          Whole               `json:"farmCols"`
	FarmRows          Whole               `json:"farmRows"`
	Grid              []*PlantingRecord   `json:"grid"`
	Warehouse         map[string]Whole    `json:"warehouse"`
	Barn              map[string]Whole    `json:"barn"`
	Garage            map[string]UnitPool `json:"garage"`
	DeployedMachinery map[string]UnitPool `json:"deployedMachinery"`
	TradeHistory      []TradeRecord       `json:"tradeHistory"`
	EarningsHistory   []EarningsRecord    `json:"earningsHistory"`
}

// PlantingRecord is a non-empty grid cell.
type PlantingRecord struct {
	SeedID              string `json:"seedId"`
	PlantedAt           Whole  `json:"plantedAt"`
	FertilizedAt        *Whole `json:"fertilizedAt"`
	WeededAt            *Whole `json:"weededAt"`
	WateredAt           *Whole `json:"wateredAt"`
	CollectingStartedAt *Whole `json:"collectingStartedAt"`
}

// UnitRecord is one machine. Missing resources default to full on load.
type UnitRecord struct {
	Fuel           *float64 `json:"fuel"`
	Integrity      *float64 `json:"integrity"`
	LastActionTime *Whole   `json:"lastActionTime"`
}

// UnitPool is a list of units. Older saves stored a bare count instead, which
// decodes into that many full units.
type UnitPool []UnitRecord

// UnmarshalJSON accepts either an array of units or a legacy integer count.
// Pools larger than MaxPoolUnits are rejected.
func (p *UnitPool) UnmarshalJSON(data []byte) error {
	var count Whole
	if err := json.Unmarshal(data, &count); err == nil {
		if count < 0 || count > MaxPoolUnits {
			return fmt.Errorf("machinery count %d out of range [0, %d]", count, MaxPoolUnits)
		}
		*p = make(UnitPool, count)
		return nil
	}
	var units []UnitRecord
	if err := json.Unmarshal(data, &units); err != nil {
		return err
	}
	if len(units) > MaxPoolUnits {
		return fmt.Errorf("machinery pool of %d units exceeds %d", len(units), MaxPoolUnits)
	}
	*p = units
	return nil
}

// Whole is a JSON number read as an integer. Fractions are floored and values
// beyond the int64 range saturate, so a hand-edited save still loads.
type Whole int64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Whole) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	if i, err := num.Int64(); err == nil {
		*n = Whole(i)
		return nil
	}
	f, err := num.Float64()
	if err != nil && !math.IsInf(f, 0) {
		return err
	}
	switch f = math.Floor(f); {
	case f >= math.MaxInt64:
		*n = math.MaxInt64
	case f <= math.MinInt64:
		*n = math.MinInt64
	default:
		*n = Whole(f)
	}
	return nil
}

// TradeRecord is one crypto trade.
type TradeRecord struct {
	ID        TradeID `json:"id"`
	Type      string  `json:"type"`
	Amount    Whole   `json:"amount"`
	Rate      Whole   `json:"rate"`
	Total     Whole   `json:"total"`
	CreatedAt Whole   `json:"createdAt"`
}

// TradeID accepts both string ids and the numeric ids of older saves.
type TradeID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *TradeID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = TradeID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = TradeID(n.String())
	return nil
}

// EarningsRecord is one coin balance sample.
type EarningsRecord struct {
	Coins Whole `json:"coins"`
	Time  Whole `json:"time"`
}

func toMillis(t time.Time) Whole {
	return Whole(t.UnixMilli())
}

func fromMillis(ms Whole) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}

func optMillis(t *time.Time) *Whole {
	if t == nil {
		return nil
	}
	ms := toMillis(*t)
	return &ms
}

func optTime(ms *Whole) *time.Time {
	if ms == nil {
		return nil
	}
	t := fromMillis(*ms)
	return &t
}

// FromWorld builds the snapshot of w.
func FromWorld(w *domain.WorldState) Snapshot {
	s := Snapshot{
		Version:           Version,
		Coins:             Whole(w.Coins),
		Crypto:            Whole(w.Crypto),
		FarmCols:          Whole(w.FarmCols),
		FarmRows:          Whole(w.FarmRows),
		Grid:              make([]*PlantingRecord, len(w.Grid)),
		Warehouse:         make(map[string]Whole, len(w.Warehouse)),
		Barn:              make(map[string]Whole, len(w.Barn)),
		Garage:            make(map[string]UnitPool, len(w.Garage)),
		DeployedMachinery: make(map[string]UnitPool, len(w.Field)),
		TradeHistory:      make([]TradeRecord, 0, len(w.TradeHistory)),
		EarningsHistory:   make([]EarningsRecord, 0, len(w.EarningsHistory)),
	}
	for i, p := range w.Grid {
		if p == nil {
			continue
		}
		s.Grid[i] = &PlantingRecord{
			SeedID:              p.SeedID,
			PlantedAt:           toMillis(p.PlantedAt),
			FertilizedAt:        optMillis(p.FertilizedAt),
			WeededAt:            optMillis(p.WeededAt),
			WateredAt:           optMillis(p.WateredAt),
			CollectingStartedAt: optMillis(p.CollectingStartedAt),
		}
	}
	for k, v := range w.Warehouse {
		s.Warehouse[k] = Whole(v)
	}
	for k, v := range w.Barn {
		s.Barn[k] = Whole(v)
	}
	for k, units := range w.Garage {
		s.Garage[k] = poolRecord(units)
	}
	for k, units := range w.Field {
		s.DeployedMachinery[k] = poolRecord(units)
	}
	for _, t := range w.TradeHistory {
		s.TradeHistory = append(s.TradeHistory, TradeRecord{
			ID:        TradeID(t.ID),
			Type:      t.Type,
			Amount:    Whole(t.Amount),
			Rate:      Whole(t.Rate),
			Total:     Whole(t.Total),
			CreatedAt: toMillis(t.CreatedAt),
		})
	}
	for _, e := range w.EarningsHistory {
		s.EarningsHistory = append(s.EarningsHistory, EarningsRecord{Coins: Whole(e.Coins), Time: toMillis(e.Time)})
	}
	return s
}

func poolRecord(units []domain.Unit) UnitPool {
	pool := make(UnitPool, len(units))
	for i, u := range units {
		fuel, integrity := float64(u.Fuel), float64(u.Integrity)
		pool[i] = UnitRecord{Fuel: &fuel, Integrity: &integrity, LastActionTime: optMillis(u.LastActionAt)}
	}
	return pool
}
