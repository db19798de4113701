package savegame

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/domain"
)

//go:embed snapshot.schema.json
var schemaJSON string

const schemaURL = "snapshot.schema.json"

// Codec encodes and decodes snapshots for one catalog.
type Codec struct {
	cat    *catalog.Catalog
	schema *jsonschema.Schema
}

// NewCodec compiles the embedded snapshot schema.
func NewCodec(cat *catalog.Catalog) (*Codec, error) {
	schema, err := jsonschema.CompileString(schemaURL, schemaJSON)
	if err != nil {
		return nil, fmt.Errorf("compile snapshot schema: %w", err)
	}
	return &Codec{cat: cat, schema: schema}, nil
}

// Encode serializes w at the current version.
func (c *Codec) Encode(w *domain.WorldState) ([]byte, error) {
	return json.Marshal(FromWorld(w))
}

// Decode parses, validates and reconciles a snapshot. Malformed data and
// version mismatches return an error wrapping domain.ErrInvalidSnapshot.
func (c *Codec) Decode(data []byte) (*domain.WorldState, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	if err := c.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	if s.Version != Version {
		return nil, fmt.Errorf("%w: version %d, want %d", domain.ErrInvalidSnapshot, s.Version, Version)
	}
	return c.reconcile(s), nil
}

// reconcile turns a structurally valid snapshot into a WorldState that
// satisfies every catalog and range invariant.
func (c *Codec) reconcile(s Snapshot) *domain.WorldState {
	w := c.cat.NewWorld()
	w.Coins = int(max(s.Coins, 0))
	w.Crypto = int(max(s.Crypto, 0))
	w.FarmCols, w.FarmRows = int(s.FarmCols), int(s.FarmRows)

	w.Grid = make([]*domain.Planting, w.FarmCols*w.FarmRows)
	for i := range w.Grid {
		if i >= len(s.Grid) || s.Grid[i] == nil {
			continue
		}
		rec := s.Grid[i]
		if _, ok := c.cat.Crop(rec.SeedID); !ok || rec.PlantedAt <= 0 {
			continue
		}
		w.Grid[i] = &domain.Planting{
			SeedID:              rec.SeedID,
			PlantedAt:           fromMillis(rec.PlantedAt),
			FertilizedAt:        optTime(rec.FertilizedAt),
			WeededAt:            optTime(rec.WeededAt),
			WateredAt:           optTime(rec.WateredAt),
			CollectingStartedAt: optTime(rec.CollectingStartedAt),
		}
	}

	for id := range w.Warehouse {
		w.Warehouse[id] = int(max(s.Warehouse[id], 0))
		w.Barn[id] = int(max(s.Barn[id], 0))
	}
	for id := range w.Garage {
		w.Garage[id] = units(s.Garage[id])
		w.Field[id] = units(s.DeployedMachinery[id])
	}

	trades := s.TradeHistory
	if len(trades) > domain.MaxTradeHistory {
		trades = trades[len(trades)-domain.MaxTradeHistory:]
	}
	for _, t := range trades {
		w.TradeHistory = append(w.TradeHistory, domain.Trade{
			ID:        string(t.ID),
			Type:      t.Type,
			Amount:    int(t.Amount),
			Rate:      int(t.Rate),
			Total:     int(t.Total),
			CreatedAt: fromMillis(t.CreatedAt),
		})
	}

	earnings := s.EarningsHistory
	if len(earnings) > domain.MaxEarningsHistory {
		earnings = earnings[len(earnings)-domain.MaxEarningsHistory:]
	}
	for _, e := range earnings {
		w.EarningsHistory = append(w.EarningsHistory, domain.EarningsPoint{Coins: int(e.Coins), Time: fromMillis(e.Time)})
	}
	return w
}

func units(pool UnitPool) []domain.Unit {
	out := make([]domain.Unit, 0, len(pool))
	for _, rec := range pool {
		out = append(out, domain.Unit{
			Fuel:         resource(rec.Fuel, domain.MaxFuel),
			Integrity:    resource(rec.Integrity, domain.MaxIntegrity),
			LastActionAt: optTime(rec.LastActionTime),
		}.Clamped())
	}
	return out
}

func resource(v *float64, fallback int) int {
	if v == nil || math.IsNaN(*v) {
		return fallback
	}
	return int(math.Round(*v))
}
