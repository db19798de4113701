package savegame

import (
	"testing"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/domain"
)

func benchWorld(cat *catalog.Catalog) *domain.WorldState {
	w := cat.NewWorld()
	w.FarmCols, w.FarmRows = 8, 8
	w.Grid = make([]*domain.Planting, 64)
	for i := range w.Grid {
		fertilized := at(i + 10)
		w.Grid[i] = &domain.Planting{SeedID: "carrot", PlantedAt: at(i), FertilizedAt: &fertilized}
	}
	for _, id := range cat.MachineryIDs() {
		for i := 0; i < 8; i++ {
			w.Field[id] = append(w.Field[id], domain.NewUnit())
			w.Garage[id] = append(w.Garage[id], domain.NewUnit())
		}
	}
	for i := 0; i < 100; i++ {
		w.TradeHistory = append(w.TradeHistory, domain.Trade{ID: "t", Type: "buy", Amount: 1, Rate: 10, Total: 10, CreatedAt: at(i)})
		w.EarningsHistory = append(w.EarningsHistory, domain.EarningsPoint{Coins: i, Time: at(i)})
	}
	return w
}

func BenchmarkCodec_Encode(b *testing.B) {
	cat := catalog.Default()
	c, err := NewCodec(cat)
	if err != nil {
		b.Fatal(err)
	}
	w := benchWorld(cat)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encode(w); err != nil {
			b.Fatal(err)
		}
	}
}

// Decode includes schema validation and reconciliation against the catalog.
func BenchmarkCodec_Decode(b *testing.B) {
	cat := catalog.Default()
	c, err := NewCodec(cat)
	if err != nil {
		b.Fatal(err)
	}
	data, err := c.Encode(benchWorld(cat))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}
