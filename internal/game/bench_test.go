package game

import (
	"context"
	"testing"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/event"
	"github.com/osse101/IdleFarm_Go/internal/market"
	"github.com/osse101/IdleFarm_Go/internal/savegame"
	"github.com/osse101/IdleFarm_Go/internal/store"
)

// fullFarm is a maxed 8x8 farm with every plot growing and four field units
// of each machinery kind.
func fullFarm(cat *catalog.Catalog) *domain.WorldState {
	w := cat.NewWorld()
	w.Coins = 1 << 40
	w.FarmCols, w.FarmRows = 8, 8
	w.Grid = make([]*domain.Planting, 64)
	for i := range w.Grid {
		w.Grid[i] = &domain.Planting{SeedID: "wheat", PlantedAt: t0.Add(-time.Duration(i) * time.Second)}
	}
	w.Warehouse["wheat"] = 1000
	for _, id := range cat.MachineryIDs() {
		for i := 0; i < 4; i++ {
			w.Field[id] = append(w.Field[id], domain.NewUnit())
		}
	}
	return w
}

func newBenchService(b *testing.B) (Service, *fakeClock) {
	b.Helper()
	cat := catalog.Default()
	codec, err := savegame.NewCodec(cat)
	if err != nil {
		b.Fatal(err)
	}
	saver := savegame.NewManager(codec, store.NewMemory(), "")
	if err := saver.Save(context.Background(), fullFarm(cat)); err != nil {
		b.Fatal(err)
	}

	clock := &fakeClock{now: t0}
	svc := NewService(cat, saver, event.NewMemoryBus(), nil, clock, market.DefaultConfig())
	if err := svc.Init(context.Background()); err != nil {
		b.Fatal(err)
	}
	return svc, clock
}

func BenchmarkTick_FullFarm(b *testing.B) {
	svc, clock := newBenchService(b)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clock.At(float64(i%120) + 1)
		if _, err := svc.Tick(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkState_FullFarm(b *testing.B) {
	svc, _ := newBenchService(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = svc.State()
	}
}

func BenchmarkBuySeeds_Parallel(b *testing.B) {
	svc, _ := newBenchService(b)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.BuySeeds(ctx, "wheat", 1); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
