package growth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleFarm_Go/internal/domain"
)

var (
	t0    = time.UnixMilli(1_700_000_000_000).UTC()
	wheat = domain.CropType{ID: "wheat", GrowthSeconds: 40, HarvestSeconds: 4}
)

func at(seconds float64) time.Time {
	return t0.Add(time.Duration(seconds * float64(time.Second)))
}

func TestDerive_Empty(t *testing.T) {
	s := Derive(nil, wheat, t0)
	assert.True(t, s.Empty)
	assert.Equal(t, PhaseEmpty, s.Phase)
}

func TestEffectiveElapsed(t *testing.T) {
	g := wheat.GrowthDuration()

	tests := []struct {
		name string
		p    domain.Planting
		now  time.Time
		want time.Duration
	}{
		{"just planted", domain.Planting{PlantedAt: t0}, t0, 0},
		{"first quarter", domain.Planting{PlantedAt: t0}, at(5), 5 * time.Second},
		{"capped without fertilizer", domain.Planting{PlantedAt: t0}, at(1000), 10 * time.Second},
		{"clock skew", domain.Planting{PlantedAt: t0}, at(-30), 0},
		{
			"late fertilizer restarts the quarter clock",
			domain.Planting{PlantedAt: t0, FertilizedAt: domain.TimePtr(at(100))},
			at(103),
			13 * time.Second,
		},
		{
			"weeded",
			domain.Planting{PlantedAt: t0, FertilizedAt: domain.TimePtr(at(10)), WeededAt: domain.TimePtr(at(20))},
			at(25),
			25 * time.Second,
		},
		{
			"fully cared and capped",
			domain.Planting{
				PlantedAt:    t0,
				FertilizedAt: domain.TimePtr(at(10)),
				WeededAt:     domain.TimePtr(at(20)),
				WateredAt:    domain.TimePtr(at(30)),
			},
			at(500),
			40 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			assert.Equal(t, tt.want, EffectiveElapsed(&p, g, tt.now))
		})
	}
}

func TestDerive_NeedsFlags(t *testing.T) {
	p := &domain.Planting{SeedID: "wheat", PlantedAt: t0}

	s := Derive(p, wheat, at(9.999))
	assert.False(t, s.NeedsFertilizing, "never before threshold")
	assert.Equal(t, 31, s.RemainingSeconds)

	s = Derive(p, wheat, at(10))
	assert.True(t, s.NeedsFertilizing)
	assert.False(t, s.NeedsWeeding)
	assert.Equal(t, 0.25, s.Progress)
	assert.Equal(t, 30, s.RemainingSeconds)

	p.FertilizedAt = domain.TimePtr(at(10))
	for _, sec := range []float64{10, 15, 20, 100, 1000} {
		assert.False(t, Derive(p, wheat, at(sec)).NeedsFertilizing, "false forever once fertilized")
	}
	assert.True(t, Derive(p, wheat, at(20)).NeedsWeeding)

	p.WeededAt = domain.TimePtr(at(20))
	assert.False(t, Derive(p, wheat, at(29)).NeedsWatering)
	assert.True(t, Derive(p, wheat, at(30)).NeedsWatering)

	p.WateredAt = domain.TimePtr(at(30))
	s = Derive(p, wheat, at(35))
	assert.False(t, s.NeedsFertilizing || s.NeedsWeeding || s.NeedsWatering)
}

func TestProgress_Monotonic(t *testing.T) {
	p := &domain.Planting{
		PlantedAt:    t0,
		FertilizedAt: domain.TimePtr(at(12)),
		WeededAt:     domain.TimePtr(at(30)),
		WateredAt:    domain.TimePtr(at(41)),
	}

	prev := -1.0
	for ms := int64(-5_000); ms <= 120_000; ms += 250 {
		got := Progress(p, wheat.GrowthDuration(), t0.Add(time.Duration(ms)*time.Millisecond))
		require.GreaterOrEqual(t, got, prev, "progress decreased at %dms", ms)
		require.LessOrEqual(t, got, 1.0)
		prev = got
	}
	assert.Equal(t, 1.0, prev)
}

func TestDerive_HarvestLifecycle(t *testing.T) {
	p := &domain.Planting{
		SeedID:       "wheat",
		PlantedAt:    t0,
		FertilizedAt: domain.TimePtr(at(10)),
		WeededAt:     domain.TimePtr(at(20)),
		WateredAt:    domain.TimePtr(at(30)),
	}

	s := Derive(p, wheat, at(39))
	assert.Equal(t, PhaseGrowing, s.Phase)
	assert.Equal(t, 1, s.RemainingSeconds)

	s = Derive(p, wheat, at(41))
	assert.Equal(t, PhaseReady, s.Phase)
	assert.True(t, s.Ready)
	assert.Equal(t, 0, s.RemainingSeconds)
	assert.False(t, s.Collecting)

	p.CollectingStartedAt = domain.TimePtr(at(41))
	s = Derive(p, wheat, at(42.5))
	assert.Equal(t, PhaseCollecting, s.Phase)
	assert.InDelta(t, 0.375, s.CollectionProgress, 1e-9)
	assert.Equal(t, 3, s.CollectionRemainingSeconds)
	assert.False(t, s.CollectionComplete)

	s = Derive(p, wheat, at(45))
	assert.Equal(t, PhaseCollectionComplete, s.Phase)
	assert.True(t, s.CollectionComplete)
	assert.Equal(t, 1.0, s.CollectionProgress)
}

func TestCollectionStart(t *testing.T) {
	p := &domain.Planting{PlantedAt: t0}
	assert.Equal(t, at(40), CollectionStart(p, wheat))
	assert.False(t, CollectionDone(p, wheat, at(43)))
	assert.True(t, CollectionDone(p, wheat, at(44)))

	p.CollectingStartedAt = domain.TimePtr(at(100))
	assert.Equal(t, at(100), CollectionStart(p, wheat))
	assert.False(t, CollectionDone(p, wheat, at(103)))
}

func TestDerive_DefaultHarvestDuration(t *testing.T) {
	crop := domain.CropType{ID: "sunflower", GrowthSeconds: 4}
	p := &domain.Planting{
		PlantedAt:           t0,
		FertilizedAt:        domain.TimePtr(at(1)),
		WeededAt:            domain.TimePtr(at(2)),
		WateredAt:           domain.TimePtr(at(3)),
		CollectingStartedAt: domain.TimePtr(at(4)),
	}
	assert.Equal(t, PhaseCollecting, Derive(p, crop, at(7.9)).Phase)
	assert.Equal(t, PhaseCollectionComplete, Derive(p, crop, at(8)).Phase)
}
