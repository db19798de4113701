package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldState(t *testing.T) {
	w := NewWorldState([]string{"wheat", "corn"}, []string{KindSeeder})

	assert.Equal(t, StartingCoins, w.Coins)
	assert.Equal(t, 0, w.Crypto)
	assert.Len(t, w.Grid, 4)
	assert.Equal(t, map[string]int{"wheat": 0, "corn": 0}, w.Warehouse)
	assert.Equal(t, map[string]int{"wheat": 0, "corn": 0}, w.Barn)
	assert.Empty(t, w.Garage[KindSeeder])
	assert.Empty(t, w.Field[KindSeeder])
}

func TestWorldState_CloneIsDeep(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000).UTC()
	w := NewWorldState([]string{"wheat"}, []string{KindSeeder})
	w.Grid[0] = &Planting{SeedID: "wheat", PlantedAt: now, FertilizedAt: TimePtr(now)}
	w.Field[KindSeeder] = []Unit{{Fuel: 50, Integrity: 40, LastActionAt: TimePtr(now)}}

	c := w.Clone()
	require.Equal(t, w, c)

	c.Grid[0].SeedID = "corn"
	*c.Grid[0].FertilizedAt = now.Add(time.Hour)
	c.Warehouse["wheat"] = 9
	c.Field[KindSeeder][0].Fuel = 1
	*c.Field[KindSeeder][0].LastActionAt = now.Add(time.Hour)

	assert.Equal(t, "wheat", w.Grid[0].SeedID)
	assert.Equal(t, now, *w.Grid[0].FertilizedAt)
	assert.Equal(t, 0, w.Warehouse["wheat"])
	assert.Equal(t, 50, w.Field[KindSeeder][0].Fuel)
	assert.Equal(t, now, *w.Field[KindSeeder][0].LastActionAt)
}

func TestUnit(t *testing.T) {
	u := NewUnit()
	assert.True(t, u.Operational())
	assert.False(t, u.NeedsMaintenance())

	assert.False(t, Unit{Fuel: 0, Integrity: 10}.Operational())
	assert.False(t, Unit{Fuel: 10, Integrity: 0}.Operational())
	assert.True(t, Unit{Fuel: 99, Integrity: 100}.NeedsMaintenance())

	assert.Equal(t, Unit{Fuel: 0, Integrity: 100}, Unit{Fuel: -5, Integrity: 250}.Clamped())
}

func TestCropType_Durations(t *testing.T) {
	c := CropType{GrowthSeconds: 40}
	assert.Equal(t, 40*time.Second, c.GrowthDuration())
	assert.Equal(t, DefaultHarvestDuration, c.HarvestDuration())

	c.HarvestSeconds = 6
	assert.Equal(t, 6*time.Second, c.HarvestDuration())
}
