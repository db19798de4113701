package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAt_Deterministic(t *testing.T) {
	ts := time.UnixMilli(1_700_000_123_456)
	assert.Equal(t, At(ts), At(ts))
	assert.Equal(t, At(ts), DefaultConfig().At(ts.UTC()))
}

func TestAt_Bucket(t *testing.T) {
	c := DefaultConfig()
	start := time.UnixMilli(45_000 * 1000)

	assert.Equal(t, c.At(start), c.At(start.Add(44_999*time.Millisecond)), "same bucket, same rate")
	assert.Equal(t, int64(1000), c.Bucket(start))
	assert.Equal(t, int64(1001), c.Bucket(start.Add(45*time.Second)))
}

func TestAt_Invariants(t *testing.T) {
	c := DefaultConfig()
	base := time.UnixMilli(1_600_000_000_000)

	for i := 0; i < 2000; i++ {
		r := c.At(base.Add(time.Duration(i) * c.Period))
		require.Greater(t, r.Buy, r.Sell, "bucket %d", i)
		require.GreaterOrEqual(t, r.Sell, 1)
		require.GreaterOrEqual(t, r.Market, 7.5)
		require.LessOrEqual(t, r.Market, 12.5)
	}
}

func TestAt_KnownValues(t *testing.T) {
	c := DefaultConfig()

	r := c.At(time.UnixMilli(0))
	assert.Equal(t, Rates{Buy: 11, Sell: 9, Market: 10}, r)

	// bucket 1: 10 * (1 + sin(0.7)*0.15 + sin(1.3)*0.1) = 11.93...
	r = c.At(time.UnixMilli(45_000))
	assert.Equal(t, 13, r.Buy)
	assert.Equal(t, 11, r.Sell)
	assert.Equal(t, 11.9, r.Market)
}

func TestAt_SellFloor(t *testing.T) {
	c := Config{Base: 1, Spread: 4, Period: time.Second}
	assert.Equal(t, 1, c.At(time.UnixMilli(0)).Sell)
}

func TestHistory(t *testing.T) {
	c := DefaultConfig()
	from := time.UnixMilli(0)

	points := c.History(from, from.Add(10*c.Period))
	require.Len(t, points, 11)
	assert.Equal(t, time.UnixMilli(45_000).UTC(), points[1].Time)
	assert.Equal(t, c.At(points[1].Time).Market, points[1].Market)

	assert.Nil(t, c.History(from.Add(time.Hour), from))
}

func TestBucket_NegativeTime(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, int64(-1), c.Bucket(time.UnixMilli(-1)))
	assert.Equal(t, int64(-1), c.Bucket(time.UnixMilli(-45_000)))
}
