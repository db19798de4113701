// Package market computes the crypto exchange rates. Rates are a pure function
// of wall-clock time, so every caller sees the same price for the same bucket.
package market

import (
	"math"
	"time"
)

// Ticker is the display symbol of the in-game crypto asset.
const Ticker = "CRX"

const (
	DefaultBase   = 10.0
	DefaultSpread = 2.0
	DefaultPeriod = 45 * time.Second
)

// Config parameterizes the rate curve.
type Config struct {
	Base   float64
	Spread float64
	Period time.Duration
}

// DefaultConfig returns the standard curve.
func DefaultConfig() Config {
	return Config{Base: DefaultBase, Spread: DefaultSpread, Period: DefaultPeriod}
}

// Rates is the quote for one time bucket.
type Rates struct {
	Buy    int     `json:"buy"`
	Sell   int     `json:"sell"`
	Market float64 `json:"market"`
}

// Point is one bucket of rate history.
type Point struct {
	Time   time.Time `json:"time"`
	Market float64   `json:"market"`
}

// Bucket returns the index of the time bucket containing t.
func (c Config) Bucket(t time.Time) int64 {
	period := c.Period.Milliseconds()
	if period <= 0 {
		period = DefaultPeriod.Milliseconds()
	}
	ms := t.UnixMilli()
	b := ms / period
	if ms < 0 && ms%period != 0 {
		b--
	}
	return b
}

// MarketRate is the unrounded rate for a bucket, in [0.75, 1.25] x base.
func (c Config) MarketRate(bucket int64) float64 {
	x := float64(bucket)
	wave := math.Sin(x*0.7)*0.15 + math.Sin(x*1.3)*0.1
	return c.Base * (1 + wave)
}

// At returns the quote at t.
func (c Config) At(t time.Time) Rates {
	rate := c.MarketRate(c.Bucket(t))
	half := c.Spread / 2
	return Rates{
		Buy:    int(math.Round(rate + half)),
		Sell:   int(math.Max(1, math.Round(rate-half))),
		Market: math.Round(rate*10) / 10,
	}
}

// History returns one point per bucket from the bucket containing from up to
// and including the bucket containing to.
func (c Config) History(from, to time.Time) []Point {
	first, last := c.Bucket(from), c.Bucket(to)
	if last < first {
		return nil
	}
	period := c.Period
	if period <= 0 {
		period = DefaultPeriod
	}
	points := make([]Point, 0, last-first+1)
	for b := first; b <= last; b++ {
		points = append(points, Point{
			Time:   time.UnixMilli(b * period.Milliseconds()).UTC(),
			Market: math.Round(c.MarketRate(b)*10) / 10,
		})
	}
	return points
}

// At returns the quote at t on the default curve.
func At(t time.Time) Rates {
	return DefaultConfig().At(t)
}
