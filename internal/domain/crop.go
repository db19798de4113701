package domain

import "time"

// CropType is an immutable catalog entry for a plantable crop.
type CropType struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Emoji          string `json:"emoji" yaml:"emoji"`
	GrowthSeconds  int    `json:"growth_seconds" yaml:"growth_seconds"`
	HarvestSeconds int    `json:"harvest_seconds,omitempty" yaml:"harvest_seconds"`
	Cost           int    `json:"cost" yaml:"cost"`
	SellPrice      int    `json:"sell_price" yaml:"sell_price"`
}

// GrowthDuration is the total growth time g.
func (c CropType) GrowthDuration() time.Duration {
	return time.Duration(c.GrowthSeconds) * time.Second
}

// HarvestDuration is the collection window, defaulting when unset.
func (c CropType) HarvestDuration() time.Duration {
	if c.HarvestSeconds <= 0 {
		return DefaultHarvestDuration
	}
	return time.Duration(c.HarvestSeconds) * time.Second
}
