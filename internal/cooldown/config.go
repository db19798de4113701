package cooldown

import (
	"time"

	"github.com/osse101/IdleFarm_Go/internal/domain"
)

// Config maps machinery kinds to their cooldown durations.
type Config struct {
	TickPeriod time.Duration

	// Cooldowns maps kind ids to their durations.
	// If not specified, DefaultCooldownDuration is used
	Cooldowns map[string]time.Duration
}

// NewConfig derives cooldowns as tickInterval x tickPeriod for every machinery type.
func NewConfig(machinery []domain.MachineryType, tickPeriod time.Duration) Config {
	if tickPeriod <= 0 {
		tickPeriod = DefaultTickPeriod
	}
	cfg := Config{
		TickPeriod: tickPeriod,
		Cooldowns:  make(map[string]time.Duration, len(machinery)),
	}
	for _, m := range machinery {
		cfg.Cooldowns[m.ID] = time.Duration(m.TickInterval) * tickPeriod
	}
	return cfg
}

// GetCooldownDuration returns the cooldown duration for a kind
func (c *Config) GetCooldownDuration(kind string) time.Duration {
	if c.Cooldowns != nil {
		if duration, ok := c.Cooldowns[kind]; ok {
			return duration
		}
	}
	return DefaultCooldownDuration
}

// Smallest returns the shortest configured cooldown.
func (c *Config) Smallest() time.Duration {
	var smallest time.Duration
	for _, d := range c.Cooldowns {
		if smallest == 0 || d < smallest {
			smallest = d
		}
	}
	if smallest == 0 {
		return DefaultCooldownDuration
	}
	return smallest
}
