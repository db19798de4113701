package cooldown

import "time"

const (
	// DefaultTickPeriod is the duration of one automation tick.
	DefaultTickPeriod = 500 * time.Millisecond

	// DefaultCooldownDuration is the fallback for kinds without a configured interval.
	DefaultCooldownDuration = 4 * DefaultTickPeriod
)
