// Package cooldown holds the cooldown arithmetic used to decide when a
// machinery unit may act again.
package cooldown

import "time"

// Check reports whether an action last performed at lastUsed is still cooling
// down at now, and how long remains. A nil lastUsed is never on cooldown.
func Check(now time.Time, lastUsed *time.Time, duration time.Duration) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}
	elapsed := now.Sub(*lastUsed)
	if elapsed >= duration {
		return false, 0
	}
	return true, duration - elapsed
}

// Ready is the negation of Check's first result.
func Ready(now time.Time, lastUsed *time.Time, duration time.Duration) bool {
	onCooldown, _ := Check(now, lastUsed, duration)
	return !onCooldown
}
