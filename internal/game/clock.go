package game

import "time"

// Clock supplies the current time. Times are UTC with millisecond precision so
// they survive a save round trip unchanged.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// RealClock returns the wall clock.
func RealClock() Clock {
	return realClock{}
}
