package domain

import "time"

// Machinery kind identifiers, in automation order.
const (
	KindSeeder             = "seeder"
	KindCultivator         = "cultivator"
	KindFertilizerSpreader = "fertilizer_spreader"
	KindIrrigator          = "irrigator"
	KindHarvester          = "harvester"
	KindTruck              = "truck"
)

// MachineryType is an immutable catalog entry for a machinery kind.
type MachineryType struct {
	ID                 string `json:"id" yaml:"id"`
	Name               string `json:"name" yaml:"name"`
	Emoji              string `json:"emoji" yaml:"emoji"`
	Description        string `json:"description" yaml:"description"`
	Cost               int    `json:"cost" yaml:"cost"`
	FuelPerAction      int    `json:"fuel_per_action" yaml:"fuel_per_action"`
	IntegrityPerAction int    `json:"integrity_per_action" yaml:"integrity_per_action"`
	TickInterval       int    `json:"tick_interval" yaml:"tick_interval"`
}

// Unit is one owned machine. It lives in exactly one of a kind's garage or field pools.
type Unit struct {
	Fuel         int        `json:"fuel"`
	Integrity    int        `json:"integrity"`
	LastActionAt *time.Time `json:"last_action_at,omitempty"`
}

// NewUnit returns a freshly bought unit with full resources.
func NewUnit() Unit {
	return Unit{Fuel: MaxFuel, Integrity: MaxIntegrity}
}

// Operational reports whether the unit has both fuel and integrity left.
func (u Unit) Operational() bool {
	return u.Fuel > 0 && u.Integrity > 0
}

// NeedsMaintenance reports whether either resource is below its cap.
func (u Unit) NeedsMaintenance() bool {
	return u.Fuel < MaxFuel || u.Integrity < MaxIntegrity
}

// Clamped returns u with fuel and integrity forced into [0, max].
func (u Unit) Clamped() Unit {
	u.Fuel = clamp(u.Fuel, 0, MaxFuel)
	u.Integrity = clamp(u.Integrity, 0, MaxIntegrity)
	return u
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
