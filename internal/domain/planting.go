package domain

import "time"

// Planting is the occupant of a non-empty plot. Care timestamps are set at most
// once and in order: fertilized, then weeded, then watered.
type Planting struct {
	SeedID              string     `json:"seed_id"`
	PlantedAt           time.Time  `json:"planted_at"`
	FertilizedAt        *time.Time `json:"fertilized_at,omitempty"`
	WeededAt            *time.Time `json:"weeded_at,omitempty"`
	WateredAt           *time.Time `json:"watered_at,omitempty"`
	CollectingStartedAt *time.Time `json:"collecting_started_at,omitempty"`
}

// Clone returns a deep copy.
func (p *Planting) Clone() *Planting {
	if p == nil {
		return nil
	}
	c := *p
	c.FertilizedAt = cloneTime(p.FertilizedAt)
	c.WeededAt = cloneTime(p.WeededAt)
	c.WateredAt = cloneTime(p.WateredAt)
	c.CollectingStartedAt = cloneTime(p.CollectingStartedAt)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// TimePtr returns a pointer to t.
func TimePtr(t time.Time) *time.Time {
	return &t
}
