// Package growth derives a plot's lifecycle state from its planting and the
// current time. Everything here is pure.
package growth

import (
	"math"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/domain"
)

// Phase of a plot's lifecycle.
type Phase string

const (
	PhaseEmpty              Phase = "empty"
	PhaseGrowing            Phase = "growing"
	PhaseReady              Phase = "ready"
	PhaseCollecting         Phase = "collecting"
	PhaseCollectionComplete Phase = "collection_complete"
)

// Care thresholds on growth progress.
const (
	FertilizeThreshold = 0.25
	WeedThreshold      = 0.5
	WaterThreshold     = 0.75
)

// State is the derived, read-only view of one plot at one instant.
type State struct {
	Empty  bool   `json:"empty"`
	SeedID string `json:"seed_id,omitempty"`
	Phase  Phase  `json:"phase"`

	Progress         float64 `json:"progress"`
	Ready            bool    `json:"ready"`
	RemainingSeconds int     `json:"remaining_seconds"`

	NeedsFertilizing bool `json:"needs_fertilizing"`
	NeedsWeeding     bool `json:"needs_weeding"`
	NeedsWatering    bool `json:"needs_watering"`

	Collecting                 bool    `json:"collecting"`
	CollectionProgress         float64 `json:"collection_progress"`
	CollectionComplete         bool    `json:"collection_complete"`
	CollectionRemainingSeconds int     `json:"collection_remaining_seconds"`
}

// EffectiveElapsed is the gated growth time. Each quarter of the growth
// duration only accrues from the care timestamp that unlocks it, and is capped
// at one quarter.
func EffectiveElapsed(p *domain.Planting, growthDuration time.Duration, now time.Time) time.Duration {
	q := growthDuration / 4
	switch {
	case p.FertilizedAt == nil:
		return capped(now.Sub(p.PlantedAt), q)
	case p.WeededAt == nil:
		return q + capped(now.Sub(*p.FertilizedAt), q)
	case p.WateredAt == nil:
		return 2*q + capped(now.Sub(*p.WeededAt), q)
	default:
		return 3*q + capped(now.Sub(*p.WateredAt), q)
	}
}

func capped(d, limit time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > limit {
		return limit
	}
	return d
}

// Progress is effective elapsed over growth duration, in [0, 1].
func Progress(p *domain.Planting, growthDuration time.Duration, now time.Time) float64 {
	if growthDuration <= 0 {
		return 1
	}
	eff := EffectiveElapsed(p, growthDuration, now)
	return math.Min(1, float64(eff)/float64(growthDuration))
}

// IsReady reports whether growth has completed.
func IsReady(p *domain.Planting, crop domain.CropType, now time.Time) bool {
	return Progress(p, crop.GrowthDuration(), now) >= 1
}

// CollectionStart is the explicit collection start, or the implied one at
// plantedAt + growth duration.
func CollectionStart(p *domain.Planting, crop domain.CropType) time.Time {
	if p.CollectingStartedAt != nil {
		return *p.CollectingStartedAt
	}
	return p.PlantedAt.Add(crop.GrowthDuration())
}

// CollectionDone reports whether the collection window measured from
// CollectionStart has elapsed.
func CollectionDone(p *domain.Planting, crop domain.CropType, now time.Time) bool {
	return now.Sub(CollectionStart(p, crop)) >= crop.HarvestDuration()
}

// Derive computes the full plot state. p may be nil for an empty plot.
func Derive(p *domain.Planting, crop domain.CropType, now time.Time) State {
	if p == nil {
		return State{Empty: true, Phase: PhaseEmpty}
	}

	g := crop.GrowthDuration()
	eff := EffectiveElapsed(p, g, now)
	progress := Progress(p, g, now)
	ready := progress >= 1

	s := State{
		SeedID:   p.SeedID,
		Phase:    PhaseGrowing,
		Progress: progress,
		Ready:    ready,

		NeedsFertilizing: progress >= FertilizeThreshold && p.FertilizedAt == nil,
		NeedsWeeding:     progress >= WeedThreshold && p.WeededAt == nil,
		NeedsWatering:    progress >= WaterThreshold && p.WateredAt == nil,
	}
	if !ready {
		s.RemainingSeconds = ceilSeconds(g - eff)
		return s
	}

	s.Phase = PhaseReady
	if p.CollectingStartedAt == nil {
		return s
	}

	h := crop.HarvestDuration()
	elapsed := capped(now.Sub(*p.CollectingStartedAt), h)
	s.Collecting = true
	s.CollectionProgress = math.Min(1, float64(elapsed)/float64(h))
	s.CollectionComplete = s.CollectionProgress >= 1
	if s.CollectionComplete {
		s.Phase = PhaseCollectionComplete
	} else {
		s.Phase = PhaseCollecting
		s.CollectionRemainingSeconds = ceilSeconds(h - elapsed)
	}
	return s
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}
