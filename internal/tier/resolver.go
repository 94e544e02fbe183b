package tier

import (
	"github.com/osse101/WashRewards_Go/internal/domain"
)

// Resolve returns the highest tier whose threshold is <= lifetimePoints.
// The lowest tier is returned when no tier qualifies.
func (t *Table) Resolve(lifetimePoints int64) domain.TierConfig {
	for i := len(t.tiers) - 1; i >= 0; i-- {
		if t.tiers[i].Threshold <= lifetimePoints {
			return t.tiers[i]
		}
	}
	return t.tiers[0]
}

// Next returns the tier ranked directly above the given tier.
// It returns false if id is the top tier or is not in the table.
func (t *Table) Next(id string) (domain.TierConfig, bool) {
	i, ok := t.index[id]
	if !ok || i+1 >= len(t.tiers) {
		return domain.TierConfig{}, false
	}
	return t.tiers[i+1], true
}

// Progress computes how far lifetimePoints has advanced from the current tier toward the next one
func (t *Table) Progress(lifetimePoints int64) domain.TierProgress {
	current := t.Resolve(lifetimePoints)

	next, ok := t.Next(current.ID)
	if !ok {
		return domain.TierProgress{
			CurrentTier:     current,
			ProgressPercent: MaxProgressPercent,
			PointsNeeded:    0,
		}
	}

	span := float64(next.Threshold - current.Threshold)
	percent := float64(lifetimePoints-current.Threshold) / span * 100

	return domain.TierProgress{
		CurrentTier:     current,
		NextTier:        &next,
		ProgressPercent: clampPercent(percent),
		PointsNeeded:    next.Threshold - lifetimePoints,
	}
}

func clampPercent(p float64) float64 {
	if p < MinProgressPercent {
		return MinProgressPercent
	}
	if p > MaxProgressPercent {
		return MaxProgressPercent
	}
	return p
}
