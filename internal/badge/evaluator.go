// Package badge evaluates achievement conditions against member statistics.
package badge

import (
	"math"

	"github.com/osse101/WashRewards_Go/internal/domain"
)

// Evaluate reports whether stats satisfy cond.
// It is total: an unknown stat type, unknown operator, or NaN threshold yields false.
func Evaluate(cond domain.BadgeCondition, stats domain.UserStats) bool {
	value, ok := statValue(cond.Type, stats)
	if !ok || math.IsNaN(cond.Value) {
		return false
	}
	return compare(cond.Operator, value, cond.Value)
}

func statValue(t domain.StatType, stats domain.UserStats) (float64, bool) {
	switch t {
	case domain.StatWashCount:
		return float64(stats.TotalWashes), true
	case domain.StatCurrentStreak:
		return float64(stats.CurrentStreak), true
	case domain.StatLongestStreak:
		return float64(stats.LongestStreak), true
	case domain.StatEarlyMorningWashes:
		return float64(stats.EarlyMorningWashes), true
	case domain.StatWeekendWashes:
		return float64(stats.WeekendWashes), true
	case domain.StatEcoWashes:
		return float64(stats.EcoWashes), true
	default:
		return 0, false
	}
}

func compare(op domain.Operator, actual, threshold float64) bool {
	switch op {
	case domain.OpGreaterOrEqual:
		return actual >= threshold
	case domain.OpGreater:
		return actual > threshold
	case domain.OpEqual:
		return actual == threshold
	case domain.OpLessOrEqual:
		return actual <= threshold
	case domain.OpLess:
		return actual < threshold
	default:
		return false
	}
}
