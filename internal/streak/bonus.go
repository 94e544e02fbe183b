// Package streak turns consecutive-day wash streaks into point multipliers and milestone rewards.
package streak

// Streak bonus bands. Each band starts at its lower bound (inclusive).
const (
	ShortStreakDays = 3
	WeekStreakDays  = 7
	TwoWeekDays     = 14
	MonthStreakDays = 30

	NoBonus          = 1.0
	ShortStreakBonus = 1.1
	WeekStreakBonus  = 1.25
	TwoWeekBonus     = 1.5
	MonthStreakBonus = 2.0
)

// Bonus returns the points multiplier for a streak of the given length
func Bonus(days int) float64 {
	switch {
	case days >= MonthStreakDays:
		return MonthStreakBonus
	case days >= TwoWeekDays:
		return TwoWeekBonus
	case days >= WeekStreakDays:
		return WeekStreakBonus
	case days >= ShortStreakDays:
		return ShortStreakBonus
	default:
		return NoBonus
	}
}
