package streak

import (
	"github.com/osse101/WashRewards_Go/internal/domain"
)

// milestones is ordered by Days
var milestones = []domain.StreakMilestone{
	{Days: 3, Points: 50, BadgeCode: "streak_3", Message: "3-day streak! You've earned 50 bonus points."},
	{Days: 7, Points: 150, BadgeCode: "streak_7", Message: "One full week of washes! 150 bonus points."},
	{Days: 14, Points: 300, BadgeCode: "streak_14", Message: "Two-week streak! 300 bonus points."},
	{Days: 30, Points: 1000, BadgeCode: "streak_30", Message: "30 days strong! 1,000 bonus points."},
	{Days: 60, Points: 2500, BadgeCode: "streak_60", Message: "60-day streak! 2,500 bonus points."},
	{Days: 100, Points: 5000, BadgeCode: "streak_100", Message: "100-day legend! 5,000 bonus points."},
}

// Milestones returns a copy of the fixed milestone table
func Milestones() []domain.StreakMilestone {
	out := make([]domain.StreakMilestone, len(milestones))
	copy(out, milestones)
	return out
}

// Milestone reports whether days is exactly a milestone length.
// It is a one-shot trigger: callers should check it once per streak-day transition.
func Milestone(days int) domain.MilestoneResult {
	for _, m := range milestones {
		if m.Days == days {
			return domain.MilestoneResult{
				IsMilestone: true,
				Points:      m.Points,
				BadgeCode:   m.BadgeCode,
				Message:     m.Message,
			}
		}
	}
	return domain.MilestoneResult{IsMilestone: false}
}

// NextMilestone returns the first milestone strictly after days
func NextMilestone(days int) (domain.StreakMilestone, bool) {
	for _, m := range milestones {
		if m.Days > days {
			return m, true
		}
	}
	return domain.StreakMilestone{}, false
}
