package badge

import (
	"github.com/osse101/WashRewards_Go/internal/domain"
)

// Definition is an unlockable badge and the condition that grants it
type Definition struct {
	Code        string                `json:"code"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Icon        string                `json:"icon,omitempty"`
	Condition   domain.BadgeCondition `json:"condition"`
}

// Unlocked returns the definitions whose condition holds for stats and that are not in earned.
// Order follows defs.
func Unlocked(defs []Definition, stats domain.UserStats, earned map[string]bool) []Definition {
	out := []Definition{}
	for _, def := range defs {
		if earned[def.Code] {
			continue
		}
		if Evaluate(def.Condition, stats) {
			out = append(out, def)
		}
	}
	return out
}

// DefaultCatalog returns the standard wash badges
func DefaultCatalog() []Definition {
	return []Definition{
		{Code: "first_wash", Name: "First Splash", Description: "Complete your first wash", Icon: "💧",
			Condition: domain.BadgeCondition{Type: domain.StatWashCount, Operator: domain.OpGreaterOrEqual, Value: 1}},
		{Code: "wash_10", Name: "Regular", Description: "Complete 10 washes", Icon: "🚗",
			Condition: domain.BadgeCondition{Type: domain.StatWashCount, Operator: domain.OpGreaterOrEqual, Value: 10}},
		{Code: "wash_50", Name: "Devotee", Description: "Complete 50 washes", Icon: "🏁",
			Condition: domain.BadgeCondition{Type: domain.StatWashCount, Operator: domain.OpGreaterOrEqual, Value: 50}},
		{Code: "wash_100", Name: "Centurion", Description: "Complete 100 washes", Icon: "💯",
			Condition: domain.BadgeCondition{Type: domain.StatWashCount, Operator: domain.OpGreaterOrEqual, Value: 100}},
		{Code: "streak_7", Name: "Week Warrior", Description: "Keep a 7-day streak", Icon: "🔥",
			Condition: domain.BadgeCondition{Type: domain.StatLongestStreak, Operator: domain.OpGreaterOrEqual, Value: 7}},
		{Code: "streak_30", Name: "Unstoppable", Description: "Keep a 30-day streak", Icon: "⚡",
			Condition: domain.BadgeCondition{Type: domain.StatLongestStreak, Operator: domain.OpGreaterOrEqual, Value: 30}},
		{Code: "early_bird", Name: "Early Bird", Description: "Wash before 8am five times", Icon: "🌅",
			Condition: domain.BadgeCondition{Type: domain.StatEarlyMorningWashes, Operator: domain.OpGreaterOrEqual, Value: 5}},
		{Code: "weekend_warrior", Name: "Weekend Warrior", Description: "Wash on ten weekends", Icon: "🎉",
			Condition: domain.BadgeCondition{Type: domain.StatWeekendWashes, Operator: domain.OpGreaterOrEqual, Value: 10}},
		{Code: "eco_hero", Name: "Eco Hero", Description: "Choose the eco wash ten times", Icon: "🌱",
			Condition: domain.BadgeCondition{Type: domain.StatEcoWashes, Operator: domain.OpGreaterOrEqual, Value: 10}},
	}
}
