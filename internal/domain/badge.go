package domain

// StatType names the statistic a badge condition is evaluated against
type StatType string

const (
	StatWashCount          StatType = "wash_count"
	StatCurrentStreak      StatType = "current_streak"
	StatLongestStreak      StatType = "longest_streak"
	StatEarlyMorningWashes StatType = "early_morning_washes"
	StatWeekendWashes      StatType = "weekend_washes"
	StatEcoWashes          StatType = "eco_washes"
)

// Valid reports whether t is one of the known stat types
func (t StatType) Valid() bool {
	switch t {
	case StatWashCount, StatCurrentStreak, StatLongestStreak,
		StatEarlyMorningWashes, StatWeekendWashes, StatEcoWashes:
		return true
	default:
		return false
	}
}

// Operator is a comparison applied between a statistic and a badge threshold
type Operator string

const (
	OpGreaterOrEqual Operator = ">="
	OpGreater        Operator = ">"
	OpEqual          Operator = "=="
	OpLessOrEqual    Operator = "<="
	OpLess           Operator = "<"
)

// Valid reports whether o is one of the known operators
func (o Operator) Valid() bool {
	switch o {
	case OpGreaterOrEqual, OpGreater, OpEqual, OpLessOrEqual, OpLess:
		return true
	default:
		return false
	}
}

// BadgeCondition is a single threshold rule over a user statistic
type BadgeCondition struct {
	Type     StatType `json:"type"`
	Operator Operator `json:"operator"`
	Value    float64  `json:"value"`
}

// UserStats is the bag of counters badge conditions are evaluated against
type UserStats struct {
	TotalWashes        int `json:"totalWashes" validate:"gte=0"`
	CurrentStreak      int `json:"currentStreak" validate:"gte=0"`
	LongestStreak      int `json:"longestStreak" validate:"gte=0"`
	EarlyMorningWashes int `json:"earlyMorningWashes" validate:"gte=0"`
	WeekendWashes      int `json:"weekendWashes" validate:"gte=0"`
	EcoWashes          int `json:"ecoWashes" validate:"gte=0"`
}
