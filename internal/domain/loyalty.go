package domain

import "time"

// LoyaltyProfile is the caller-owned activity record for a member.
// Engine functions only read it.
type LoyaltyProfile struct {
	LifetimePoints  int64      `json:"lifetimePoints" validate:"gte=0"`
	CurrentPoints   int64      `json:"currentPoints" validate:"gte=0"`
	Tier            string     `json:"tier,omitempty"`
	XP              int64      `json:"xp" validate:"gte=0,lte=1000000000000"`
	StreakDays      int        `json:"streakDays" validate:"gte=0"`
	LongestStreak   int        `json:"longestStreak" validate:"gte=0"`
	TotalWashes     int        `json:"totalWashes" validate:"gte=0"`
	LastWashDate    *time.Time `json:"lastWashDate,omitempty"`
	PreferredTimes  []string   `json:"preferredTimes,omitempty"`
	RedemptionCount int        `json:"redemptionCount" validate:"gte=0"`
}

// LevelProgress describes where an XP total sits within its level band
type LevelProgress struct {
	Level            int     `json:"level"`
	XPInCurrentLevel int64   `json:"xpInCurrentLevel"`
	XPNeededForNext  int64   `json:"xpNeededForNext"`
	ProgressPercent  float64 `json:"progressPercent"`
}

// StreakMilestone is a one-shot reward for reaching an exact streak length
type StreakMilestone struct {
	Days      int    `json:"days"`
	Points    int64  `json:"points"`
	BadgeCode string `json:"badgeCode"`
	Message   string `json:"message"`
}

// MilestoneResult reports whether a streak length triggers a milestone.
// Points, BadgeCode and Message are only set when IsMilestone is true.
type MilestoneResult struct {
	IsMilestone bool   `json:"isMilestone"`
	Points      int64  `json:"points,omitempty"`
	BadgeCode   string `json:"badgeCode,omitempty"`
	Message     string `json:"message,omitempty"`
}

// ReferralRewards are the fixed amounts granted on a successful referral
type ReferralRewards struct {
	ReferrerPoints  int64  `json:"referrerPoints"`
	RefereePoints   int64  `json:"refereePoints"`
	ReferrerMessage string `json:"referrerMessage"`
	RefereeMessage  string `json:"refereeMessage"`
}

// WashEarnings is what a single wash earns a member
type WashEarnings struct {
	TierID      string  `json:"tierId"`
	BasePoints  int64   `json:"basePoints"`
	StreakBonus float64 `json:"streakBonus"`
	TotalPoints int64   `json:"totalPoints"`
	XP          int     `json:"xp"`
}

// LoyaltySummary aggregates every derived value for one profile
type LoyaltySummary struct {
	Tier            TierConfig       `json:"tier"`
	TierProgress    TierProgress     `json:"tierProgress"`
	Level           LevelProgress    `json:"level"`
	StreakBonus     float64          `json:"streakBonus"`
	StreakMilestone MilestoneResult  `json:"streakMilestone"`
	NextMilestone   *StreakMilestone `json:"nextMilestone,omitempty"`
	Offers          []Offer          `json:"offers"`
	ReferralCode    string           `json:"referralCode,omitempty"`
}
