// Package points converts wash transactions into loyalty points and XP.
package points

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/WashRewards_Go/internal/domain"
	"github.com/osse101/WashRewards_Go/internal/tier"
)

var (
	largeWashAmount   = decimal.NewFromInt(LargeWashAmount)
	premiumWashAmount = decimal.NewFromInt(PremiumWashAmount)
)

// WashPoints returns floor(floor(amount) * multiplier) for the given tier.
// A nil tier earns nothing. Negative amounts earn nothing.
func WashPoints(amount decimal.Decimal, t *domain.TierConfig) int64 {
	if t == nil || !amount.IsPositive() {
		return 0
	}

	whole := amount.Floor()
	multiplier := decimal.NewFromFloat(t.Benefits.PointsMultiplier)
	return whole.Mul(multiplier).Floor().IntPart()
}

// WashPointsForTier looks up tierID in the table and computes WashPoints.
// An unknown tier id earns 0 points.
func WashPointsForTier(table *tier.Table, tierID string, amount decimal.Decimal) int64 {
	cfg, ok := table.Lookup(tierID)
	if !ok {
		return 0
	}
	return WashPoints(amount, &cfg)
}

// WashXP returns the XP earned for a wash. All bonuses stack.
func WashXP(amount decimal.Decimal, isFirstWashToday bool) int {
	xp := BaseWashXP
	if amount.GreaterThanOrEqual(largeWashAmount) {
		xp += LargeWashXPBonus
	}
	if amount.GreaterThanOrEqual(premiumWashAmount) {
		xp += PremiumWashXPBonus
	}
	if isFirstWashToday {
		xp += FirstWashTodayXPBonus
	}
	return xp
}

// StreakAdjustedPoints applies a streak multiplier to already-earned points, rounding down
func StreakAdjustedPoints(base int64, streakMultiplier float64) int64 {
	if base <= 0 {
		return 0
	}
	if streakMultiplier < 1 {
		streakMultiplier = 1
	}
	return decimal.NewFromInt(base).Mul(decimal.NewFromFloat(streakMultiplier)).Floor().IntPart()
}
