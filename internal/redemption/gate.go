// Package redemption decides whether a member may redeem a catalog reward.
package redemption

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/WashRewards_Go/internal/domain"
	"github.com/osse101/WashRewards_Go/internal/tier"
)

// User-facing denial reasons
const (
	ReasonInsufficientPoints = "You need %d more points to redeem this reward"
	ReasonTierTooLow         = "This reward requires %s tier or higher"
	ReasonOutOfStock         = "This reward is out of stock"
	ReasonRedemptionLimit    = "You've reached the redemption limit for this reward"
)

// CanRedeem runs the redemption checks in order (points, tier, stock, per-user cap)
// and reports only the first failure.
// A minimum tier that is not in the table, or a member tier that is not in the table, denies the redemption.
func CanRedeem(table *tier.Table, reward domain.Reward, profile domain.LoyaltyProfile) domain.RedemptionDecision {
	p := message.NewPrinter(language.English)

	if profile.CurrentPoints < reward.PointsCost {
		return deny(domain.DenialInsufficientPoints, p.Sprintf(ReasonInsufficientPoints, reward.PointsCost-profile.CurrentPoints))
	}

	if reward.MinTier != "" && !meetsTier(table, profile.Tier, reward.MinTier) {
		name := reward.MinTier
		if required, ok := table.Lookup(reward.MinTier); ok {
			name = required.Name
		}
		return deny(domain.DenialTierTooLow, p.Sprintf(ReasonTierTooLow, name))
	}

	if reward.Stock != nil && *reward.Stock <= 0 {
		return deny(domain.DenialOutOfStock, ReasonOutOfStock)
	}

	if reward.MaxRedemptionsPerUser != nil && profile.RedemptionCount >= *reward.MaxRedemptionsPerUser {
		return deny(domain.DenialRedemptionLimit, ReasonRedemptionLimit)
	}

	return domain.RedemptionDecision{CanRedeem: true}
}

func meetsTier(table *tier.Table, userTier, requiredTier string) bool {
	requiredRank, ok := table.Rank(requiredTier)
	if !ok {
		return false
	}
	userRank, ok := table.Rank(userTier)
	if !ok {
		return false
	}
	return userRank >= requiredRank
}

func deny(code domain.DenialCode, reason string) domain.RedemptionDecision {
	return domain.RedemptionDecision{CanRedeem: false, Reason: reason, Code: code}
}
