package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/WashRewards_Go/internal/domain"
)

// SummaryRequest asks for every derived loyalty value of one profile
type SummaryRequest struct {
	UserID  string                `json:"userId,omitempty" validate:"max=128"`
	Profile domain.LoyaltyProfile `json:"profile"`
	// Now overrides the evaluation time, mainly for previews
	Now *time.Time `json:"now,omitempty"`
}

// WashRequest describes a completed wash transaction
type WashRequest struct {
	Amount           decimal.Decimal       `json:"amount" swaggertype:"string" example:"24.99"`
	IsFirstWashToday bool                  `json:"isFirstWashToday"`
	Profile          domain.LoyaltyProfile `json:"profile"`
}

// RedemptionRequest asks whether a profile may redeem a reward
type RedemptionRequest struct {
	Reward  domain.Reward         `json:"reward"`
	Profile domain.LoyaltyProfile `json:"profile"`
}

// BadgesRequest asks which catalog badges a member has newly unlocked
type BadgesRequest struct {
	Stats  domain.UserStats `json:"stats"`
	Earned []string         `json:"earned,omitempty" validate:"max=256,dive,max=64"`
}

// ConditionBody mirrors domain.BadgeCondition with request validation
type ConditionBody struct {
	Type     string  `json:"type" validate:"required,stattype"`
	Operator string  `json:"operator" validate:"required,operator"`
	Value    float64 `json:"value"`
}

// ConditionRequest evaluates a single badge condition
type ConditionRequest struct {
	Condition ConditionBody    `json:"condition"`
	Stats     domain.UserStats `json:"stats"`
}

// OffersRequest asks for personalized offers
type OffersRequest struct {
	Profile domain.LoyaltyProfile `json:"profile"`
	Now     *time.Time            `json:"now,omitempty"`
}

// TierPathParams validates the tier id path segment
type TierPathParams struct {
	ID string `validate:"required,max=64,tierid"`
}

// TiersResponse lists the configured tiers in rank order
type TiersResponse struct {
	Tiers []domain.TierConfig `json:"tiers"`
}

// BadgesResponse lists newly unlocked badges
type BadgesResponse struct {
	Unlocked []BadgeView `json:"unlocked"`
}

// BadgeView is the public shape of a badge definition
type BadgeView struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// ConditionResponse reports whether a condition holds
type ConditionResponse struct {
	Met bool `json:"met"`
}

// OffersResponse lists personalized offers
type OffersResponse struct {
	Offers []domain.Offer `json:"offers"`
}

// ReferralCodeResponse carries a derived referral code
type ReferralCodeResponse struct {
	UserID string `json:"userId"`
	Code   string `json:"code"`
}
