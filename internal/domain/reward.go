package domain

// Reward is a catalog entry that members can redeem points for.
// A nil Stock means unlimited; a nil MaxRedemptionsPerUser means uncapped.
type Reward struct {
	ID                    string `json:"id,omitempty"`
	Title                 string `json:"title,omitempty"`
	PointsCost            int64  `json:"pointsCost" validate:"gte=0"`
	MinTier               string `json:"minTier,omitempty"`
	Stock                 *int   `json:"stock,omitempty"`
	MaxRedemptionsPerUser *int   `json:"maxRedemptionsPerUser,omitempty"`
}

// DenialCode identifies which redemption check failed
type DenialCode string

const (
	DenialInsufficientPoints DenialCode = "insufficient_points"
	DenialTierTooLow         DenialCode = "tier_too_low"
	DenialOutOfStock         DenialCode = "out_of_stock"
	DenialRedemptionLimit    DenialCode = "redemption_limit"
)

// RedemptionDecision is the outcome of a redemption eligibility check.
// Only the first failing check is reported.
type RedemptionDecision struct {
	CanRedeem bool       `json:"canRedeem"`
	Reason    string     `json:"reason,omitempty"`
	Code      DenialCode `json:"code,omitempty"`
}
