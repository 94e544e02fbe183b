package domain

// TierBenefits holds the perks granted to members of a tier
type TierBenefits struct {
	PointsMultiplier float64 `json:"pointsMultiplier" validate:"gte=1"`
	DiscountPercent  int     `json:"discountPercent" validate:"gte=0,lte=100"`
}

// TierConfig describes a single loyalty tier.
// The position of a tier in its table is its rank (index 0 = lowest).
type TierConfig struct {
	ID        string       `json:"id" validate:"required,max=64"`
	Name      string       `json:"name" validate:"required,max=64"`
	Threshold int64        `json:"threshold" validate:"gte=0"`
	Benefits  TierBenefits `json:"benefits"`
	Icon      string       `json:"icon,omitempty"`
}

// TierProgress is the derived progress of a member toward the next tier
type TierProgress struct {
	CurrentTier     TierConfig  `json:"currentTier"`
	NextTier        *TierConfig `json:"nextTier,omitempty"`
	ProgressPercent float64     `json:"progressPercent"`
	PointsNeeded    int64       `json:"pointsNeeded"`
}
