package offer

import "time"

// Offer ids
const (
	IDTimeBased   = "offer_time_based"
	IDFrequency   = "offer_frequency"
	IDTierUpgrade = "offer_tier_upgrade"
	IDComeback    = "offer_comeback"
)

// Rule parameters
const (
	TimeBasedDiscount = 15

	FrequencyMinWashes   = 10
	FrequencyMaxWashes   = 20 // exclusive
	FrequencyWashTarget  = 5
	FrequencyBonusPoints = 500

	// EstimatedPointsPerWash approximates lifetime points from wash count for the tier-upgrade rule
	EstimatedPointsPerWash = 50
	TierUpgradeWindow      = 500

	ComebackInactiveDays = 30
	ComebackDiscount     = 25
	ComebackBonusPoints  = 300
)

// Expiry labels
const (
	ExpiresInWeek     = "7 days"
	ExpiresInTwoWeeks = "14 days"
	ExpiresInMonth    = "30 days"
)

const day = 24 * time.Hour
