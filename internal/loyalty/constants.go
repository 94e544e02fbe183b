package loyalty

// Log messages
const (
	LogMsgSummaryComputed    = "Loyalty summary computed"
	LogMsgWashEarnings       = "Wash earnings computed"
	LogMsgRedemptionChecked  = "Redemption checked"
	LogMsgBadgesEvaluated    = "Badges evaluated"
	LogMsgConditionEvaluated = "Badge condition evaluated"
	LogMsgOffersGenerated    = "Offers generated"
	LogMsgReferralCode       = "Referral code derived"
	LogMsgPublishFailed      = "Failed to publish loyalty event"
	LogMsgUnknownProfileTier = "Profile tier not in table, resolving from lifetime points"
)
