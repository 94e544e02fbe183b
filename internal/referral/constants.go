package referral

const (
	// CodePrefix is prepended to every referral code
	CodePrefix = "PW"

	// CodeBodyLength caps the number of base-36 digits after the prefix
	CodeBodyLength = 6

	hashMultiplier = 31
	codeBase       = 36
)

// Referral reward amounts
const (
	ReferrerPoints = 500
	RefereePoints  = 250

	ReferrerMessage = "You earned 500 points for referring a friend!"
	RefereeMessage  = "Welcome! You earned 250 bonus points for joining with a referral code."
)

// Cache defaults
const (
	DefaultCacheSize = 1024
)
