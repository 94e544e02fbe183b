package tier

// Progress bounds
const (
	MinProgressPercent = 0.0
	MaxProgressPercent = 100.0
)

// Built-in tier ids
const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

// Loader error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read tier config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse tier config: %w"
	ErrMsgConfigNil            = "config is nil"
	ErrMsgNoTiersDefined       = "no tiers defined"
)
