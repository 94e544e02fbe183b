package config

import "time"

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLogAddSource      = "LOG_ADD_SOURCE"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvTierConfigPath    = "TIER_CONFIG_PATH"
	EnvReferralCacheSize = "REFERRAL_CACHE_SIZE"
	EnvReferralCacheTTL  = "REFERRAL_CACHE_TTL"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"
	EnvMaxRequestBytes   = "MAX_REQUEST_BYTES"
	EnvShutdownTimeout   = "SHUTDOWN_TIMEOUT"
)

// Defaults
const (
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "wash-rewards"
	DefaultVersion           = "dev"
	DefaultReferralCacheSize = 1024
	DefaultReferralCacheTTL  = time.Hour
	DefaultRateLimitRequests = 1000
	DefaultRateLimitWindow   = 5 * time.Minute
	DefaultMaxRequestBytes   = 1 << 20
	DefaultShutdownTimeout   = 10 * time.Second
)

const (
	// ConfigPathTiers is the conventional tier table location, relative to the repo root
	ConfigPathTiers = "configs/tiers.json"
)
