package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the .env layout version this build understands
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv rejects a .env written for a different schema version.
// An unset ENV_SCHEMA_VERSION is accepted since every variable has a default.
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return nil
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	return nil
}

// Warnings returns non-fatal observations about the loaded configuration
func (c *Config) Warnings() []string {
	var warnings []string

	if c.TierConfigPath == "" {
		warnings = append(warnings, "TIER_CONFIG_PATH is not set - using built-in tier table")
	}

	if c.Environment == "prod" && c.LogFormat != "json" {
		warnings = append(warnings, "LOG_FORMAT is not json in prod - log shippers may not parse records")
	}

	if c.ReferralCacheSize == 0 {
		warnings = append(warnings, "REFERRAL_CACHE_SIZE is 0 - referral codes will not be cached")
	}

	return warnings
}
