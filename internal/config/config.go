package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port         int    `validate:"min=1,max=65535"`
	LogLevel     string `validate:"oneof=debug info warn warning error"`
	LogFormat    string `validate:"oneof=json text"`
	LogAddSource bool
	Environment  string `validate:"required"`
	ServiceName  string `validate:"required"`
	Version      string

	// Empty means the built-in tier table
	TierConfigPath string

	ReferralCacheSize int           `validate:"min=0"`
	ReferralCacheTTL  time.Duration `validate:"min=0"`

	TrustedProxies    []string
	RateLimitRequests int           `validate:"min=1"`
	RateLimitWindow   time.Duration `validate:"gt=0"`
	MaxRequestBytes   int64         `validate:"min=1"`
	ShutdownTimeout   time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:         strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogAddSource:      getEnvAsBool(EnvLogAddSource, false),
		Environment:       getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:       getEnv(EnvServiceName, DefaultServiceName),
		Version:           getEnv(EnvVersion, DefaultVersion),
		TierConfigPath:    getEnv(EnvTierConfigPath, ""),
		ReferralCacheSize: getEnvAsInt(EnvReferralCacheSize, DefaultReferralCacheSize),
		ReferralCacheTTL:  getEnvAsDuration(EnvReferralCacheTTL, DefaultReferralCacheTTL),
		TrustedProxies:    getEnvAsList(EnvTrustedProxies),
		RateLimitRequests: getEnvAsInt(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvAsDuration(EnvRateLimitWindow, DefaultRateLimitWindow),
		MaxRequestBytes:   int64(getEnvAsInt(EnvMaxRequestBytes, DefaultMaxRequestBytes)),
		ShutdownTimeout:   getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// Validate checks parsed values against their allowed ranges
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
