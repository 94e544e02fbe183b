package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Tier table errors
	ErrMsgEmptyTierTable    = "tier table is empty"
	ErrMsgTierTableUnsorted = "tier thresholds must be strictly increasing"
	ErrMsgDuplicateTier     = "duplicate tier id"
	ErrMsgTierNotFound      = "tier not found"

	// Configuration errors
	ErrMsgInvalidConfig = "invalid configuration"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Tier table errors
	ErrEmptyTierTable    = errors.New(ErrMsgEmptyTierTable)
	ErrTierTableUnsorted = errors.New(ErrMsgTierTableUnsorted)
	ErrDuplicateTier     = errors.New(ErrMsgDuplicateTier)
	ErrTierNotFound      = errors.New(ErrMsgTierNotFound)

	// Configuration errors
	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
