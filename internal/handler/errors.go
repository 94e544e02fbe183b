package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Loyalty operation error messages
	ErrMsgSummaryFailed      = "Failed to compute loyalty summary"
	ErrMsgWashEarningsFailed = "Failed to compute wash earnings"
	ErrMsgTierLookupFailed   = "Failed to look up tier"
)
