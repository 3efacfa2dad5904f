package services

import "errors"

// Sentinel errors for the mood domain. Handlers translate these into the
// HTTP error taxonomy; anything else is a 500.
var (
	// ErrInvalidRange means the summary year/month is outside 1-9999 / 1-12.
	ErrInvalidRange = errors.New("invalid year or month")
	// ErrInvalidDateRange means a filter bound failed to parse as a date.
	ErrInvalidDateRange = errors.New("invalid date range")
	// ErrInvalidLink covers every unresolvable share token: unknown secret,
	// missing user, empty token. One error for all of them so callers cannot
	// probe which usernames exist.
	ErrInvalidLink = errors.New("invalid link")
	// ErrSharingDisabled means the link resolved but the owner turned
	// sharing off.
	ErrSharingDisabled = errors.New("sharing disabled")
	// ErrMissingInput means a required request field was absent.
	ErrMissingInput = errors.New("missing required input")
)
