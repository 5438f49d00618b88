package model

import "errors"

// Error taxonomy shared by the adapters and the application layer.
// Adapters wrap these sentinels with fmt.Errorf("...: %w", errors.Join(sentinel, cause))
// so callers can branch with errors.Is while keeping the underlying cause.
var (
	// ErrInvalidRange indicates a malformed range specification or reversed
	// bounds. Raised at classifier construction time, before any PR is processed.
	ErrInvalidRange = errors.New("invalid size range")

	// ErrMalformedInput indicates diff statistics that do not yield two
	// non-negative integers. Fatal for the affected PR only; no labels are touched.
	ErrMalformedInput = errors.New("malformed diff statistics")

	// ErrDiffUnavailable indicates the PR could not be diffed at all
	// (not found, fetch failure).
	ErrDiffUnavailable = errors.New("diff unavailable")

	// ErrExternalService indicates a failure contacting GitHub or the label
	// store (auth, network, not-found).
	ErrExternalService = errors.New("external service failure")
)
