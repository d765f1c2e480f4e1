package domain

import "errors"

// Sentinel errors for cross-provider error classification.
// Providers wrap these so the CLI can handle error categories
// uniformly without importing provider-specific SDKs.
//
//	return fmt.Errorf("failed to fetch channel: %w", domain.ErrNotFound)
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the provider throttled the request or the
	// account ran out of API quota.
	ErrRateLimited = errors.New("rate limited")

	// ErrBadRequest indicates the provider rejected the request parameters.
	ErrBadRequest = errors.New("bad request")
)
