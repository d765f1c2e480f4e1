package domain

import (
	"fmt"

	"github.com/bluestero/ythandle/internal/domain"
)

// Re-export shared sentinel errors so channel callers do not need to import
// the cross-domain package directly.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = domain.ErrNotFound

	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = domain.ErrUnauthorized

	// ErrRateLimited indicates the provider throttled the request or quota ran out.
	ErrRateLimited = domain.ErrRateLimited

	// ErrBadRequest indicates the provider rejected the request parameters.
	ErrBadRequest = domain.ErrBadRequest
)

// ErrChannelNotFound is returned when a channel lookup by ID yields no items.
// It wraps ErrNotFound, so errors.Is matches either.
var ErrChannelNotFound = fmt.Errorf("channel %w", ErrNotFound)
