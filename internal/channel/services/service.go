// Package services provides the channel lookup service layer.
//
// The Service type wraps a domain.Provider and implements handle resolution:
// one search, then a sequential fetch-by-id of each candidate in search order
// until one candidate's custom URL ends in the requested handle. CLI commands
// construct a Service from a resolved provider and call service methods
// rather than calling the provider directly.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bluestero/ythandle/internal/channel/domain"
	"github.com/bluestero/ythandle/internal/swrcache"
)

// Service is the channel business logic layer.
type Service struct {
	provider domain.Provider
	cache    *swrcache.Cache
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables stale-while-revalidate caching of fetch-by-id lookups.
// Searches are never cached.
func WithCache(cache *swrcache.Cache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithLogger sets the logger used for per-candidate debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns a Service backed by the given provider.
func New(provider domain.Provider, opts ...Option) *Service {
	svc := &Service{provider: provider, logger: slog.Default()}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Search runs a single channel search using the handle as the query.
// The handle is passed through unchanged.
func (s *Service) Search(ctx context.Context, handle string) ([]domain.Candidate, error) {
	if handle == "" {
		return nil, fmt.Errorf("handle is required")
	}

	candidates, err := s.provider.SearchChannels(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", handle, err)
	}

	s.logger.Debug("channel search", "provider", s.provider.GetDisplayName(), "query", handle, "candidates", len(candidates))
	return candidates, nil
}

// FetchByID returns the authoritative snippet for a channel ID.
// A channel the provider does not know yields an error matching
// domain.ErrChannelNotFound.
func (s *Service) FetchByID(ctx context.Context, channelID string) (*domain.Snippet, error) {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return nil, fmt.Errorf("channel ID is required")
	}
	if s.cache == nil {
		return s.provider.GetChannelSnippet(ctx, channelID)
	}

	key := cacheKey(s.provider.GetDisplayName(), channelID)
	return swrcache.GetOrFetch(s.cache, ctx, key, func(ctx context.Context) (*domain.Snippet, error) {
		return s.provider.GetChannelSnippet(ctx, channelID)
	})
}

// Wait blocks until background cache refreshes started by FetchByID have
// finished. It returns at once when the service has no cache.
func (s *Service) Wait() {
	s.cache.Wait()
}

// Refresh drops any cached snippet for channelID and fetches it again.
func (s *Service) Refresh(ctx context.Context, channelID string) (*domain.Snippet, error) {
	if s.cache != nil {
		if err := s.cache.Invalidate(cacheKey(s.provider.GetDisplayName(), strings.TrimSpace(channelID))); err != nil {
			s.logger.Debug("cache invalidate failed", "channel_id", channelID, "error", err)
		}
	}
	return s.FetchByID(ctx, channelID)
}

// IsMatch fetches the channel and returns its snippet when the custom URL's
// final segment equals the normalized handle. It returns nil, nil when the
// channel exists but belongs to a different handle.
func (s *Service) IsMatch(ctx context.Context, channelID, handle string) (*domain.Snippet, error) {
	target := domain.NormalizeHandle(handle)

	snippet, err := s.FetchByID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	matched := domain.MatchesHandle(snippet.CustomURL, target)
	s.logger.Debug("candidate checked", "channel_id", channelID, "custom_url", snippet.CustomURL, "handle", target, "matched", matched)
	if !matched {
		return nil, nil
	}
	return snippet, nil
}

// Resolve finds the channel that owns handle. Candidates from one search are
// checked in order and the first match is returned without fetching the
// rest. No match is reported as nil, nil. Any provider error stops the walk.
func (s *Service) Resolve(ctx context.Context, handle string) (*domain.Snippet, error) {
	candidates, err := s.Search(ctx, handle)
	if err != nil {
		return nil, err
	}

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		snippet, err := s.IsMatch(ctx, c.ChannelID, handle)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: candidate %s: %w", domain.NormalizeHandle(handle), c.ChannelID, err)
		}
		if snippet != nil {
			return snippet, nil
		}
	}

	s.logger.Debug("no candidate matched", "handle", domain.NormalizeHandle(handle), "checked", len(candidates))
	return nil, nil
}
