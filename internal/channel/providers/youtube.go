package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bluestero/ythandle/internal/channel/domain"
	"github.com/bluestero/ythandle/internal/retry"
	"github.com/bluestero/ythandle/internal/services/auth"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	youtubeTokenKey = "youtube"

	// DefaultMaxResults matches the platform's default search page size.
	DefaultMaxResults int64 = 5
	maxSearchResults  int64 = 50
)

var snippetPart = []string{"snippet"}

// Compile-time check that YouTubeProvider satisfies domain.Provider.
var _ domain.Provider = (*YouTubeProvider)(nil)

// YouTubeProvider implements domain.Provider using the YouTube Data API v3.
type YouTubeProvider struct {
	service    *youtube.Service
	maxResults int64
	retry      retry.Config
}

// YouTubeOption configures a YouTubeProvider.
type YouTubeOption func(*youtubeOptions)

type youtubeOptions struct {
	maxResults    int64
	retry         retry.Config
	clientOptions []option.ClientOption
}

// WithMaxResults sets the search page size. Values outside 1-50 fall back to
// the default.
func WithMaxResults(n int64) YouTubeOption {
	return func(o *youtubeOptions) {
		if n >= 1 && n <= maxSearchResults {
			o.maxResults = n
		}
	}
}

// WithRetry enables transport retries for transient failures.
func WithRetry(cfg retry.Config) YouTubeOption {
	return func(o *youtubeOptions) {
		o.retry = cfg
	}
}

// WithClientOptions appends Google API client options, e.g. a custom endpoint
// or HTTP client.
func WithClientOptions(opts ...option.ClientOption) YouTubeOption {
	return func(o *youtubeOptions) {
		o.clientOptions = append(o.clientOptions, opts...)
	}
}

// NewYouTubeProvider creates a YouTubeProvider authenticated with apiKey.
func NewYouTubeProvider(ctx context.Context, apiKey string, opts ...YouTubeOption) (*YouTubeProvider, error) {
	o := youtubeOptions{
		maxResults: DefaultMaxResults,
		retry:      retry.Once(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, o.clientOptions...)
	svc, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to create client: %w", err)
	}

	return &YouTubeProvider{
		service:    svc,
		maxResults: o.maxResults,
		retry:      o.retry,
	}, nil
}

// RegisterYouTube registers the YouTube provider factory with the channel
// registry. The API key is read from the "youtube" credential entry.
func RegisterYouTube() {
	Register("youtube", func(store auth.Store, settings Settings) (domain.Provider, error) {
		apiKey, err := store.GetToken(youtubeTokenKey)
		if err != nil {
			return nil, fmt.Errorf("youtube auth: api key not found (run 'ythandle auth login youtube'): %w", err)
		}

		opts := []YouTubeOption{WithRetry(settings.Retry)}
		if settings.MaxResults > 0 {
			opts = append(opts, WithMaxResults(settings.MaxResults))
		}
		return NewYouTubeProvider(context.Background(), apiKey, opts...)
	})
}

// GetDisplayName returns the human-readable provider name.
func (p *YouTubeProvider) GetDisplayName() string {
	return "YouTube"
}

// SearchChannels runs one channel-type search and returns the first page of
// results in relevance order.
func (p *YouTubeProvider) SearchChannels(ctx context.Context, query string) ([]domain.Candidate, error) {
	resp, err := retry.DoValue(ctx, p.retry, isTransient, func() (*youtube.SearchListResponse, error) {
		return p.service.Search.List(snippetPart).
			Type("channel").
			Q(query).
			MaxResults(p.maxResults).
			Context(ctx).
			Do()
	})
	if err != nil {
		return nil, fmt.Errorf("youtube: search %q: %w", query, mapAPIError(err))
	}

	candidates := make([]domain.Candidate, 0, len(resp.Items))
	for _, item := range resp.Items {
		if c, ok := toCandidate(item); ok {
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}

// GetChannelSnippet fetches the snippet of a single channel by ID.
func (p *YouTubeProvider) GetChannelSnippet(ctx context.Context, channelID string) (*domain.Snippet, error) {
	resp, err := retry.DoValue(ctx, p.retry, isTransient, func() (*youtube.ChannelListResponse, error) {
		return p.service.Channels.List(snippetPart).
			Id(channelID).
			Context(ctx).
			Do()
	})
	if err != nil {
		return nil, fmt.Errorf("youtube: channel %q: %w", channelID, mapAPIError(err))
	}

	if len(resp.Items) == 0 || resp.Items[0] == nil || resp.Items[0].Snippet == nil {
		return nil, fmt.Errorf("channel %q: %w", channelID, domain.ErrChannelNotFound)
	}

	return toSnippet(resp.Items[0]), nil
}

// --- Conversion helpers ---

func toCandidate(item *youtube.SearchResult) (domain.Candidate, bool) {
	if item == nil {
		return domain.Candidate{}, false
	}

	var c domain.Candidate
	if item.Snippet != nil {
		c.ChannelID = item.Snippet.ChannelId
		c.Title = item.Snippet.Title
	}
	if c.ChannelID == "" && item.Id != nil {
		c.ChannelID = item.Id.ChannelId
	}
	return c, c.ChannelID != ""
}

func toSnippet(ch *youtube.Channel) *domain.Snippet {
	s := ch.Snippet
	snippet := &domain.Snippet{
		ChannelID:    ch.Id,
		Title:        s.Title,
		Description:  s.Description,
		CustomURL:    s.CustomUrl,
		Country:      s.Country,
		ThumbnailURL: thumbnailURL(s.Thumbnails),
	}
	if t, err := time.Parse(time.RFC3339, s.PublishedAt); err == nil {
		snippet.PublishedAt = t
	}
	return snippet
}

func thumbnailURL(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, thumb := range []*youtube.Thumbnail{t.High, t.Medium, t.Default} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}
	return ""
}

// --- Error helpers ---

var quotaReasons = map[string]bool{
	"quotaExceeded":      true,
	"rateLimitExceeded":  true,
	"dailyLimitExceeded": true,
}

// mapAPIError converts Google API errors to domain sentinels where recognisable.
func mapAPIError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case apiErr.Code == http.StatusTooManyRequests || (apiErr.Code == http.StatusForbidden && hasQuotaReason(apiErr)):
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, apiErr.Message)
	case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, apiErr.Message)
	case apiErr.Code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, apiErr.Message)
	case apiErr.Code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", domain.ErrBadRequest, apiErr.Message)
	}
	return err
}

func hasQuotaReason(apiErr *googleapi.Error) bool {
	for _, item := range apiErr.Errors {
		if quotaReasons[item.Reason] {
			return true
		}
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "quota")
}

// isTransient reports whether a failed API call is worth retrying.
func isTransient(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return retry.IsRetryable(err)
}
