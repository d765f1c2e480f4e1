package domain

import "context"

// Provider is the interface that video-platform backends must implement.
// It exposes exactly the two capabilities handle resolution needs.
type Provider interface {
	// GetDisplayName returns the human-readable provider name (e.g. "YouTube").
	GetDisplayName() string

	// SearchChannels runs a single channel-type search for query and returns
	// the first page of results in the platform's relevance order.
	SearchChannels(ctx context.Context, query string) ([]Candidate, error)

	// GetChannelSnippet returns the authoritative snippet for one channel ID.
	// It returns an error wrapping ErrChannelNotFound when the platform
	// reports no such channel.
	GetChannelSnippet(ctx context.Context, channelID string) (*Snippet, error)
}
