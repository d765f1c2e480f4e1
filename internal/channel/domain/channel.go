package domain

import "time"

// Candidate is a channel surfaced by a search. It only lives for the duration
// of one lookup.
type Candidate struct {
	// ChannelID is the platform channel identifier (e.g. "UC_x5XG1OV2P6uZZ5FSM9Ttw").
	ChannelID string `json:"channel_id"`

	// Title is the channel title as indexed by search.
	Title string `json:"title"`

	// SearchTimeCustomURL is the custom URL the search index exposed, if any.
	// It can lag behind the channel's live data and is never used for matching.
	SearchTimeCustomURL string `json:"search_time_custom_url,omitempty"`
}

// Snippet is the authoritative profile of a channel, fetched by ID.
type Snippet struct {
	ChannelID   string `json:"channel_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// CustomURL is path-like (e.g. "youtube.com/@name" or "@name"); only the
	// final segment is the handle.
	CustomURL string `json:"custom_url"`

	Country      string    `json:"country,omitempty"`
	PublishedAt  time.Time `json:"published_at,omitzero"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
}

// Handle returns the handle encoded in the snippet's custom URL.
func (s *Snippet) Handle() string {
	return HandleFromCustomURL(s.CustomURL)
}
