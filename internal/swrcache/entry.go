package swrcache

import "time"

// Entry is the on-disk record for one cached value.
type Entry[T any] struct {
	Key       string    `json:"key"`
	Data      T         `json:"data"`
	FetchedAt time.Time `json:"fetched_at"`
}

type freshness int

const (
	missing freshness = iota
	fresh
	stale
	expired
)

func (f freshness) String() string {
	switch f {
	case fresh:
		return "fresh"
	case stale:
		return "stale"
	case expired:
		return "expired"
	}
	return "missing"
}

// freshnessAt classifies the entry at now. An entry fetched in the future
// (clock skew) counts as expired. maxStale <= 0 serves stale entries forever.
func (e Entry[T]) freshnessAt(now time.Time, freshTTL, maxStale time.Duration) freshness {
	if e.FetchedAt.IsZero() {
		return missing
	}
	age := now.Sub(e.FetchedAt)
	switch {
	case age < 0:
		return expired
	case age <= freshTTL:
		return fresh
	case maxStale <= 0 || age <= maxStale:
		return stale
	}
	return expired
}
