// Package swrcache provides stale-while-revalidate caching with file-backed
// JSON storage. Fresh entries are served directly, stale entries are served
// while a background refresh runs, and expired entries are refetched inline.
package swrcache

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	defaultFreshTTL = 24 * time.Hour
	defaultMaxStale = 7 * 24 * time.Hour
	refreshTimeout  = 30 * time.Second
)

// Cache is safe for use by one process at a time; concurrent writers to the
// same key race but never leave a partially written file behind.
type Cache struct {
	dir      string
	freshTTL time.Duration
	maxStale time.Duration
	logger   *slog.Logger

	// refreshing tracks background revalidations started by GetOrFetch.
	refreshing sync.WaitGroup
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTLs overrides how long entries stay fresh and how long stale entries
// may still be served.
func WithTTLs(freshTTL, maxStale time.Duration) Option {
	return func(c *Cache) {
		c.freshTTL = freshTTL
		c.maxStale = maxStale
	}
}

// WithLogger sets the logger used to report background refresh failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a cache rooted at dir.
func New(dir string, opts ...Option) *Cache {
	c := &Cache{
		dir:      dir,
		freshTTL: defaultFreshTTL,
		maxStale: defaultMaxStale,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewDefault returns a cache rooted at the OS user cache dir.
func NewDefault(opts ...Option) *Cache {
	return New(DefaultDir(), opts...)
}

// Dir returns the directory backing the cache.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// GetOrFetch returns cached data using stale-while-revalidate semantics.
// A nil cache always calls fetch. Unreadable entries are treated as missing.
func GetOrFetch[T any](c *Cache, ctx context.Context, key string, fetch func(context.Context) (T, error)) (T, error) {
	if c == nil || c.dir == "" {
		return fetch(ctx)
	}

	entry, err := readEntry[T](c, key)
	if err != nil {
		c.logger.Debug("swrcache: read failed", "key", key, "error", err)
	}

	state := entry.freshnessAt(time.Now(), c.freshTTL, c.maxStale)
	c.logger.Debug("swrcache: lookup", "key", key, "state", state)

	switch state {
	case fresh:
		return entry.Data, nil
	case stale:
		revalidate(c, key, fetch)
		return entry.Data, nil
	}
	return fetchAndStore(c, ctx, key, fetch)
}

// Wait blocks until every background revalidation started so far has
// finished. Short-lived processes call it before exiting so a stale entry
// is actually rewritten.
func (c *Cache) Wait() {
	if c == nil {
		return
	}
	c.refreshing.Wait()
}

// Invalidate removes a single cached entry.
func (c *Cache) Invalidate(key string) error {
	if c == nil || c.dir == "" {
		return nil
	}

	err := os.Remove(c.pathForKey(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes all cached entries and returns how many were removed.
func (c *Cache) Clear() (int, error) {
	if c == nil || c.dir == "" {
		return 0, nil
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(c.dir, entry.Name())); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}

func fetchAndStore[T any](c *Cache, ctx context.Context, key string, fetch func(context.Context) (T, error)) (T, error) {
	data, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := writeEntry(c, Entry[T]{Key: key, Data: data, FetchedAt: time.Now()}); err != nil {
		c.logger.Debug("swrcache: write failed", "key", key, "error", err)
	}
	return data, nil
}

func revalidate[T any](c *Cache, key string, fetch func(context.Context) (T, error)) {
	c.refreshing.Add(1)
	go func() {
		defer c.refreshing.Done()
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		data, err := fetch(ctx)
		if err != nil {
			c.logger.Debug("swrcache: revalidation failed", "key", key, "error", err)
			return
		}
		if err := writeEntry(c, Entry[T]{Key: key, Data: data, FetchedAt: time.Now()}); err != nil {
			c.logger.Debug("swrcache: write failed", "key", key, "error", err)
		}
	}()
}

// readEntry loads the entry for key. A missing file or one written for a
// different key returns the zero Entry and no error.
func readEntry[T any](c *Cache, key string) (Entry[T], error) {
	var entry Entry[T]
	data, err := os.ReadFile(c.pathForKey(key))
	if os.IsNotExist(err) {
		return entry, nil
	}
	if err != nil {
		return entry, err
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry[T]{}, err
	}
	if entry.Key != key {
		return Entry[T]{}, nil
	}
	return entry, nil
}

func writeEntry[T any](c *Cache, entry Entry[T]) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.dir, sanitizeKey(entry.Key)+".tmp-*")
	if err != nil {
		return err
	}
	name := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}

	return os.Rename(name, c.pathForKey(entry.Key))
}

func (c *Cache) pathForKey(key string) string {
	return filepath.Join(c.dir, sanitizeKey(key)+".json")
}

// DefaultDir returns the directory used by NewDefault.
func DefaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(base, "ythandle", "channels")
}

func sanitizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "cache"
	}

	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		ch := key[i]
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}
