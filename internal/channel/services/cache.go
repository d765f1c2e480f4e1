package services

import (
	"strings"

	"github.com/bluestero/ythandle/internal/util"
)

// cacheKey builds a swrcache key. Channel IDs are case-sensitive, so only the
// provider name is normalized.
func cacheKey(provider string, parts ...string) string {
	values := make([]string, 0, len(parts)+2)
	if provider != "" {
		values = append(values, util.NormalizeKey(provider))
	}
	values = append(values, "channel")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		values = append(values, part)
	}
	return strings.Join(values, "_")
}
