package domain

import "strings"

// HandlePrefix is the leading character of every normalized handle.
const HandlePrefix = "@"

// NormalizeHandle prefixes "@" when h does not already start with it.
// No other normalization is applied: case, whitespace and punctuation are
// kept as given.
func NormalizeHandle(h string) string {
	if strings.HasPrefix(h, HandlePrefix) {
		return h
	}
	return HandlePrefix + h
}

// HandleFromCustomURL returns the final "/"-delimited segment of a custom URL.
func HandleFromCustomURL(customURL string) string {
	if i := strings.LastIndex(customURL, "/"); i >= 0 {
		return customURL[i+1:]
	}
	return customURL
}

// MatchesHandle reports whether the custom URL's final segment equals the
// normalized handle, using exact case-sensitive comparison.
func MatchesHandle(customURL, handle string) bool {
	return HandleFromCustomURL(customURL) == NormalizeHandle(handle)
}
