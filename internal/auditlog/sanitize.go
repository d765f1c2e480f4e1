package auditlog

import (
	"regexp"
	"strings"
)

const redacted = "<redacted>"

var sensitiveFlags = map[string]struct{}{
	"--token":   {},
	"--api-key": {},
}

// googleAPIKey matches the shape of a Google API key so a key passed as a
// stray positional argument is not stored either.
var googleAPIKey = regexp.MustCompile(`AIza[0-9A-Za-z_-]{35}`)

// SanitizeArgs redacts values of sensitive flags and anything shaped like a
// Google API key before arguments are stored.
func SanitizeArgs(args []string) []string {
	sanitized := make([]string, 0, len(args))
	valueNext := false

	for _, arg := range args {
		switch {
		case valueNext:
			arg = redacted
			valueNext = false
		case isSensitiveFlag(arg):
			valueNext = true
		default:
			if key, _, ok := strings.Cut(arg, "="); ok && isSensitiveFlag(key) {
				arg = key + "=" + redacted
			} else {
				arg = googleAPIKey.ReplaceAllString(arg, redacted)
			}
		}
		sanitized = append(sanitized, arg)
	}

	return sanitized
}

func isSensitiveFlag(arg string) bool {
	_, ok := sensitiveFlags[arg]
	return ok
}
