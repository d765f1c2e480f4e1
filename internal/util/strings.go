// Package util holds small string helpers shared by config, credentials and
// the provider registry.
package util

import (
	"fmt"
	"strings"
)

// NormalizeKey lowercases and trims a string so provider names and config
// keys compare the same regardless of how the user typed them.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseToggle parses an on/off style setting. Accepted values are on, off,
// true, false, 1 and 0 in any case.
func ParseToggle(v string) (bool, error) {
	switch NormalizeKey(v) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid value %q (want on or off)", v)
}
