package domain

import "strings"

// CoerceBool interprets a free-form required annotation string as a
// boolean. Only "true", "1", "yes" and "on" (case-insensitive) coerce to
// true; everything else, including absence, is false.
func CoerceBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
