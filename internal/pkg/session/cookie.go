package session

import "strings"

// CookieValue extracts a cookie value from a raw Cookie header.
// A name that occurs more than once is treated as absent.
func CookieValue(header, name string) (string, bool) {
	if header == "" || name == "" {
		return "", false
	}
	parts := strings.Split("; "+header, "; "+name+"=")
	if len(parts) != 2 {
		return "", false
	}
	value, _, _ := strings.Cut(parts[1], ";")
	return value, true
}
