package domain

import "strings"

// Canonical strips a trailing "-P" or "-C" role suffix from a system or
// middleware identifier. The same middleware appears with either suffix
// depending on which side of a flow it was recorded on; stripping the suffix
// lets it be treated as a single hub.
func Canonical(id string) string {
	if strings.HasSuffix(id, "-P") || strings.HasSuffix(id, "-C") {
		return id[:len(id)-2]
	}
	return id
}

// NormalizeMiddleware maps the upstream "no middleware" spellings (blank or
// "NONE" in any case) to the empty string and canonicalizes everything else.
func NormalizeMiddleware(v string) string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" || strings.EqualFold(trimmed, "NONE") {
		return ""
	}
	return Canonical(trimmed)
}
