package capability

import "strings"

// Slug sanitizes a display name into a deterministic id fragment: lowercase,
// every run of non-alphanumeric characters collapsed to a single hyphen,
// leading and trailing hyphens trimmed.
func Slug(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// chain appends a slug onto an ancestor id, qualifying equal names under
// different parents with distinct ids.
func chain(parentID, name string) string {
	s := Slug(name)
	if parentID == "" {
		return s
	}
	return parentID + "-" + s
}
