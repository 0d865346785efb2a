package utils

import "strings"

// SplitTags turns a comma-separated tag string into a cleaned list: entries
// are trimmed and blanks dropped. Order is preserved.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags is the inverse of SplitTags, used when round-tripping a tag list
// back into an editable comma-separated form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
