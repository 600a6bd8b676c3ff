package domain

import "strings"

// ParseTags splits comma separated tag text and trims each entry. Empty
// input gives an empty list.
func ParseTags(raw string) []string {
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}
