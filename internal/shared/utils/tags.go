package utils

import "strings"

// SplitTags converts the comma-delimited tag string clients submit
// ("go, web , api") into a trimmed ordered sequence. Empty entries are
// dropped; an empty input yields an empty (non-nil) slice.
func SplitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
