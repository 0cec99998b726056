package task

import "strings"

// ParseTags splits comma separated tag text into trimmed, non-empty labels.
// Duplicates are dropped; the first occurrence keeps its position.
func ParseTags(text string) []string {
	tags := []string{}
	seen := make(map[string]struct{})
	for _, part := range strings.Split(text, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// FormatTags joins tags back into the text form the task form edits.
func FormatTags(tags []string) string {
	return strings.Join(tags, ", ")
}
