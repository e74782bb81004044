package entry

import "strings"

// ParseTags splits comma separated input into trimmed, non-empty tags.
// Duplicates are kept in input order.
func ParseTags(text string) []string {
	tags := []string{}
	for _, t := range strings.Split(text, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags is the editable text form of tags.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
