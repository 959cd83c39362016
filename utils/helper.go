package utils

import (
	"strings"
)

// TotalPages returns the page count for a result set.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}

// NormalizeTags trims whitespace and drops empty entries.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// SplitCSV splits a comma-separated query value into cleaned entries.
func SplitCSV(value string) []string {
	if value == "" {
		return nil
	}
	return NormalizeTags(strings.Split(value, ","))
}
