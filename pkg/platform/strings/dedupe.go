// Package strings holds small string-slice helpers shared across features.
package strings

import "strings"

// DedupeAndTrim trims whitespace from every element and drops empties and
// duplicates, keeping first-seen order. Article tags go through this so
// "Go, go , ,Go" stores as distinct clean tags rather than four messy ones.
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
