package dbcheck

import (
	"sort"
	"strings"
)

// FilterCapabilities returns the names containing any token,
// case-insensitively, sorted lexicographically.
func FilterCapabilities(names, tokens []string) []string {
	lowered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.ToLower(t); t != "" {
			lowered = append(lowered, t)
		}
	}

	matches := []string{}
	for _, name := range names {
		n := strings.ToLower(name)
		for _, t := range lowered {
			if strings.Contains(n, t) {
				matches = append(matches, name)
				break
			}
		}
	}
	sort.Strings(matches)
	return matches
}
