package parser

import (
	"fmt"
	"strings"
)

// NormalizeHeader trims a header, replaces spaces with underscores and uppercases it.
func NormalizeHeader(h string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(h), " ", "_"))
}

// NormalizeHeaders normalizes a header row.
// Empty headers become UNNAMED_<n> (1-based position). A repeated name keeps its
// first column and later ones get the lowest _<k> suffix (k >= 2) not already used
// by another header, so the result never holds the same name twice.
func NormalizeHeaders(headers []string) []string {
	names := make([]string, len(headers))
	reserved := make(map[string]bool, len(headers))
	for i, h := range headers {
		name := NormalizeHeader(h)
		if name == "" {
			name = fmt.Sprintf("UNNAMED_%d", i+1)
		}
		names[i] = name
		reserved[name] = true
	}

	out := make([]string, len(names))
	used := make(map[string]bool, len(names))
	next := make(map[string]int)
	for i, name := range names {
		if !used[name] {
			used[name] = true
			out[i] = name
			continue
		}
		k := max(next[name], 2)
		candidate := fmt.Sprintf("%s_%d", name, k)
		for used[candidate] || reserved[candidate] {
			k++
			candidate = fmt.Sprintf("%s_%d", name, k)
		}
		next[name] = k + 1
		used[candidate] = true
		out[i] = candidate
	}
	return out
}
