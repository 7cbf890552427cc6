package common

import (
	"fmt"
	"sort"
	"strings"

	"helping-hands/volunteerhub/internal/constants"
)

// NormalizeEmail trims and lower-cases an address before lookups and inserts.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeSkills trims names, drops empties and removes case-insensitive duplicates,
// keeping the first spelling seen.
func NormalizeSkills(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out
}

// SortedKeys returns the keys of a set in ascending order.
func SortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CacheKey builds a cache key from a prefix and an id.
func CacheKey(prefix constants.CachePrefix, id uint) string {
	return fmt.Sprintf("%s%d", prefix, id)
}

// LikePattern wraps a user supplied substring for a LIKE comparison.
func LikePattern(s string) string {
	s = strings.TrimSpace(s)
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + strings.ToLower(r.Replace(s)) + "%"
}
