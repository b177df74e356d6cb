// Package maputil provides small helpers for working with maps.
package maputil

import (
	"slices"
)

// SortedKeys returns the keys of m in ascending order.
// Returns an empty (non-nil) slice for nil or empty maps so callers can
// range over the result unconditionally.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
