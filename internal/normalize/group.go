// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

// GroupAdjacent scans items once in order and starts a new group whenever
// key differs from the key of the previous item.
func GroupAdjacent[T any, K comparable](items []T, key func(T) K) [][]T {
	groups := make([][]T, 0)

	var (
		current []T
		last    K
	)
	for i, item := range items {
		k := key(item)
		if i > 0 && k != last {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, item)
		last = k
	}

	if len(current) > 0 {
		groups = append(groups, current)
	}

	return groups
}

// SplitAtFirst partitions items at the first element for which match
// returns true. When nothing matches, from is empty.
func SplitAtFirst[T any](items []T, match func(T) bool) (before, from []T) {
	for i, item := range items {
		if match(item) {
			return items[:i], items[i:]
		}
	}
	return items, nil
}
