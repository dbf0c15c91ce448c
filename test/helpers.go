package test

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Collect collects items produced by iterator.
func Collect[T any](it func(func(T) bool)) []T {
	items := []T{}
	for item := range it {
		items = append(items, item)
	}
	return items
}

// CollectSorted collects items produced by iterator and sorts them.
func CollectSorted[T constraints.Ordered](it func(func(T) bool)) []T {
	items := Collect(it)
	sort.Slice(items, func(i, j int) bool {
		return items[i] < items[j]
	})
	return items
}

// CollectIndexed collects values produced by indexed iterator, keyed by index.
func CollectIndexed[K comparable, V any](it func(func(K, V) bool)) map[K]V {
	items := map[K]V{}
	for k, v := range it {
		items[k] = v
	}
	return items
}
