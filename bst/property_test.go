package bst_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/dats/bst"
	"github.com/outofforest/dats/test"
	"github.com/outofforest/dats/types"
)

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(1)
	return gopter.NewProperties(parameters)
}

func TestPropertyInOrderIsSorted(t *testing.T) {
	properties := newProperties()
	properties.Property("in-order traversal is sorted and unique", prop.ForAll(
		func(values []int16) bool {
			tree, err := bst.New[int16](types.CompareOrdered[int16])
			if err != nil {
				return false
			}
			for _, v := range values {
				err := tree.Insert(v)
				if err != nil && !errors.Is(err, types.ErrDuplicate) {
					return false
				}
			}

			expected := lo.Uniq(values)
			if tree.Length() != uint64(len(expected)) || tree.Verify() != nil {
				return false
			}

			sorted := slices.Sorted(slices.Values(expected))
			return slices.Equal(sorted, test.Collect(tree.Iterator(types.InOrder))) &&
				slices.Equal(sorted, test.CollectSorted(tree.Iterator(types.PreOrder))) &&
				slices.Equal(sorted, test.CollectSorted(tree.Iterator(types.LevelOrder)))
		},
		gen.SliceOf(gen.Int16()),
	))
	properties.TestingRun(t)
}

func TestPropertyRemove(t *testing.T) {
	properties := newProperties()
	properties.Property("removed elements disappear, others stay", prop.ForAll(
		func(values []uint8, removals []uint8) bool {
			tree, err := bst.New[uint8](types.CompareOrdered[uint8])
			if err != nil {
				return false
			}
			present := map[uint8]bool{}
			for _, v := range values {
				if tree.Insert(v) == nil {
					present[v] = true
				}
			}

			for _, v := range removals {
				removed, err := tree.Remove(v)
				switch {
				case present[v]:
					if err != nil || removed != v {
						return false
					}
					delete(present, v)
				case tree.Length() == 0:
					if !errors.Is(err, types.ErrEmpty) {
						return false
					}
				default:
					if !errors.Is(err, types.ErrNotFound) {
						return false
					}
				}
				if tree.Verify() != nil || tree.Length() != uint64(len(present)) {
					return false
				}
			}

			for v := range 256 {
				exists, err := tree.Contains(uint8(v))
				if err != nil || exists != present[uint8(v)] {
					return false
				}
			}
			return len(tree.Drain()) == len(present) && tree.Length() == 0
		},
		gen.SliceOf(gen.UInt8()),
		gen.SliceOf(gen.UInt8()),
	))
	properties.TestingRun(t)
}
