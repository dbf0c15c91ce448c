package dense_test

import (
	"maps"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/dats/dense"
	"github.com/outofforest/dats/test"
	"github.com/outofforest/dats/types"
)

const maxIndex = 64

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(1)
	return gopter.NewProperties(parameters)
}

func TestPropertyRoundTrip(t *testing.T) {
	properties := newProperties()
	properties.Property("get returns inserted value, remove makes it absent", prop.ForAll(
		func(indices []uint64) bool {
			indices = lo.Uniq(indices)
			a := dense.New[uint64]()

			for _, index := range indices {
				if a.Insert(index, value(index)) != nil {
					return false
				}
			}
			for _, index := range indices {
				v, err := a.Get(index)
				if err != nil || v != value(index) {
					return false
				}
			}
			for _, index := range indices {
				if _, err := a.Remove(index); err != nil {
					return false
				}
				if a.Contains(value(index)) {
					return false
				}
				if _, err := a.Get(index); !errors.Is(err, types.ErrEmpty) {
					return false
				}
			}
			return a.Length() == 0
		},
		gen.SliceOf(gen.UInt64Range(0, 1000)),
	))
	properties.TestingRun(t)
}

func TestPropertyInvariantsUnderInterleavedOperations(t *testing.T) {
	properties := newProperties()
	properties.Property("lookup and data stay consistent", prop.ForAll(
		func(ops []uint16) bool {
			a := dense.New[uint64]()
			expected := map[uint64]uint64{}

			for i, op := range ops {
				index := uint64(op % maxIndex)
				if op/maxIndex%3 == 0 {
					_, err := a.Remove(index)
					_, exists := expected[index]
					if exists != (err == nil) {
						return false
					}
					delete(expected, index)
				} else {
					v := value(index) + uint64(i)
					if a.Insert(index, v) != nil {
						return false
					}
					expected[index] = v
				}

				if a.Verify() != nil || a.Length() != uint64(len(expected)) {
					return false
				}
			}

			return maps.Equal(expected, test.CollectIndexed(a.Iterator()))
		},
		gen.SliceOf(gen.UInt16()),
	))
	properties.TestingRun(t)
}

func TestRandomSequence(t *testing.T) {
	requireT := require.New(t)
	a := dense.New[uint64]()

	for i := range uint64(maxIndex) {
		requireT.NoError(a.Insert(i*3, value(i*3)))
	}
	for i := range uint64(maxIndex) {
		if i%2 == 0 {
			_, err := a.Remove(i * 3)
			requireT.NoError(err)
		}
		requireT.NoError(a.Verify())
	}

	requireT.EqualValues(maxIndex/2, a.Length())
	requireT.EqualValues((maxIndex-1)*3+1, a.LookupLength())
}

func value(index uint64) uint64 {
	return index*7 + 1
}
