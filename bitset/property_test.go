package bitset_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/samber/lo"

	"github.com/outofforest/dats/bitset"
)

const size = 99

func TestPropertyFlipTwiceIsIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1)
	properties := gopter.NewProperties(parameters)

	properties.Property("set bits survive two flips, others stay unset", prop.ForAll(
		func(positions []uint64) bool {
			b, err := bitset.New(size)
			if err != nil {
				return false
			}
			for _, position := range positions {
				if b.Set(position, true) != nil {
					return false
				}
			}
			before := b.String()

			b.Flip()
			if b.Count() != size-uint64(len(lo.Uniq(positions))) {
				return false
			}
			b.Flip()

			for position := uint64(1); position <= size; position++ {
				isSet, err := b.IsSet(position)
				if err != nil || isSet != lo.Contains(positions, position) {
					return false
				}
			}
			return b.String() == before
		},
		gen.SliceOf(gen.UInt64Range(1, size)),
	))
	properties.TestingRun(t)
}
