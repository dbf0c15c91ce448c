package workload

import (
	"context"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/outofforest/dats/bitset"
	"github.com/outofforest/dats/bst"
	"github.com/outofforest/dats/dense"
	"github.com/outofforest/dats/dynarray"
	"github.com/outofforest/dats/queue"
	"github.com/outofforest/dats/stack"
	"github.com/outofforest/dats/types"
)

func runDense(ctx context.Context, config Config, rng *rand.Rand) (Result, error) {
	a := dense.New[uint64]()
	defer a.Free()

	expected := map[uint64]uint64{}
	for range config.Ops {
		if err := step(ctx); err != nil {
			return Result{}, err
		}

		index := rng.Uint64N(config.MaxIndex)
		if rng.IntN(3) == 0 {
			v, err := a.Remove(index)
			expectedV, exists := expected[index]
			switch {
			case exists && err != nil:
				return Result{}, err
			case exists && v != expectedV:
				return Result{}, errors.Wrapf(types.ErrCorrupted, "index %d: removed %d, expected %d", index,
					v, expectedV)
			case !exists && !errors.Is(err, types.ErrEmpty) && !errors.Is(err, types.ErrOutOfRange):
				return Result{}, errors.Wrapf(types.ErrCorrupted, "index %d: removing absent element: %v", index,
					err)
			}
			delete(expected, index)
		} else {
			v := rng.Uint64()
			if err := a.Insert(index, v); err != nil {
				return Result{}, err
			}
			expected[index] = v
		}

		if err := a.Verify(); err != nil {
			return Result{}, err
		}
		if a.Length() != uint64(len(expected)) {
			return Result{}, errors.Wrapf(types.ErrCorrupted, "length %d, expected %d", a.Length(), len(expected))
		}
	}

	f := newFingerprint()
	for index := range a.LookupLength() {
		v, err := a.Get(index)
		if errors.Is(err, types.ErrEmpty) {
			continue
		}
		if err != nil {
			return Result{}, err
		}
		if v != expected[index] {
			return Result{}, errors.Wrapf(types.ErrCorrupted, "index %d: got %d, expected %d", index, v,
				expected[index])
		}
		f.Add(index)
		f.Add(v)
	}

	return Result{
		Length:      a.Length(),
		Fingerprint: f.Sum(),
	}, nil
}

func runBST(ctx context.Context, config Config, rng *rand.Rand) (Result, error) {
	tree, err := bst.New[uint64](types.CompareOrdered[uint64])
	if err != nil {
		return Result{}, err
	}
	defer tree.Free()

	expected := map[uint64]struct{}{}
	for range config.Ops {
		if err := step(ctx); err != nil {
			return Result{}, err
		}

		key := rng.Uint64N(config.MaxKey)
		_, exists := expected[key]
		if rng.IntN(3) == 0 {
			_, err := tree.Remove(key)
			switch {
			case exists && err != nil:
				return Result{}, err
			case !exists && !errors.Is(err, types.ErrNotFound) && !errors.Is(err, types.ErrEmpty):
				return Result{}, errors.Wrapf(types.ErrCorrupted, "key %d: removing absent element: %v", key, err)
			}
			delete(expected, key)
		} else {
			err := tree.Insert(key)
			switch {
			case exists && !errors.Is(err, types.ErrDuplicate):
				return Result{}, errors.Wrapf(types.ErrCorrupted, "key %d: duplicate accepted: %v", key, err)
			case !exists && err != nil:
				return Result{}, err
			}
			expected[key] = struct{}{}
		}

		if err := tree.Verify(); err != nil {
			return Result{}, err
		}
		if tree.Length() != uint64(len(expected)) {
			return Result{}, errors.Wrapf(types.ErrCorrupted, "length %d, expected %d", tree.Length(), len(expected))
		}
	}

	f := newFingerprint()
	var previous *uint64
	for key := range tree.Iterator(types.InOrder) {
		if previous != nil && *previous >= key {
			return Result{}, errors.Wrapf(types.ErrCorrupted, "key %d follows %d", key, *previous)
		}
		previous = &key
		f.Add(key)
	}

	return Result{
		Length:      tree.Length(),
		Fingerprint: f.Sum(),
	}, nil
}

func runBitset(ctx context.Context, config Config, rng *rand.Rand) (Result, error) {
	b, err := bitset.New(config.BitsetSize)
	if err != nil {
		return Result{}, err
	}
	defer b.Free()

	expected := make([]bool, config.BitsetSize)
	for range config.Ops {
		if err := step(ctx); err != nil {
			return Result{}, err
		}

		if rng.IntN(16) == 0 {
			b.Flip()
			for i := range expected {
				expected[i] = !expected[i]
			}
		} else {
			position := rng.Uint64N(config.BitsetSize) + 1
			value := rng.IntN(2) == 0
			if err := b.Set(position, value); err != nil {
				return Result{}, err
			}
			expected[position-1] = value
		}
	}

	f := newFingerprint()
	var count uint64
	for i, expectedV := range expected {
		position := uint64(i) + 1
		isSet, err := b.IsSet(position)
		if err != nil {
			return Result{}, err
		}
		if isSet != expectedV {
			return Result{}, errors.Wrapf(types.ErrCorrupted, "position %d: got %t, expected %t", position, isSet,
				expectedV)
		}
		if isSet {
			count++
			f.Add(position)
		}
	}
	if count != b.Count() {
		return Result{}, errors.Wrapf(types.ErrCorrupted, "count %d, expected %d", b.Count(), count)
	}

	return Result{
		Length:      count,
		Fingerprint: f.Sum(),
	}, nil
}

// runSequence feeds the same values to queue and stack and checks them against dynamic array holding values in
// insertion order.
func runSequence(ctx context.Context, config Config, rng *rand.Rand) (Result, error) {
	q := queue.New[uint64]()
	defer q.Free()
	s := stack.New[uint64]()
	defer s.Free()
	fifo, err := dynarray.New[uint64](1)
	if err != nil {
		return Result{}, err
	}
	defer fifo.Free()
	lifo, err := dynarray.New[uint64](1)
	if err != nil {
		return Result{}, err
	}
	defer lifo.Free()

	for range config.Ops {
		if err := step(ctx); err != nil {
			return Result{}, err
		}

		if rng.IntN(3) != 0 {
			v := rng.Uint64()
			q.Enqueue(v)
			s.Push(v)
			fifo.Add(v)
			lifo.Add(v)
			continue
		}

		if err := dequeue(q, fifo); err != nil {
			return Result{}, err
		}
		if err := pop(s, lifo); err != nil {
			return Result{}, err
		}
	}

	f := newFingerprint()
	for v := range q.Iterator() {
		f.Add(v)
	}

	return Result{
		Length:      q.Length(),
		Fingerprint: f.Sum(),
	}, nil
}

func dequeue(q *queue.Queue[uint64], fifo *dynarray.Array[uint64]) error {
	if fifo.Length() == 0 {
		if _, err := q.Dequeue(); !errors.Is(err, types.ErrEmpty) {
			return errors.Wrapf(types.ErrCorrupted, "dequeue from empty queue: %v", err)
		}
		return nil
	}

	v, err := q.Dequeue()
	if err != nil {
		return err
	}
	expected, err := fifo.Get(0)
	if err != nil {
		return err
	}
	if v != expected {
		return errors.Wrapf(types.ErrCorrupted, "dequeued %d, expected %d", v, expected)
	}
	if err := fifo.Remove(expected); err != nil {
		return err
	}
	if q.Length() != fifo.Length() {
		return errors.Wrapf(types.ErrCorrupted, "queue length %d, expected %d", q.Length(), fifo.Length())
	}
	return nil
}

func pop(s *stack.Stack[uint64], lifo *dynarray.Array[uint64]) error {
	if lifo.Length() == 0 {
		if _, err := s.Pop(); !errors.Is(err, types.ErrEmpty) {
			return errors.Wrapf(types.ErrCorrupted, "pop from empty stack: %v", err)
		}
		return nil
	}

	v, err := s.Pop()
	if err != nil {
		return err
	}
	last := lifo.Length() - 1
	expected, err := lifo.Get(last)
	if err != nil {
		return err
	}
	if v != expected {
		return errors.Wrapf(types.ErrCorrupted, "popped %d, expected %d", v, expected)
	}
	if err := lifo.Truncate(last); err != nil {
		return err
	}
	if s.Length() != lifo.Length() {
		return errors.Wrapf(types.ErrCorrupted, "stack length %d, expected %d", s.Length(), lifo.Length())
	}
	return nil
}
