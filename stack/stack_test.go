package stack_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/dats/stack"
	"github.com/outofforest/dats/test"
	"github.com/outofforest/dats/types"
)

func TestLIFO(t *testing.T) {
	requireT := require.New(t)
	s := stack.New[uint64]()

	for i := range uint64(5) {
		s.Push(i)
	}
	requireT.EqualValues(5, s.Length())

	top, err := s.Peek()
	requireT.NoError(err)
	requireT.EqualValues(4, top)

	for i := range uint64(5) {
		v, err := s.Pop()
		requireT.NoError(err)
		requireT.Equal(4-i, v)
	}

	_, err = s.Pop()
	requireT.True(errors.Is(err, types.ErrEmpty))
	_, err = s.Peek()
	requireT.True(errors.Is(err, types.ErrEmpty))
}

func TestGetContainsIterator(t *testing.T) {
	requireT := require.New(t)
	s := stack.New[string]()

	s.Push("a")
	s.Push("b")
	s.Push("c")

	v, err := s.Get(1)
	requireT.NoError(err)
	requireT.Equal("b", v)

	_, err = s.Get(3)
	requireT.True(errors.Is(err, types.ErrOutOfRange))

	requireT.True(s.Contains("a"))
	requireT.False(s.Contains("d"))
	requireT.Equal([]string{"c", "b", "a"}, test.Collect(s.Iterator()))
}

func TestClearAndFree(t *testing.T) {
	requireT := require.New(t)
	s := stack.New[uint64]()

	s.Push(1)
	s.Clear()
	requireT.Zero(s.Length())

	s.Push(2)
	s.Free()
	requireT.Zero(s.Length())

	s.Push(3)
	v, err := s.Pop()
	requireT.NoError(err)
	requireT.EqualValues(3, v)
}
