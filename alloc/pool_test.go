package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testNode struct {
	Value uint64
	Next  *testNode
}

func TestPoolAllocate(t *testing.T) {
	requireT := require.New(t)
	p := NewPool[testNode](4)

	nodes := map[*testNode]struct{}{}
	for i := range 10 {
		n := p.Allocate()
		requireT.NotNil(n)
		requireT.Zero(*n)
		n.Value = uint64(i)
		nodes[n] = struct{}{}
	}

	requireT.Len(nodes, 10)
	requireT.EqualValues(10, p.Allocated())
}

func TestPoolDeallocateErasesAndReuses(t *testing.T) {
	requireT := require.New(t)
	p := NewPool[testNode](4)

	n1 := p.Allocate()
	n2 := p.Allocate()
	n1.Value = 1
	n1.Next = n2

	p.Deallocate(n1)
	requireT.Zero(*n1)
	requireT.EqualValues(1, p.Allocated())

	n3 := p.Allocate()
	requireT.Same(n1, n3)
	requireT.Zero(*n3)
	requireT.EqualValues(2, p.Allocated())
}

func TestPoolDeallocateNil(t *testing.T) {
	requireT := require.New(t)
	p := NewPool[testNode](0)

	p.Deallocate(nil)
	requireT.Zero(p.Allocated())
	requireT.EqualValues(DefaultBlockSize, p.blockSize)
}

func TestPoolReset(t *testing.T) {
	requireT := require.New(t)
	p := NewPool[testNode](2)

	n := p.Allocate()
	p.Allocate()
	p.Deallocate(n)

	p.Reset()
	requireT.Zero(p.Allocated())
	requireT.Empty(p.release)

	n2 := p.Allocate()
	requireT.NotSame(n, n2)
}
