package alloc

import (
	"github.com/outofforest/mass"
)

// DefaultBlockSize is the number of nodes allocated by the pool at once.
const DefaultBlockSize = 64

// NewPool creates new node pool allocating nodes in blocks of blockSize.
func NewPool[T any](blockSize uint64) *Pool[T] {
	if blockSize == 0 {
		blockSize = DefaultBlockSize
	}
	return &Pool[T]{
		blockSize: blockSize,
		mass:      mass.New[T](blockSize),
	}
}

// Pool allocates and deallocates nodes of a single container.
type Pool[T any] struct {
	blockSize uint64
	mass      *mass.Mass[T]
	release   []*T
	allocated uint64
}

// Allocate returns zeroed node, reusing previously deallocated one if available.
func (p *Pool[T]) Allocate() *T {
	p.allocated++
	if n := len(p.release); n > 0 {
		node := p.release[n-1]
		p.release[n-1] = nil
		p.release = p.release[:n-1]
		return node
	}
	return p.mass.New()
}

// Deallocate erases the node and returns it to the pool.
func (p *Pool[T]) Deallocate(node *T) {
	if node == nil {
		return
	}

	var zero T
	*node = zero
	p.release = append(p.release, node)
	p.allocated--
}

// Allocated returns the number of nodes currently in use.
func (p *Pool[T]) Allocated() uint64 {
	return p.allocated
}

// Reset drops all the nodes, including released ones, so memory may be reclaimed by GC.
// Nodes allocated before must not be used after reset.
func (p *Pool[T]) Reset() {
	p.mass = mass.New[T](p.blockSize)
	p.release = nil
	p.allocated = 0
}
