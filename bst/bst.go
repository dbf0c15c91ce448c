package bst

import (
	"github.com/pkg/errors"

	"github.com/outofforest/dats/alloc"
	"github.com/outofforest/dats/types"
)

type node[T any] struct {
	data  T
	left  *node[T]
	right *node[T]
}

// New creates new binary search tree ordered by compare.
func New[T any](compare types.Compare[T]) (*Tree[T], error) {
	if compare == nil {
		return nil, errors.Wrap(types.ErrInvalidArgument, "comparator must be provided")
	}
	return &Tree[T]{
		compare: compare,
		pool:    alloc.NewPool[node[T]](alloc.DefaultBlockSize),
	}, nil
}

// Tree is the unbalanced binary search tree. Equal elements are rejected.
type Tree[T any] struct {
	compare types.Compare[T]
	pool    *alloc.Pool[node[T]]
	head    *node[T]
	length  uint64
}

// Length returns the number of elements.
func (t *Tree[T]) Length() uint64 {
	return t.length
}

// Insert inserts element.
func (t *Tree[T]) Insert(v T) error {
	head, err := t.insert(t.head, v)
	if err != nil {
		return err
	}
	t.head = head
	t.length++
	return nil
}

// Remove removes element equal to v and returns the stored one.
func (t *Tree[T]) Remove(v T) (T, error) {
	var removed T
	if t.head == nil {
		return removed, errors.WithStack(types.ErrEmpty)
	}

	head, err := t.remove(t.head, v, &removed)
	if err != nil {
		var zero T
		return zero, err
	}
	t.head = head
	t.length--
	return removed, nil
}

// Contains checks if element equal to v exists.
func (t *Tree[T]) Contains(v T) (bool, error) {
	_, exists, err := t.Find(v)
	return exists, err
}

// Find returns the stored element equal to v.
func (t *Tree[T]) Find(v T) (T, bool, error) {
	n := t.head
	for n != nil {
		result, err := t.cmp(v, n.data)
		if err != nil {
			var zero T
			return zero, false, err
		}
		switch result {
		case -1:
			n = n.left
		case 1:
			n = n.right
		default:
			return n.data, true, nil
		}
	}

	var zero T
	return zero, false, nil
}

// Min returns the smallest element.
func (t *Tree[T]) Min() (T, error) {
	if t.head == nil {
		var zero T
		return zero, errors.WithStack(types.ErrEmpty)
	}
	return leftmost(t.head).data, nil
}

// Max returns the largest element.
func (t *Tree[T]) Max() (T, error) {
	if t.head == nil {
		var zero T
		return zero, errors.WithStack(types.ErrEmpty)
	}
	n := t.head
	for n.right != nil {
		n = n.right
	}
	return n.data, nil
}

// Height returns the number of levels in the tree.
func (t *Tree[T]) Height() uint64 {
	return height(t.head)
}

// Clear removes all the elements. Nodes are returned to the pool for reuse.
func (t *Tree[T]) Clear() {
	t.deallocate(t.head)
	t.head = nil
	t.length = 0
}

// Free removes all the elements and releases node memory. Comparator is kept so tree might be reused.
func (t *Tree[T]) Free() {
	t.Clear()
	t.pool.Reset()
}

// Verify checks that ordering holds for every node and that length matches the number of nodes.
func (t *Tree[T]) Verify() error {
	var count uint64
	if err := t.verify(t.head, nil, nil, &count); err != nil {
		return err
	}
	if count != t.length {
		return errors.Wrapf(types.ErrCorrupted, "%d nodes, length %d", count, t.length)
	}
	return nil
}

func (t *Tree[T]) insert(n *node[T], v T) (*node[T], error) {
	if n == nil {
		n = t.pool.Allocate()
		n.data = v
		return n, nil
	}

	result, err := t.cmp(v, n.data)
	if err != nil {
		return nil, err
	}

	switch result {
	case -1:
		left, err := t.insert(n.left, v)
		if err != nil {
			return nil, err
		}
		n.left = left
	case 1:
		right, err := t.insert(n.right, v)
		if err != nil {
			return nil, err
		}
		n.right = right
	default:
		return nil, errors.WithStack(types.ErrDuplicate)
	}

	return n, nil
}

func (t *Tree[T]) remove(n *node[T], v T, removed *T) (*node[T], error) {
	if n == nil {
		return nil, errors.WithStack(types.ErrNotFound)
	}

	result, err := t.cmp(v, n.data)
	if err != nil {
		return nil, err
	}

	switch result {
	case -1:
		left, err := t.remove(n.left, v, removed)
		if err != nil {
			return nil, err
		}
		n.left = left
		return n, nil
	case 1:
		right, err := t.remove(n.right, v, removed)
		if err != nil {
			return nil, err
		}
		n.right = right
		return n, nil
	}

	*removed = n.data
	switch {
	case n.left == nil:
		right := n.right
		t.pool.Deallocate(n)
		return right, nil
	case n.right == nil:
		left := n.left
		t.pool.Deallocate(n)
		return left, nil
	}

	// Node keeps its position and takes the payload of the in-order successor removed from the right subtree,
	// where it has no left child. Node is modified only after the removal succeeds.
	var successor T
	right, err := t.remove(n.right, leftmost(n.right).data, &successor)
	if err != nil {
		return nil, err
	}
	n.data = successor
	n.right = right
	return n, nil
}

func (t *Tree[T]) verify(n *node[T], lower, upper *T, count *uint64) error {
	if n == nil {
		return nil
	}
	*count++

	if lower != nil {
		result, err := t.cmp(n.data, *lower)
		if err != nil {
			return err
		}
		if result != 1 {
			return errors.Wrap(types.ErrCorrupted, "element is not greater than its lower bound")
		}
	}
	if upper != nil {
		result, err := t.cmp(n.data, *upper)
		if err != nil {
			return err
		}
		if result != -1 {
			return errors.Wrap(types.ErrCorrupted, "element is not less than its upper bound")
		}
	}

	if err := t.verify(n.left, lower, &n.data, count); err != nil {
		return err
	}
	return t.verify(n.right, &n.data, upper, count)
}

func (t *Tree[T]) cmp(a, b T) (int, error) {
	result := t.compare(a, b)
	if result < -1 || result > 1 {
		return 0, errors.Wrapf(types.ErrComparator, "result: %d", result)
	}
	return result, nil
}

func (t *Tree[T]) deallocate(n *node[T]) {
	if n == nil {
		return
	}
	t.deallocate(n.left)
	t.deallocate(n.right)
	t.pool.Deallocate(n)
}

func leftmost[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func height[T any](n *node[T]) uint64 {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}
