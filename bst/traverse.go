package bst

import (
	"github.com/pkg/errors"

	"github.com/outofforest/dats/queue"
	"github.com/outofforest/dats/types"
)

// Iterator iterates over elements in the requested order. Unknown order yields nothing.
func (t *Tree[T]) Iterator(order types.Order) func(func(T) bool) {
	return func(yield func(T) bool) {
		switch order {
		case types.PreOrder:
			preOrder(t.head, yield)
		case types.InOrder:
			inOrder(t.head, yield)
		case types.PostOrder:
			postOrder(t.head, yield)
		case types.LevelOrder:
			levelOrder(t.head, yield)
		}
	}
}

// Traverse calls visit for every element in the requested order.
func (t *Tree[T]) Traverse(order types.Order, visit func(T)) error {
	if order > types.LevelOrder {
		return errors.Wrapf(types.ErrInvalidArgument, "unknown order %d", order)
	}
	for v := range t.Iterator(order) {
		visit(v)
	}
	return nil
}

// ToArray returns elements in level order. Tree is not modified.
// Level order goes through the list-backed queue whose Dequeue is O(n), so it costs O(n^2).
func (t *Tree[T]) ToArray() []T {
	values := make([]T, 0, t.length)
	for v := range t.Iterator(types.LevelOrder) {
		values = append(values, v)
	}
	return values
}

// Drain returns elements in level order and empties the tree, releasing every node on the way.
// Like ToArray it costs O(n^2).
func (t *Tree[T]) Drain() []T {
	values := make([]T, 0, t.length)

	q := newNodeQueue(t.head)
	t.head = nil
	t.length = 0

	for {
		n, err := q.Dequeue()
		if err != nil {
			break
		}
		values = append(values, n.data)
		enqueueChildren(q, n)
		t.pool.Deallocate(n)
	}
	q.Free()

	return values
}

func preOrder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.data) && preOrder(n.left, yield) && preOrder(n.right, yield)
}

func inOrder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.data) && inOrder(n.right, yield)
}

func postOrder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return postOrder(n.left, yield) && postOrder(n.right, yield) && yield(n.data)
}

func levelOrder[T any](head *node[T], yield func(T) bool) {
	q := newNodeQueue(head)
	defer q.Free()

	for {
		n, err := q.Dequeue()
		if err != nil {
			return
		}
		if !yield(n.data) {
			return
		}
		enqueueChildren(q, n)
	}
}

func newNodeQueue[T any](head *node[T]) *queue.Queue[*node[T]] {
	q := queue.New[*node[T]]()
	if head != nil {
		q.Enqueue(head)
	}
	return q
}

func enqueueChildren[T any](q *queue.Queue[*node[T]], n *node[T]) {
	if n.left != nil {
		q.Enqueue(n.left)
	}
	if n.right != nil {
		q.Enqueue(n.right)
	}
}
