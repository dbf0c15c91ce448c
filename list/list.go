package list

import (
	"github.com/pkg/errors"

	"github.com/outofforest/dats/alloc"
	"github.com/outofforest/dats/types"
)

type node[T comparable] struct {
	next *node[T]
	data T
}

// New creates new list.
func New[T comparable]() *List[T] {
	return &List[T]{
		pool: alloc.NewPool[node[T]](alloc.DefaultBlockSize),
	}
}

// List is the singly-linked list keeping both head and tail.
type List[T comparable] struct {
	pool   *alloc.Pool[node[T]]
	head   *node[T]
	tail   *node[T]
	length uint64
}

// Length returns the number of elements.
func (l *List[T]) Length() uint64 {
	return l.length
}

// InsertHead inserts element before the first one.
func (l *List[T]) InsertHead(v T) {
	n := l.newNode(v)
	n.next = l.head
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.length++
}

// InsertTail inserts element after the last one.
func (l *List[T]) InsertTail(v T) {
	n := l.newNode(v)
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

// InsertAt inserts element so it takes the position index. Index equal to length appends.
func (l *List[T]) InsertAt(index uint64, v T) error {
	switch {
	case index > l.length:
		return errors.Wrapf(types.ErrOutOfRange, "index %d, length %d", index, l.length)
	case index == 0:
		l.InsertHead(v)
		return nil
	case index == l.length:
		l.InsertTail(v)
		return nil
	}

	prev := l.nodeAt(index - 1)
	n := l.newNode(v)
	n.next = prev.next
	prev.next = n
	l.length++
	return nil
}

// RemoveHead removes the first element and returns it.
func (l *List[T]) RemoveHead() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errors.WithStack(types.ErrEmpty)
	}

	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	return l.release(n), nil
}

// RemoveTail removes the last element and returns it.
func (l *List[T]) RemoveTail() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, errors.WithStack(types.ErrEmpty)
	}
	if l.head == l.tail {
		return l.RemoveHead()
	}

	prev := l.nodeAt(l.length - 2)
	n := prev.next
	prev.next = nil
	l.tail = prev
	return l.release(n), nil
}

// RemoveAt removes element at index and returns it.
func (l *List[T]) RemoveAt(index uint64) (T, error) {
	switch {
	case l.length == 0:
		var zero T
		return zero, errors.WithStack(types.ErrEmpty)
	case index >= l.length:
		var zero T
		return zero, errors.Wrapf(types.ErrOutOfRange, "index %d, length %d", index, l.length)
	case index == 0:
		return l.RemoveHead()
	case index == l.length-1:
		return l.RemoveTail()
	}

	prev := l.nodeAt(index - 1)
	n := prev.next
	prev.next = n.next
	return l.release(n), nil
}

// Get returns element at index.
func (l *List[T]) Get(index uint64) (T, error) {
	if index >= l.length {
		var zero T
		return zero, errors.Wrapf(types.ErrOutOfRange, "index %d, length %d", index, l.length)
	}
	return l.nodeAt(index).data, nil
}

// Head returns the first element.
func (l *List[T]) Head() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errors.WithStack(types.ErrEmpty)
	}
	return l.head.data, nil
}

// Tail returns the last element.
func (l *List[T]) Tail() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, errors.WithStack(types.ErrEmpty)
	}
	return l.tail.data, nil
}

// Find returns index of the first element equal to v.
func (l *List[T]) Find(v T) (uint64, error) {
	if l.length == 0 {
		return 0, errors.WithStack(types.ErrEmpty)
	}

	var index uint64
	for n := l.head; n != nil; n = n.next {
		if n.data == v {
			return index, nil
		}
		index++
	}
	return 0, errors.WithStack(types.ErrNotFound)
}

// Contains checks if element equal to v exists.
func (l *List[T]) Contains(v T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.data == v {
			return true
		}
	}
	return false
}

// Iterator iterates over elements from head to tail.
func (l *List[T]) Iterator() func(func(T) bool) {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Map calls f for every element from head to tail.
func (l *List[T]) Map(f func(T)) {
	for v := range l.Iterator() {
		f(v)
	}
}

// Clear removes all the elements. Nodes are kept in the pool for reuse.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		l.pool.Deallocate(n)
		n = next
	}
	l.head = nil
	l.tail = nil
	l.length = 0
}

// Free removes all the elements and releases node memory.
func (l *List[T]) Free() {
	l.head = nil
	l.tail = nil
	l.length = 0
	l.pool.Reset()
}

func (l *List[T]) newNode(v T) *node[T] {
	n := l.pool.Allocate()
	n.data = v
	return n
}

func (l *List[T]) release(n *node[T]) T {
	v := n.data
	l.pool.Deallocate(n)
	l.length--
	return v
}

func (l *List[T]) nodeAt(index uint64) *node[T] {
	n := l.head
	for range index {
		n = n.next
	}
	return n
}
