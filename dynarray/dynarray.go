package dynarray

import (
	"github.com/pkg/errors"

	"github.com/outofforest/dats/types"
)

// New creates new dynamic array with the initial capacity.
func New[T comparable](capacity uint64) (*Array[T], error) {
	if capacity == 0 {
		return nil, errors.Wrap(types.ErrInvalidArgument, "capacity must be greater than 0")
	}
	return NewSized[T](capacity), nil
}

// NewSized creates new dynamic array with the initial capacity. Zero capacity creates empty array growing on the
// first Add, the same way array does after Free.
func NewSized[T comparable](capacity uint64) *Array[T] {
	return &Array[T]{
		items: make([]T, capacity),
	}
}

// Array is the growable contiguous buffer of elements.
// Capacity is doubled when it is exceeded and never shrinks.
type Array[T comparable] struct {
	items  []T
	length uint64
}

// Length returns the number of live elements.
func (a *Array[T]) Length() uint64 {
	return a.length
}

// Capacity returns the number of elements which fit without growing.
func (a *Array[T]) Capacity() uint64 {
	return uint64(len(a.items))
}

// Add appends element.
func (a *Array[T]) Add(v T) {
	a.ensureCapacity(a.length + 1)
	a.items[a.length] = v
	a.length++
}

// Insert overwrites element at index. It never grows the array.
func (a *Array[T]) Insert(index uint64, v T) error {
	if index >= a.length {
		return errors.Wrapf(types.ErrOutOfRange, "index %d, length %d", index, a.length)
	}
	a.items[index] = v
	return nil
}

// Remove removes the first element equal to v, shifting following ones left.
func (a *Array[T]) Remove(v T) error {
	index, err := a.FindIndex(v)
	if err != nil {
		return err
	}

	copy(a.items[index:a.length-1], a.items[index+1:a.length])
	a.length--

	var zero T
	a.items[a.length] = zero
	return nil
}

// Truncate drops elements starting from length n.
func (a *Array[T]) Truncate(n uint64) error {
	if n > a.length {
		return errors.Wrapf(types.ErrOutOfRange, "truncating to %d, length %d", n, a.length)
	}
	clear(a.items[n:a.length])
	a.length = n
	return nil
}

// Get returns element at index.
func (a *Array[T]) Get(index uint64) (T, error) {
	if index >= a.length {
		var zero T
		return zero, errors.Wrapf(types.ErrOutOfRange, "index %d, length %d", index, a.length)
	}
	return a.items[index], nil
}

// Ref returns pointer to the element at index. Pointer is valid until next mutating call.
func (a *Array[T]) Ref(index uint64) (*T, error) {
	if index >= a.length {
		return nil, errors.Wrapf(types.ErrOutOfRange, "index %d, length %d", index, a.length)
	}
	return &a.items[index], nil
}

// FindIndex returns the index of the first element equal to v.
func (a *Array[T]) FindIndex(v T) (uint64, error) {
	for i := range a.length {
		if a.items[i] == v {
			return i, nil
		}
	}
	return 0, errors.WithStack(types.ErrNotFound)
}

// Contains checks if element equal to v exists.
func (a *Array[T]) Contains(v T) bool {
	_, err := a.FindIndex(v)
	return err == nil
}

// Iterator iterates over live elements.
func (a *Array[T]) Iterator() func(func(uint64, T) bool) {
	return func(yield func(uint64, T) bool) {
		for i := range a.length {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

// Map calls f for every live element.
func (a *Array[T]) Map(f func(T)) {
	for _, v := range a.Iterator() {
		f(v)
	}
}

// Clear sets length to 0 keeping allocated buffer.
func (a *Array[T]) Clear() {
	clear(a.items[:a.length])
	a.length = 0
}

// Free releases the buffer. Array might still be used, it starts empty with no capacity.
func (a *Array[T]) Free() {
	a.items = nil
	a.length = 0
}

func (a *Array[T]) ensureCapacity(capacity uint64) {
	current := uint64(len(a.items))
	if capacity <= current {
		return
	}

	newCapacity := max(current, 1)
	for newCapacity < capacity {
		newCapacity *= 2
	}

	items := make([]T, newCapacity)
	copy(items, a.items[:a.length])
	a.items = items
}
