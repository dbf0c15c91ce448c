package stack

import (
	"github.com/outofforest/dats/list"
)

// New creates new stack.
func New[T comparable]() *Stack[T] {
	return &Stack[T]{
		list: list.New[T](),
	}
}

// Stack is the LIFO stack built on the list head.
type Stack[T comparable] struct {
	list *list.List[T]
}

// Push puts element on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.list.InsertHead(v)
}

// Pop removes the top element and returns it.
func (s *Stack[T]) Pop() (T, error) {
	return s.list.RemoveHead()
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	return s.list.Head()
}

// Get returns element at index, 0 being the top.
func (s *Stack[T]) Get(index uint64) (T, error) {
	return s.list.Get(index)
}

// Contains checks if element equal to v is on the stack.
func (s *Stack[T]) Contains(v T) bool {
	return s.list.Contains(v)
}

// Length returns the number of elements.
func (s *Stack[T]) Length() uint64 {
	return s.list.Length()
}

// Iterator iterates over elements from the top.
func (s *Stack[T]) Iterator() func(func(T) bool) {
	return s.list.Iterator()
}

// Clear removes all the elements.
func (s *Stack[T]) Clear() {
	s.list.Clear()
}

// Free removes all the elements and releases memory.
func (s *Stack[T]) Free() {
	s.list.Free()
}
