package queue

import (
	"github.com/outofforest/dats/list"
)

// New creates new queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{
		list: list.New[T](),
	}
}

// Queue is the FIFO queue. Elements are enqueued at the list head and dequeued from its tail.
type Queue[T comparable] struct {
	list *list.List[T]
}

// Enqueue adds element to the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.list.InsertHead(v)
}

// Dequeue removes the oldest element and returns it.
func (q *Queue[T]) Dequeue() (T, error) {
	return q.list.RemoveTail()
}

// Peek returns the oldest element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	return q.list.Tail()
}

// Get returns element at index, counting from the most recently enqueued one.
func (q *Queue[T]) Get(index uint64) (T, error) {
	return q.list.Get(index)
}

// Contains checks if element equal to v is queued.
func (q *Queue[T]) Contains(v T) bool {
	return q.list.Contains(v)
}

// Length returns the number of queued elements.
func (q *Queue[T]) Length() uint64 {
	return q.list.Length()
}

// Iterator iterates over elements from the most recently enqueued one.
func (q *Queue[T]) Iterator() func(func(T) bool) {
	return q.list.Iterator()
}

// Map calls f for every element from the most recently enqueued one.
func (q *Queue[T]) Map(f func(T)) {
	q.list.Map(f)
}

// Clear removes all the elements.
func (q *Queue[T]) Clear() {
	q.list.Clear()
}

// Free removes all the elements and releases memory.
func (q *Queue[T]) Free() {
	q.list.Free()
}
