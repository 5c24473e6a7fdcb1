// queue package

package queue

import "sync"

const (
	// DefaultBufferSize is the capacity used when none is given.
	DefaultBufferSize = 64
)

// InMemoryQueue implements an in-memory queue.
// Items beyond the buffer size are dropped.
type InMemoryQueue[T any] struct {
	ch   chan T
	lock sync.RWMutex
}

var _ Queue[int] = &InMemoryQueue[int]{}

// NewInMemoryQueue creates a new queue holding at most size items.
func NewInMemoryQueue[T any](size int) *InMemoryQueue[T] {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &InMemoryQueue[T]{
		ch: make(chan T, size),
	}
}

// Enqueue adds an item to the end of the queue.
func (q *InMemoryQueue[T]) Enqueue(item T) {
	q.lock.Lock()
	defer q.lock.Unlock()
	select {
	case q.ch <- item:
	default:
	}
}

// Size returns the current size of the queue.
func (q *InMemoryQueue[T]) Size() int {
	q.lock.RLock()
	defer q.lock.RUnlock()
	return len(q.ch)
}

// ReadAll removes and returns all pending items in order.
func (q *InMemoryQueue[T]) ReadAll() []T {
	q.lock.Lock()
	defer q.lock.Unlock()

	var items []T
	for len(q.ch) > 0 {
		items = append(items, <-q.ch)
	}

	return items
}

// Clear drops all pending items.
func (q *InMemoryQueue[T]) Clear() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for len(q.ch) > 0 {
		<-q.ch
	}
}
