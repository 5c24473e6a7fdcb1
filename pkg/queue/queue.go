package queue

// Queue represents a basic FIFO queue.
type Queue[T any] interface {
	Enqueue(item T)
	Size() int
	ReadAll() []T
	Clear()
}
