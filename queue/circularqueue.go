package queue

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
)

// CircularQueue - A bounded FIFO queue over a fixed size ring buffer with modular indexing.
// A full queue rejects further items rather than overwriting the oldest one.
type CircularQueue[T any] struct {
	items    []T
	capacity int
	front    int
	size     int
}

// NewCircularQueue - Returns a new CircularQueue prepared to hold at most capacity items.
//   - capacity is the fixed number of slots in the ring buffer, it must be higher than 0 (zero)
//
// It returns:
//   - queue is a pointer to a CircularQueue struct
//   - err is a normal Go error which should be nil if everything went ok
func NewCircularQueue[T any](capacity int) (queue *CircularQueue[T], err error) {
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	queue = &CircularQueue[T]{
		items:    make([]T, capacity),
		capacity: capacity,
	}

	return
}

// Enqueue - Adds an item to the rear of the queue, O(1).
//
// It returns:
//   - err is of type crt.ContainerFull if the queue has reached its capacity
func (C *CircularQueue[T]) Enqueue(item T) (err error) {
	if C.IsFull() {
		err = crt.ContainerFull{}
		return
	}

	// Rear index is (front + size) % capacity
	rear := (C.front + C.size) % C.capacity
	C.items[rear] = item
	C.size++

	return
}

// Dequeue - Removes and returns the item at the front of the queue, O(1).
//
// It returns:
//   - item is the front item of the queue
//   - err is of type crt.EmptyContainer if the queue is empty
func (C *CircularQueue[T]) Dequeue() (item T, err error) {
	if C.IsEmpty() {
		err = crt.EmptyContainer{}
		return
	}

	item = C.items[C.front]

	// Zero the vacated slot so the ring holds no stale references
	var zero T
	C.items[C.front] = zero

	C.front = (C.front + 1) % C.capacity
	C.size--

	return
}

// Peek - Returns the front item without removing it, O(1).
//
// It returns:
//   - item is the front item of the queue
//   - err is of type crt.EmptyContainer if the queue is empty
func (C *CircularQueue[T]) Peek() (item T, err error) {
	if C.IsEmpty() {
		err = crt.EmptyContainer{}
		return
	}

	item = C.items[C.front]

	return
}

// IsEmpty - Returns true if the queue holds no items
func (C *CircularQueue[T]) IsEmpty() bool {
	return C.size == 0
}

// IsFull - Returns true if the queue has reached its capacity
func (C *CircularQueue[T]) IsFull() bool {
	return C.size == C.capacity
}

// Len - Returns the number of items in the queue
func (C *CircularQueue[T]) Len() int {
	return C.size
}

// Cap - Returns the fixed capacity of the queue
func (C *CircularQueue[T]) Cap() int {
	return C.capacity
}

// String - Returns a string representation from front to rear
func (C *CircularQueue[T]) String() string {
	if C.IsEmpty() {
		return "[]"
	}

	parts := make([]string, 0, C.size)
	i := C.front
	for n := 0; n < C.size; n++ {
		parts = append(parts, fmt.Sprintf("%v", C.items[i]))
		i = (i + 1) % C.capacity
	}

	return fmt.Sprintf("[%s]", strings.Join(parts, " <- "))
}
