package queue

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
)

// node - A single node in the linked queue
type node[T any] struct {
	data T
	next *node[T]
}

// Queue - A FIFO queue implemented over a singly linked list with front and rear pointers.
// Enqueue and Dequeue are both O(1).
type Queue[T any] struct {
	front *node[T]
	rear  *node[T]
	size  int
}

// NewQueue - Returns a pointer to a new empty Queue instance
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue - Adds an item to the rear of the queue, O(1)
func (Q *Queue[T]) Enqueue(item T) {
	n := &node[T]{data: item}

	if Q.rear == nil {
		// Queue is empty, the new node is both front and rear
		Q.front = n
		Q.rear = n
	} else {
		Q.rear.next = n
		Q.rear = n
	}

	Q.size++
}

// Dequeue - Removes and returns the item at the front of the queue, O(1).
//
// It returns:
//   - item is the front item of the queue
//   - err is of type crt.EmptyContainer if the queue is empty
func (Q *Queue[T]) Dequeue() (item T, err error) {
	if Q.front == nil {
		err = crt.EmptyContainer{}
		return
	}

	item = Q.front.data
	Q.front = Q.front.next

	// Dropping the last node leaves rear dangling unless reset
	if Q.front == nil {
		Q.rear = nil
	}

	Q.size--

	return
}

// Peek - Returns the front item without removing it, O(1).
//
// It returns:
//   - item is the front item of the queue
//   - err is of type crt.EmptyContainer if the queue is empty
func (Q *Queue[T]) Peek() (item T, err error) {
	if Q.front == nil {
		err = crt.EmptyContainer{}
		return
	}

	item = Q.front.data

	return
}

// IsEmpty - Returns true if the queue holds no items
func (Q *Queue[T]) IsEmpty() bool {
	return Q.front == nil
}

// Len - Returns the number of items in the queue
func (Q *Queue[T]) Len() int {
	return Q.size
}

// Values - Returns the items of the queue from front to rear
func (Q *Queue[T]) Values() []T {
	values := make([]T, 0, Q.size)
	for n := Q.front; n != nil; n = n.next {
		values = append(values, n.data)
	}

	return values
}

// String - Returns a string representation from front to rear
func (Q *Queue[T]) String() string {
	parts := make([]string, 0, Q.size)
	for n := Q.front; n != nil; n = n.next {
		parts = append(parts, fmt.Sprintf("%v", n.data))
	}

	return fmt.Sprintf("Queue: [%s] (Front -> Rear)", strings.Join(parts, ", "))
}
