package queue

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
)

// StacksQueue - A FIFO queue implemented over two LIFO stacks.
// Items are pushed onto an inbound stack and transferred lazily to an outbound stack
// only when the outbound stack runs dry, which makes Dequeue and Peek O(1) amortized.
type StacksQueue[T any] struct {
	in  []T
	out []T
}

// NewStacksQueue - Returns a pointer to a new empty StacksQueue instance
func NewStacksQueue[T any]() *StacksQueue[T] {
	return &StacksQueue[T]{}
}

// Enqueue - Adds an item to the rear of the queue, O(1)
func (S *StacksQueue[T]) Enqueue(item T) {
	S.in = append(S.in, item)
}

// Dequeue - Removes and returns the item at the front of the queue, O(1) amortized.
//
// It returns:
//   - item is the front item of the queue
//   - err is of type crt.EmptyContainer if the queue is empty
func (S *StacksQueue[T]) Dequeue() (item T, err error) {
	S.transfer()

	if len(S.out) == 0 {
		err = crt.EmptyContainer{}
		return
	}

	item = S.out[len(S.out)-1]
	S.out = S.out[:len(S.out)-1]

	return
}

// Peek - Returns the item at the front of the queue without removing it, O(1) amortized.
//
// It returns:
//   - item is the front item of the queue
//   - err is of type crt.EmptyContainer if the queue is empty
func (S *StacksQueue[T]) Peek() (item T, err error) {
	S.transfer()

	if len(S.out) == 0 {
		err = crt.EmptyContainer{}
		return
	}

	item = S.out[len(S.out)-1]

	return
}

// IsEmpty - Returns true if the queue holds no items
func (S *StacksQueue[T]) IsEmpty() bool {
	return len(S.in) == 0 && len(S.out) == 0
}

// Len - Returns the number of items in the queue
func (S *StacksQueue[T]) Len() int {
	return len(S.in) + len(S.out)
}

// Values - Returns the items of the queue from front to rear
func (S *StacksQueue[T]) Values() []T {
	values := make([]T, 0, S.Len())
	for i := len(S.out) - 1; i >= 0; i-- {
		values = append(values, S.out[i])
	}
	values = append(values, S.in...)

	return values
}

// String - Returns a string representation of the queue from front to rear
func (S *StacksQueue[T]) String() string {
	values := S.Values()
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = fmt.Sprintf("%v", value)
	}

	return fmt.Sprintf("Queue: [%s] (Front -> Rear)", strings.Join(parts, ", "))
}

// transfer - Moves all items from the inbound stack to the outbound stack, but only
// when the outbound stack is empty. Transferring earlier would break the FIFO order.
func (S *StacksQueue[T]) transfer() {
	if len(S.out) == 0 {
		for i := len(S.in) - 1; i >= 0; i-- {
			S.out = append(S.out, S.in[i])
		}
		S.in = S.in[:0]
	}
}
