package deque

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
)

// defaultCapacity - Initial ring buffer size for a CircularDeque
const defaultCapacity = 8

// CircularDeque - A double-ended queue over a circular array with geometric resizing.
// End operations are O(1) amortized, the buffer doubles when full and shrinks to half
// when only a quarter of it is in use.
type CircularDeque[T any] struct {
	items    []T
	capacity int
	front    int
	size     int
}

// NewCircularDeque - Returns a pointer to a new empty CircularDeque with the default initial capacity
func NewCircularDeque[T any]() *CircularDeque[T] {
	return &CircularDeque[T]{
		items:    make([]T, defaultCapacity),
		capacity: defaultCapacity,
	}
}

// PushFront - Adds an item to the front of the deque, O(1) amortized
func (C *CircularDeque[T]) PushFront(item T) {
	if C.size == C.capacity {
		C.resize(C.capacity * 2)
	}

	C.front = (C.front - 1 + C.capacity) % C.capacity
	C.items[C.front] = item
	C.size++
}

// PushBack - Adds an item to the rear of the deque, O(1) amortized
func (C *CircularDeque[T]) PushBack(item T) {
	if C.size == C.capacity {
		C.resize(C.capacity * 2)
	}

	rear := (C.front + C.size) % C.capacity
	C.items[rear] = item
	C.size++
}

// PopFront - Removes and returns the front item, O(1) amortized.
//
// It returns:
//   - item is the front item of the deque
//   - err is of type crt.EmptyContainer if the deque is empty
func (C *CircularDeque[T]) PopFront() (item T, err error) {
	if C.size == 0 {
		err = crt.EmptyContainer{}
		return
	}

	item = C.items[C.front]

	var zero T
	C.items[C.front] = zero

	C.front = (C.front + 1) % C.capacity
	C.size--

	C.shrinkIfSparse()

	return
}

// PopBack - Removes and returns the rear item, O(1) amortized.
//
// It returns:
//   - item is the rear item of the deque
//   - err is of type crt.EmptyContainer if the deque is empty
func (C *CircularDeque[T]) PopBack() (item T, err error) {
	if C.size == 0 {
		err = crt.EmptyContainer{}
		return
	}

	rear := (C.front + C.size - 1) % C.capacity
	item = C.items[rear]

	var zero T
	C.items[rear] = zero

	C.size--

	C.shrinkIfSparse()

	return
}

// Front - Returns the front item without removing it, O(1).
//
// It returns:
//   - item is the front item of the deque
//   - err is of type crt.EmptyContainer if the deque is empty
func (C *CircularDeque[T]) Front() (item T, err error) {
	if C.size == 0 {
		err = crt.EmptyContainer{}
		return
	}

	item = C.items[C.front]

	return
}

// Back - Returns the rear item without removing it, O(1).
//
// It returns:
//   - item is the rear item of the deque
//   - err is of type crt.EmptyContainer if the deque is empty
func (C *CircularDeque[T]) Back() (item T, err error) {
	if C.size == 0 {
		err = crt.EmptyContainer{}
		return
	}

	item = C.items[(C.front+C.size-1)%C.capacity]

	return
}

// IsEmpty - Returns true if the deque holds no items
func (C *CircularDeque[T]) IsEmpty() bool {
	return C.size == 0
}

// Len - Returns the number of items in the deque
func (C *CircularDeque[T]) Len() int {
	return C.size
}

// Cap - Returns the current capacity of the backing buffer
func (C *CircularDeque[T]) Cap() int {
	return C.capacity
}

// Values - Returns the items of the deque from front to rear
func (C *CircularDeque[T]) Values() []T {
	values := make([]T, 0, C.size)
	for i := 0; i < C.size; i++ {
		values = append(values, C.items[(C.front+i)%C.capacity])
	}

	return values
}

// String - Returns a string representation from front to rear
func (C *CircularDeque[T]) String() string {
	parts := make([]string, 0, C.size)
	for i := 0; i < C.size; i++ {
		parts = append(parts, fmt.Sprintf("%v", C.items[(C.front+i)%C.capacity]))
	}

	return fmt.Sprintf("CircularDeque([%s])", strings.Join(parts, ", "))
}

// resize - Moves all items into a new buffer of the given capacity with front reset to index 0 (zero)
func (C *CircularDeque[T]) resize(newCapacity int) {
	items := make([]T, newCapacity)
	for i := 0; i < C.size; i++ {
		items[i] = C.items[(C.front+i)%C.capacity]
	}

	C.items = items
	C.capacity = newCapacity
	C.front = 0
}

// shrinkIfSparse - Halves the buffer when at most a quarter of it is in use.
// The buffer never shrinks below the default capacity.
func (C *CircularDeque[T]) shrinkIfSparse() {
	if C.capacity > defaultCapacity && C.size <= C.capacity/4 {
		newCapacity := C.capacity / 2
		if newCapacity < defaultCapacity {
			newCapacity = defaultCapacity
		}
		C.resize(newCapacity)
	}
}
