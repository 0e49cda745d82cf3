package deque

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
)

// node - A single node in the doubly linked deque
type node[T any] struct {
	data T
	next *node[T]
	prev *node[T]
}

// Deque - A double-ended queue implemented over a doubly linked list.
// All four end operations are O(1).
type Deque[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewDeque - Returns a pointer to a new empty Deque instance
func NewDeque[T comparable]() *Deque[T] {
	return &Deque[T]{}
}

// PushFront - Adds an item to the front of the deque, O(1)
func (D *Deque[T]) PushFront(item T) {
	n := &node[T]{data: item}

	if D.head == nil {
		D.head = n
		D.tail = n
	} else {
		n.next = D.head
		D.head.prev = n
		D.head = n
	}

	D.size++
}

// PushBack - Adds an item to the rear of the deque, O(1)
func (D *Deque[T]) PushBack(item T) {
	n := &node[T]{data: item}

	if D.head == nil {
		D.head = n
		D.tail = n
	} else {
		n.prev = D.tail
		D.tail.next = n
		D.tail = n
	}

	D.size++
}

// PopFront - Removes and returns the front item, O(1).
//
// It returns:
//   - item is the front item of the deque
//   - err is of type crt.EmptyContainer if the deque is empty
func (D *Deque[T]) PopFront() (item T, err error) {
	if D.head == nil {
		err = crt.EmptyContainer{}
		return
	}

	item = D.head.data

	if D.size == 1 {
		D.head = nil
		D.tail = nil
	} else {
		D.head = D.head.next
		D.head.prev = nil
	}

	D.size--

	return
}

// PopBack - Removes and returns the rear item, O(1).
//
// It returns:
//   - item is the rear item of the deque
//   - err is of type crt.EmptyContainer if the deque is empty
func (D *Deque[T]) PopBack() (item T, err error) {
	if D.tail == nil {
		err = crt.EmptyContainer{}
		return
	}

	item = D.tail.data

	if D.size == 1 {
		D.head = nil
		D.tail = nil
	} else {
		D.tail = D.tail.prev
		D.tail.next = nil
	}

	D.size--

	return
}

// Front - Returns the front item without removing it, O(1).
//
// It returns:
//   - item is the front item of the deque
//   - err is of type crt.EmptyContainer if the deque is empty
func (D *Deque[T]) Front() (item T, err error) {
	if D.head == nil {
		err = crt.EmptyContainer{}
		return
	}

	item = D.head.data

	return
}

// Back - Returns the rear item without removing it, O(1).
//
// It returns:
//   - item is the rear item of the deque
//   - err is of type crt.EmptyContainer if the deque is empty
func (D *Deque[T]) Back() (item T, err error) {
	if D.tail == nil {
		err = crt.EmptyContainer{}
		return
	}

	item = D.tail.data

	return
}

// At - Returns the item at the given position, O(n).
// Negative indices address items from the rear, so At(-1) is the rear item.
//
// It returns:
//   - item is the item at the given position
//   - err is of type crt.OutOfRange if the index is outside the deque
func (D *Deque[T]) At(index int) (item T, err error) {
	if index < -D.size || index >= D.size {
		err = crt.OutOfRange{}
		return
	}

	if index < 0 {
		index += D.size
	}

	n := D.head
	for i := 0; i < index; i++ {
		n = n.next
	}

	item = n.data

	return
}

// Contains - Returns true if the given item exists in the deque, O(n)
func (D *Deque[T]) Contains(item T) bool {
	for n := D.head; n != nil; n = n.next {
		if n.data == item {
			return true
		}
	}

	return false
}

// IsEmpty - Returns true if the deque holds no items
func (D *Deque[T]) IsEmpty() bool {
	return D.size == 0
}

// Clear - Removes all items from the deque
func (D *Deque[T]) Clear() {
	D.head = nil
	D.tail = nil
	D.size = 0
}

// Len - Returns the number of items in the deque
func (D *Deque[T]) Len() int {
	return D.size
}

// Values - Returns the items of the deque from front to rear
func (D *Deque[T]) Values() []T {
	values := make([]T, 0, D.size)
	for n := D.head; n != nil; n = n.next {
		values = append(values, n.data)
	}

	return values
}

// Reversed - Returns the items of the deque from rear to front
func (D *Deque[T]) Reversed() []T {
	values := make([]T, 0, D.size)
	for n := D.tail; n != nil; n = n.prev {
		values = append(values, n.data)
	}

	return values
}

// Equal - Returns true if the other deque holds the same items in the same order
func (D *Deque[T]) Equal(other *Deque[T]) bool {
	if other == nil || D.size != other.size {
		return false
	}

	a, b := D.head, other.head
	for a != nil {
		if a.data != b.data {
			return false
		}
		a = a.next
		b = b.next
	}

	return true
}

// String - Returns a string representation from front to rear
func (D *Deque[T]) String() string {
	parts := make([]string, 0, D.size)
	for n := D.head; n != nil; n = n.next {
		parts = append(parts, fmt.Sprintf("%v", n.data))
	}

	return fmt.Sprintf("Deque([front: %s :rear])", strings.Join(parts, ", "))
}
