package list

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
)

// dnode - A single node in the doubly linked list
type dnode[T comparable] struct {
	data T
	next *dnode[T]
	prev *dnode[T]
}

// DoubleList - A doubly linked list with head and tail pointers.
// Index based operations walk from whichever end is nearer to the index.
type DoubleList[T comparable] struct {
	head *dnode[T]
	tail *dnode[T]
	size int
}

// NewDoubleList - Returns a pointer to a new empty DoubleList instance
func NewDoubleList[T comparable]() *DoubleList[T] {
	return &DoubleList[T]{}
}

// Append - Adds an item at the end of the list, O(1)
func (D *DoubleList[T]) Append(item T) {
	n := &dnode[T]{data: item}

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

// Prepend - Adds an item at the beginning of the list, O(1)
func (D *DoubleList[T]) Prepend(item T) {
	n := &dnode[T]{data: item}

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

// Get - Returns the item at the given index, O(n) worst case but walking from the nearer end.
//
// It returns:
//   - item is the data at the given index
//   - err is of type crt.OutOfRange if the index is outside the list
func (D *DoubleList[T]) Get(index int) (item T, err error) {
	n, err := D.nodeAt(index)
	if err != nil {
		return
	}

	item = n.data

	return
}

// Set - Replaces the item at the given index, O(n) worst case but walking from the nearer end.
//
// It returns:
//   - err is of type crt.OutOfRange if the index is outside the list
func (D *DoubleList[T]) Set(index int, item T) (err error) {
	n, err := D.nodeAt(index)
	if err != nil {
		return
	}

	n.data = item

	return
}

// RemoveAt - Deletes the node at the given index and returns its data, O(n) worst case.
//
// It returns:
//   - item is the data of the removed node
//   - err is of type crt.OutOfRange if the index is outside the list
func (D *DoubleList[T]) RemoveAt(index int) (item T, err error) {
	n, err := D.nodeAt(index)
	if err != nil {
		return
	}

	item = n.data

	if n.prev == nil {
		D.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		D.tail = n.prev
	} else {
		n.next.prev = n.prev
	}

	D.size--

	return
}

// Contains - Returns true if the given item exists in the list, O(n)
func (D *DoubleList[T]) Contains(item T) bool {
	for n := D.head; n != nil; n = n.next {
		if n.data == item {
			return true
		}
	}

	return false
}

// IsEmpty - Returns true if the list holds no items
func (D *DoubleList[T]) IsEmpty() bool {
	return D.size == 0
}

// Values - Returns the items of the list from head to tail
func (D *DoubleList[T]) Values() []T {
	values := make([]T, 0, D.size)
	for n := D.head; n != nil; n = n.next {
		values = append(values, n.data)
	}

	return values
}

// ReversedValues - Returns the items of the list from tail to head
func (D *DoubleList[T]) ReversedValues() []T {
	values := make([]T, 0, D.size)
	for n := D.tail; n != nil; n = n.prev {
		values = append(values, n.data)
	}

	return values
}

// Len - Returns the number of items in the list
func (D *DoubleList[T]) Len() int {
	return D.size
}

// String - Returns a string representation of the list
func (D *DoubleList[T]) String() string {
	parts := make([]string, 0, D.size)
	for n := D.head; n != nil; n = n.next {
		parts = append(parts, fmt.Sprintf("%v", n.data))
	}

	return fmt.Sprintf("[%s]", strings.Join(parts, " <-> "))
}

// nodeAt - Returns the node at the given index, walking from the end nearest to it.
//
// It returns:
//   - n is the node at the given index
//   - err is of type crt.OutOfRange if the index is outside the list
func (D *DoubleList[T]) nodeAt(index int) (n *dnode[T], err error) {
	if index < 0 || index >= D.size {
		err = crt.OutOfRange{}
		return
	}

	if index < D.size/2 {
		n = D.head
		for i := 0; i < index; i++ {
			n = n.next
		}
	} else {
		n = D.tail
		for i := D.size - 1; i > index; i-- {
			n = n.prev
		}
	}

	return
}
