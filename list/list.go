package list

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
)

// node - A single node in the singly linked list
type node[T comparable] struct {
	data T
	next *node[T]
}

// List - A singly linked list with head and tail pointers, which makes both
// Append and Prepend O(1). Index based operations walk the chain and are O(n).
type List[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewList - Returns a pointer to a new empty List instance
func NewList[T comparable]() *List[T] {
	return &List[T]{}
}

// Append - Adds an item at the end of the list, O(1)
func (L *List[T]) Append(item T) {
	n := &node[T]{data: item}

	if L.head == nil {
		L.head = n
		L.tail = n
	} else {
		L.tail.next = n
		L.tail = n
	}

	L.size++
}

// Prepend - Adds an item at the beginning of the list, O(1)
func (L *List[T]) Prepend(item T) {
	n := &node[T]{data: item}

	if L.head == nil {
		L.head = n
		L.tail = n
	} else {
		n.next = L.head
		L.head = n
	}

	L.size++
}

// Insert - Inserts an item at the given index, O(n).
// Inserting at index 0 (zero) is equivalent to Prepend and inserting at index Len() to Append.
//
// It returns:
//   - err is of type crt.OutOfRange if the index is negative or beyond the length of the list
func (L *List[T]) Insert(index int, item T) (err error) {
	if index < 0 || index > L.size {
		err = crt.OutOfRange{}
		return
	}

	if index == 0 {
		L.Prepend(item)
		return
	}
	if index == L.size {
		L.Append(item)
		return
	}

	n := &node[T]{data: item}
	current := L.head
	for i := 0; i < index-1; i++ {
		current = current.next
	}

	n.next = current.next
	current.next = n
	L.size++

	return
}

// PopFront - Removes and returns the first item, O(1).
//
// It returns:
//   - item is the data of the removed head node
//   - err is of type crt.EmptyContainer if the list is empty
func (L *List[T]) PopFront() (item T, err error) {
	if L.head == nil {
		err = crt.EmptyContainer{}
		return
	}

	item = L.head.data
	if L.head == L.tail {
		L.head = nil
		L.tail = nil
	} else {
		L.head = L.head.next
	}

	L.size--

	return
}

// Pop - Removes and returns the last item. The list is singly linked so reaching
// the node before the tail requires a walk, O(n).
//
// It returns:
//   - item is the data of the removed tail node
//   - err is of type crt.EmptyContainer if the list is empty
func (L *List[T]) Pop() (item T, err error) {
	if L.tail == nil {
		err = crt.EmptyContainer{}
		return
	}

	item = L.tail.data
	if L.head == L.tail {
		L.head = nil
		L.tail = nil
	} else {
		current := L.head
		for current.next != L.tail {
			current = current.next
		}

		current.next = nil
		L.tail = current
	}

	L.size--

	return
}

// Remove - Deletes the first occurrence of the given item, O(n).
// It returns true if an item was removed, false if no occurrence was found.
func (L *List[T]) Remove(item T) bool {
	if L.head == nil {
		return false
	}

	if L.head.data == item {
		L.head = L.head.next
		if L.head == nil {
			L.tail = nil
		}
		L.size--
		return true
	}

	for current := L.head; current.next != nil; current = current.next {
		if current.next.data == item {
			if current.next == L.tail {
				L.tail = current
			}
			current.next = current.next.next
			L.size--
			return true
		}
	}

	return false
}

// RemoveAt - Deletes the node at the given index and returns its data, O(n).
//
// It returns:
//   - item is the data of the removed node
//   - err is of type crt.OutOfRange if the index is outside the list
func (L *List[T]) RemoveAt(index int) (item T, err error) {
	if index < 0 || index >= L.size {
		err = crt.OutOfRange{}
		return
	}

	if index == 0 {
		return L.PopFront()
	}

	current := L.head
	for i := 0; i < index-1; i++ {
		current = current.next
	}

	item = current.next.data
	if current.next == L.tail {
		L.tail = current
	}
	current.next = current.next.next
	L.size--

	return
}

// IndexOf - Returns the index of the first occurrence of the given item, or -1 if not found, O(n)
func (L *List[T]) IndexOf(item T) int {
	index := 0
	for current := L.head; current != nil; current = current.next {
		if current.data == item {
			return index
		}
		index++
	}

	return -1
}

// Get - Returns the item at the given index, O(n).
//
// It returns:
//   - item is the data at the given index
//   - err is of type crt.OutOfRange if the index is outside the list
func (L *List[T]) Get(index int) (item T, err error) {
	if index < 0 || index >= L.size {
		err = crt.OutOfRange{}
		return
	}

	current := L.head
	for i := 0; i < index; i++ {
		current = current.next
	}

	item = current.data

	return
}

// Head - Returns the first item without removing it, O(1).
//
// It returns:
//   - item is the data of the head node
//   - err is of type crt.EmptyContainer if the list is empty
func (L *List[T]) Head() (item T, err error) {
	if L.head == nil {
		err = crt.EmptyContainer{}
		return
	}

	item = L.head.data

	return
}

// Tail - Returns the last item without removing it, O(1).
//
// It returns:
//   - item is the data of the tail node
//   - err is of type crt.EmptyContainer if the list is empty
func (L *List[T]) Tail() (item T, err error) {
	if L.tail == nil {
		err = crt.EmptyContainer{}
		return
	}

	item = L.tail.data

	return
}

// IsEmpty - Returns true if the list holds no items
func (L *List[T]) IsEmpty() bool {
	return L.head == nil
}

// Reverse - Reverses the list in place, O(n)
func (L *List[T]) Reverse() {
	if L.head == nil || L.head.next == nil {
		return
	}

	var prev *node[T]
	current := L.head
	L.tail = L.head

	for current != nil {
		next := current.next
		current.next = prev
		prev = current
		current = next
	}

	L.head = prev
}

// Values - Returns the items of the list in order
func (L *List[T]) Values() []T {
	values := make([]T, 0, L.size)
	for current := L.head; current != nil; current = current.next {
		values = append(values, current.data)
	}

	return values
}

// Len - Returns the number of items in the list
func (L *List[T]) Len() int {
	return L.size
}

// String - Returns a string representation of the list
func (L *List[T]) String() string {
	parts := make([]string, 0, L.size)
	for current := L.head; current != nil; current = current.next {
		parts = append(parts, fmt.Sprintf("%v", current.data))
	}

	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
