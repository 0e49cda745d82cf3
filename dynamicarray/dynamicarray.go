package dynamicarray

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
)

// DynamicArray - A growable array with manually managed capacity.
// The backing buffer starts at capacity 1, doubles when full and halves when only a
// quarter of it is in use. Negative indices address items from the end.
type DynamicArray[T any] struct {
	items    []T
	size     int
	capacity int
}

// NewDynamicArray - Returns a pointer to a new empty DynamicArray instance
func NewDynamicArray[T any]() *DynamicArray[T] {
	return &DynamicArray[T]{
		items:    make([]T, 1),
		capacity: 1,
	}
}

// Append - Adds an item at the end of the array, O(1) amortized
func (D *DynamicArray[T]) Append(item T) {
	if D.size == D.capacity {
		D.resize(D.capacity * 2)
	}

	D.items[D.size] = item
	D.size++
}

// Get - Returns the item at the given index, O(1).
// Negative indices address items from the end, so Get(-1) is the last item.
//
// It returns:
//   - item is the item at the given index
//   - err is of type crt.OutOfRange if the index is outside the array
func (D *DynamicArray[T]) Get(index int) (item T, err error) {
	index, err = D.normalize(index)
	if err != nil {
		return
	}

	item = D.items[index]

	return
}

// Set - Replaces the item at the given index, O(1).
// Negative indices address items from the end.
//
// It returns:
//   - err is of type crt.OutOfRange if the index is outside the array
func (D *DynamicArray[T]) Set(index int, item T) (err error) {
	index, err = D.normalize(index)
	if err != nil {
		return
	}

	D.items[index] = item

	return
}

// InsertAt - Inserts an item at the given index shifting later items one step right, O(n).
// Inserting at index Len() is equivalent to Append.
//
// It returns:
//   - err is of type crt.OutOfRange if the index is negative or beyond the length of the array
func (D *DynamicArray[T]) InsertAt(index int, item T) (err error) {
	if index < 0 || index > D.size {
		err = crt.OutOfRange{}
		return
	}

	if D.size == D.capacity {
		D.resize(D.capacity * 2)
	}

	for i := D.size; i > index; i-- {
		D.items[i] = D.items[i-1]
	}

	D.items[index] = item
	D.size++

	return
}

// RemoveAt - Removes the item at the given index shifting later items one step left, O(n).
//
// It returns:
//   - item is the removed item
//   - err is of type crt.OutOfRange if the index is outside the array
func (D *DynamicArray[T]) RemoveAt(index int) (item T, err error) {
	index, err = D.normalize(index)
	if err != nil {
		return
	}

	item = D.items[index]

	for i := index; i < D.size-1; i++ {
		D.items[i] = D.items[i+1]
	}

	var zero T
	D.items[D.size-1] = zero
	D.size--

	// Reclaim space when the buffer gets sparse
	if D.capacity > 1 && D.size <= D.capacity/4 {
		D.resize(D.capacity / 2)
	}

	return
}

// Len - Returns the number of items in the array
func (D *DynamicArray[T]) Len() int {
	return D.size
}

// Cap - Returns the current capacity of the backing buffer
func (D *DynamicArray[T]) Cap() int {
	return D.capacity
}

// Values - Returns a copy of the items in the array
func (D *DynamicArray[T]) Values() []T {
	values := make([]T, D.size)
	copy(values, D.items[:D.size])

	return values
}

// String - Returns a string representation of the array
func (D *DynamicArray[T]) String() string {
	parts := make([]string, 0, D.size)
	for i := 0; i < D.size; i++ {
		parts = append(parts, fmt.Sprintf("%v", D.items[i]))
	}

	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

// resize - Moves the items into a new backing buffer of the given capacity
func (D *DynamicArray[T]) resize(newCapacity int) {
	if newCapacity < 1 {
		newCapacity = 1
	}

	items := make([]T, newCapacity)
	copy(items, D.items[:D.size])

	D.items = items
	D.capacity = newCapacity
}

// normalize - Translates a possibly negative index to its positive form and range checks it.
//
// It returns:
//   - normalized is the index counted from the start of the array
//   - err is of type crt.OutOfRange if the index is outside the array
func (D *DynamicArray[T]) normalize(index int) (normalized int, err error) {
	if index < -D.size || index >= D.size {
		err = crt.OutOfRange{}
		return
	}

	normalized = index
	if normalized < 0 {
		normalized += D.size
	}

	return
}
