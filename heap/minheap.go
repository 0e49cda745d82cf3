package heap

import (
	"fmt"

	"github.com/gostonefire/collections/crt"
	"golang.org/x/exp/constraints"
)

// MinHeap - An array backed binary min heap. The smallest value always sits at the root,
// and every parent is less than or equal to its children. Insert and Extract are O(log n).
type MinHeap[T constraints.Ordered] struct {
	items []T
}

// NewMinHeap - Returns a pointer to a new empty MinHeap instance
func NewMinHeap[T constraints.Ordered]() *MinHeap[T] {
	return &MinHeap[T]{items: make([]T, 0)}
}

// Insert - Adds a value to the heap and sifts it up to its place, O(log n)
func (H *MinHeap[T]) Insert(value T) {
	H.items = append(H.items, value)
	H.siftUp(len(H.items) - 1)
}

// Extract - Removes and returns the smallest value in the heap, O(log n).
// The last item takes the root's place and is sifted down.
//
// It returns:
//   - value is the smallest value of the heap
//   - err is of type crt.EmptyContainer if the heap is empty
func (H *MinHeap[T]) Extract() (value T, err error) {
	if len(H.items) == 0 {
		err = crt.EmptyContainer{}
		return
	}

	value = H.items[0]
	last := len(H.items) - 1
	H.items[0] = H.items[last]
	H.items = H.items[:last]

	if len(H.items) > 0 {
		H.siftDown(0)
	}

	return
}

// Peek - Returns the smallest value without removing it, O(1).
//
// It returns:
//   - value is the smallest value of the heap
//   - err is of type crt.EmptyContainer if the heap is empty
func (H *MinHeap[T]) Peek() (value T, err error) {
	if len(H.items) == 0 {
		err = crt.EmptyContainer{}
		return
	}

	value = H.items[0]

	return
}

// Replace - Removes the smallest value and adds a new one in a single sift, O(log n).
// More efficient than an Extract followed by an Insert.
//
// It returns:
//   - value is the smallest value of the heap before the replacement
//   - err is of type crt.EmptyContainer if the heap is empty
func (H *MinHeap[T]) Replace(newValue T) (value T, err error) {
	if len(H.items) == 0 {
		err = crt.EmptyContainer{}
		return
	}

	value = H.items[0]
	H.items[0] = newValue
	H.siftDown(0)

	return
}

// Build - Replaces the heap contents with the given values and heapifies them in O(n).
// Sifting down from the last parent is cheaper than inserting one value at a time.
func (H *MinHeap[T]) Build(values []T) {
	H.items = make([]T, len(values))
	copy(H.items, values)

	for i := len(H.items)/2 - 1; i >= 0; i-- {
		H.siftDown(i)
	}
}

// IsEmpty - Returns true if the heap holds no values
func (H *MinHeap[T]) IsEmpty() bool {
	return len(H.items) == 0
}

// Len - Returns the number of values in the heap
func (H *MinHeap[T]) Len() int {
	return len(H.items)
}

// Values - Returns the values in heap order, which is not sorted order
func (H *MinHeap[T]) Values() []T {
	values := make([]T, len(H.items))
	copy(values, H.items)

	return values
}

// String - Returns a string representation of the heap array
func (H *MinHeap[T]) String() string {
	return fmt.Sprintf("MinHeap(%v)", H.items)
}

// siftUp - Moves the value at the given index up until its parent is not greater
func (H *MinHeap[T]) siftUp(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if H.items[index] >= H.items[parent] {
			break
		}

		H.items[index], H.items[parent] = H.items[parent], H.items[index]
		index = parent
	}
}

// siftDown - Moves the value at the given index down until no child is smaller
func (H *MinHeap[T]) siftDown(index int) {
	size := len(H.items)
	for {
		smallest := index
		left := 2*index + 1
		right := 2*index + 2

		if left < size && H.items[left] < H.items[smallest] {
			smallest = left
		}
		if right < size && H.items[right] < H.items[smallest] {
			smallest = right
		}
		if smallest == index {
			break
		}

		H.items[index], H.items[smallest] = H.items[smallest], H.items[index]
		index = smallest
	}
}
