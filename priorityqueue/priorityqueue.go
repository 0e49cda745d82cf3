package priorityqueue

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
)

// entry - A single heap entry. A removed entry stays in the heap as a tombstone until
// it surfaces at the root, where it is discarded.
type entry[T comparable] struct {
	priority float64
	seq      uint64
	item     T
	removed  bool
}

// PriorityQueue - A min-priority queue over a binary heap with lazy deletion.
// Items with lower priority values are popped first, ties are broken by insertion order.
// Removing or reprioritizing an item tombstones its heap entry instead of searching the
// heap for it, which keeps all operations O(log n) amortized.
type PriorityQueue[T comparable] struct {
	heap   []*entry[T]
	finder map[T]*entry[T]
	seq    uint64
}

// NewPriorityQueue - Returns a pointer to a new empty PriorityQueue instance
func NewPriorityQueue[T comparable]() *PriorityQueue[T] {
	return &PriorityQueue[T]{
		heap:   make([]*entry[T], 0),
		finder: make(map[T]*entry[T]),
	}
}

// Push - Adds an item with the given priority, O(log n).
// If the item is already present its priority is updated instead.
func (P *PriorityQueue[T]) Push(item T, priority float64) {
	if old, ok := P.finder[item]; ok {
		old.removed = true
	}

	e := &entry[T]{priority: priority, seq: P.seq, item: item}
	P.seq++
	P.finder[item] = e

	P.heap = append(P.heap, e)
	P.siftUp(len(P.heap) - 1)
}

// Pop - Removes and returns the item with the lowest priority, O(log n) amortized.
// Tombstoned entries surfacing at the root are discarded along the way.
//
// It returns:
//   - item is the item with the lowest priority value
//   - priority is the priority the item was stored with
//   - err is of type crt.EmptyContainer if the queue is empty
func (P *PriorityQueue[T]) Pop() (item T, priority float64, err error) {
	P.discardRemoved()

	if len(P.heap) == 0 {
		err = crt.EmptyContainer{}
		return
	}

	e := P.heap[0]
	P.popRoot()
	delete(P.finder, e.item)

	item = e.item
	priority = e.priority

	return
}

// Peek - Returns the item with the lowest priority without removing it, O(1) amortized.
//
// It returns:
//   - item is the item with the lowest priority value
//   - priority is the priority the item was stored with
//   - err is of type crt.EmptyContainer if the queue is empty
func (P *PriorityQueue[T]) Peek() (item T, priority float64, err error) {
	P.discardRemoved()

	if len(P.heap) == 0 {
		err = crt.EmptyContainer{}
		return
	}

	item = P.heap[0].item
	priority = P.heap[0].priority

	return
}

// Remove - Removes the given item from the queue by tombstoning its heap entry, O(1).
// It returns true if the item was present, false otherwise.
func (P *PriorityQueue[T]) Remove(item T) bool {
	e, ok := P.finder[item]
	if !ok {
		return false
	}

	e.removed = true
	delete(P.finder, item)

	return true
}

// UpdatePriority - Gives an already queued item a new priority, O(log n).
//
// It returns:
//   - err is of type crt.NotFound if the item is not in the queue
func (P *PriorityQueue[T]) UpdatePriority(item T, priority float64) (err error) {
	if _, ok := P.finder[item]; !ok {
		err = crt.NotFound{}
		return
	}

	P.Push(item, priority)

	return
}

// Contains - Returns true if the given item is queued
func (P *PriorityQueue[T]) Contains(item T) bool {
	_, ok := P.finder[item]
	return ok
}

// IsEmpty - Returns true if the queue holds no live items
func (P *PriorityQueue[T]) IsEmpty() bool {
	return len(P.finder) == 0
}

// Len - Returns the number of live items in the queue, tombstones excluded
func (P *PriorityQueue[T]) Len() int {
	return len(P.finder)
}

// Clear - Removes all items from the queue
func (P *PriorityQueue[T]) Clear() {
	P.heap = P.heap[:0]
	P.finder = make(map[T]*entry[T])
}

// String - Returns a string representation of the live items in heap order
func (P *PriorityQueue[T]) String() string {
	parts := make([]string, 0, len(P.finder))
	for _, e := range P.heap {
		if !e.removed {
			parts = append(parts, fmt.Sprintf("%v: %g", e.item, e.priority))
		}
	}

	return fmt.Sprintf("PriorityQueue{%s}", strings.Join(parts, ", "))
}

// discardRemoved - Pops tombstoned entries off the root until a live entry or an empty heap remains
func (P *PriorityQueue[T]) discardRemoved() {
	for len(P.heap) > 0 && P.heap[0].removed {
		P.popRoot()
	}
}

// popRoot - Removes the root entry, moves the last entry into its place and sifts it down
func (P *PriorityQueue[T]) popRoot() {
	last := len(P.heap) - 1
	P.heap[0] = P.heap[last]
	P.heap = P.heap[:last]

	if len(P.heap) > 0 {
		P.siftDown(0)
	}
}

// less - Orders entries by priority with insertion order as tie breaker
func (P *PriorityQueue[T]) less(i, j int) bool {
	if P.heap[i].priority != P.heap[j].priority {
		return P.heap[i].priority < P.heap[j].priority
	}

	return P.heap[i].seq < P.heap[j].seq
}

// siftUp - Moves the entry at the given index up until its parent is not after it
func (P *PriorityQueue[T]) siftUp(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if !P.less(index, parent) {
			break
		}

		P.heap[index], P.heap[parent] = P.heap[parent], P.heap[index]
		index = parent
	}
}

// siftDown - Moves the entry at the given index down until no child is before it
func (P *PriorityQueue[T]) siftDown(index int) {
	size := len(P.heap)
	for {
		first := index
		left := 2*index + 1
		right := 2*index + 2

		if left < size && P.less(left, first) {
			first = left
		}
		if right < size && P.less(right, first) {
			first = right
		}
		if first == index {
			break
		}

		P.heap[index], P.heap[first] = P.heap[first], P.heap[index]
		index = first
	}
}
