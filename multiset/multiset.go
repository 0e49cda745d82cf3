package multiset

import (
	"fmt"
	"strings"
)

// Multiset - A bag of items where each distinct item carries an occurrence count.
// Add, Remove, Count and Contains are all O(1) average.
type Multiset[T comparable] struct {
	counts map[T]int
	size   int
}

// NewMultiset - Returns a pointer to a new empty Multiset instance
func NewMultiset[T comparable]() *Multiset[T] {
	return &Multiset[T]{counts: make(map[T]int)}
}

// Add - Adds one occurrence of the given item
func (M *Multiset[T]) Add(item T) {
	M.counts[item]++
	M.size++
}

// Remove - Removes one occurrence of the given item.
// It returns true if an occurrence was removed, false if the item was not present.
func (M *Multiset[T]) Remove(item T) bool {
	if M.counts[item] > 0 {
		M.counts[item]--
		M.size--

		// Drop the entry entirely when the count reaches zero
		if M.counts[item] == 0 {
			delete(M.counts, item)
		}

		return true
	}

	return false
}

// Count - Returns the number of occurrences of the given item, 0 (zero) if not present
func (M *Multiset[T]) Count(item T) int {
	return M.counts[item]
}

// Contains - Returns true if at least one occurrence of the given item is present
func (M *Multiset[T]) Contains(item T) bool {
	return M.counts[item] > 0
}

// IsEmpty - Returns true if the multiset holds no items
func (M *Multiset[T]) IsEmpty() bool {
	return M.size == 0
}

// Len - Returns the total number of items, duplicates included
func (M *Multiset[T]) Len() int {
	return M.size
}

// Distinct - Returns the distinct items of the multiset in no particular order
func (M *Multiset[T]) Distinct() []T {
	items := make([]T, 0, len(M.counts))
	for item := range M.counts {
		items = append(items, item)
	}

	return items
}

// Values - Returns all items of the multiset, duplicates included, in no particular order
func (M *Multiset[T]) Values() []T {
	items := make([]T, 0, M.size)
	for item, count := range M.counts {
		for i := 0; i < count; i++ {
			items = append(items, item)
		}
	}

	return items
}

// String - Returns a string representation with items and their counts
func (M *Multiset[T]) String() string {
	parts := make([]string, 0, len(M.counts))
	for item, count := range M.counts {
		parts = append(parts, fmt.Sprintf("%v: %d", item, count))
	}

	return fmt.Sprintf("Multiset{%s}", strings.Join(parts, ", "))
}
