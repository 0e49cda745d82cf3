package hashtable

import (
	"fmt"
	"strings"
)

// HashSet - An unordered set of unique values backed by the runtime map, giving O(1) amortized
// membership operations. The algebraic operations return new sets and leave their operands untouched.
type HashSet[T comparable] struct {
	items map[T]struct{}
}

// NewHashSet - Returns a pointer to a new HashSet instance holding the given values
func NewHashSet[T comparable](values ...T) *HashSet[T] {
	set := &HashSet[T]{items: make(map[T]struct{}, len(values))}
	for _, value := range values {
		set.items[value] = struct{}{}
	}

	return set
}

// Add - Adds the given value to the set.
// It returns true if the value was added, false if it was already present.
func (S *HashSet[T]) Add(value T) bool {
	if _, ok := S.items[value]; ok {
		return false
	}

	S.items[value] = struct{}{}

	return true
}

// Remove - Removes the given value from the set.
// It returns true if the value was removed, false if it was not present.
func (S *HashSet[T]) Remove(value T) bool {
	if _, ok := S.items[value]; !ok {
		return false
	}

	delete(S.items, value)

	return true
}

// Contains - Returns true if the given value is in the set
func (S *HashSet[T]) Contains(value T) bool {
	_, ok := S.items[value]
	return ok
}

// Union - Returns a new set holding the values present in either set
func (S *HashSet[T]) Union(other *HashSet[T]) *HashSet[T] {
	result := NewHashSet[T]()
	for value := range S.items {
		result.items[value] = struct{}{}
	}
	for value := range other.items {
		result.items[value] = struct{}{}
	}

	return result
}

// Intersection - Returns a new set holding the values present in both sets.
// The smaller set is the one iterated.
func (S *HashSet[T]) Intersection(other *HashSet[T]) *HashSet[T] {
	small, large := S, other
	if len(large.items) < len(small.items) {
		small, large = large, small
	}

	result := NewHashSet[T]()
	for value := range small.items {
		if _, ok := large.items[value]; ok {
			result.items[value] = struct{}{}
		}
	}

	return result
}

// Difference - Returns a new set holding the values present in this set but not in the other
func (S *HashSet[T]) Difference(other *HashSet[T]) *HashSet[T] {
	result := NewHashSet[T]()
	for value := range S.items {
		if _, ok := other.items[value]; !ok {
			result.items[value] = struct{}{}
		}
	}

	return result
}

// IsSubset - Returns true if every value in this set is also in the other
func (S *HashSet[T]) IsSubset(other *HashSet[T]) bool {
	if len(S.items) > len(other.items) {
		return false
	}

	for value := range S.items {
		if _, ok := other.items[value]; !ok {
			return false
		}
	}

	return true
}

// IsSuperset - Returns true if every value in the other set is also in this one
func (S *HashSet[T]) IsSuperset(other *HashSet[T]) bool {
	return other.IsSubset(S)
}

// Values - Returns the values of the set in no particular order
func (S *HashSet[T]) Values() []T {
	values := make([]T, 0, len(S.items))
	for value := range S.items {
		values = append(values, value)
	}

	return values
}

// IsEmpty - Returns true if the set holds no values
func (S *HashSet[T]) IsEmpty() bool {
	return len(S.items) == 0
}

// Len - Returns the number of values in the set
func (S *HashSet[T]) Len() int {
	return len(S.items)
}

// Clear - Removes all values from the set
func (S *HashSet[T]) Clear() {
	S.items = make(map[T]struct{})
}

// String - Returns a string representation of the set in no particular order
func (S *HashSet[T]) String() string {
	parts := make([]string, 0, len(S.items))
	for value := range S.items {
		parts = append(parts, fmt.Sprintf("%v", value))
	}

	return fmt.Sprintf("HashSet{%s}", strings.Join(parts, ", "))
}
