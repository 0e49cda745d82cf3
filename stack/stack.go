package stack

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
)

// Stack - A LIFO stack backed by a growing slice.
// The zero value is not ready for use, call NewStack.
type Stack[T any] struct {
	items []T
}

// NewStack - Returns a pointer to a new empty Stack instance
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{items: make([]T, 0)}
}

// Push - Adds an item to the top of the stack, O(1) amortized
func (S *Stack[T]) Push(item T) {
	S.items = append(S.items, item)
}

// Pop - Removes and returns the top item from the stack, O(1).
//
// It returns:
//   - item is the top item of the stack
//   - err is of type crt.EmptyContainer if the stack is empty
func (S *Stack[T]) Pop() (item T, err error) {
	if S.IsEmpty() {
		err = crt.EmptyContainer{}
		return
	}

	item = S.items[len(S.items)-1]
	S.items = S.items[:len(S.items)-1]

	return
}

// Peek - Returns the top item without removing it, O(1).
//
// It returns:
//   - item is the top item of the stack
//   - err is of type crt.EmptyContainer if the stack is empty
func (S *Stack[T]) Peek() (item T, err error) {
	if S.IsEmpty() {
		err = crt.EmptyContainer{}
		return
	}

	item = S.items[len(S.items)-1]

	return
}

// IsEmpty - Returns true if the stack holds no items
func (S *Stack[T]) IsEmpty() bool {
	return len(S.items) == 0
}

// Clear - Removes all items from the stack
func (S *Stack[T]) Clear() {
	S.items = S.items[:0]
}

// Len - Returns the number of items in the stack
func (S *Stack[T]) Len() int {
	return len(S.items)
}

// Values - Returns the items of the stack from top to bottom
func (S *Stack[T]) Values() []T {
	values := make([]T, 0, len(S.items))
	for i := len(S.items) - 1; i >= 0; i-- {
		values = append(values, S.items[i])
	}

	return values
}

// String - Returns a string representation with the top item first
func (S *Stack[T]) String() string {
	parts := make([]string, 0, len(S.items))
	for i := len(S.items) - 1; i >= 0; i-- {
		parts = append(parts, fmt.Sprintf("%v", S.items[i]))
	}

	return fmt.Sprintf("Top -> [%s]", strings.Join(parts, ", "))
}
