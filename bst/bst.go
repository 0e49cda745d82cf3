package bst

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
	"golang.org/x/exp/constraints"
)

// node - A single node in the binary search tree
type node[T constraints.Ordered] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree - An unbalanced binary search tree. Every value in a node's left subtree is less
// than the node's value and every value in its right subtree is greater. Duplicates are
// rejected. Insert and Search are O(h) where h is the height of the tree.
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
}

// NewTree - Returns a pointer to a new empty Tree instance
func NewTree[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Insert - Inserts a value into the tree (iterative).
// It returns true if the value was inserted, false if it was already present.
func (B *Tree[T]) Insert(value T) bool {
	n := &node[T]{value: value}

	if B.root == nil {
		B.root = n
		B.size++
		return true
	}

	current := B.root
	for {
		if value < current.value {
			if current.left == nil {
				current.left = n
				B.size++
				return true
			}
			current = current.left
		} else if value > current.value {
			if current.right == nil {
				current.right = n
				B.size++
				return true
			}
			current = current.right
		} else {
			return false
		}
	}
}

// InsertMany - Inserts all given values into the tree
func (B *Tree[T]) InsertMany(values []T) {
	for _, value := range values {
		B.Insert(value)
	}
}

// Search - Returns true if the given value exists in the tree (iterative)
func (B *Tree[T]) Search(value T) bool {
	current := B.root
	for current != nil {
		if value == current.value {
			return true
		} else if value < current.value {
			current = current.left
		} else {
			current = current.right
		}
	}

	return false
}

// Delete - Removes a value from the tree.
// A node with two children is replaced by its in-order successor, the smallest value
// in its right subtree. It returns true if the value was removed, false if not found.
func (B *Tree[T]) Delete(value T) bool {
	var parent *node[T]
	current := B.root

	for current != nil && current.value != value {
		parent = current
		if value < current.value {
			current = current.left
		} else {
			current = current.right
		}
	}

	if current == nil {
		return false
	}

	if current.left != nil && current.right != nil {
		// Two children, find the in-order successor and take over its value,
		// then remove the successor node instead
		succParent := current
		succ := current.right
		for succ.left != nil {
			succParent = succ
			succ = succ.left
		}

		current.value = succ.value
		parent = succParent
		current = succ
	}

	// current now has at most one child
	var child *node[T]
	if current.left != nil {
		child = current.left
	} else {
		child = current.right
	}

	if parent == nil {
		B.root = child
	} else if parent.left == current {
		parent.left = child
	} else {
		parent.right = child
	}

	B.size--

	return true
}

// Min - Returns the smallest value in the tree.
//
// It returns:
//   - value is the leftmost value of the tree
//   - err is of type crt.EmptyContainer if the tree is empty
func (B *Tree[T]) Min() (value T, err error) {
	if B.root == nil {
		err = crt.EmptyContainer{}
		return
	}

	current := B.root
	for current.left != nil {
		current = current.left
	}

	value = current.value

	return
}

// Max - Returns the largest value in the tree.
//
// It returns:
//   - value is the rightmost value of the tree
//   - err is of type crt.EmptyContainer if the tree is empty
func (B *Tree[T]) Max() (value T, err error) {
	if B.root == nil {
		err = crt.EmptyContainer{}
		return
	}

	current := B.root
	for current.right != nil {
		current = current.right
	}

	value = current.value

	return
}

// Height - Returns the number of nodes on the longest path from the root to a leaf.
// An empty tree has height 0 (zero).
func (B *Tree[T]) Height() int {
	return height(B.root)
}

// Len - Returns the number of values in the tree
func (B *Tree[T]) Len() int {
	return B.size
}

// IsEmpty - Returns true if the tree holds no values
func (B *Tree[T]) IsEmpty() bool {
	return B.root == nil
}

// InOrder - Returns the values of the tree in sorted order (left, root, right)
func (B *Tree[T]) InOrder() []T {
	result := make([]T, 0, B.size)
	inOrder(B.root, &result)

	return result
}

// PreOrder - Returns the values of the tree in pre-order (root, left, right)
func (B *Tree[T]) PreOrder() []T {
	result := make([]T, 0, B.size)
	preOrder(B.root, &result)

	return result
}

// PostOrder - Returns the values of the tree in post-order (left, right, root)
func (B *Tree[T]) PostOrder() []T {
	result := make([]T, 0, B.size)
	postOrder(B.root, &result)

	return result
}

// LevelOrder - Returns the values of the tree level by level, top down and left to right
func (B *Tree[T]) LevelOrder() [][]T {
	if B.root == nil {
		return [][]T{}
	}

	result := make([][]T, 0)
	queue := []*node[T]{B.root}

	for len(queue) > 0 {
		levelSize := len(queue)
		level := make([]T, 0, levelSize)

		for i := 0; i < levelSize; i++ {
			n := queue[0]
			queue = queue[1:]
			level = append(level, n.value)

			if n.left != nil {
				queue = append(queue, n.left)
			}
			if n.right != nil {
				queue = append(queue, n.right)
			}
		}

		result = append(result, level)
	}

	return result
}

// IsBalanced - Returns true if for every node the heights of its subtrees differ by at most one
func (B *Tree[T]) IsBalanced() bool {
	balanced, _ := checkBalance(B.root)
	return balanced
}

// String - Returns a string representation with the values in sorted order
func (B *Tree[T]) String() string {
	parts := make([]string, 0, B.size)
	for _, value := range B.InOrder() {
		parts = append(parts, fmt.Sprintf("%v", value))
	}

	return fmt.Sprintf("Tree(inorder=[%s])", strings.Join(parts, ", "))
}

// height - Recursively calculates the height of a subtree
func height[T constraints.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}

	left := height(n.left)
	right := height(n.right)
	if left > right {
		return left + 1
	}

	return right + 1
}

// inOrder - Recursively collects values left, root, right
func inOrder[T constraints.Ordered](n *node[T], result *[]T) {
	if n != nil {
		inOrder(n.left, result)
		*result = append(*result, n.value)
		inOrder(n.right, result)
	}
}

// preOrder - Recursively collects values root, left, right
func preOrder[T constraints.Ordered](n *node[T], result *[]T) {
	if n != nil {
		*result = append(*result, n.value)
		preOrder(n.left, result)
		preOrder(n.right, result)
	}
}

// postOrder - Recursively collects values left, right, root
func postOrder[T constraints.Ordered](n *node[T], result *[]T) {
	if n != nil {
		postOrder(n.left, result)
		postOrder(n.right, result)
		*result = append(*result, n.value)
	}
}

// checkBalance - Returns whether the subtree is height balanced together with its height
func checkBalance[T constraints.Ordered](n *node[T]) (balanced bool, h int) {
	if n == nil {
		return true, 0
	}

	leftBalanced, leftHeight := checkBalance(n.left)
	rightBalanced, rightHeight := checkBalance(n.right)

	diff := leftHeight - rightHeight
	if diff < 0 {
		diff = -diff
	}

	h = leftHeight + 1
	if rightHeight+1 > h {
		h = rightHeight + 1
	}

	balanced = leftBalanced && rightBalanced && diff <= 1

	return
}
