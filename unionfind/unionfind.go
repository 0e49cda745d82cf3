package unionfind

import (
	"fmt"

	"github.com/gostonefire/collections/crt"
)

// UnionFind - A disjoint set forest over the elements 0 to n-1 using union by rank and path
// compression, which makes Find and Union effectively constant time. The number of disjoint
// components is maintained incrementally.
type UnionFind struct {
	parent     []int
	rank       []int
	components int
}

// NewUnionFind - Returns a pointer to a new UnionFind instance where every element starts
// as its own component
//
// It returns:
//   - uf is a pointer to the created instance
//   - err if the number of elements is not positive
func NewUnionFind(elements int) (uf *UnionFind, err error) {
	if elements <= 0 {
		err = fmt.Errorf("number of elements must be positive")
		return
	}

	parent := make([]int, elements)
	for i := range parent {
		parent[i] = i
	}

	uf = &UnionFind{
		parent:     parent,
		rank:       make([]int, elements),
		components: elements,
	}

	return
}

// Find - Returns the root element of the component holding the given element.
// Every element along the walk is pointed directly at the root, flattening the tree.
//
// It returns:
//   - root is the component representative
//   - err is of type crt.OutOfRange if the element is outside 0 to n-1
func (U *UnionFind) Find(element int) (root int, err error) {
	if element < 0 || element >= len(U.parent) {
		err = crt.OutOfRange{}
		return
	}

	root = element
	for U.parent[root] != root {
		root = U.parent[root]
	}

	for U.parent[element] != root {
		U.parent[element], element = root, U.parent[element]
	}

	return
}

// Union - Joins the components holding the two given elements. The shallower tree is hung
// under the deeper one to keep the forest flat.
//
// It returns:
//   - joined is true if the elements were in different components
//   - err is of type crt.OutOfRange if either element is outside 0 to n-1
func (U *UnionFind) Union(a, b int) (joined bool, err error) {
	rootA, err := U.Find(a)
	if err != nil {
		return
	}
	rootB, err := U.Find(b)
	if err != nil {
		return
	}

	if rootA == rootB {
		return
	}

	if U.rank[rootA] < U.rank[rootB] {
		rootA, rootB = rootB, rootA
	}
	U.parent[rootB] = rootA
	if U.rank[rootA] == U.rank[rootB] {
		U.rank[rootA]++
	}

	U.components--
	joined = true

	return
}

// Connected - Returns true if the two given elements are in the same component.
//
// It returns:
//   - connected is true if the elements share a root
//   - err is of type crt.OutOfRange if either element is outside 0 to n-1
func (U *UnionFind) Connected(a, b int) (connected bool, err error) {
	rootA, err := U.Find(a)
	if err != nil {
		return
	}
	rootB, err := U.Find(b)
	if err != nil {
		return
	}

	connected = rootA == rootB

	return
}

// Components - Returns the current number of disjoint components
func (U *UnionFind) Components() int {
	return U.components
}

// Len - Returns the number of elements in the forest
func (U *UnionFind) Len() int {
	return len(U.parent)
}

// String - Returns a string representation with element count and component count
func (U *UnionFind) String() string {
	return fmt.Sprintf("UnionFind(%d elements, %d components)", len(U.parent), U.components)
}
