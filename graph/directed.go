package graph

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
)

// Edge - A single edge with its weight
type Edge[V comparable] struct {
	From   V
	To     V
	Weight int
}

// Directed - A weighted directed graph over an adjacency list. Vertices are comparable values,
// edges carry an integer weight. In-degrees are maintained incrementally so InDegree and the
// topological sort need no full edge scan.
type Directed[V comparable] struct {
	adjacency map[V]map[V]int
	inDegree  map[V]int
}

// NewDirected - Returns a pointer to a new empty Directed graph instance
func NewDirected[V comparable]() *Directed[V] {
	return &Directed[V]{
		adjacency: make(map[V]map[V]int),
		inDegree:  make(map[V]int),
	}
}

// AddVertex - Adds a vertex to the graph.
// It returns true if the vertex was added, false if it was already present.
func (G *Directed[V]) AddVertex(vertex V) bool {
	if _, ok := G.adjacency[vertex]; ok {
		return false
	}

	G.adjacency[vertex] = make(map[V]int)
	G.inDegree[vertex] = 0

	return true
}

// AddEdge - Adds an edge from one vertex to another with the given weight.
// Vertices not yet in the graph are added, and an existing edge gets its weight overwritten.
func (G *Directed[V]) AddEdge(from, to V, weight int) {
	G.AddVertex(from)
	G.AddVertex(to)

	if _, ok := G.adjacency[from][to]; !ok {
		G.inDegree[to]++
	}
	G.adjacency[from][to] = weight
}

// RemoveVertex - Removes a vertex and all edges touching it.
// It returns true if the vertex was present, false otherwise.
func (G *Directed[V]) RemoveVertex(vertex V) bool {
	neighbors, ok := G.adjacency[vertex]
	if !ok {
		return false
	}

	for to := range neighbors {
		G.inDegree[to]--
	}
	for from, out := range G.adjacency {
		if from == vertex {
			continue
		}
		if _, ok := out[vertex]; ok {
			delete(out, vertex)
		}
	}

	delete(G.adjacency, vertex)
	delete(G.inDegree, vertex)

	return true
}

// RemoveEdge - Removes the edge between the given vertices.
// It returns true if the edge was present, false otherwise.
func (G *Directed[V]) RemoveEdge(from, to V) bool {
	out, ok := G.adjacency[from]
	if !ok {
		return false
	}
	if _, ok = out[to]; !ok {
		return false
	}

	delete(out, to)
	G.inDegree[to]--

	return true
}

// Neighbors - Returns the vertices reachable over one edge from the given vertex.
//
// It returns:
//   - neighbors are the direct successors in no particular order
//   - err is of type crt.NotFound if the vertex is not in the graph
func (G *Directed[V]) Neighbors(vertex V) (neighbors []V, err error) {
	out, ok := G.adjacency[vertex]
	if !ok {
		err = crt.NotFound{}
		return
	}

	neighbors = make([]V, 0, len(out))
	for to := range out {
		neighbors = append(neighbors, to)
	}

	return
}

// Vertices - Returns all vertices in no particular order
func (G *Directed[V]) Vertices() []V {
	vertices := make([]V, 0, len(G.adjacency))
	for vertex := range G.adjacency {
		vertices = append(vertices, vertex)
	}

	return vertices
}

// Edges - Returns all edges with their weights in no particular order
func (G *Directed[V]) Edges() []Edge[V] {
	edges := make([]Edge[V], 0)
	for from, out := range G.adjacency {
		for to, weight := range out {
			edges = append(edges, Edge[V]{From: from, To: to, Weight: weight})
		}
	}

	return edges
}

// HasVertex - Returns true if the given vertex is in the graph
func (G *Directed[V]) HasVertex(vertex V) bool {
	_, ok := G.adjacency[vertex]
	return ok
}

// HasEdge - Returns true if an edge exists between the given vertices
func (G *Directed[V]) HasEdge(from, to V) bool {
	out, ok := G.adjacency[from]
	if !ok {
		return false
	}
	_, ok = out[to]

	return ok
}

// Weight - Returns the weight of the edge between the given vertices.
//
// It returns:
//   - weight is the weight the edge was added with
//   - err is of type crt.NotFound if the edge is not in the graph
func (G *Directed[V]) Weight(from, to V) (weight int, err error) {
	out, ok := G.adjacency[from]
	if !ok {
		err = crt.NotFound{}
		return
	}

	weight, ok = out[to]
	if !ok {
		err = crt.NotFound{}
	}

	return
}

// UpdateWeight - Sets a new weight on an existing edge.
//
// It returns:
//   - err is of type crt.NotFound if the edge is not in the graph
func (G *Directed[V]) UpdateWeight(from, to V, weight int) (err error) {
	if !G.HasEdge(from, to) {
		err = crt.NotFound{}
		return
	}

	G.adjacency[from][to] = weight

	return
}

// InDegree - Returns the number of edges pointing at the given vertex.
//
// It returns:
//   - degree is the in-degree of the vertex
//   - err is of type crt.NotFound if the vertex is not in the graph
func (G *Directed[V]) InDegree(vertex V) (degree int, err error) {
	degree, ok := G.inDegree[vertex]
	if !ok {
		err = crt.NotFound{}
	}

	return
}

// OutDegree - Returns the number of edges leaving the given vertex.
//
// It returns:
//   - degree is the out-degree of the vertex
//   - err is of type crt.NotFound if the vertex is not in the graph
func (G *Directed[V]) OutDegree(vertex V) (degree int, err error) {
	out, ok := G.adjacency[vertex]
	if !ok {
		err = crt.NotFound{}
		return
	}

	degree = len(out)

	return
}

// BFS - Traverses the graph breadth first from the given start vertex.
//
// It returns:
//   - order is the vertices in visiting order, nearest first
//   - err is of type crt.NotFound if the start vertex is not in the graph
func (G *Directed[V]) BFS(start V) (order []V, err error) {
	if !G.HasVertex(start) {
		err = crt.NotFound{}
		return
	}

	visited := map[V]bool{start: true}
	queue := []V{start}

	for len(queue) > 0 {
		vertex := queue[0]
		queue = queue[1:]
		order = append(order, vertex)

		for neighbor := range G.adjacency[vertex] {
			if !visited[neighbor] {
				visited[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}

	return
}

// DFS - Traverses the graph depth first from the given start vertex.
//
// It returns:
//   - order is the vertices in visiting order
//   - err is of type crt.NotFound if the start vertex is not in the graph
func (G *Directed[V]) DFS(start V) (order []V, err error) {
	if !G.HasVertex(start) {
		err = crt.NotFound{}
		return
	}

	visited := make(map[V]bool)
	stack := []V{start}

	for len(stack) > 0 {
		vertex := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[vertex] {
			continue
		}
		visited[vertex] = true
		order = append(order, vertex)

		for neighbor := range G.adjacency[vertex] {
			if !visited[neighbor] {
				stack = append(stack, neighbor)
			}
		}
	}

	return
}

// HasCycle - Returns true if the graph contains at least one directed cycle.
// Implemented as a Kahn peel off, a cycle exists if not all vertices can be peeled.
func (G *Directed[V]) HasCycle() bool {
	_, err := G.TopologicalSort()
	return err != nil
}

// TopologicalSort - Returns the vertices in a topological order using Kahn's algorithm.
// Vertices with in-degree zero are peeled off in rounds, decrementing the in-degree of
// their successors.
//
// It returns:
//   - order is a valid topological ordering of all vertices
//   - err if the graph contains a cycle and no such ordering exists
func (G *Directed[V]) TopologicalSort() (order []V, err error) {
	inDegree := make(map[V]int, len(G.inDegree))
	for vertex, degree := range G.inDegree {
		inDegree[vertex] = degree
	}

	queue := make([]V, 0)
	for vertex, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, vertex)
		}
	}

	order = make([]V, 0, len(G.adjacency))
	for len(queue) > 0 {
		vertex := queue[0]
		queue = queue[1:]
		order = append(order, vertex)

		for neighbor := range G.adjacency[vertex] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue = append(queue, neighbor)
			}
		}
	}

	if len(order) != len(G.adjacency) {
		order = nil
		err = fmt.Errorf("graph contains a cycle")
	}

	return
}

// WeaklyConnectedComponents - Returns the vertex groups that are connected when edge
// direction is ignored. Each inner slice holds the vertices of one component.
func (G *Directed[V]) WeaklyConnectedComponents() [][]V {
	undirected := make(map[V][]V, len(G.adjacency))
	for from, out := range G.adjacency {
		for to := range out {
			undirected[from] = append(undirected[from], to)
			undirected[to] = append(undirected[to], from)
		}
	}

	visited := make(map[V]bool)
	components := make([][]V, 0)

	for vertex := range G.adjacency {
		if visited[vertex] {
			continue
		}

		component := make([]V, 0)
		stack := []V{vertex}
		visited[vertex] = true

		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, v)

			for _, neighbor := range undirected[v] {
				if !visited[neighbor] {
					visited[neighbor] = true
					stack = append(stack, neighbor)
				}
			}
		}

		components = append(components, component)
	}

	return components
}

// Reverse - Returns a new graph with every edge turned around, weights kept
func (G *Directed[V]) Reverse() *Directed[V] {
	reversed := NewDirected[V]()
	for vertex := range G.adjacency {
		reversed.AddVertex(vertex)
	}
	for from, out := range G.adjacency {
		for to, weight := range out {
			reversed.AddEdge(to, from, weight)
		}
	}

	return reversed
}

// Copy - Returns a deep copy of the graph
func (G *Directed[V]) Copy() *Directed[V] {
	clone := NewDirected[V]()
	for vertex := range G.adjacency {
		clone.AddVertex(vertex)
	}
	for from, out := range G.adjacency {
		for to, weight := range out {
			clone.AddEdge(from, to, weight)
		}
	}

	return clone
}

// IsEmpty - Returns true if the graph holds no vertices
func (G *Directed[V]) IsEmpty() bool {
	return len(G.adjacency) == 0
}

// Clear - Removes all vertices and edges from the graph
func (G *Directed[V]) Clear() {
	G.adjacency = make(map[V]map[V]int)
	G.inDegree = make(map[V]int)
}

// Len - Returns the number of vertices in the graph
func (G *Directed[V]) Len() int {
	return len(G.adjacency)
}

// String - Returns a string representation of the adjacency list in no particular order
func (G *Directed[V]) String() string {
	parts := make([]string, 0, len(G.adjacency))
	for from, out := range G.adjacency {
		targets := make([]string, 0, len(out))
		for to, weight := range out {
			targets = append(targets, fmt.Sprintf("%v(%d)", to, weight))
		}
		parts = append(parts, fmt.Sprintf("%v -> [%s]", from, strings.Join(targets, ", ")))
	}

	return fmt.Sprintf("Directed{%s}", strings.Join(parts, "; "))
}
