package graph

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
)

// Undirected - A weighted undirected graph over an adjacency list. An edge between two vertices
// is stored in both directions, and self loops are rejected.
type Undirected[V comparable] struct {
	adjacency map[V]map[V]int
}

// NewUndirected - Returns a pointer to a new empty Undirected graph instance
func NewUndirected[V comparable]() *Undirected[V] {
	return &Undirected[V]{adjacency: make(map[V]map[V]int)}
}

// AddVertex - Adds a vertex to the graph.
// It returns true if the vertex was added, false if it was already present.
func (G *Undirected[V]) AddVertex(vertex V) bool {
	if _, ok := G.adjacency[vertex]; ok {
		return false
	}

	G.adjacency[vertex] = make(map[V]int)

	return true
}

// AddEdge - Adds an edge between the given vertices with the given weight.
// Vertices not yet in the graph are added, and an existing edge gets its weight overwritten.
//
// It returns:
//   - err if both ends of the edge are the same vertex
func (G *Undirected[V]) AddEdge(a, b V, weight int) (err error) {
	if a == b {
		err = fmt.Errorf("self loops are not allowed")
		return
	}

	G.AddVertex(a)
	G.AddVertex(b)

	G.adjacency[a][b] = weight
	G.adjacency[b][a] = weight

	return
}

// RemoveVertex - Removes a vertex and all edges touching it.
// It returns true if the vertex was present, false otherwise.
func (G *Undirected[V]) RemoveVertex(vertex V) bool {
	neighbors, ok := G.adjacency[vertex]
	if !ok {
		return false
	}

	for neighbor := range neighbors {
		delete(G.adjacency[neighbor], vertex)
	}
	delete(G.adjacency, vertex)

	return true
}

// RemoveEdge - Removes the edge between the given vertices.
// It returns true if the edge was present, false otherwise.
func (G *Undirected[V]) RemoveEdge(a, b V) bool {
	out, ok := G.adjacency[a]
	if !ok {
		return false
	}
	if _, ok = out[b]; !ok {
		return false
	}

	delete(G.adjacency[a], b)
	delete(G.adjacency[b], a)

	return true
}

// Neighbors - Returns the vertices sharing an edge with the given vertex.
//
// It returns:
//   - neighbors are the adjacent vertices in no particular order
//   - err is of type crt.NotFound if the vertex is not in the graph
func (G *Undirected[V]) Neighbors(vertex V) (neighbors []V, err error) {
	out, ok := G.adjacency[vertex]
	if !ok {
		err = crt.NotFound{}
		return
	}

	neighbors = make([]V, 0, len(out))
	for neighbor := range out {
		neighbors = append(neighbors, neighbor)
	}

	return
}

// Vertices - Returns all vertices in no particular order
func (G *Undirected[V]) Vertices() []V {
	vertices := make([]V, 0, len(G.adjacency))
	for vertex := range G.adjacency {
		vertices = append(vertices, vertex)
	}

	return vertices
}

// Edges - Returns all edges with their weights in no particular order, each edge reported once
func (G *Undirected[V]) Edges() []Edge[V] {
	seen := make(map[[2]V]bool)
	edges := make([]Edge[V], 0)

	for a, out := range G.adjacency {
		for b, weight := range out {
			if seen[[2]V{a, b}] || seen[[2]V{b, a}] {
				continue
			}
			seen[[2]V{a, b}] = true
			edges = append(edges, Edge[V]{From: a, To: b, Weight: weight})
		}
	}

	return edges
}

// HasVertex - Returns true if the given vertex is in the graph
func (G *Undirected[V]) HasVertex(vertex V) bool {
	_, ok := G.adjacency[vertex]
	return ok
}

// HasEdge - Returns true if an edge exists between the given vertices
func (G *Undirected[V]) HasEdge(a, b V) bool {
	out, ok := G.adjacency[a]
	if !ok {
		return false
	}
	_, ok = out[b]

	return ok
}

// Weight - Returns the weight of the edge between the given vertices.
//
// It returns:
//   - weight is the weight the edge was added with
//   - err is of type crt.NotFound if the edge is not in the graph
func (G *Undirected[V]) Weight(a, b V) (weight int, err error) {
	out, ok := G.adjacency[a]
	if !ok {
		err = crt.NotFound{}
		return
	}

	weight, ok = out[b]
	if !ok {
		err = crt.NotFound{}
	}

	return
}

// Degree - Returns the number of edges touching the given vertex.
//
// It returns:
//   - degree is the degree of the vertex
//   - err is of type crt.NotFound if the vertex is not in the graph
func (G *Undirected[V]) Degree(vertex V) (degree int, err error) {
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
func (G *Undirected[V]) BFS(start V) (order []V, err error) {
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
func (G *Undirected[V]) DFS(start V) (order []V, err error) {
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

// ConnectedComponents - Returns the vertex groups reachable from each other.
// Each inner slice holds the vertices of one component.
func (G *Undirected[V]) ConnectedComponents() [][]V {
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

			for neighbor := range G.adjacency[v] {
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

// Copy - Returns a deep copy of the graph
func (G *Undirected[V]) Copy() *Undirected[V] {
	clone := NewUndirected[V]()
	for vertex := range G.adjacency {
		clone.AddVertex(vertex)
	}
	for _, edge := range G.Edges() {
		_ = clone.AddEdge(edge.From, edge.To, edge.Weight)
	}

	return clone
}

// IsEmpty - Returns true if the graph holds no vertices
func (G *Undirected[V]) IsEmpty() bool {
	return len(G.adjacency) == 0
}

// Clear - Removes all vertices and edges from the graph
func (G *Undirected[V]) Clear() {
	G.adjacency = make(map[V]map[V]int)
}

// Len - Returns the number of vertices in the graph
func (G *Undirected[V]) Len() int {
	return len(G.adjacency)
}

// String - Returns a string representation of the adjacency list in no particular order
func (G *Undirected[V]) String() string {
	parts := make([]string, 0, len(G.adjacency))
	for vertex, out := range G.adjacency {
		targets := make([]string, 0, len(out))
		for neighbor, weight := range out {
			targets = append(targets, fmt.Sprintf("%v(%d)", neighbor, weight))
		}
		parts = append(parts, fmt.Sprintf("%v -- [%s]", vertex, strings.Join(targets, ", ")))
	}

	return fmt.Sprintf("Undirected{%s}", strings.Join(parts, "; "))
}
