package graph

import (
	"fmt"
	"strings"

	"github.com/gostonefire/collections/crt"
)

// DirectedMatrix - A weighted directed graph over an adjacency matrix with a fixed vertex count.
// Vertices are the numbers 0 to n-1 and a nil cell means no edge, which keeps a zero weight
// distinguishable from an absent edge. Suited for dense graphs where O(1) edge lookup matters
// more than the O(n^2) memory.
type DirectedMatrix struct {
	cells [][]*int
	size  int
}

// NewDirectedMatrix - Returns a pointer to a new DirectedMatrix instance with the given number of vertices
//
// It returns:
//   - graph is a pointer to the created instance
//   - err if the number of vertices is not positive
func NewDirectedMatrix(vertices int) (graph *DirectedMatrix, err error) {
	if vertices <= 0 {
		err = fmt.Errorf("number of vertices must be positive")
		return
	}

	cells := make([][]*int, vertices)
	for i := range cells {
		cells[i] = make([]*int, vertices)
	}

	graph = &DirectedMatrix{cells: cells, size: vertices}

	return
}

// AddEdge - Adds an edge from one vertex to another with the given weight, overwriting any existing edge.
//
// It returns:
//   - err is of type crt.OutOfRange if either vertex is outside 0 to n-1
func (G *DirectedMatrix) AddEdge(from, to, weight int) (err error) {
	if err = G.validate(from, to); err != nil {
		return
	}

	w := weight
	G.cells[from][to] = &w

	return
}

// RemoveEdge - Removes the edge between the given vertices.
//
// It returns:
//   - removed is true if an edge was present
//   - err is of type crt.OutOfRange if either vertex is outside 0 to n-1
func (G *DirectedMatrix) RemoveEdge(from, to int) (removed bool, err error) {
	if err = G.validate(from, to); err != nil {
		return
	}

	removed = G.cells[from][to] != nil
	G.cells[from][to] = nil

	return
}

// HasEdge - Returns true if an edge exists between the given vertices.
//
// It returns:
//   - exists is true if the edge is in the graph
//   - err is of type crt.OutOfRange if either vertex is outside 0 to n-1
func (G *DirectedMatrix) HasEdge(from, to int) (exists bool, err error) {
	if err = G.validate(from, to); err != nil {
		return
	}

	exists = G.cells[from][to] != nil

	return
}

// Weight - Returns the weight of the edge between the given vertices.
//
// It returns:
//   - weight is the weight the edge was added with
//   - err is of type crt.OutOfRange if either vertex is outside 0 to n-1, or of
//     type crt.NotFound if there is no edge between the vertices
func (G *DirectedMatrix) Weight(from, to int) (weight int, err error) {
	if err = G.validate(from, to); err != nil {
		return
	}

	if G.cells[from][to] == nil {
		err = crt.NotFound{}
		return
	}

	weight = *G.cells[from][to]

	return
}

// Neighbors - Returns the vertices reachable over one edge from the given vertex in ascending order.
//
// It returns:
//   - neighbors are the direct successors
//   - err is of type crt.OutOfRange if the vertex is outside 0 to n-1
func (G *DirectedMatrix) Neighbors(vertex int) (neighbors []int, err error) {
	if err = G.validate(vertex, 0); err != nil {
		return
	}

	neighbors = make([]int, 0)
	for to := 0; to < G.size; to++ {
		if G.cells[vertex][to] != nil {
			neighbors = append(neighbors, to)
		}
	}

	return
}

// InDegree - Returns the number of edges pointing at the given vertex.
//
// It returns:
//   - degree is the in-degree of the vertex
//   - err is of type crt.OutOfRange if the vertex is outside 0 to n-1
func (G *DirectedMatrix) InDegree(vertex int) (degree int, err error) {
	if err = G.validate(vertex, 0); err != nil {
		return
	}

	for from := 0; from < G.size; from++ {
		if G.cells[from][vertex] != nil {
			degree++
		}
	}

	return
}

// OutDegree - Returns the number of edges leaving the given vertex.
//
// It returns:
//   - degree is the out-degree of the vertex
//   - err is of type crt.OutOfRange if the vertex is outside 0 to n-1
func (G *DirectedMatrix) OutDegree(vertex int) (degree int, err error) {
	if err = G.validate(vertex, 0); err != nil {
		return
	}

	for to := 0; to < G.size; to++ {
		if G.cells[vertex][to] != nil {
			degree++
		}
	}

	return
}

// Edges - Returns all edges with their weights, row by row in ascending vertex order
func (G *DirectedMatrix) Edges() []Edge[int] {
	edges := make([]Edge[int], 0)
	for from := 0; from < G.size; from++ {
		for to := 0; to < G.size; to++ {
			if G.cells[from][to] != nil {
				edges = append(edges, Edge[int]{From: from, To: to, Weight: *G.cells[from][to]})
			}
		}
	}

	return edges
}

// Len - Returns the number of vertices in the graph
func (G *DirectedMatrix) Len() int {
	return G.size
}

// String - Returns a string representation of the matrix, one row per vertex with a dot for no edge
func (G *DirectedMatrix) String() string {
	rows := make([]string, G.size)
	for from := 0; from < G.size; from++ {
		cells := make([]string, G.size)
		for to := 0; to < G.size; to++ {
			if G.cells[from][to] == nil {
				cells[to] = "."
			} else {
				cells[to] = fmt.Sprintf("%d", *G.cells[from][to])
			}
		}
		rows[from] = strings.Join(cells, " ")
	}

	return strings.Join(rows, "\n")
}

// validate - Returns an error of type crt.OutOfRange if either vertex is outside 0 to n-1
func (G *DirectedMatrix) validate(a, b int) (err error) {
	if a < 0 || a >= G.size || b < 0 || b >= G.size {
		err = crt.OutOfRange{}
	}

	return
}

// UndirectedMatrix - A weighted undirected graph over an adjacency matrix with a fixed vertex count.
// The matrix is kept symmetric, and self loops are rejected.
type UndirectedMatrix struct {
	cells [][]*int
	size  int
}

// NewUndirectedMatrix - Returns a pointer to a new UndirectedMatrix instance with the given number of vertices
//
// It returns:
//   - graph is a pointer to the created instance
//   - err if the number of vertices is not positive
func NewUndirectedMatrix(vertices int) (graph *UndirectedMatrix, err error) {
	if vertices <= 0 {
		err = fmt.Errorf("number of vertices must be positive")
		return
	}

	cells := make([][]*int, vertices)
	for i := range cells {
		cells[i] = make([]*int, vertices)
	}

	graph = &UndirectedMatrix{cells: cells, size: vertices}

	return
}

// AddEdge - Adds an edge between the given vertices with the given weight, overwriting any existing edge.
//
// It returns:
//   - err is of type crt.OutOfRange if either vertex is outside 0 to n-1, or a plain
//     error if both ends of the edge are the same vertex
func (G *UndirectedMatrix) AddEdge(a, b, weight int) (err error) {
	if err = G.validate(a, b); err != nil {
		return
	}
	if a == b {
		err = fmt.Errorf("self loops are not allowed")
		return
	}

	w := weight
	G.cells[a][b] = &w
	G.cells[b][a] = &w

	return
}

// RemoveEdge - Removes the edge between the given vertices.
//
// It returns:
//   - removed is true if an edge was present
//   - err is of type crt.OutOfRange if either vertex is outside 0 to n-1
func (G *UndirectedMatrix) RemoveEdge(a, b int) (removed bool, err error) {
	if err = G.validate(a, b); err != nil {
		return
	}

	removed = G.cells[a][b] != nil
	G.cells[a][b] = nil
	G.cells[b][a] = nil

	return
}

// HasEdge - Returns true if an edge exists between the given vertices.
//
// It returns:
//   - exists is true if the edge is in the graph
//   - err is of type crt.OutOfRange if either vertex is outside 0 to n-1
func (G *UndirectedMatrix) HasEdge(a, b int) (exists bool, err error) {
	if err = G.validate(a, b); err != nil {
		return
	}

	exists = G.cells[a][b] != nil

	return
}

// Weight - Returns the weight of the edge between the given vertices.
//
// It returns:
//   - weight is the weight the edge was added with
//   - err is of type crt.OutOfRange if either vertex is outside 0 to n-1, or of
//     type crt.NotFound if there is no edge between the vertices
func (G *UndirectedMatrix) Weight(a, b int) (weight int, err error) {
	if err = G.validate(a, b); err != nil {
		return
	}

	if G.cells[a][b] == nil {
		err = crt.NotFound{}
		return
	}

	weight = *G.cells[a][b]

	return
}

// Neighbors - Returns the vertices sharing an edge with the given vertex in ascending order.
//
// It returns:
//   - neighbors are the adjacent vertices
//   - err is of type crt.OutOfRange if the vertex is outside 0 to n-1
func (G *UndirectedMatrix) Neighbors(vertex int) (neighbors []int, err error) {
	if err = G.validate(vertex, 0); err != nil {
		return
	}

	neighbors = make([]int, 0)
	for other := 0; other < G.size; other++ {
		if G.cells[vertex][other] != nil {
			neighbors = append(neighbors, other)
		}
	}

	return
}

// Degree - Returns the number of edges touching the given vertex.
//
// It returns:
//   - degree is the degree of the vertex
//   - err is of type crt.OutOfRange if the vertex is outside 0 to n-1
func (G *UndirectedMatrix) Degree(vertex int) (degree int, err error) {
	if err = G.validate(vertex, 0); err != nil {
		return
	}

	for other := 0; other < G.size; other++ {
		if G.cells[vertex][other] != nil {
			degree++
		}
	}

	return
}

// Edges - Returns all edges with their weights in ascending vertex order, each edge reported once.
// Only the upper triangle of the matrix is scanned since it is kept symmetric.
func (G *UndirectedMatrix) Edges() []Edge[int] {
	edges := make([]Edge[int], 0)
	for a := 0; a < G.size; a++ {
		for b := a + 1; b < G.size; b++ {
			if G.cells[a][b] != nil {
				edges = append(edges, Edge[int]{From: a, To: b, Weight: *G.cells[a][b]})
			}
		}
	}

	return edges
}

// Len - Returns the number of vertices in the graph
func (G *UndirectedMatrix) Len() int {
	return G.size
}

// String - Returns a string representation of the matrix, one row per vertex with a dot for no edge
func (G *UndirectedMatrix) String() string {
	rows := make([]string, G.size)
	for a := 0; a < G.size; a++ {
		cells := make([]string, G.size)
		for b := 0; b < G.size; b++ {
			if G.cells[a][b] == nil {
				cells[b] = "."
			} else {
				cells[b] = fmt.Sprintf("%d", *G.cells[a][b])
			}
		}
		rows[a] = strings.Join(cells, " ")
	}

	return strings.Join(rows, "\n")
}

// validate - Returns an error of type crt.OutOfRange if either vertex is outside 0 to n-1
func (G *UndirectedMatrix) validate(a, b int) (err error) {
	if a < 0 || a >= G.size || b < 0 || b >= G.size {
		err = crt.OutOfRange{}
	}

	return
}
