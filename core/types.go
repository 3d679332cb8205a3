// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge and Graph types, sentinel errors, NewGraph constructor.
// Policy:
//   - Graph is undirected and simple: no self-loops, at most one edge per identity.
//   - Edge identity is derived from the endpoints (see EdgeID), never generated.
// Concurrency:
//   - muVert guards vertices; muEdgeAdj guards edges and adjacency.
//   - Lock order is muVert -> muEdgeAdj everywhere.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted (from == to).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeConflict indicates that an edge identity is already bound to a
	// different pair of endpoints. The graph is left unchanged.
	ErrEdgeConflict = errors.New("core: edge identity bound to different endpoints")
)

// Vertex is a node of the graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string
}

// Edge is an undirected connection between two distinct vertices.
//
// From and To are stored in ascending order so that an Edge value does not
// depend on the direction it was added in.
type Edge struct {
	// ID is the identity of the edge, EdgeID(From, To).
	ID string

	// From is the lexicographically smaller endpoint.
	From string

	// To is the lexicographically larger endpoint.
	To string
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex and edge catalogs.
func WithCapacity(vertices, edges int) GraphOption {
	return func(g *Graph) {
		g.vertices = make(map[string]*Vertex, vertices)
		g.edges = make(map[string]*Edge, edges)
		g.adjacency = make(map[string]map[string]string, vertices)
	}
}

// Graph is an undirected simple graph with deterministic enumeration.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	vertices map[string]*Vertex // vertex ID → Vertex
	edges    map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edge ID, mirrored for both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty undirected simple Graph.
// Complexity: O(1) (plus pre-sizing when WithCapacity is given).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	var opt GraphOption
	for _, opt = range opts {
		opt(g)
	}

	return g
}
