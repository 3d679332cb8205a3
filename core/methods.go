// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex/edge lifecycle and read queries on Graph.
// Determinism:
//   - Vertices() sorted by ID asc; Edges() sorted by Edge.ID asc; NeighborIDs() sorted asc.
// Concurrency:
//   - Mutations take write locks, queries take read locks (muVert -> muEdgeAdj).

package core

import (
	"fmt"
	"sort"
)

// EdgeID returns the identity of the undirected edge {u, v}: the two IDs
// sorted ascending and concatenated. Identities of multi-character IDs can
// collide ("ab"+"c" and "a"+"bc"); AddEdge reports such collisions as
// ErrEdgeConflict instead of merging two different edges.
func EdgeID(u, v string) string {
	if v < u {
		u, v = v, u
	}

	return u + v
}

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID for an empty id.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge connects from and to, creating missing endpoints, and returns the edge ID.
//
// Steps:
//  1. Validate IDs (ErrEmptyVertexID) and reject loops (ErrLoopNotAllowed).
//  2. Compute the identity EdgeID(from, to).
//  3. Under muEdgeAdj: if the identity exists with the same endpoints the call
//     is a no-op (repeated pairs collapse); with other endpoints it fails with
//     ErrEdgeConflict and nothing is added.
//  4. Otherwise store the edge and mirror adjacency for both endpoints.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", fmt.Errorf("AddEdge(%q, %q): %w", from, to, ErrLoopNotAllowed)
	}
	lo, hi := from, to
	if hi < lo {
		lo, hi = hi, lo
	}
	eid := EdgeID(lo, hi)

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if e, ok := g.edges[eid]; ok {
		if e.From == lo && e.To == hi {
			return eid, nil
		}

		return "", fmt.Errorf("AddEdge(%q, %q): identity %q held by {%s,%s}: %w",
			from, to, eid, e.From, e.To, ErrEdgeConflict)
	}

	g.ensureVertexLocked(lo)
	g.ensureVertexLocked(hi)
	g.edges[eid] = &Edge{ID: eid, From: lo, To: hi}
	g.adjacency[lo][hi] = eid
	g.adjacency[hi][lo] = eid

	return eid, nil
}

// ensureVertexLocked registers id; both locks must be held for writing.
func (g *Graph) ensureVertexLocked(id string) {
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id}
	}
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]string)
	}
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns copies of all edges sorted by ID ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("NeighborIDs(%q): %w", id, ErrVertexNotFound)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]string, 0, len(g.adjacency[id]))
	for v := range g.adjacency[id] {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of neighbours of id (0 for an unknown vertex).
// Complexity: O(1).
func (g *Graph) Degree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id])
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
