// SPDX-License-Identifier: MIT

// Package core provides a small, thread-safe, undirected simple graph used to
// model letter adjacency in words.
//
// The Graph G = (V,E) has:
//
//   - String vertex IDs (one per distinct letter in practice).
//   - Undirected edges whose identity is derived from the endpoints:
//     EdgeID(u, v) = min(u,v) + max(u,v). Adding the same pair again is a
//     no-op, so repeated adjacencies collapse into a single edge.
//   - No self-loops (ErrLoopNotAllowed).
//   - Conflicting identities (the same ID for different endpoint pairs)
//     rejected with ErrEdgeConflict; the graph is left untouched.
//   - Deterministic enumeration: Vertices(), Edges(), NeighborIDs() are sorted.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj), always acquired in that order.
//
// Core Methods:
//
//	AddVertex(id string) error                    // O(1)
//	HasVertex(id string) bool                     // O(1)
//	AddEdge(from, to string) (edgeID string, err) // O(1)
//	HasEdge(u, v string) bool                     // O(1)
//	Vertices() []string                           // O(V log V)
//	Edges() []Edge                                // O(E log E)
//	NeighborIDs(id string) ([]string, error)      // O(d log d)
//	Degree(id string) int                         // O(1)
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop attempted.
//	ErrEdgeConflict   - edge identity already bound to other endpoints.
package core
