// SPDX-License-Identifier: MIT

// Package canon computes relabeling-invariant canonical forms of small
// undirected graphs and reduces them to integers.
//
// What:
//
//   - Form(g) returns a string that is equal for two graphs exactly when they
//     are isomorphic. Vertex IDs do not appear in it.
//   - Digest(form) hashes a form with SHA-224 and returns the digest as a
//     non-negative *big.Int.
//   - Hash(g) is Digest(Form(g)).
//
// How (individualization–refinement):
//
//  1. Colour refinement: vertices start with one colour; each round splits a
//     colour class by the sorted multiset of neighbour colours until the
//     partition is equitable. New colours are ranks of (old colour, neighbour
//     colours), so the procedure commutes with relabeling.
//  2. If a class still has several vertices, the first such class is the
//     target cell; each of its vertices is individualized in turn (given a
//     colour of its own) and the search recurses.
//  3. At a discrete partition the colours are a vertex ordering; the graph is
//     written as the upper triangle of its adjacency matrix in that order.
//  4. The lexicographically greatest leaf string wins.
//
// Twins (u, v in the same cell with N(u)\{v} = N(v)\{u}) yield identical
// subtrees, so only one of them is explored. This keeps complete graphs,
// stars and similar symmetric shapes linear instead of factorial.
//
// Form layout: "<n>:<bits>", bits = n·(n−1)/2 characters '0'/'1',
// row-major over i<j. A single vertex is "1:".
//
// Scope: built for letter-adjacency graphs, at most 26 vertices. It is not a
// general-purpose isomorphism engine; highly regular graphs without twins
// can still branch widely.
//
// Errors:
//
//	ErrGraphNil - nil graph passed to Form or Hash.
package canon
