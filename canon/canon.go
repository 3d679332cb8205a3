// SPDX-License-Identifier: MIT
//
// File: canon.go
// Role: Individualization–refinement canonical labeling and SHA-224 digest.
// Determinism:
//   - Output depends only on the isomorphism class of the input graph.
// Concurrency:
//   - Reads the graph through its locked accessors; no shared state.

package canon

import (
	"crypto/sha256"
	"errors"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/wordwheel/core"
)

// ErrGraphNil indicates a nil *core.Graph.
var ErrGraphNil = errors.New("canon: graph is nil")

const (
	bitSet   = '1'
	bitClear = '0'
	sep      = ":"
)

// labeler holds the dense adjacency of the graph being canonicalized and the
// best leaf seen so far.
type labeler struct {
	n    int
	adj  [][]bool
	nbrs [][]int
	best string
}

// Form returns the canonical form of g.
// Complexity: O(L · n² log n) where L is the number of explored leaves.
func Form(g *core.Graph) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	l := newLabeler(g)
	if l.n == 0 {
		return "0" + sep, nil
	}
	l.search(l.refine(make([]int, l.n)))

	return strconv.Itoa(l.n) + sep + l.best, nil
}

// Digest returns SHA-224(form) as a non-negative integer.
func Digest(form string) *big.Int {
	sum := sha256.Sum224([]byte(form))

	return new(big.Int).SetBytes(sum[:])
}

// Hash returns Digest(Form(g)).
func Hash(g *core.Graph) (*big.Int, error) {
	f, err := Form(g)
	if err != nil {
		return nil, err
	}

	return Digest(f), nil
}

func newLabeler(g *core.Graph) *labeler {
	ids := g.Vertices()
	n := len(ids)
	index := make(map[string]int, n)
	var i int
	for i = range ids {
		index[ids[i]] = i
	}
	l := &labeler{n: n, adj: make([][]bool, n), nbrs: make([][]int, n)}
	for i = range l.adj {
		l.adj[i] = make([]bool, n)
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		l.adj[u][v], l.adj[v][u] = true, true
		l.nbrs[u] = append(l.nbrs[u], v)
		l.nbrs[v] = append(l.nbrs[v], u)
	}

	return l
}

// refineKey is a vertex's colour followed by its sorted neighbour colours.
type refineKey []int

func compareKeys(a, b refineKey) int {
	var i int
	for i = 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}

	return len(a) - len(b)
}

// refine splits colour classes until the partition is equitable and returns
// colours renumbered as dense ranks 0..k-1.
func (l *labeler) refine(colors []int) []int {
	cur := append([]int(nil), colors...)
	classes := countClasses(cur)
	keys := make([]refineKey, l.n)
	order := make([]int, l.n)
	for {
		var v int
		for v = 0; v < l.n; v++ {
			k := make(refineKey, 0, len(l.nbrs[v])+1)
			k = append(k, cur[v])
			for _, w := range l.nbrs[v] {
				k = append(k, cur[w])
			}
			sort.Ints(k[1:])
			keys[v] = k
			order[v] = v
		}
		sort.Slice(order, func(i, j int) bool { return compareKeys(keys[order[i]], keys[order[j]]) < 0 })

		next := make([]int, l.n)
		rank := 0
		var i int
		for i = 0; i < l.n; i++ {
			if i > 0 && compareKeys(keys[order[i-1]], keys[order[i]]) != 0 {
				rank++
			}
			next[order[i]] = rank
		}
		cur = next
		if rank+1 == classes {
			return cur
		}
		classes = rank + 1
	}
}

func countClasses(colors []int) int {
	seen := make(map[int]struct{}, len(colors))
	for _, c := range colors {
		seen[c] = struct{}{}
	}

	return len(seen)
}

// search explores the individualization tree below an equitable colouring.
func (l *labeler) search(colors []int) {
	cell, ok := l.targetCell(colors)
	if !ok {
		l.leaf(colors)
		return
	}
	tried := make([]int, 0, len(cell))
	for _, v := range cell {
		if l.twinOfAny(v, tried) {
			continue
		}
		tried = append(tried, v)
		l.search(l.refine(individualize(colors, v)))
	}
}

// targetCell returns the vertices of the lowest colour shared by more than one vertex.
func (l *labeler) targetCell(colors []int) ([]int, bool) {
	size := make([]int, l.n)
	for _, c := range colors {
		size[c]++
	}
	target := -1
	var c int
	for c = 0; c < l.n; c++ {
		if size[c] > 1 {
			target = c
			break
		}
	}
	if target < 0 {
		return nil, false
	}
	cell := make([]int, 0, size[target])
	var v int
	for v = 0; v < l.n; v++ {
		if colors[v] == target {
			cell = append(cell, v)
		}
	}

	return cell, true
}

// individualize gives v a colour of its own, ordered just before the rest of its class.
func individualize(colors []int, v int) []int {
	out := make([]int, len(colors))
	for u, c := range colors {
		out[u] = 2 * c
		if c == colors[v] && u != v {
			out[u]++
		}
	}

	return out
}

// twinOfAny reports whether v has the same neighbourhood (ignoring each other)
// as some vertex in tried. Swapping twins is an automorphism fixing everything
// else, so their subtrees produce the same leaves.
func (l *labeler) twinOfAny(v int, tried []int) bool {
	for _, u := range tried {
		if l.twins(u, v) {
			return true
		}
	}

	return false
}

func (l *labeler) twins(u, v int) bool {
	var w int
	for w = 0; w < l.n; w++ {
		if w == u || w == v {
			continue
		}
		if l.adj[u][w] != l.adj[v][w] {
			return false
		}
	}

	return true
}

// leaf writes the adjacency upper triangle in colour order and keeps the greatest.
func (l *labeler) leaf(colors []int) {
	inv := make([]int, l.n)
	for v, c := range colors {
		inv[c] = v
	}
	var b strings.Builder
	b.Grow(l.n * (l.n - 1) / 2)
	var i, j int
	for i = 0; i < l.n; i++ {
		for j = i + 1; j < l.n; j++ {
			if l.adj[inv[i]][inv[j]] {
				b.WriteByte(bitSet)
			} else {
				b.WriteByte(bitClear)
			}
		}
	}
	if s := b.String(); s > l.best {
		l.best = s
	}
}
