// SPDX-License-Identifier: MIT

package canon_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordwheel/canon"
	"github.com/katalvlaran/wordwheel/core"
)

// build creates a graph from "uv" pairs over single-letter IDs.
func build(t *testing.T, vertices string, pairs ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, r := range vertices {
		require.NoError(t, g.AddVertex(string(r)))
	}
	for _, p := range pairs {
		_, err := g.AddEdge(p[:1], p[1:])
		require.NoError(t, err)
	}

	return g
}

func form(t *testing.T, g *core.Graph) string {
	t.Helper()
	f, err := canon.Form(g)
	require.NoError(t, err)

	return f
}

func TestForm_Trivial(t *testing.T) {
	require.Equal(t, "1:", form(t, build(t, "q")))
	require.Equal(t, "2:1", form(t, build(t, "", "xy")))
	require.Equal(t, "2:0", form(t, build(t, "xy")))

	_, err := canon.Form(nil)
	require.ErrorIs(t, err, canon.ErrGraphNil)
}

// TestForm_RelabelingInvariant checks the same topology under different IDs and insertion orders.
func TestForm_RelabelingInvariant(t *testing.T) {
	pathA := build(t, "", "ab", "bc", "cd")
	pathB := build(t, "", "zq", "mz", "km")
	require.Equal(t, form(t, pathA), form(t, pathB))

	pawA := build(t, "", "ab", "bc", "ca", "cd")
	pawB := build(t, "", "wx", "xy", "yw", "wz")
	require.Equal(t, form(t, pawA), form(t, pawB))
}

// TestForm_Distinguishes checks non-isomorphic graphs of equal size get different forms.
func TestForm_Distinguishes(t *testing.T) {
	cases := []struct {
		name string
		a, b *core.Graph
	}{
		{"path vs triangle", build(t, "", "ab", "bc"), build(t, "", "ab", "bc", "ca")},
		{"path vs star", build(t, "", "ab", "bc", "cd"), build(t, "", "ab", "ac", "ad")},
		// Both 2-regular: refinement alone cannot split them.
		{"hexagon vs two triangles",
			build(t, "", "ab", "bc", "cd", "de", "ef", "fa"),
			build(t, "", "ab", "bc", "ca", "de", "ef", "fd")},
		{"isolated vertex", build(t, "d", "ab", "bc"), build(t, "", "ab", "bc", "cd")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NotEqual(t, form(t, tc.a), form(t, tc.b))
		})
	}
}

// TestForm_RandomPermutations relabels random graphs and expects identical forms.
func TestForm_RandomPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(26))
	const letters = "abcdefghijklmnopqrstuvwxyz"
	for round := 0; round < 40; round++ {
		n := 3 + rng.Intn(10)
		var pairs [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Intn(3) == 0 {
					pairs = append(pairs, [2]int{i, j})
				}
			}
		}
		perm := rng.Perm(n)

		g1, g2 := core.NewGraph(), core.NewGraph()
		for i := 0; i < n; i++ {
			require.NoError(t, g1.AddVertex(letters[i:i+1]))
			require.NoError(t, g2.AddVertex(letters[perm[i]:perm[i]+1]))
		}
		for _, p := range pairs {
			_, err := g1.AddEdge(letters[p[0]:p[0]+1], letters[p[1]:p[1]+1])
			require.NoError(t, err)
			_, err = g2.AddEdge(letters[perm[p[0]]:perm[p[0]]+1], letters[perm[p[1]]:perm[p[1]]+1])
			require.NoError(t, err)
		}
		require.Equal(t, form(t, g1), form(t, g2), fmt.Sprintf("round %d n=%d", round, n))
	}
}

// TestForm_SymmetricGraphsStayCheap exercises twin pruning on a complete graph and a star.
func TestForm_SymmetricGraphsStayCheap(t *testing.T) {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	complete := core.NewGraph()
	star := core.NewGraph()
	for i := 0; i < len(letters); i++ {
		for j := i + 1; j < len(letters); j++ {
			_, err := complete.AddEdge(letters[i:i+1], letters[j:j+1])
			require.NoError(t, err)
		}
		if i > 0 {
			_, err := star.AddEdge("a", letters[i:i+1])
			require.NoError(t, err)
		}
	}
	fc := form(t, complete)
	require.Equal(t, 26*25/2, len(fc)-len("26:"))
	require.NotEqual(t, fc, form(t, star))
}

func TestDigest_Stable(t *testing.T) {
	a := canon.Digest("3:110")
	b := canon.Digest("3:110")
	require.Equal(t, 0, a.Cmp(b))
	require.NotEqual(t, 0, a.Cmp(canon.Digest("3:111")))
	require.LessOrEqual(t, a.BitLen(), 224)

	h, err := canon.Hash(build(t, "", "ab", "bc"))
	require.NoError(t, err)
	require.Equal(t, 0, h.Cmp(canon.Digest(form(t, build(t, "", "xy", "yz")))))
}
