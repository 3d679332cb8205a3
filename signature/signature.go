// SPDX-License-Identifier: MIT
//
// Package signature computes the symmetry-invariant signature of a word.
//
// The signature identifies a word's letter-adjacency topology up to:
//
//   - cyclic relabeling of the alphabet (RotateToA fixes the first letter to 'a'),
//   - reversal of the word,
//   - mirror reflection of letter positions across the horizontal axis.
//
// Algorithm (Of):
//
//  1. Trim: while len(w) > 2 and w[0:2] equals reverse(w[len-2:]), drop the
//     last letter. The dropped edge duplicates the first one, so the graph
//     is unchanged.
//  2. Variants of the trimmed word t:
//     V1 = RotateToA(t)
//     V2 = RotateToA(reverse(t))
//     V3 = ReflectIfNeeded(V1)
//     V4 = ReflectIfNeeded(reverse(V1))
//  3. BuildGraph per variant; canon.Hash per graph.
//  4. Signature = max of the four digests.
//
// The max rule is a compatibility constant: changing the order over the four
// variants changes every stored signature.
//
// Preconditions: words are non-empty and lowercase ASCII (see wheel.ValidWord).
//
// Errors:
//
//	ErrCanonicalization - graph construction reached an inconsistent state;
//	                      fatal for the word, never for other words.
package signature

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/wordwheel/canon"
	"github.com/katalvlaran/wordwheel/core"
	"github.com/katalvlaran/wordwheel/wheel"
)

// ErrCanonicalization wraps any failure to build or canonicalize a variant graph.
var ErrCanonicalization = errors.New("signature: canonicalization failed")

// Variants holds the four symmetry variants of a trimmed word, in hashing order.
type Variants [4]string

// Of returns the signature of word.
func Of(word string) (*big.Int, error) {
	var best *big.Int
	for i, v := range Derive(word) {
		g, err := BuildGraph(v)
		if err != nil {
			return nil, fmt.Errorf("Of(%q): variant %d %q: %w: %w", word, i+1, v, ErrCanonicalization, err)
		}
		h, err := canon.Hash(g)
		if err != nil {
			return nil, fmt.Errorf("Of(%q): variant %d %q: %w: %w", word, i+1, v, ErrCanonicalization, err)
		}
		if best == nil || h.Cmp(best) > 0 {
			best = h
		}
	}

	return best, nil
}

// Derive returns V1..V4 for word after the degenerate-suffix trim.
func Derive(word string) Variants {
	t := Trim(word)
	v1 := RotateToA(t)

	return Variants{
		v1,
		RotateToA(Reverse(t)),
		ReflectIfNeeded(v1),
		ReflectIfNeeded(Reverse(v1)),
	}
}

// Trim drops trailing letters while the first two letters equal the reversed
// last two and the word is longer than 2 letters.
func Trim(word string) string {
	for len(word) > 2 && word[0] == word[len(word)-1] && word[1] == word[len(word)-2] {
		word = word[:len(word)-1]
	}

	return word
}

// Reverse returns word with its letters in reverse order.
func Reverse(word string) string {
	b := []byte(word)
	var i, j int
	for i, j = 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}

// RotateToA shifts every letter by the same amount (mod 26) so the first letter becomes 'a'.
func RotateToA(word string) string {
	if word == "" {
		return word
	}
	shift := -wheel.Index(word[0])
	b := []byte(word)
	var i int
	for i = range b {
		b[i] = wheel.Letter(wheel.Index(b[i]) + shift)
	}

	return string(b)
}

// ReflectIfNeeded mirrors word when its first edge (first adjacent pair of
// distinct letters) points downward on the full-precision wheel. Words without
// such a pair are returned unchanged.
func ReflectIfNeeded(word string) string {
	var i int
	for i = 1; i < len(word); i++ {
		if word[i-1] == word[i] {
			continue
		}
		if wheel.Precise(word[i]).Y-wheel.Precise(word[i-1]).Y < 0 {
			return Mirror(word)
		}
		return word
	}

	return word
}

// Mirror reflects every letter across the horizontal axis of the wheel.
func Mirror(word string) string {
	b := []byte(word)
	var i int
	for i = range b {
		b[i] = wheel.ReflectLetter(b[i])
	}

	return string(b)
}

// Shift relabels every letter by s positions around the wheel.
func Shift(word string, s int) string {
	b := []byte(word)
	var i int
	for i = range b {
		b[i] = wheel.Letter(wheel.Index(b[i]) + s)
	}

	return string(b)
}

// BuildGraph returns the letter-adjacency graph of word: one vertex per
// distinct letter, one edge per distinct pair of consecutive different letters.
func BuildGraph(word string) (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(wheel.Size, len(word)))
	var i int
	for i = 0; i < len(word); i++ {
		if err := g.AddVertex(word[i : i+1]); err != nil {
			return nil, err
		}
	}
	for i = 1; i < len(word); i++ {
		if word[i-1] == word[i] {
			continue
		}
		if _, err := g.AddEdge(word[i-1:i], word[i:i+1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}
