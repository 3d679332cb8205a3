// SPDX-License-Identifier: MIT
//
// Package shape derives per-word geometry from the letter wheel.
//
// Measurements:
//
//   - Raw:       rounded coordinates, one per letter, in word order.
//   - Polygon:   full-precision coordinates of the unique letters, sorted
//     alphabetically (vertex order is alphabetical, not order of occurrence).
//   - Area:      shoelace area of a Polygon in the given vertex order; "0" below 3 points.
//   - Perimeter: open-path length through the full-precision letters in word order.
//
// Area and Perimeter are rendered with FormatSignificant(v, Digits) so equal
// geometric values always compare byte-equal in storage and grouping queries.
//
// Preconditions: words are non-empty and lowercase ASCII (see wheel.ValidWord).
package shape

import (
	"math"
	"sort"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/wordwheel/wheel"
)

// Digits is the number of significant decimal digits kept for scalar measurements.
const Digits = 10

// minPolygonPoints is the smallest vertex count with a non-zero area.
// Two points yield "0" too, not a segment length.
const minPolygonPoints = 3

// Measurement bundles everything the store keeps for one word apart from its signature.
type Measurement struct {
	Shape        []geom.Coord
	PolygonShape []geom.Coord
	PolygonArea  string
	Perimeter    string
}

// Measure computes Raw, Polygon, Area(Polygon) and Perimeter for word.
func Measure(word string) Measurement {
	poly := Polygon(word)

	return Measurement{
		Shape:        Raw(word),
		PolygonShape: poly,
		PolygonArea:  Area(poly),
		Perimeter:    Perimeter(word),
	}
}

// Raw returns the rounded coordinate of every letter of word, in word order.
// Complexity: O(n).
func Raw(word string) []geom.Coord {
	out := make([]geom.Coord, len(word))
	var i int
	for i = 0; i < len(word); i++ {
		out[i] = wheel.Coordinate(word[i])
	}

	return out
}

// Polygon returns the full-precision coordinates of the unique letters of word,
// alphabetically ordered.
// Complexity: O(n + k log k), k ≤ 26 unique letters.
func Polygon(word string) []geom.Coord {
	var seen [wheel.Size]bool
	letters := make([]byte, 0, wheel.Size)
	var i int
	for i = 0; i < len(word); i++ {
		idx := wheel.Index(word[i])
		if seen[idx] {
			continue
		}
		seen[idx] = true
		letters = append(letters, word[i])
	}
	sort.Slice(letters, func(a, b int) bool { return letters[a] < letters[b] })

	out := make([]geom.Coord, len(letters))
	for i = range letters {
		out[i] = wheel.Precise(letters[i])
	}

	return out
}

// Area returns the shoelace area of points taken in the given order,
// formatted to Digits significant digits. Fewer than 3 points give "0".
//
//	area = ½·|Σ (x[i−1]·y[i] − x[i]·y[i−1])|, indices cyclic.
//
// Complexity: O(n).
func Area(points []geom.Coord) string {
	if len(points) < minPolygonPoints {
		return zero
	}

	return FormatSignificant(shoelace(points), Digits)
}

func shoelace(points []geom.Coord) float64 {
	n := len(points)
	var sum float64
	var i int
	for i = 0; i < n; i++ {
		prev := points[(i-1+n)%n]
		cur := points[i]
		sum += prev.X*cur.Y - cur.X*prev.Y
	}

	return 0.5 * math.Abs(sum)
}

// Perimeter returns the open-path length from the first to the last letter of
// word over full-precision coordinates. The path is not closed.
// Complexity: O(n).
func Perimeter(word string) string {
	var total float64
	var prev, cur geom.Coord
	var i int
	for i = 1; i < len(word); i++ {
		prev, cur = wheel.Precise(word[i-1]), wheel.Precise(word[i])
		total += prev.DistanceFrom(cur)
	}

	return FormatSignificant(total, Digits)
}
