// SPDX-License-Identifier: MIT
//
// File: wheel.go
// Role: Static letter → coordinate tables (rounded + precise) and lookups.
// Determinism:
//   - Tables are computed once at package init and never mutated.
// Concurrency:
//   - Read-only after init; safe for concurrent use without locks.

package wheel

import (
	"errors"
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// Size is the number of letters on the wheel.
const Size = 26

// roundingScale rounds the display tier to 2 decimal digits.
const roundingScale = 100

// ErrNoLetter indicates that no letter sits exactly on the requested rounded coordinate.
var ErrNoLetter = errors.New("wheel: no letter at coordinate")

var (
	rounded [Size]geom.Coord
	precise [Size]geom.Coord
)

func init() {
	var i int
	for i = 0; i < Size; i++ {
		angle := 2 * math.Pi * float64(i) / Size
		precise[i] = geom.Coord{X: math.Cos(angle), Y: math.Sin(angle)}
		rounded[i] = geom.Coord{X: round2(precise[i].X), Y: round2(precise[i].Y)}
	}
}

// round2 rounds v to two decimal digits.
func round2(v float64) float64 {
	return math.Round(v*roundingScale) / roundingScale
}

// IsLetter reports whether b is a lowercase ASCII letter.
func IsLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// ValidWord reports whether w is non-empty and made only of lowercase ASCII letters.
func ValidWord(w string) bool {
	if w == "" {
		return false
	}
	var i int
	for i = 0; i < len(w); i++ {
		if !IsLetter(w[i]) {
			return false
		}
	}

	return true
}

// Index returns the wheel position of letter (0 for 'a').
func Index(letter byte) int {
	return int(letter - 'a')
}

// Letter returns the letter at wheel position i, wrapping modulo Size.
func Letter(i int) byte {
	i %= Size
	if i < 0 {
		i += Size
	}

	return byte('a' + i)
}

// Coordinate returns the rounded (2 decimal digits) position of letter.
func Coordinate(letter byte) geom.Coord {
	return rounded[Index(letter)]
}

// Precise returns the full-precision position of letter.
func Precise(letter byte) geom.Coord {
	return precise[Index(letter)]
}

// Reflect returns the rounded position of letter mirrored across the x-axis.
func Reflect(letter byte) geom.Coord {
	c := Coordinate(letter)

	return geom.Coord{X: c.X, Y: -c.Y}
}

// ReflectLetter returns the letter sitting at the mirror image of letter.
// Mirroring angle 2π·i/26 gives 2π·(26−i)/26, so the mapping is exact and
// never goes through floating-point comparison.
func ReflectLetter(letter byte) byte {
	return Letter(Size - Index(letter))
}

// CoordinateToLetter performs an exact-match inverse lookup against the rounded table.
// Full-precision points never match; mirror letters with ReflectLetter instead.
func CoordinateToLetter(c geom.Coord) (byte, error) {
	var i int
	for i = 0; i < Size; i++ {
		if rounded[i].X == c.X && rounded[i].Y == c.Y {
			return byte('a' + i), nil
		}
	}

	return 0, fmt.Errorf("CoordinateToLetter(%g, %g): %w", c.X, c.Y, ErrNoLetter)
}
