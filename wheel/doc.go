// SPDX-License-Identifier: MIT

// Package wheel places the 26 lowercase ASCII letters on the unit circle.
//
// What:
//
//   - Letter i (0='a' … 25='z') sits at angle θ = 2π·i/26, i.e. (cos θ, sin θ).
//   - Two precision tiers are kept for every letter:
//   - Coordinate: rounded to 2 decimal digits (display, raw shapes, inverse lookup)
//   - Precise:    full float64 precision (area, perimeter, reflection decisions)
//   - Reflect mirrors a letter across the horizontal axis (y → −y).
//   - ReflectLetter performs the same mirror symbolically (i → (26−i) mod 26),
//     which is the only safe route back to a letter from a mirrored position.
//   - CoordinateToLetter is an exact inverse over the rounded table.
//
// Why two tiers:
//
//	Using rounded values for geometry leaks rounding artifacts into area and
//	perimeter; using full-precision values for inverse lookup makes exact
//	matching fail. Each tier is used only where it is correct.
//
// Preconditions:
//
//	Coordinate, Precise, Reflect and ReflectLetter expect a byte in 'a'..'z'.
//	Callers validate words first (ValidWord); out-of-range input panics with an
//	index error like any slice access.
//
// Errors:
//
//   - ErrNoLetter  no rounded coordinate matches the given point
package wheel
