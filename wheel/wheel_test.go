// SPDX-License-Identifier: MIT

package wheel_test

import (
	"errors"
	"math"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordwheel/wheel"
)

const eps = 1e-12

// TestCoordinate_Anchors pins the four quarter points and their rounding.
func TestCoordinate_Anchors(t *testing.T) {
	cases := []struct {
		letter byte
		want   geom.Coord
	}{
		{'a', geom.Coord{X: 1, Y: 0}},
		{'b', geom.Coord{X: 0.97, Y: 0.24}},
		{'g', geom.Coord{X: 0.12, Y: 0.99}},
		{'n', geom.Coord{X: -1, Y: 0}},
		{'z', geom.Coord{X: 0.97, Y: -0.24}},
	}
	for _, tc := range cases {
		got := wheel.Coordinate(tc.letter)
		assert.Equal(t, tc.want.X, got.X, "X of %q", tc.letter)
		assert.Equal(t, tc.want.Y, got.Y, "Y of %q", tc.letter)
	}
}

// TestPrecise_OnUnitCircle checks every full-precision point lies on the circle at 2π·i/26.
func TestPrecise_OnUnitCircle(t *testing.T) {
	for i := 0; i < wheel.Size; i++ {
		l := wheel.Letter(i)
		p := wheel.Precise(l)
		require.InDelta(t, 1.0, math.Hypot(p.X, p.Y), eps, "radius of %q", l)
		require.InDelta(t, math.Cos(2*math.Pi*float64(i)/26), p.X, eps)
		require.InDelta(t, math.Sin(2*math.Pi*float64(i)/26), p.Y, eps)
	}
}

// TestReflect_MatchesReflectLetter checks the coordinate and symbolic mirrors agree on every letter.
func TestReflect_MatchesReflectLetter(t *testing.T) {
	for i := 0; i < wheel.Size; i++ {
		l := wheel.Letter(i)
		got, err := wheel.CoordinateToLetter(wheel.Reflect(l))
		require.NoError(t, err, "reflect %q", l)
		require.Equal(t, wheel.ReflectLetter(l), got, "reflect %q", l)
		require.Equal(t, l, wheel.ReflectLetter(wheel.ReflectLetter(l)), "involution on %q", l)
	}
	assert.Equal(t, byte('a'), wheel.ReflectLetter('a'))
	assert.Equal(t, byte('n'), wheel.ReflectLetter('n'))
	assert.Equal(t, byte('z'), wheel.ReflectLetter('b'))
}

// TestCoordinateToLetter_PreciseMisses shows full-precision points do not hit the rounded table.
func TestCoordinateToLetter_PreciseMisses(t *testing.T) {
	_, err := wheel.CoordinateToLetter(wheel.Precise('b'))
	require.True(t, errors.Is(err, wheel.ErrNoLetter))

	l, err := wheel.CoordinateToLetter(wheel.Coordinate('q'))
	require.NoError(t, err)
	require.Equal(t, byte('q'), l)
}

func TestLetter_Wraps(t *testing.T) {
	assert.Equal(t, byte('a'), wheel.Letter(26))
	assert.Equal(t, byte('z'), wheel.Letter(-1))
	assert.Equal(t, 25, wheel.Index('z'))
}

func TestValidWord(t *testing.T) {
	assert.True(t, wheel.ValidWord("wheel"))
	assert.False(t, wheel.ValidWord(""))
	assert.False(t, wheel.ValidWord("Wheel"))
	assert.False(t, wheel.ValidWord("can't"))
	assert.False(t, wheel.ValidWord("naïve"))
}
