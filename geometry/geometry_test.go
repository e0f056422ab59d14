package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortunevoronoi/voronoi2d/point"
)

func TestCircumcenter_SimpleTriple(t *testing.T) {
	a := point.New(-1, 0)
	b := point.New(0, 1)
	c := point.New(1, 0)

	center, ok := Circumcenter(a, b, c)
	require.True(t, ok)
	assert.InDelta(t, 0.0, center.X(), 1e-9)
	assert.InDelta(t, 0.0, center.Y(), 1e-9)
}

func TestCircumcenter_Collinear(t *testing.T) {
	a := point.New(-1, 0)
	b := point.New(1, 0)
	c := point.New(0, 0)

	_, ok := Circumcenter(a, b, c)
	assert.False(t, ok)
}

func TestCircleBottom_SimpleTriple(t *testing.T) {
	a := point.New(-1, 0)
	b := point.New(0, 1)
	c := point.New(1, 0)

	bottom, ok := CircleBottom(a, b, c)
	require.True(t, ok)
	assert.InDelta(t, -1.0, bottom, 1e-9)
}

func TestCircleBottom_Collinear(t *testing.T) {
	a := point.New(-1, 0)
	b := point.New(1, 0)
	c := point.New(0, 0)

	_, ok := CircleBottom(a, b, c)
	assert.False(t, ok)
}

func TestSegmentIntersection_Crossing(t *testing.T) {
	a, b := point.New(-1, 0), point.New(1, 0)
	c, d := point.New(0, -1), point.New(0, 1)

	p, ok := SegmentIntersection(a, b, c, d)
	require.True(t, ok)
	assert.InDelta(t, 0.0, p.X(), 1e-9)
	assert.InDelta(t, 0.0, p.Y(), 1e-9)
}

func TestSegmentIntersection_NoCrossing(t *testing.T) {
	a, b := point.New(-1, 10), point.New(1, 10)
	c, d := point.New(0, -1), point.New(0, 1)

	_, ok := SegmentIntersection(a, b, c, d)
	assert.False(t, ok)
}

func TestSegmentIntersection_Parallel(t *testing.T) {
	a, b := point.New(0, 0), point.New(1, 0)
	c, d := point.New(0, 1), point.New(1, 1)

	_, ok := SegmentIntersection(a, b, c, d)
	assert.False(t, ok)
}

func TestBreakpointsConverge(t *testing.T) {
	// a right-turn (clockwise) arrangement of sites should converge toward
	// a circle event; a straight line of sites should not.
	assert.True(t, BreakpointsConverge(point.New(-1, 0), point.New(0, 1), point.New(1, 0)))
	assert.False(t, BreakpointsConverge(point.New(-1, 0), point.New(0, 0), point.New(1, 0)))
}

func TestBreakpointX_Symmetric(t *testing.T) {
	left := point.New(-1, 0)
	right := point.New(1, 0)

	x := BreakpointX(left, right, -5)
	assert.InDelta(t, 0.0, x, 1e-9)
}

func TestBreakpointX_RightOnDirectrix(t *testing.T) {
	left := point.New(-2, 3)
	right := point.New(4, 1)

	x := BreakpointX(left, right, 1)
	assert.InDelta(t, 4.0, x, 1e-9)
}

func TestMakesLeftTurn(t *testing.T) {
	assert.True(t, MakesLeftTurn(point.New(0, 0), point.New(1, 0), point.New(1, 1)))
	assert.False(t, MakesLeftTurn(point.New(0, 0), point.New(1, 0), point.New(1, -1)))
	assert.False(t, MakesLeftTurn(point.New(0, 0), point.New(1, 0), point.New(2, 0)))
}
