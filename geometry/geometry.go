// Package geometry implements the closed-form numeric kernels the sweep
// driver needs: parabola breakpoint tracing, circumcenters, circle-event
// keys, the beachline convergence test, segment intersection for clipping,
// and the exact left-turn test the DCEL's line insertion uses to pick
// which half-edge to cut. Every function here is a pure, stateless formula
// over [point.Point] values — no package-level state, no allocation beyond
// the values returned.
package geometry

import (
	"math"

	"github.com/fortunevoronoi/voronoi2d/point"
)

// SegmentIntersection returns the intersection point of segment (a, b) with
// segment (c, d), and true if one exists.
//
// The segments are parameterized a + t*(b-a) and c + u*(d-c); the
// intersection exists only when the parametric cross-product solution has
// both t and u in [0, 1] and the segments are not parallel (zero cross
// product of their direction vectors). Parallel or non-overlapping segments
// report false; this rejection is exact, not epsilon-tolerant, matching the
// clip-rectangle insertion's need for a deterministic yes/no per segment.
func SegmentIntersection(a, b, c, d point.Point) (point.Point, bool) {
	r := b.Sub(a)
	s := d.Sub(c)

	denom := r.CrossProduct(s)
	if denom == 0 {
		return point.Point{}, false
	}

	ca := c.Sub(a)
	t := ca.CrossProduct(s) / denom
	u := ca.CrossProduct(r) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return point.Point{}, false
	}

	return a.Add(r.Scale(t)), true
}

// Circumcenter returns the center of the circle through a, b, and c, and
// true if the three points are not collinear. Collinear inputs have no
// unique circumcenter and report false rather than a NaN or infinite
// result.
func Circumcenter(a, b, c point.Point) (point.Point, bool) {
	ax, ay := a.Coordinates()
	bx, by := b.Coordinates()
	cx, cy := c.Coordinates()

	c1 := cx*cx + cy*cy - ax*ax - ay*ay
	c2 := cx*cx + cy*cy - bx*bx - by*by
	a1 := -2 * (ax - cx)
	a2 := -2 * (bx - cx)
	b1 := -2 * (ay - cy)
	b2 := -2 * (by - cy)

	numer := c1*a2 - c2*a1
	denom := b1*a2 - b2*a1
	if denom == 0 {
		return point.Point{}, false
	}

	yCen := numer / denom
	var xCen float64
	if a2 != 0 {
		xCen = (c2 - b2*yCen) / a2
	} else {
		xCen = (c1 - b1*yCen) / a1
	}

	return point.New(xCen, yCen), true
}

// CircleBottom returns the y-coordinate of the lowest point of the circle
// through a, b, c — the y-key at which a circle event involving this
// triple fires — and true if the triple has a well-defined circumcenter.
func CircleBottom(a, b, c point.Point) (float64, bool) {
	center, ok := Circumcenter(a, b, c)
	if !ok {
		return 0, false
	}
	r := center.DistanceToPoint(c)
	return center.Y() - r, true
}

// BreakpointsConverge reports whether the three sites a, b, c (left to
// right on the beachline) have breakpoints that are converging — i.e.
// whether the arc for b is shrinking toward extinction and a circle event
// should be scheduled for this triple.
//
// See Kevin Schaal's "GPU-based Delaunay triangulation and applications"
// diploma thesis, p.27, for the derivation of this test.
func BreakpointsConverge(a, b, c point.Point) bool {
	ax, ay := a.Coordinates()
	bx, by := b.Coordinates()
	cx, cy := c.Coordinates()
	return (ay-by)*(bx-cx) > (by-cy)*(ax-bx)
}

// BreakpointX returns the x-coordinate at which the parabolic arcs for
// left and right (the two sites generating a breakpoint, left site first)
// meet, given a sweepline at height yl.
//
// Three degeneracies are special-cased before the general formula: when
// left and right are equidistant from the sweepline, the breakpoint is
// the vertical bisector (left.X()+right.X())/2; when right sits exactly
// on the sweepline, the breakpoint is the limiting case right.X(); when
// both sites sit exactly on the sweepline, the breakpoint is undefined
// and NaN is returned — callers must not reach this configuration.
func BreakpointX(left, right point.Point, yl float64) float64 {
	lx, ly := left.Coordinates()
	rx, ry := right.Coordinates()

	ayS := ly - yl
	byS := ry - yl

	if ayS == 0 && byS == 0 {
		return math.NaN()
	}
	if ayS == byS {
		return (lx + rx) / 2
	}
	if byS == 0 {
		return rx
	}

	bxS := rx - lx
	discrim := ayS * byS * ((ayS-byS)*(ayS-byS) + bxS*bxS)
	numer := ayS*bxS - math.Sqrt(discrim)
	denom := ayS - byS

	return numer/denom + lx
}

// BreakpointY returns the y-coordinate of the breakpoint between left and
// right at sweepline height yl, tracing the point along the left site's
// parabola at the x returned by [BreakpointX].
func BreakpointY(left, right point.Point, yl float64) float64 {
	lx, ly := left.Coordinates()
	bpX := BreakpointX(left, right, yl)

	numer := (lx - bpX) * (lx - bpX)
	denom := 2 * (ly - yl)

	return numer/denom + (ly+yl)/2
}

// MakesLeftTurn reports whether the path a -> b -> c turns left (is
// counterclockwise), using an exact cross-product sign test with no
// epsilon tolerance. The DCEL's line-insertion routine uses this to
// decide which of two half-edges meeting at a new vertex should be cut
// and re-linked into the inserted segment.
func MakesLeftTurn(a, b, c point.Point) bool {
	ab := b.Sub(a)
	bc := c.Sub(b)
	return ab.CrossProduct(bc) > 0
}
