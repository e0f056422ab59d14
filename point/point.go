// Package point defines the foundational geometric primitive used throughout
// voronoi2d: a two-dimensional point with double-precision coordinates and
// the total order the sweepline algorithm depends on for its event priority
// and tie-breaking rules.
//
// # Overview
//
// Every other package in this module — geometry, beachline, event, dcel,
// sweep — is built on top of Point. The type is intentionally small: the
// sweep only ever needs coordinate access, elementary vector arithmetic, and
// the total order defined below; it does not need the general-purpose
// rotate/scale/angle surface a broader 2-D geometry library would carry.
package point

import (
	"encoding/json"
	"fmt"
	"math"
)

// Point represents a point (or, where convenient, a displacement vector) in
// two-dimensional space with float64 coordinates.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the given x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the x-coordinate of the point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the point.
func (p Point) Y() float64 {
	return p.y
}

// Coordinates returns the x and y coordinates of the point as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// Add returns the component-wise sum of p and q, treating both as vectors.
func (p Point) Add(q Point) Point {
	return Point{x: p.x + q.x, y: p.y + q.y}
}

// Sub returns the vector from q to p (p minus q).
func (p Point) Sub(q Point) Point {
	return Point{x: p.x - q.x, y: p.y - q.y}
}

// Scale returns p scaled by the scalar k, treating p as a vector.
func (p Point) Scale(k float64) Point {
	return Point{x: p.x * k, y: p.y * k}
}

// CrossProduct returns the 2-D cross product (determinant) of p and q,
// treated as vectors from the origin: p.x*q.y - p.y*q.x.
//
// A positive result indicates q is counterclockwise from p, negative
// indicates clockwise, and zero indicates p and q are collinear with the
// origin.
func (p Point) CrossProduct(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// DotProduct returns the dot product of p and q, treated as vectors.
func (p Point) DotProduct(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// DistanceSquaredToPoint returns the squared Euclidean distance between p
// and q, avoiding the cost of a square root when only comparison is needed.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	dx := q.x - p.x
	dy := q.y - p.y
	return dx*dx + dy*dy
}

// DistanceToPoint returns the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// Eq reports whether p and q have bitwise-identical coordinates.
//
// Unlike most relationship methods elsewhere in this module's ancestry,
// this comparison is deliberately exact, not epsilon-tolerant: the sweep's
// total order (see [Point.Less]) and its tie-breaks are defined in terms of
// exact coordinate equality, and softening that with an epsilon would make
// the beachline and event-queue tie-breaking rules ambiguous.
func (p Point) Eq(q Point) bool {
	return p.x == q.x && p.y == q.y
}

// Less implements the total order the sweepline algorithm uses for both its
// event-queue priority and its beachline tie-breaks:
//
//	p < q  iff  p.y < q.y, or p.y == q.y and p.x > q.x
//
// That is, the point with higher y is the greater one, and the sweep takes
// points greatest first (top to bottom). For points on the same
// horizontal line, the point with the larger x is the lesser one, so it
// comes after the smaller-x point in that greatest-first order. Because
// the order is total, two horizontally collinear inputs produce identical
// results regardless of insertion order.
func (p Point) Less(q Point) bool {
	if p.y != q.y {
		return p.y < q.y
	}
	return p.x > q.x
}

// String returns a string representation of the point in the form "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}

// MarshalJSON serializes Point as a JSON object with "x" and "y" fields.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes a JSON object with "x" and "y" fields into p.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}
