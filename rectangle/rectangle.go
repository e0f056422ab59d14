// Package rectangle defines the axis-aligned bounding rectangle every
// Voronoi diagram is clipped to.
package rectangle

import (
	"encoding/json"
	"fmt"

	"github.com/fortunevoronoi/voronoi2d/point"
)

// Rectangle represents an axis-aligned rectangle defined by its four
// corners.
type Rectangle struct {
	topLeft     point.Point
	topRight    point.Point
	bottomLeft  point.Point
	bottomRight point.Point
}

// New creates a rectangle given two opposite corners, regardless of their
// order.
func New(x1, y1, x2, y2 float64) Rectangle {
	return NewFromPoints(
		point.New(min(x1, x2), min(y1, y2)),
		point.New(min(x1, x2), max(y1, y2)),
		point.New(max(x1, x2), min(y1, y2)),
		point.New(max(x1, x2), max(y1, y2)),
	)
}

// NewFromPoints creates a new Rectangle from four points. The points may be
// given in any order, but they must form an axis-aligned rectangle.
//
// Panics if the four points do not form an axis-aligned rectangle.
func NewFromPoints(pt1, pt2, pt3, pt4 point.Point) Rectangle {
	points := []point.Point{pt1, pt2, pt3, pt4}

	minX, maxX := points[0].X(), points[0].X()
	minY, maxY := points[0].Y(), points[0].Y()
	for _, p := range points[1:] {
		minX = min(minX, p.X())
		minY = min(minY, p.Y())
		maxX = max(maxX, p.X())
		maxY = max(maxY, p.Y())
	}

	corners := map[point.Point]bool{
		point.New(minX, maxY): false, // top-left
		point.New(maxX, maxY): false, // top-right
		point.New(minX, minY): false, // bottom-left
		point.New(maxX, minY): false, // bottom-right
	}
	for _, p := range points {
		if _, ok := corners[p]; !ok {
			panic("rectangle: points do not form an axis-aligned rectangle")
		}
		corners[p] = true
	}
	for _, found := range corners {
		if !found {
			panic("rectangle: points do not form an axis-aligned rectangle")
		}
	}

	return Rectangle{
		topLeft:     point.New(minX, maxY),
		topRight:    point.New(maxX, maxY),
		bottomLeft:  point.New(minX, minY),
		bottomRight: point.New(maxX, minY),
	}
}

// Area returns the rectangle's area.
func (r Rectangle) Area() float64 {
	return r.Width() * r.Height()
}

// ContainsPoint reports whether p lies inside or on the boundary of r.
func (r Rectangle) ContainsPoint(p point.Point) bool {
	return p.X() >= r.topLeft.X() &&
		p.X() <= r.bottomRight.X() &&
		p.Y() <= r.topLeft.Y() &&
		p.Y() >= r.bottomRight.Y()
}

// Contour returns the four corner points of the rectangle, in
// bottom-left, bottom-right, top-right, top-left order.
func (r Rectangle) Contour() (bottomLeft, bottomRight, topRight, topLeft point.Point) {
	return r.bottomLeft, r.bottomRight, r.topRight, r.topLeft
}

// Edges returns the rectangle's four edges as (start, end) point pairs, in
// counter-clockwise order starting at the bottom edge.
func (r Rectangle) Edges() [4][2]point.Point {
	return [4][2]point.Point{
		{r.bottomLeft, r.bottomRight},
		{r.bottomRight, r.topRight},
		{r.topRight, r.topLeft},
		{r.topLeft, r.bottomLeft},
	}
}

// Eq reports whether r and other have identical corners.
func (r Rectangle) Eq(other Rectangle) bool {
	return r.bottomLeft.Eq(other.bottomLeft) &&
		r.bottomRight.Eq(other.bottomRight) &&
		r.topRight.Eq(other.topRight) &&
		r.topLeft.Eq(other.topLeft)
}

// Height returns the rectangle's height.
func (r Rectangle) Height() float64 {
	return r.topLeft.Y() - r.bottomLeft.Y()
}

// Width returns the rectangle's width.
func (r Rectangle) Width() float64 {
	return r.bottomRight.X() - r.bottomLeft.X()
}

// Perimeter returns the rectangle's perimeter.
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.Width() + r.Height())
}

// String returns a string representation of the rectangle in the form
// "[(bottomLeft),(topRight)]".
func (r Rectangle) String() string {
	return fmt.Sprintf("[(%v,%v),(%v,%v)]", r.bottomLeft.X(), r.bottomLeft.Y(), r.topRight.X(), r.topRight.Y())
}

// MarshalJSON serializes Rectangle as JSON.
func (r Rectangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TopLeft     point.Point `json:"top_left"`
		TopRight    point.Point `json:"top_right"`
		BottomLeft  point.Point `json:"bottom_left"`
		BottomRight point.Point `json:"bottom_right"`
	}{
		TopLeft:     r.topLeft,
		TopRight:    r.topRight,
		BottomLeft:  r.bottomLeft,
		BottomRight: r.bottomRight,
	})
}

// UnmarshalJSON deserializes JSON into a Rectangle, validating that the
// result is axis-aligned.
func (r *Rectangle) UnmarshalJSON(data []byte) error {
	var temp struct {
		TopLeft     point.Point `json:"top_left"`
		TopRight    point.Point `json:"top_right"`
		BottomLeft  point.Point `json:"bottom_left"`
		BottomRight point.Point `json:"bottom_right"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	r.topLeft = temp.TopLeft
	r.topRight = temp.TopRight
	r.bottomLeft = temp.BottomLeft
	r.bottomRight = temp.BottomRight
	return r.validate()
}

// validate checks that the rectangle is axis-aligned and correctly
// ordered.
func (r Rectangle) validate() error {
	if r.topLeft.Y() != r.topRight.Y() {
		return fmt.Errorf("topLeft (%v) and topRight (%v) must have the same y-coordinate", r.topLeft, r.topRight)
	}
	if r.bottomLeft.Y() != r.bottomRight.Y() {
		return fmt.Errorf("bottomLeft (%v) and bottomRight (%v) must have the same y-coordinate", r.bottomLeft, r.bottomRight)
	}
	if r.topLeft.X() != r.bottomLeft.X() {
		return fmt.Errorf("topLeft (%v) and bottomLeft (%v) must have the same x-coordinate", r.topLeft, r.bottomLeft)
	}
	if r.topRight.X() != r.bottomRight.X() {
		return fmt.Errorf("topRight (%v) and bottomRight (%v) must have the same x-coordinate", r.topRight, r.bottomRight)
	}
	if r.topLeft.Y() <= r.bottomLeft.Y() {
		return fmt.Errorf("topLeft (%v) must be above bottomLeft (%v)", r.topLeft, r.bottomLeft)
	}
	if r.topLeft.X() >= r.topRight.X() {
		return fmt.Errorf("topLeft (%v) must be to the left of topRight (%v)", r.topLeft, r.topRight)
	}
	return nil
}
