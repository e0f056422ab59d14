package voronoi2d

import (
	"github.com/fortunevoronoi/voronoi2d/dcel"
	"github.com/fortunevoronoi/voronoi2d/point"
)

// Segment is an oriented pair of endpoints: one traced half-edge of a
// Voronoi diagram's DCEL.
type Segment = dcel.Segment

// MakeLineSegments returns every live half-edge of d as an oriented
// (origin, destination) segment. Each undirected edge of the diagram
// appears twice, once per half-edge.
func MakeLineSegments(d *dcel.DCEL) []Segment {
	return d.MakeLineSegments()
}

// MakePolygons returns the bounded cells of d as closed point loops, one
// per input site (in general position, inside bounds, with distinct
// sites). The unbounded outer face is already excluded.
func MakePolygons(d *dcel.DCEL) [][]point.Point {
	return d.MakePolygons()
}
