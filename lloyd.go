package voronoi2d

import (
	"github.com/fortunevoronoi/voronoi2d/options"
	"github.com/fortunevoronoi/voronoi2d/point"
	"github.com/fortunevoronoi/voronoi2d/rectangle"
)

// polygonCentroid returns the unweighted average of a polygon's
// vertices. This is not the area-weighted centroid of the enclosed
// region; it is the same simple vertex average Lloyd relaxation has
// always used here.
func polygonCentroid(pts []point.Point) point.Point {
	sum := point.New(0, 0)
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1.0 / float64(len(pts)))
}

// LloydRelaxation runs one iteration of Lloyd's algorithm: it computes
// the Voronoi diagram of sites clipped to bounds, then moves each site
// to its own cell's centroid. Repeated iterations spread an initial
// point set toward a centroidal configuration.
//
// As in [Voronoi], sites must be distinct and in general position for
// the returned slice to have the same length as sites.
func LloydRelaxation(sites []point.Point, bounds rectangle.Rectangle, opts ...options.VoronoiOptionsFunc) []point.Point {
	d := Voronoi(sites, bounds, opts...)
	polys := MakePolygons(d)

	relaxed := make([]point.Point, len(polys))
	for i, poly := range polys {
		relaxed[i] = polygonCentroid(poly)
	}
	return relaxed
}
