package voronoi2d

import (
	"github.com/fortunevoronoi/voronoi2d/dcel"
	"github.com/fortunevoronoi/voronoi2d/options"
	"github.com/fortunevoronoi/voronoi2d/point"
	"github.com/fortunevoronoi/voronoi2d/rectangle"
	"github.com/fortunevoronoi/voronoi2d/sweep"
)

// Voronoi computes the Voronoi diagram of sites, clipped to bounds, via
// Fortune's sweepline algorithm. The result is a planar subdivision
// ([dcel.DCEL]) with one face per site plus the unbounded outer face
// (which [MakePolygons] drops) and one bisector edge per pair of adjacent
// cells.
//
// Sites must be distinct; if two sites coincide the algorithm's
// behavior is undefined and callers should deduplicate first.
//
// opts configures the finalize step's epsilon tolerances; see
// [options.WithEpsilon] and [options.WithExtensionDistance].
func Voronoi(sites []point.Point, bounds rectangle.Rectangle, opts ...options.VoronoiOptionsFunc) *dcel.DCEL {
	logDebugf("computing voronoi diagram for %d sites", len(sites))
	ctx := sweep.NewContext(sites)
	return ctx.Run(bounds, opts...)
}
