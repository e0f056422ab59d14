// Package voronoi2d computes Voronoi diagrams in the plane via Fortune's
// sweepline algorithm, clipped to a caller-supplied axis-aligned
// bounding rectangle.
//
// The package is built around three entry points: [Voronoi], which
// builds the clipped diagram as a [dcel.DCEL]; [MakePolygons] and
// [MakeLineSegments], which extract the diagram's cells and edges in
// plain Go shapes; and [LloydRelaxation], which moves each site to its
// cell's centroid, the standard technique for spreading out an initial
// point set.
//
// # Coordinate system
//
// This library assumes a standard Cartesian coordinate system where the
// x-axis increases to the right and the y-axis increases upward.
//
// # Algorithm
//
// The sweep driver (package sweep) advances an imaginary horizontal line
// downward across the plane, maintaining the "beachline" — the lower
// envelope of the parabolic arcs swept out by each site seen so far —
// as a binary tree of arcs and breakpoints (package beachline). Site
// events insert new arcs; circle events remove arcs that are squeezed
// out between their neighbors, each removal finalizing one vertex of the
// output diagram (package dcel). Once every event has been processed,
// the unfinished breakpoint traces are extended out to the bounding
// rectangle, the rectangle's own edges are inserted, and the resulting
// planar subdivision is faced and pruned to the rectangle's interior.
//
// # Precision control with epsilon
//
// The underlying [point.Point] total order is exact and bitwise — it
// never uses epsilon. Epsilon tolerance is carried instead for the two
// ambient concerns where exact comparison would be the wrong tool: how
// far unfinished breakpoint traces are extended before clipping, and how
// close to the bounding rectangle a vertex produced during clipping must
// fall to be kept. Both are configurable via the [options] package's
// functional options.
//
// # Lineage
//
// This library follows the geom2d family of packages that inspired it:
// Point/Rectangle carry the same JSON-marshaling and Eq/String
// conventions, the DCEL and beachline use the same flat, index-
// addressed arena style as geom2d's PolyTree, and the debug logger
// follows the same build-tag-gated pattern.
package voronoi2d
