// Package dcel implements a doubly-connected edge list: the planar
// subdivision data structure the sweep driver builds incrementally and the
// finalize step clips to a bounding rectangle. Vertices, half-edges, and
// faces live in flat, index-addressed slices rather than a pointer graph,
// following the arena style the rest of this module uses for cyclic
// structures; entities are retired by clearing an alive flag, never by
// compaction, so indices handed out mid-algorithm stay valid for the life
// of the DCEL.
package dcel

import (
	"fmt"
	"sort"

	"github.com/fortunevoronoi/voronoi2d/geometry"
	"github.com/fortunevoronoi/voronoi2d/point"
)

// Nil is the sentinel index meaning "no such vertex/half-edge/face".
const Nil = -1

// Vertex is a DCEL vertex: a coordinate plus one incident outgoing
// half-edge.
type Vertex struct {
	Coordinates  point.Point
	IncidentEdge int
	Alive        bool
}

// HalfEdge is one directed half of an edge in the subdivision.
type HalfEdge struct {
	Origin int
	Twin   int
	Next   int
	Prev   int
	Face   int
	Alive  bool
}

// Face is a bounded region of the subdivision, identified by one half-edge
// on its boundary cycle.
type Face struct {
	OuterComponent int
	Alive          bool
}

// DCEL is a doubly-connected edge list under construction or already
// complete. The zero value is an empty DCEL ready for use.
type DCEL struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
	Faces     []Face
}

// New returns an empty DCEL.
func New() *DCEL {
	return &DCEL{}
}

func newHalfEdge() HalfEdge {
	return HalfEdge{Origin: Nil, Twin: Nil, Next: Nil, Prev: Nil, Face: Nil, Alive: true}
}

// AddTwins allocates a fresh pair of mutually-twinned half-edges with no
// origin, next, or prev set yet, and returns their indices.
func (d *DCEL) AddTwins() (he1, he2 int) {
	startIndex := len(d.HalfEdges)
	a := newHalfEdge()
	b := newHalfEdge()
	a.Twin = startIndex + 1
	b.Twin = startIndex
	d.HalfEdges = append(d.HalfEdges, a, b)
	return startIndex, startIndex + 1
}

// Origin returns the coordinates of the vertex half-edge edge originates
// from.
func (d *DCEL) Origin(edge int) point.Point {
	return d.Vertices[d.HalfEdges[edge].Origin].Coordinates
}

// AddVertex appends a new live vertex at p with the given incident edge and
// returns its index.
func (d *DCEL) AddVertex(p point.Point, incidentEdge int) int {
	idx := len(d.Vertices)
	d.Vertices = append(d.Vertices, Vertex{Coordinates: p, IncidentEdge: incidentEdge, Alive: true})
	return idx
}

// SetPrevFromNext derives every half-edge's Prev pointer by walking each
// Next-cycle once. It is meant to be called after the sweep driver has
// finished wiring Next pointers but before any prev-dependent operation
// (RemoveHalfEdge, RemoveVertex) runs.
func (d *DCEL) SetPrevFromNext() {
	seen := make(map[int]bool, len(d.HalfEdges))
	for edgeIdx := range d.HalfEdges {
		if seen[edgeIdx] {
			continue
		}
		current := edgeIdx
		seen[current] = true
		for {
			next := d.HalfEdges[current].Next
			d.HalfEdges[next].Prev = current
			current = next
			seen[current] = true
			if current == edgeIdx {
				break
			}
		}
	}
}

// RemoveHalfEdge splices edge and its twin out of the subdivision's
// next/prev cycles and marks both dead.
func (d *DCEL) RemoveHalfEdge(edge int) {
	e := d.HalfEdges[edge]
	twin := d.HalfEdges[e.Twin]

	d.HalfEdges[e.Prev].Next = twin.Next
	d.HalfEdges[e.Next].Prev = twin.Prev
	d.HalfEdges[twin.Prev].Next = e.Next
	d.HalfEdges[twin.Next].Prev = e.Prev

	d.HalfEdges[edge].Alive = false
	d.HalfEdges[e.Twin].Alive = false
}

func (d *DCEL) edgesAroundVertex(vertex int) []int {
	var result []int
	start := d.Vertices[vertex].IncidentEdge
	current := start
	for {
		result = append(result, current)
		twin := d.HalfEdges[current].Twin
		current = d.HalfEdges[twin].Next
		if current == start {
			break
		}
	}
	return result
}

// RemoveVertex removes vertex and every half-edge incident to it.
func (d *DCEL) RemoveVertex(vertex int) {
	for _, edge := range d.edgesAroundVertex(vertex) {
		d.RemoveHalfEdge(edge)
	}
	d.Vertices[vertex].Alive = false
}

// AddFaces labels every live half-edge with the face its Next-cycle
// belongs to, allocating one Face per distinct cycle. It must be called
// exactly once, on a DCEL with no faces yet; it panics if the DCEL
// already has faces.
func (d *DCEL) AddFaces() {
	if len(d.Faces) != 0 {
		panic("dcel: AddFaces called on a DCEL that already has faces")
	}
	seen := make(map[int]bool, len(d.HalfEdges))

	for edgeIndex := range d.HalfEdges {
		if seen[edgeIndex] || !d.HalfEdges[edgeIndex].Alive {
			continue
		}

		faceIndex := len(d.Faces)
		d.Faces = append(d.Faces, Face{OuterComponent: edgeIndex, Alive: true})

		current := edgeIndex
		for {
			seen[current] = true
			d.HalfEdges[current].Face = faceIndex
			current = d.HalfEdges[current].Next
			if current == edgeIndex {
				break
			}
		}
	}
}

// Segment is an oriented pair of endpoints, used both as AddLine's input
// and MakeLineSegments' output.
type Segment [2]point.Point

// addTwinsFromPoint allocates a twin pair whose first half-edge originates
// at p, and the new vertex index.
func (d *DCEL) addTwinsFromPoint(p point.Point) (needsNext, needsPrev, vertexIdx int) {
	twin1, twin2 := d.AddTwins()
	vertexIdx = d.AddVertex(p, twin1)
	d.HalfEdges[twin1].Origin = vertexIdx
	return twin1, twin2, vertexIdx
}

type lineIntersection struct {
	point   point.Point
	cutEdge int
}

func (d *DCEL) lineIntersections(seg Segment) []lineIntersection {
	var result []lineIntersection
	seen := make(map[int]bool, len(d.HalfEdges))
	for index, he := range d.HalfEdges {
		twin := he.Twin
		if seen[index] || seen[twin] || !he.Alive {
			continue
		}
		thisSeg := [2]point.Point{d.Origin(index), d.Origin(twin)}
		if pt, ok := geometry.SegmentIntersection(seg[0], seg[1], thisSeg[0], thisSeg[1]); ok {
			result = append(result, lineIntersection{point: pt, cutEdge: index})
		}
		seen[index] = true
		seen[twin] = true
	}
	return result
}

// AddLine inserts segment seg into the subdivision, splitting every
// half-edge it crosses and adding a new chain of half-edge pairs for the
// inserted segment itself. It does not handle a line passing exactly
// through an existing vertex.
func (d *DCEL) AddLine(seg Segment) {
	intersections := d.lineIntersections(seg)
	sort.Slice(intersections, func(i, j int) bool {
		return intersections[i].point.Less(intersections[j].point)
	})

	startPt, endPt := seg[0], seg[1]
	if seg[1].Less(seg[0]) {
		startPt, endPt = seg[1], seg[0]
	}

	lineNeedsNext, lineNeedsPrev, _ := d.addTwinsFromPoint(startPt)
	d.HalfEdges[lineNeedsPrev].Next = lineNeedsNext
	prevPt := startPt

	for _, isect := range intersections {
		intPt, thisCutEdge := isect.point, isect.cutEdge
		newLineNeedsNext, newLineNeedsPrev, newPtInd := d.addTwinsFromPoint(intPt)
		d.HalfEdges[lineNeedsPrev].Origin = newPtInd

		cutEdge := thisCutEdge
		if geometry.MakesLeftTurn(prevPt, intPt, d.Origin(thisCutEdge)) {
			cutEdge = d.HalfEdges[cutEdge].Twin
		}

		oldCutNext := d.HalfEdges[cutEdge].Next
		oldCutTwin := d.HalfEdges[cutEdge].Twin
		d.HalfEdges[cutEdge].Next = lineNeedsPrev

		cutExtInd := len(d.HalfEdges)
		d.HalfEdges = append(d.HalfEdges, HalfEdge{
			Origin: newPtInd, Next: oldCutNext, Twin: oldCutTwin, Face: Nil, Prev: Nil, Alive: true,
		})
		d.HalfEdges[lineNeedsNext].Next = cutExtInd

		oldTwinNext := d.HalfEdges[oldCutTwin].Next
		d.HalfEdges[oldCutTwin].Next = newLineNeedsNext

		twinExtInd := len(d.HalfEdges)
		d.HalfEdges = append(d.HalfEdges, HalfEdge{
			Origin: newPtInd, Next: oldTwinNext, Twin: cutEdge, Face: Nil, Prev: Nil, Alive: true,
		})
		d.HalfEdges[newLineNeedsPrev].Next = twinExtInd

		d.HalfEdges[cutEdge].Twin = twinExtInd
		d.HalfEdges[oldCutTwin].Twin = cutExtInd

		lineNeedsNext = newLineNeedsNext
		lineNeedsPrev = newLineNeedsPrev
		prevPt = intPt
	}

	d.HalfEdges[lineNeedsNext].Next = lineNeedsPrev
	endVertexInd := d.AddVertex(endPt, lineNeedsPrev)
	d.HalfEdges[lineNeedsPrev].Origin = endVertexInd
}

// MakeLineSegments returns one segment per live half-edge whose endpoints
// are both resolved, in no particular order; each undirected edge appears
// twice (once per half-edge direction).
func (d *DCEL) MakeLineSegments() []Segment {
	var result []Segment
	for _, he := range d.HalfEdges {
		if !he.Alive || he.Origin == Nil || he.Next == Nil {
			continue
		}
		next := d.HalfEdges[he.Next]
		if next.Origin == Nil {
			continue
		}
		result = append(result, Segment{d.Vertices[he.Origin].Coordinates, d.Origin(he.Next)})
	}
	return result
}

// MakePolygons walks every live face's boundary cycle, collecting origin
// coordinates, and returns one polygon per bounded cell. The single
// largest polygon by vertex count — the unbounded outer face's boundary —
// is dropped, matching the convention that the outer face is never a real
// Voronoi cell.
func (d *DCEL) MakePolygons() [][]point.Point {
	var result [][]point.Point
	for _, face := range d.Faces {
		if !face.Alive {
			continue
		}
		var poly []point.Point
		start := face.OuterComponent
		current := start
		for {
			poly = append(poly, d.Origin(current))
			current = d.HalfEdges[current].Next
			if current == start {
				break
			}
		}
		result = append(result, poly)
	}

	if len(result) <= 1 {
		return result
	}

	largest := 0
	for i, poly := range result {
		if len(poly) > len(result[largest]) {
			largest = i
		}
	}
	return append(result[:largest], result[largest+1:]...)
}

func (v Vertex) String() string {
	return fmt.Sprintf("%s, edge: %d", v.Coordinates, v.IncidentEdge)
}

func (h HalfEdge) String() string {
	return fmt.Sprintf("origin: %d, twin: %d, next: %d", h.Origin, h.Twin, h.Next)
}
