// Package sweep implements Fortune's sweepline algorithm: the driver that
// consumes an event queue of site and circle events and builds a DCEL
// planar subdivision, then clips that subdivision to a bounding rectangle.
//
// A Context owns the beachline, the event queue, and the DCEL under
// construction for the lifetime of exactly one diagram computation; it is
// not meant to be reused across calls or shared across goroutines, per the
// single-threaded, per-call-exclusive resource model the rest of this
// module follows.
package sweep

import (
	"fmt"

	"github.com/fortunevoronoi/voronoi2d/beachline"
	"github.com/fortunevoronoi/voronoi2d/dcel"
	"github.com/fortunevoronoi/voronoi2d/event"
	"github.com/fortunevoronoi/voronoi2d/geometry"
	"github.com/fortunevoronoi/voronoi2d/numeric"
	"github.com/fortunevoronoi/voronoi2d/options"
	"github.com/fortunevoronoi/voronoi2d/point"
	"github.com/fortunevoronoi/voronoi2d/rectangle"
)

// Context owns the working state of a single Voronoi diagram computation.
type Context struct {
	queue     *event.Queue
	beachline *beachline.BeachLine
	dcel      *dcel.DCEL
}

// NewContext returns an empty Context with one site event queued per
// input site.
func NewContext(sites []point.Point) *Context {
	c := &Context{
		queue:     event.New(),
		beachline: beachline.New(),
		dcel:      dcel.New(),
	}
	for _, s := range sites {
		c.queue.Push(event.NewSiteEvent(s))
	}
	return c
}

// Run drains the event queue, builds the unclipped subdivision, then clips
// it to bounds and returns the finished DCEL.
func (c *Context) Run(bounds rectangle.Rectangle, opts ...options.VoronoiOptionsFunc) *dcel.DCEL {
	cfg := options.ApplyVoronoiOptions(options.VoronoiOptions{}, opts...)
	if cfg.ExtensionDistance <= 0 {
		cfg.ExtensionDistance = defaultExtensionDistance(bounds)
	}

	for {
		e, ok := c.queue.Pop()
		if !ok {
			break
		}
		logDebugf("popped event: %s", e)
		switch e.Kind {
		case event.Site:
			c.handleSiteEvent(e.SitePoint)
		case event.Circle:
			c.handleCircleEvent(e)
		}
	}

	c.finalize(bounds, cfg)
	return c.dcel
}

func defaultExtensionDistance(bounds rectangle.Rectangle) float64 {
	w, h := bounds.Width(), bounds.Height()
	diag := w*w + h*h
	return 10 * (diag + 1)
}

func (c *Context) handleSiteEvent(site point.Point) {
	if c.beachline.IsEmpty() {
		c.beachline.InsertFirst(site)
		return
	}

	arcAbove := c.beachline.ArcAbove(site)

	if se := c.beachline.Nodes[arcAbove].Item.Arc.SiteEvent; se != beachline.Nil {
		c.queue.Cancel(se)
		c.beachline.Nodes[arcAbove].Item.Arc.SiteEvent = beachline.Nil
	}

	newNode := c.splitArc(arcAbove, site)

	if a, b, cc, ok := c.beachline.LeftwardTriple(newNode); ok && geometry.BreakpointsConverge(a, b, cc) {
		c.scheduleCircleEvent(c.beachline.LeftArc(newNode), a, b, cc)
	}
	if a, b, cc, ok := c.beachline.RightwardTriple(newNode); ok && geometry.BreakpointsConverge(a, b, cc) {
		c.scheduleCircleEvent(c.beachline.RightArc(newNode), a, b, cc)
	}
}

// splitArc replaces the leaf at arc with the five-node subtree described
// in the algorithm: two new breakpoints AB/BA, and three new arc leaves
// A1, B, A2, preserving in-order sequence …, A1, AB, B, BA, A2, ….
// Returns the index of the new arc leaf B.
func (c *Context) splitArc(arc int, pt point.Point) int {
	parent := c.beachline.Nodes[arc].Parent
	arcPt := c.beachline.Nodes[arc].Item.Arc.Site

	twin1, twin2 := c.dcel.AddTwins()

	indAB := len(c.beachline.Nodes)
	indBA := indAB + 1
	indA1 := indAB + 2
	indB := indAB + 3
	indA2 := indAB + 4

	nodeAB := c.beachline.AddBreakpointNode(parent, indA1, indBA, arcPt, pt, twin1)
	if parent != beachline.Nil {
		p := &c.beachline.Nodes[parent]
		switch arc {
		case p.RightChild:
			p.RightChild = nodeAB
		case p.LeftChild:
			p.LeftChild = nodeAB
		default:
			panic("sweep: beachline tree inconsistent: parent does not acknowledge arc")
		}
	} else {
		c.beachline.Root = nodeAB
	}

	c.beachline.AddBreakpointNode(nodeAB, indB, indA2, pt, arcPt, twin2)
	c.beachline.AddArcNode(nodeAB, arcPt)
	c.beachline.AddArcNode(indBA, pt)
	c.beachline.AddArcNode(indBA, arcPt)

	if indAB != nodeAB {
		panic("sweep: beachline node index arithmetic drifted")
	}
	return indB
}

func (c *Context) scheduleCircleEvent(arcNode int, a, b, cc point.Point) {
	center, ok := geometry.Circumcenter(a, b, cc)
	if !ok {
		return
	}
	radius := center.DistanceToPoint(cc)
	id := c.queue.Push(event.NewCircleEvent(center, radius, arcNode))
	c.beachline.Nodes[arcNode].Item.Arc.SiteEvent = id
}

// deleted holds the bookkeeping delete_leaf returns: the in-order
// predecessor and successor of the removed leaf, its parent, and the
// "other" surviving breakpoint that was relabeled.
type deleted struct {
	pred, succ, parent, other int
}

func (c *Context) deleteLeaf(leaf int) deleted {
	pred := c.beachline.Predecessor(leaf)
	succ := c.beachline.Successor(leaf)
	parent := c.beachline.Nodes[leaf].Parent
	grandparent := c.beachline.Nodes[parent].Parent

	other := succ
	if parent == pred {
		other = succ
	} else {
		other = pred
	}

	var sibling int
	switch leaf {
	case c.beachline.Nodes[parent].RightChild:
		sibling = c.beachline.Nodes[parent].LeftChild
	case c.beachline.Nodes[parent].LeftChild:
		sibling = c.beachline.Nodes[parent].RightChild
	default:
		panic("sweep: parent does not acknowledge leaf being deleted")
	}

	c.beachline.Nodes[sibling].Parent = grandparent
	switch parent {
	case c.beachline.Nodes[grandparent].LeftChild:
		c.beachline.Nodes[grandparent].LeftChild = sibling
	case c.beachline.Nodes[grandparent].RightChild:
		c.beachline.Nodes[grandparent].RightChild = sibling
	default:
		panic("sweep: grandparent does not acknowledge parent being replaced")
	}

	if other == pred {
		newOtherSucc := c.beachline.Successor(other)
		site, ok := c.beachline.Site(newOtherSucc)
		if !ok {
			panic("sweep: successor of breakpoint should be a leaf")
		}
		bp := &c.beachline.Nodes[other].Item.BreakPoint
		bp.RightSite = site
	} else {
		newOtherPred := c.beachline.Predecessor(other)
		site, ok := c.beachline.Site(newOtherPred)
		if !ok {
			panic("sweep: predecessor of breakpoint should be a leaf")
		}
		bp := &c.beachline.Nodes[other].Item.BreakPoint
		bp.LeftSite = site
	}

	return deleted{pred: pred, succ: succ, parent: parent, other: other}
}

func (c *Context) cancelArcSiteEvent(arcNode int) {
	if arcNode == beachline.Nil {
		return
	}
	arc := &c.beachline.Nodes[arcNode].Item.Arc
	if arc.SiteEvent != beachline.Nil {
		c.queue.Cancel(arc.SiteEvent)
		arc.SiteEvent = beachline.Nil
	}
}

func (c *Context) handleCircleEvent(e event.Event) {
	leaf := e.ArcNode
	leftNeighbor := c.beachline.LeftArc(leaf)
	rightNeighbor := c.beachline.RightArc(leaf)

	d := c.deleteLeaf(leaf)

	c.cancelArcSiteEvent(leaf)
	c.cancelArcSiteEvent(leftNeighbor)
	c.cancelArcSiteEvent(rightNeighbor)

	twin1, twin2 := c.dcel.AddTwins()
	centerVertex := c.dcel.AddVertex(e.Center, twin1)

	predEdge := c.breakpointEdge(d.pred)
	succEdge := c.breakpointEdge(d.succ)
	parentEdge := c.breakpointEdge(d.parent)
	otherEdge := c.breakpointEdge(d.other)

	predEdgeTwin := c.dcel.HalfEdges[predEdge].Twin
	succEdgeTwin := c.dcel.HalfEdges[succEdge].Twin

	c.dcel.HalfEdges[parentEdge].Origin = centerVertex
	c.dcel.HalfEdges[otherEdge].Origin = centerVertex
	c.dcel.HalfEdges[twin1].Origin = centerVertex

	c.dcel.HalfEdges[predEdgeTwin].Next = succEdge
	c.dcel.HalfEdges[succEdgeTwin].Next = twin1
	c.dcel.HalfEdges[twin2].Next = predEdge

	c.beachline.Nodes[d.other].Item.BreakPoint.HalfEdge = twin2

	if a, b, cc, ok := c.beachline.CenteredTriple(leftNeighbor); ok && geometry.BreakpointsConverge(a, b, cc) {
		c.scheduleCircleEvent(leftNeighbor, a, b, cc)
	}
	if a, b, cc, ok := c.beachline.CenteredTriple(rightNeighbor); ok && geometry.BreakpointsConverge(a, b, cc) {
		c.scheduleCircleEvent(rightNeighbor, a, b, cc)
	}
}

func (c *Context) breakpointEdge(node int) int {
	item := c.beachline.Nodes[node].Item
	if item.IsLeaf {
		panic("sweep: expected breakpoint node but found an arc leaf")
	}
	return item.BreakPoint.HalfEdge
}

// finalize extends every unfinished breakpoint's tracing half-edge far
// outside bounds, inserts the four rectangle edges into the DCEL, derives
// prev pointers, prunes vertices left outside the rectangle, and labels
// faces.
func (c *Context) finalize(bounds rectangle.Rectangle, cfg options.VoronoiOptions) {
	c.extendUnfinishedEdges(cfg.ExtensionDistance)

	for _, seg := range bounds.Edges() {
		c.dcel.AddLine(dcel.Segment{seg[0], seg[1]})
	}

	c.dcel.SetPrevFromNext()
	c.pruneOutsideVertices(bounds, cfg.Epsilon)
	c.dcel.AddFaces()
}

func (c *Context) extendUnfinishedEdges(extension float64) {
	if c.beachline.IsEmpty() {
		return
	}
	yl := -extension

	current := c.beachline.TreeMinimum(c.beachline.Root)
	for {
		item := c.beachline.Nodes[current].Item
		if !item.IsLeaf {
			bp := item.BreakPoint
			x := geometry.BreakpointX(bp.LeftSite, bp.RightSite, yl)
			y := geometry.BreakpointY(bp.LeftSite, bp.RightSite, yl)

			vert := c.dcel.AddVertex(point.New(x, y), bp.HalfEdge)
			c.dcel.HalfEdges[bp.HalfEdge].Origin = vert
			twin := c.dcel.HalfEdges[bp.HalfEdge].Twin
			c.dcel.HalfEdges[twin].Next = bp.HalfEdge
		}

		next := c.beachline.Successor(current)
		if next == beachline.Nil {
			break
		}
		current = next
	}
}

func (c *Context) pruneOutsideVertices(bounds rectangle.Rectangle, epsilon float64) {
	for i, v := range c.dcel.Vertices {
		if !v.Alive {
			continue
		}
		if !withinExpandedBounds(bounds, v.Coordinates, epsilon) {
			c.dcel.RemoveVertex(i)
		}
	}
}

func withinExpandedBounds(bounds rectangle.Rectangle, p point.Point, epsilon float64) bool {
	bl, _, tr, _ := bounds.Contour()
	return numeric.FloatGreaterThanOrEqualTo(p.X(), bl.X(), epsilon) &&
		numeric.FloatLessThanOrEqualTo(p.X(), tr.X(), epsilon) &&
		numeric.FloatGreaterThanOrEqualTo(p.Y(), bl.Y(), epsilon) &&
		numeric.FloatLessThanOrEqualTo(p.Y(), tr.Y(), epsilon)
}

func (c *Context) String() string {
	return fmt.Sprintf("beachline root: %d, events remaining: %t", c.beachline.Root, !c.queue.Empty())
}
