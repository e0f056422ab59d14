// Package beachline implements the sweep's beachline: the sequence of
// parabolic arcs and the breakpoints between them, kept as a binary
// search tree ordered left-to-right across the sweep direction. Per the
// algorithm's design notes, the tree is a plain, non-self-balancing BST —
// an unbalanced tree is a performance risk, not a correctness one, and
// self-balancing is left to a future implementer rather than required
// here.
//
// Nodes live in a flat, index-addressed slice rather than a pointer tree,
// matching the arena style used for the DCEL. -1 plays the role of a nil
// index throughout.
package beachline

import (
	"fmt"

	"github.com/fortunevoronoi/voronoi2d/geometry"
	"github.com/fortunevoronoi/voronoi2d/point"
)

// Nil is the sentinel index meaning "no such node".
const Nil = -1

// Arc is a leaf of the beachline: a single site's parabolic arc, plus the
// id of the circle event (in an external event queue) currently scheduled
// for this arc's disappearance, if any.
type Arc struct {
	Site      point.Point
	SiteEvent int // Nil if no circle event is scheduled
}

// BreakPoint is an internal node of the beachline: the point where the
// arcs for LeftSite and RightSite meet, tracing out one DCEL half-edge as
// the sweepline advances.
type BreakPoint struct {
	LeftSite  point.Point
	RightSite point.Point
	HalfEdge  int
}

// Item is the closed sum of what a beachline node can hold: exactly one of
// an Arc (IsLeaf true) or a BreakPoint (IsLeaf false).
type Item struct {
	IsLeaf     bool
	Arc        Arc
	BreakPoint BreakPoint
}

// Node is one node of the beachline tree.
type Node struct {
	Parent     int
	LeftChild  int
	RightChild int
	Item       Item
}

// BeachLine is the sweep's beachline: a tree of Nodes plus the current
// sweepline height.
type BeachLine struct {
	Nodes []Node
	YLine float64
	Root  int
}

// New returns an empty beachline.
func New() *BeachLine {
	return &BeachLine{Root: Nil}
}

// IsEmpty reports whether the beachline has no arcs yet.
func (b *BeachLine) IsEmpty() bool {
	return len(b.Nodes) == 0
}

func (b *BeachLine) pushNode(n Node) int {
	idx := len(b.Nodes)
	b.Nodes = append(b.Nodes, n)
	return idx
}

// InsertFirst inserts pt as the sole arc of an empty beachline, becoming
// the tree's root.
func (b *BeachLine) InsertFirst(pt point.Point) int {
	idx := b.pushNode(Node{
		Parent:     Nil,
		LeftChild:  Nil,
		RightChild: Nil,
		Item:       Item{IsLeaf: true, Arc: Arc{Site: pt, SiteEvent: Nil}},
	})
	b.Root = idx
	return idx
}

// AddArcNode appends a new leaf node for pt with the given parent and
// returns its index. Internal nodes are added with AddBreakpointNode.
func (b *BeachLine) AddArcNode(parent int, pt point.Point) int {
	return b.pushNode(Node{
		Parent:     parent,
		LeftChild:  Nil,
		RightChild: Nil,
		Item:       Item{IsLeaf: true, Arc: Arc{Site: pt, SiteEvent: Nil}},
	})
}

// AddBreakpointNode appends a new internal node for the breakpoint between
// leftSite and rightSite, tracing halfEdge, and returns its index.
func (b *BeachLine) AddBreakpointNode(parent, leftChild, rightChild int, leftSite, rightSite point.Point, halfEdge int) int {
	return b.pushNode(Node{
		Parent:     parent,
		LeftChild:  leftChild,
		RightChild: rightChild,
		Item: Item{IsLeaf: false, BreakPoint: BreakPoint{
			LeftSite: leftSite, RightSite: rightSite, HalfEdge: halfEdge,
		}},
	})
}

// ArcAbove descends the tree from the root, following the breakpoint
// whose x-coordinate at height pt.Y() separates pt from the arc on
// either side, and returns the leaf arc directly above pt.
func (b *BeachLine) ArcAbove(pt point.Point) int {
	if b.IsEmpty() {
		panic("beachline: ArcAbove called on an empty beachline")
	}
	current := b.Root
	for {
		node := &b.Nodes[current]
		if node.Item.IsLeaf {
			return current
		}
		bp := node.Item.BreakPoint
		xBp := geometry.BreakpointX(bp.LeftSite, bp.RightSite, pt.Y())
		if pt.X() < xBp {
			current = node.LeftChild
		} else {
			current = node.RightChild
		}
	}
}

// TreeMinimum returns the leftmost descendant of root.
func (b *BeachLine) TreeMinimum(root int) int {
	current := root
	for b.Nodes[current].LeftChild != Nil {
		current = b.Nodes[current].LeftChild
	}
	return current
}

// TreeMaximum returns the rightmost descendant of root.
func (b *BeachLine) TreeMaximum(root int) int {
	current := root
	for b.Nodes[current].RightChild != Nil {
		current = b.Nodes[current].RightChild
	}
	return current
}

// Successor returns the in-order successor of node, or Nil if node is the
// rightmost node in the tree.
func (b *BeachLine) Successor(node int) int {
	if right := b.Nodes[node].RightChild; right != Nil {
		return b.TreeMinimum(right)
	}
	current := node
	parent := b.Nodes[node].Parent
	for parent != Nil && current == b.Nodes[parent].RightChild {
		current = parent
		parent = b.Nodes[parent].Parent
	}
	return parent
}

// Predecessor returns the in-order predecessor of node, or Nil if node is
// the leftmost node in the tree.
func (b *BeachLine) Predecessor(node int) int {
	if left := b.Nodes[node].LeftChild; left != Nil {
		return b.TreeMaximum(left)
	}
	current := node
	parent := b.Nodes[node].Parent
	for parent != Nil && current == b.Nodes[parent].LeftChild {
		current = parent
		parent = b.Nodes[parent].Parent
	}
	return parent
}

// LeftArc returns the arc immediately to the left of node (two
// predecessor hops, skipping the intervening breakpoint), or Nil.
func (b *BeachLine) LeftArc(node int) int {
	if node == Nil {
		return Nil
	}
	left := b.Predecessor(node)
	if left == Nil {
		return Nil
	}
	return b.Predecessor(left)
}

// RightArc returns the arc immediately to the right of node (two
// successor hops, skipping the intervening breakpoint), or Nil.
func (b *BeachLine) RightArc(node int) int {
	if node == Nil {
		return Nil
	}
	right := b.Successor(node)
	if right == Nil {
		return Nil
	}
	return b.Successor(right)
}

// Site returns the site of the arc at node, or false if node is Nil or
// not a leaf.
func (b *BeachLine) Site(node int) (point.Point, bool) {
	if node == Nil {
		return point.Point{}, false
	}
	item := b.Nodes[node].Item
	if !item.IsLeaf {
		return point.Point{}, false
	}
	return item.Arc.Site, true
}

// LeftwardTriple returns the triple (left-left-site, left-site,
// this-site) for node, in left-to-right order, used to test whether
// node's left neighbor's arc is about to be squeezed out.
func (b *BeachLine) LeftwardTriple(node int) (a, bb, c point.Point, ok bool) {
	leftArc := b.LeftArc(node)
	leftLeftArc := b.LeftArc(leftArc)

	thisSite, thisOK := b.Site(node)
	leftSite, leftOK := b.Site(leftArc)
	leftLeftSite, leftLeftOK := b.Site(leftLeftArc)

	if !thisOK || !leftOK || !leftLeftOK {
		return point.Point{}, point.Point{}, point.Point{}, false
	}
	return leftLeftSite, leftSite, thisSite, true
}

// RightwardTriple returns the triple (this-site, right-site,
// right-right-site) for node, in left-to-right order, used to test
// whether node's right neighbor's arc is about to be squeezed out.
func (b *BeachLine) RightwardTriple(node int) (a, bb, c point.Point, ok bool) {
	rightArc := b.RightArc(node)
	rightRightArc := b.RightArc(rightArc)

	thisSite, thisOK := b.Site(node)
	rightSite, rightOK := b.Site(rightArc)
	rightRightSite, rightRightOK := b.Site(rightRightArc)

	if !thisOK || !rightOK || !rightRightOK {
		return point.Point{}, point.Point{}, point.Point{}, false
	}
	return thisSite, rightSite, rightRightSite, true
}

// CenteredTriple returns the triple (left-site, this-site, right-site) for
// node, in left-to-right order, used to test whether node's own arc is
// about to be squeezed out.
func (b *BeachLine) CenteredTriple(node int) (a, bb, c point.Point, ok bool) {
	rightArc := b.RightArc(node)
	leftArc := b.LeftArc(node)

	thisSite, thisOK := b.Site(node)
	rightSite, rightOK := b.Site(rightArc)
	leftSite, leftOK := b.Site(leftArc)

	if !thisOK || !rightOK || !leftOK {
		return point.Point{}, point.Point{}, point.Point{}, false
	}
	return leftSite, thisSite, rightSite, true
}

func (n Node) String() string {
	if n.Item.IsLeaf {
		return fmt.Sprintf("p: %d, l: %d, r: %d, arc: %s", n.Parent, n.LeftChild, n.RightChild, n.Item.Arc.Site)
	}
	bp := n.Item.BreakPoint
	return fmt.Sprintf("p: %d, l: %d, r: %d, breakpoint: (%s, %s)", n.Parent, n.LeftChild, n.RightChild, bp.LeftSite, bp.RightSite)
}
