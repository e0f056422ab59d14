package beachline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortunevoronoi/voronoi2d/point"
)

func TestBeachLine_InsertFirst(t *testing.T) {
	b := New()
	require.True(t, b.IsEmpty())

	root := b.InsertFirst(point.New(0, 0))
	assert.Equal(t, root, b.Root)
	assert.False(t, b.IsEmpty())
	assert.True(t, b.Nodes[root].Item.IsLeaf)
}

func TestBeachLine_ArcAbove_SingleArc(t *testing.T) {
	b := New()
	root := b.InsertFirst(point.New(0, 10))

	b.YLine = 5
	found := b.ArcAbove(point.New(3, 7))
	assert.Equal(t, root, found)
}

// threeArcTree builds a beachline with a single breakpoint splitting two
// arcs: left site at x=-1, right site at x=1, both at y=0, separated by a
// breakpoint whose children are the two arc leaves.
func threeArcTree(t *testing.T) (b *BeachLine, left, bp, right int) {
	t.Helper()
	b = New()
	leftSite := point.New(-1, 0)
	rightSite := point.New(1, 0)

	left = b.AddArcNode(Nil, leftSite)
	right = b.AddArcNode(Nil, rightSite)
	bp = b.AddBreakpointNode(Nil, left, right, leftSite, rightSite, Nil)
	b.Nodes[left].Parent = bp
	b.Nodes[right].Parent = bp
	b.Root = bp
	return b, left, bp, right
}

func TestBeachLine_Successor_Predecessor(t *testing.T) {
	b, left, bp, right := threeArcTree(t)

	assert.Equal(t, bp, b.Successor(left))
	assert.Equal(t, right, b.Successor(bp))
	assert.Equal(t, Nil, b.Successor(right))

	assert.Equal(t, Nil, b.Predecessor(left))
	assert.Equal(t, left, b.Predecessor(bp))
	assert.Equal(t, bp, b.Predecessor(right))
}

func TestBeachLine_LeftArc_RightArc(t *testing.T) {
	b, left, _, right := threeArcTree(t)

	assert.Equal(t, left, b.LeftArc(right))
	assert.Equal(t, right, b.RightArc(left))
	assert.Equal(t, Nil, b.LeftArc(left))
	assert.Equal(t, Nil, b.RightArc(right))
}

func TestBeachLine_Site(t *testing.T) {
	b, left, bp, _ := threeArcTree(t)

	site, ok := b.Site(left)
	require.True(t, ok)
	assert.True(t, site.Eq(point.New(-1, 0)))

	_, ok = b.Site(bp)
	assert.False(t, ok)

	_, ok = b.Site(Nil)
	assert.False(t, ok)
}

func TestBeachLine_CenteredTriple(t *testing.T) {
	b, left, _, right := threeArcTree(t)

	_, _, _, ok := b.CenteredTriple(left)
	assert.False(t, ok) // left has no left neighbor

	_, _, _, ok = b.CenteredTriple(right)
	assert.False(t, ok) // right has no right neighbor
}
