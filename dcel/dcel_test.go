package dcel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortunevoronoi/voronoi2d/point"
)

// square builds a DCEL for the unit square [0,1]x[0,1] as a single
// bounded face with a correctly wired next/prev/twin cycle, plus the
// symmetric outer-face cycle.
func square(t *testing.T) *DCEL {
	t.Helper()
	d := New()

	corners := []point.Point{
		point.New(0, 0),
		point.New(1, 0),
		point.New(1, 1),
		point.New(0, 1),
	}

	inner := make([]int, 4)
	outer := make([]int, 4)
	for i := range corners {
		he1, he2 := d.AddTwins()
		inner[i] = he1
		outer[i] = he2
	}

	for i := 0; i < 4; i++ {
		v := d.AddVertex(corners[i], inner[i])
		d.HalfEdges[inner[i]].Origin = v
		d.HalfEdges[outer[(i+3)%4]].Origin = v
	}

	for i := 0; i < 4; i++ {
		d.HalfEdges[inner[i]].Next = inner[(i+1)%4]
		d.HalfEdges[outer[(i+1)%4]].Next = outer[i]
	}

	d.SetPrevFromNext()
	return d
}

func TestDCEL_AddTwins(t *testing.T) {
	d := New()
	a, b := d.AddTwins()
	assert.Equal(t, b, d.HalfEdges[a].Twin)
	assert.Equal(t, a, d.HalfEdges[b].Twin)
	assert.Len(t, d.HalfEdges, 2)
}

func TestDCEL_SetPrevFromNext(t *testing.T) {
	d := square(t)
	for i, he := range d.HalfEdges {
		assert.Equal(t, i, d.HalfEdges[he.Prev].Next)
	}
}

func TestDCEL_AddFaces(t *testing.T) {
	d := square(t)
	d.AddFaces()
	require.Len(t, d.Faces, 2)

	faceSizes := map[int]int{}
	for _, he := range d.HalfEdges {
		faceSizes[he.Face]++
	}
	assert.Equal(t, 4, faceSizes[0])
	assert.Equal(t, 4, faceSizes[1])
}

func TestDCEL_MakePolygons_DropsOuterFace(t *testing.T) {
	d := square(t)
	d.AddFaces()

	polys := d.MakePolygons()
	require.Len(t, polys, 1)
	assert.Len(t, polys[0], 4)
}

func TestDCEL_RemoveVertex(t *testing.T) {
	d := square(t)
	d.AddFaces()

	d.RemoveVertex(0)
	assert.False(t, d.Vertices[0].Alive)
}

func TestDCEL_MakeLineSegments(t *testing.T) {
	d := square(t)
	segments := d.MakeLineSegments()
	assert.Len(t, segments, 8) // 4 edges, 2 half-edges each
}

func TestDCEL_AddFaces_PanicsIfAlreadyPopulated(t *testing.T) {
	d := square(t)
	d.AddFaces()
	assert.Panics(t, func() { d.AddFaces() })
}
