package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortunevoronoi/voronoi2d/point"
)

func TestQueue_PopsHighestYFirst(t *testing.T) {
	q := New()
	q.Push(NewSiteEvent(point.New(0, 1)))
	q.Push(NewSiteEvent(point.New(0, 5)))
	q.Push(NewSiteEvent(point.New(0, 3)))

	e, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 5.0, e.Key())

	e, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, 3.0, e.Key())

	e, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, 1.0, e.Key())

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueue_TieBreakOnX(t *testing.T) {
	q := New()
	// same y, horizontally collinear: the greater point under
	// point.Point.Less pops first, which at equal y is the smaller x.
	q.Push(NewSiteEvent(point.New(1, 10)))
	q.Push(NewSiteEvent(point.New(5, 10)))
	q.Push(NewSiteEvent(point.New(3, 10)))

	e1, _ := q.Pop()
	e2, _ := q.Pop()
	e3, _ := q.Pop()

	assert.Equal(t, 1.0, e1.SitePoint.X())
	assert.Equal(t, 3.0, e2.SitePoint.X())
	assert.Equal(t, 5.0, e3.SitePoint.X())
}

func TestQueue_CancelSkipsCircleEvent(t *testing.T) {
	q := New()
	id := q.Push(NewCircleEvent(point.New(0, 0), 1, 42))
	q.Push(NewSiteEvent(point.New(0, 0.5)))

	q.Cancel(id)

	e, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, Site, e.Kind)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueue_EmptyAfterDraining(t *testing.T) {
	q := New()
	assert.True(t, q.Empty())
	q.Push(NewSiteEvent(point.New(0, 0)))
	assert.False(t, q.Empty())
	_, _ = q.Pop()
	assert.True(t, q.Empty())
}
