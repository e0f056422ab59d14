package voronoi2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	voronoi2d "github.com/fortunevoronoi/voronoi2d"
	"github.com/fortunevoronoi/voronoi2d/point"
	"github.com/fortunevoronoi/voronoi2d/rectangle"
)

func TestLloydRelaxation_CentroidConfiguration_StaysInBounds(t *testing.T) {
	bounds := rectangle.New(0, 0, 100, 100)
	sites := []point.Point{
		point.New(25, 25),
		point.New(75, 25),
		point.New(25, 75),
		point.New(75, 75),
	}

	relaxed := voronoi2d.LloydRelaxation(sites, bounds)

	assert.Len(t, relaxed, len(sites))
	for _, p := range relaxed {
		assert.True(t, bounds.ContainsPoint(p))
	}
}

func TestLloydRelaxation_PreservesSiteCount(t *testing.T) {
	bounds := rectangle.New(0, 0, 800, 800)
	sites := []point.Point{
		point.New(100, 100),
		point.New(400, 300),
		point.New(700, 650),
	}

	relaxed := voronoi2d.LloydRelaxation(sites, bounds)
	assert.Len(t, relaxed, 3)
}
