package options_test

import (
	"fmt"

	"github.com/fortunevoronoi/voronoi2d/options"
)

func ExampleWithEpsilon() {
	base := options.VoronoiOptions{Epsilon: 0}
	withTolerance := options.ApplyVoronoiOptions(base, options.WithEpsilon(1e-6))

	fmt.Printf("default epsilon: %g\n", base.Epsilon)
	fmt.Printf("applied epsilon: %g\n", withTolerance.Epsilon)

	// Output:
	// default epsilon: 0
	// applied epsilon: 1e-06
}
