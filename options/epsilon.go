package options

// WithEpsilon returns a [VoronoiOptionsFunc] that sets the Epsilon value
// used when pruning vertices during finalize.
//
// Parameters:
//   - epsilon: A small non-negative value specifying how far outside the
//     clip rectangle a vertex may fall and still be kept.
//
// Behavior:
//   - If a negative epsilon is provided, it defaults to 0 (no adjustment).
func WithEpsilon(epsilon float64) VoronoiOptionsFunc {
	return func(opts *VoronoiOptions) {
		if epsilon < 0 {
			epsilon = 0
		}
		opts.Epsilon = epsilon
	}
}

// WithExtensionDistance returns a [VoronoiOptionsFunc] that sets the
// ExtensionDistance used to close unfinished breakpoint half-edges before
// the clip rectangle's edges are inserted (see [VoronoiOptions]).
//
// Behavior:
//   - A non-positive distance is ignored, leaving Voronoi to compute one
//     from the clip rectangle's own dimensions.
func WithExtensionDistance(distance float64) VoronoiOptionsFunc {
	return func(opts *VoronoiOptions) {
		if distance <= 0 {
			return
		}
		opts.ExtensionDistance = distance
	}
}
