package arc

// Resolution bundles the discretization density bounds and numeric
// tolerances used by the arc operations. Callers that need a different
// density (coarse previews, fine exports) construct their own value
// instead of mutating shared state.
type Resolution struct {
	// SegAngle is the maximum angular step per facet, in radians.
	SegAngle float64
	// SegFrac is the maximum chord length per facet, as a fraction of
	// the caller-supplied length scale.
	SegFrac float64
	// Zero is the numerical-zero tolerance used for degeneracy and
	// large-arc checks.
	Zero float64
	// Merge is the maximum positional deviation treated as "the same
	// point" when validating discretized endpoints.
	Merge float64
}

// DefaultResolution is a sensible default for model-scale geometry.
var DefaultResolution = Resolution{
	SegAngle: 0.08,
	SegFrac:  0.05,
	Zero:     1e-12,
	Merge:    1e-5,
}
