package arc

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Discretize approximates the arc through three control points with a
// polyline. When close is true the full circle is emitted and the
// control points only establish the plane and radius. The scale factor
// stretches the chord-length bound for callers working in scaled
// units; values <= 0 fall back to 1.
//
// In the open case the first and last samples are checked against the
// input endpoints and ErrDiverging is returned when either drifts
// beyond the merge tolerance.
func Discretize(points []Point, close bool, scale float64, res Resolution) ([]Point, error) {
	was2D, p, err := controlPoints(points)
	if err != nil {
		return nil, err
	}
	a, err := solve(p, res)
	if err != nil {
		return nil, err
	}
	if scale <= 0 {
		scale = 1.0
	}

	span := a.span
	if close {
		span = 2 * math.Pi
	}

	// Facet count from the angular and chord-length bounds, never
	// fewer than 4 samples so the endpoints converge even for tiny
	// spans.
	countAngle := span / res.SegAngle
	countLength := (a.radius * span) / (res.SegFrac * scale)
	count := int(math.Ceil(math.Max(countAngle, countLength)))
	if count < 4 {
		count = 4
	}

	// Orthonormal in-plane basis anchored at the first control point.
	v1 := p[0].Sub(a.center).Normalize()
	v2 := a.normal.MulScalar(-1).Cross(v1).Normalize()

	samples := make([]v3.Vec, count)
	for i := range samples {
		t := span * float64(i) / float64(count-1)
		samples[i] = a.center.
			Add(v1.MulScalar(a.radius * math.Cos(t))).
			Add(v2.MulScalar(a.radius * math.Sin(t)))
	}

	if !close {
		first := samples[0].Sub(p[0]).Length()
		last := samples[count-1].Sub(p[2]).Length()
		if first > res.Merge || last > res.Merge {
			return nil, fmt.Errorf("%w: endpoint distances %g and %g exceed merge tolerance %g (control points %v)",
				ErrDiverging, first, last, res.Merge, points)
		}
	}

	discrete := make([]Point, count)
	for i, s := range samples {
		discrete[i] = project(s, was2D)
	}
	return discrete, nil
}
