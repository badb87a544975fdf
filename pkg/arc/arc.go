// Package arc reconstructs circular arcs from three sample points and
// discretizes them into polylines. The center solver uses the fact that
// the perpendicular bisectors of the segments between the control
// points intersect at the circle center; the discretizer samples the
// resulting circle densely enough to respect both an angular-step and a
// chord-length bound.
package arc

import (
	"errors"
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ErrDegenerate is returned when three points are collinear or
// coincident and therefore define no unique circle.
var ErrDegenerate = errors.New("degenerate arc")

// ErrDiverging is returned by Discretize when the sampled endpoints
// fail to match the input within the merge tolerance.
var ErrDiverging = errors.New("arc endpoints diverging")

// Arc describes the circle recovered from three control points.
type Arc struct {
	Center Point      // circle center, same dimensionality as the input
	Radius float64    // distance from the center to every control point
	Normal v3.Vec     // unit plane normal, always 3D
	Span   float64    // angular sweep actually traversed, in (0, 2*pi]
	Angles [2]float64 // start/end angles, ordered by sweep direction
}

// arc3 is the solver result before projecting back to the input
// dimensionality.
type arc3 struct {
	center v3.Vec
	radius float64
	normal v3.Vec
	span   float64
	angles [2]float64
}

// Center finds the circle through three 2D or 3D points: its center,
// radius, plane normal, and the angular span traversed going from
// points[0] through points[1] to points[2]. Collinear or coincident
// points return ErrDegenerate.
func Center(points []Point, res Resolution) (Arc, error) {
	was2D, p, err := controlPoints(points)
	if err != nil {
		return Arc{}, err
	}
	a, err := solve(p, res)
	if err != nil {
		return Arc{}, err
	}
	return Arc{
		Center: project(a.center, was2D),
		Radius: a.radius,
		Normal: a.normal,
		Span:   a.span,
		Angles: a.angles,
	}, nil
}

// solve runs the center solver on lifted 3D control points.
func solve(p []v3.Vec, res Resolution) (arc3, error) {
	// Edge vectors of the control triangle and their midpoints.
	e0 := p[1].Sub(p[0])
	e1 := p[2].Sub(p[1])
	mid0 := p[0].Add(e0.MulScalar(0.5))
	mid1 := p[1].Add(e1.MulScalar(0.5))

	// Three points define a plane; the edge order fixes the sign.
	cross := e1.Cross(e0)
	if cross.Length() <= res.Zero {
		return arc3{}, fmt.Errorf("%w: control points are collinear or coincident", ErrDegenerate)
	}
	normal := cross.Normalize()

	// In-plane perpendiculars give the bisector ray directions.
	perp0 := e0.Normalize().Cross(normal)
	perp1 := e1.Normalize().Cross(normal)

	center, ok := lineLine(mid0, perp0, mid1, perp1, res.Zero)
	if !ok {
		return arc3{}, fmt.Errorf("%w: segment bisectors do not intersect", ErrDegenerate)
	}
	radius := p[0].Sub(center).Length()

	var v [3]v3.Vec
	for i := range p {
		v[i] = p[i].Sub(center).Normalize()
	}

	// Raw angle between the start and end radius vectors is always in
	// [0, pi]. The traversed arc exceeds pi exactly when the path bends
	// backward, which shows up as a negative dot between the edges.
	raw := math.Acos(clamp(v[0].Dot(v[2]), -1.0, 1.0))
	span := raw
	if math.Abs(raw) > res.Zero && e0.Dot(e1) < 0 {
		span = 2*math.Pi - raw
	}

	// Signed in-plane angles of the control points, offset to stay
	// positive.
	var theta [3]float64
	for i := range v {
		theta[i] = math.Atan2(v[i].Y, v[i].X) + 2*math.Pi
	}
	lo, hi := theta[0], theta[2]
	if lo > hi {
		lo, hi = hi, lo
	}
	// If the middle control point does not sit inside the sorted
	// interval the sweep runs the other way around; swap the bounds so
	// walking from angles[0] to angles[1] passes through it.
	needsReversal := !(lo < theta[1] && theta[1] < hi)
	angles := [2]float64{lo, hi}
	if needsReversal {
		angles = [2]float64{hi, lo}
	}

	return arc3{
		center: center,
		radius: radius,
		normal: normal,
		span:   span,
		angles: angles,
	}, nil
}

// lineLine intersects two coplanar lines given by origin and unit
// direction. It reports false when the lines are parallel.
func lineLine(o0, d0, o1, d1 v3.Vec, zero float64) (v3.Vec, bool) {
	b := d0.Dot(d1)
	denom := 1 - b*b
	if math.Abs(denom) <= zero {
		return v3.Vec{}, false
	}
	w := o0.Sub(o1)
	t := (b*w.Dot(d1) - w.Dot(d0)) / denom
	return o0.Add(d0.MulScalar(t)), true
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
