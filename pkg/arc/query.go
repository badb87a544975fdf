package arc

import (
	"fmt"
	"math"
)

// Tangents returns the unit tangent vector of the arc at each of the
// three control points, in the input dimensionality.
func Tangents(points []Point, res Resolution) ([]Point, error) {
	was2D, p, err := controlPoints(points)
	if err != nil {
		return nil, err
	}
	a, err := solve(p, res)
	if err != nil {
		return nil, err
	}
	tangents := make([]Point, len(p))
	for i := range p {
		t := p[i].Sub(a.center).Cross(a.normal).Normalize()
		tangents[i] = project(t, was2D)
	}
	return tangents, nil
}

// Offset moves each control point radially to a fixed signed distance
// from the arc center, producing the control points of a concentric
// arc.
func Offset(points []Point, distance float64, res Resolution) ([]Point, error) {
	was2D, p, err := controlPoints(points)
	if err != nil {
		return nil, err
	}
	a, err := solve(p, res)
	if err != nil {
		return nil, err
	}
	moved := make([]Point, len(p))
	for i := range p {
		dir := p[i].Sub(a.center).Normalize()
		moved[i] = project(a.center.Add(dir.MulScalar(distance)), was2D)
	}
	return moved, nil
}

// ThreePoint reconstructs a canonical three-point representation
// (start, angular midpoint, end) of the arc between two angles on the
// circle with the given center and radius. An end angle below the
// start angle is normalized by a full turn so the sweep always runs in
// the positive rotational direction. This is the inverse of Center for
// round-tripping arc descriptors.
func ThreePoint(angles [2]float64, center Point, radius float64) ([]Point, error) {
	dim := len(center)
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("unsupported center dimension %d", dim)
	}

	start, end := angles[0], angles[1]
	if end < start {
		end += 2 * math.Pi
	}
	sweep := [3]float64{start, (start + end) / 2, end}

	points := make([]Point, 3)
	for i, a := range sweep {
		x := center[0] + radius*math.Cos(a)
		y := center[1] + radius*math.Sin(a)
		if dim == 2 {
			points[i] = Point{x, y}
		} else {
			points[i] = Point{x, y, center[2]}
		}
	}
	return points, nil
}
