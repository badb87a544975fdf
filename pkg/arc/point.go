package arc

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Point is a 2D or 3D cartesian coordinate.
type Point []float64

// threeDimensionalize lifts a point set to 3D by zero-padding the z
// coordinate of 2D points. It reports whether the input was 2D so
// results can be projected back afterwards. Dimensions other than
// 2 or 3 are rejected.
func threeDimensionalize(points []Point) (was2D bool, lifted []v3.Vec, err error) {
	if len(points) == 0 {
		return false, nil, fmt.Errorf("empty point set")
	}
	dim := len(points[0])
	if dim != 2 && dim != 3 {
		return false, nil, fmt.Errorf("unsupported point dimension %d", dim)
	}
	lifted = make([]v3.Vec, len(points))
	for i, p := range points {
		if len(p) != dim {
			return false, nil, fmt.Errorf("point %d has dimension %d, expected %d", i, len(p), dim)
		}
		v := v3.Vec{X: p[0], Y: p[1]}
		if dim == 3 {
			v.Z = p[2]
		}
		lifted[i] = v
	}
	return dim == 2, lifted, nil
}

// controlPoints validates and lifts the three control points of an arc.
func controlPoints(points []Point) (bool, []v3.Vec, error) {
	if len(points) != 3 {
		return false, nil, fmt.Errorf("arc requires exactly 3 control points, got %d", len(points))
	}
	return threeDimensionalize(points)
}

// project drops the padded z coordinate again when the input was 2D.
func project(v v3.Vec, to2D bool) Point {
	if to2D {
		return Point{v.X, v.Y}
	}
	return Point{v.X, v.Y, v.Z}
}
