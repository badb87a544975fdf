package primitive

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/osuushi/triangulate"

	"github.com/chazu/camber/pkg/arc"
	"github.com/chazu/camber/pkg/kernel"
)

// Extrusion sweeps a 2D polygon along the z axis from 0 to Height.
// The first loop is the outer boundary, given counterclockwise; any
// further loops are holes, given clockwise.
type Extrusion struct {
	Polygon [][]v2.Vec
	Height  float64
}

var _ Primitive = Extrusion{}

// Validate checks the loops and height.
func (e Extrusion) Validate() error {
	if len(e.Polygon) == 0 {
		return fmt.Errorf("extrusion requires at least one polygon loop")
	}
	for i, loop := range e.Polygon {
		if len(loop) < 3 {
			return fmt.Errorf("extrusion loop %d has %d points, need at least 3", i, len(loop))
		}
	}
	if e.Height <= 0 {
		return fmt.Errorf("extrusion height must be positive, got %g", e.Height)
	}
	return nil
}

// Mesh returns the extruded solid: triangulated caps at z = 0 and
// z = Height joined by wall quads along every loop. Cap and wall
// vertices are shared, so the result is watertight.
func (e Extrusion) Mesh(_ arc.Resolution) (*kernel.Mesh, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	// One shared point list per loop; the triangulator keys on point
	// identity, so the same pointers map cap triangles back to ring
	// indices.
	var total int
	loops := make([][]*triangulate.Point, len(e.Polygon))
	ringIndex := make(map[*triangulate.Point]uint32)
	for li, loop := range e.Polygon {
		loops[li] = make([]*triangulate.Point, len(loop))
		for pi, p := range loop {
			pt := &triangulate.Point{X: p.X, Y: p.Y}
			loops[li][pi] = pt
			ringIndex[pt] = uint32(total + pi)
		}
		total += len(loop)
	}

	caps, err := triangulate.Triangulate(loops...)
	if err != nil {
		return nil, fmt.Errorf("triangulating extrusion cap: %w", err)
	}

	n := uint32(total)
	var mb builder
	for _, loop := range loops {
		for _, pt := range loop {
			mb.vertex(v3.Vec{X: pt.X, Y: pt.Y})
		}
	}
	for _, loop := range loops {
		for _, pt := range loop {
			mb.vertex(v3.Vec{X: pt.X, Y: pt.Y, Z: e.Height})
		}
	}

	for _, tri := range caps {
		a, okA := ringIndex[tri.A]
		b, okB := ringIndex[tri.B]
		c, okC := ringIndex[tri.C]
		if !okA || !okB || !okC {
			return nil, fmt.Errorf("triangulation returned a point not on the polygon boundary")
		}
		// Normalize to counterclockwise before assigning winding.
		if signedArea(tri) < 0 {
			b, c = c, b
		}
		mb.triangle(a, c, b)       // bottom cap faces -z
		mb.triangle(n+a, n+b, n+c) // top cap faces +z
	}

	// Wall quads. The outward normal falls to the right of each edge,
	// which is outside the solid for counterclockwise outer loops and
	// inside the hole for clockwise hole loops.
	var start uint32
	for _, loop := range e.Polygon {
		count := uint32(len(loop))
		for i := uint32(0); i < count; i++ {
			j := (i + 1) % count
			bi, bj := start+i, start+j
			mb.triangle(bi, bj, n+bj)
			mb.triangle(bi, n+bj, n+bi)
		}
		start += count
	}

	return mb.mesh(), nil
}

// signedArea is positive for counterclockwise triangles.
func signedArea(t *triangulate.Triangle) float64 {
	return (t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.C.X-t.A.X)*(t.B.Y-t.A.Y)
}
