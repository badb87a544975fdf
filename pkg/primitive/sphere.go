package primitive

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/camber/pkg/arc"
	"github.com/chazu/camber/pkg/kernel"
)

// Sphere is a solid sphere meshed as a subdivided icosahedron.
type Sphere struct {
	Center       v3.Vec
	Radius       float64
	Subdivisions int // 0 means DefaultSubdivisions
}

var _ Primitive = Sphere{}

// DefaultSubdivisions is the icosphere subdivision depth used when the
// caller does not specify one. Each level quadruples the face count.
const DefaultSubdivisions = 3

// maxSubdivisions keeps face counts bounded (level 7 is already 1.3M
// triangles).
const maxSubdivisions = 7

// Validate checks the radius and subdivision depth.
func (s Sphere) Validate() error {
	if s.Radius <= 0 {
		return fmt.Errorf("sphere radius must be positive, got %g", s.Radius)
	}
	if s.Subdivisions < 0 || s.Subdivisions > maxSubdivisions {
		return fmt.Errorf("sphere subdivisions must be in [0, %d], got %d", maxSubdivisions, s.Subdivisions)
	}
	return nil
}

// Mesh returns the icosphere mesh. The resolution is unused: density
// is controlled by the subdivision depth.
func (s Sphere) Mesh(_ arc.Resolution) (*kernel.Mesh, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	depth := s.Subdivisions
	if depth == 0 {
		depth = DefaultSubdivisions
	}

	verts, faces := icosahedron()
	for i := 0; i < depth; i++ {
		verts, faces = subdivide(verts, faces)
	}

	var mb builder
	for _, v := range verts {
		mb.vertex(v.Normalize().MulScalar(s.Radius).Add(s.Center))
	}
	for _, f := range faces {
		mb.triangle(f[0], f[1], f[2])
	}
	return mb.mesh(), nil
}

// icosahedron returns the 12 vertices and 20 outward-wound faces of a
// unit-scale icosahedron.
func icosahedron() ([]v3.Vec, [][3]uint32) {
	t := (1 + math.Sqrt(5)) / 2
	verts := []v3.Vec{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	faces := [][3]uint32{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return verts, faces
}

// subdivide splits every face into four, reusing midpoint vertices so
// the surface stays closed.
func subdivide(verts []v3.Vec, faces [][3]uint32) ([]v3.Vec, [][3]uint32) {
	type edgeKey struct{ lo, hi uint32 }
	midpoints := make(map[edgeKey]uint32)

	midpoint := func(a, b uint32) uint32 {
		key := edgeKey{lo: a, hi: b}
		if a > b {
			key = edgeKey{lo: b, hi: a}
		}
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		verts = append(verts, verts[a].Add(verts[b]).MulScalar(0.5))
		idx := uint32(len(verts) - 1)
		midpoints[key] = idx
		return idx
	}

	split := make([][3]uint32, 0, len(faces)*4)
	for _, f := range faces {
		ab := midpoint(f[0], f[1])
		bc := midpoint(f[1], f[2])
		ca := midpoint(f[2], f[0])
		split = append(split,
			[3]uint32{f[0], ab, ca},
			[3]uint32{f[1], bc, ab},
			[3]uint32{f[2], ca, bc},
			[3]uint32{ab, bc, ca},
		)
	}
	return verts, split
}
