package primitive

import (
	"fmt"

	"github.com/chazu/camber/pkg/arc"
	"github.com/chazu/camber/pkg/kernel"
)

// Capsule is a cylinder of the given height with hemispherical end
// caps, on the z axis and centered at the origin. The total extent
// along z is Height + 2*Radius.
type Capsule struct {
	Radius       float64
	Height       float64 // length of the cylindrical section
	Subdivisions int     // icosphere subdivision depth, 0 means DefaultSubdivisions
}

var _ Primitive = Capsule{}

// Validate checks the capsule parameters.
func (c Capsule) Validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("capsule radius must be positive, got %g", c.Radius)
	}
	if c.Height <= 0 {
		return fmt.Errorf("capsule height must be positive, got %g", c.Height)
	}
	if c.Subdivisions < 0 || c.Subdivisions > maxSubdivisions {
		return fmt.Errorf("capsule subdivisions must be in [0, %d], got %d", maxSubdivisions, c.Subdivisions)
	}
	return nil
}

// Mesh builds the capsule by splitting an icosphere at the equator:
// vertices in the upper half shift up by Height/2, the lower half
// shifts down. Faces are untouched, so the surface stays closed and
// the equator band stretches into the cylindrical wall.
func (c Capsule) Mesh(res arc.Resolution) (*kernel.Mesh, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sphere := Sphere{Radius: c.Radius, Subdivisions: c.Subdivisions}
	m, err := sphere.Mesh(res)
	if err != nil {
		return nil, err
	}

	shift := float32(c.Height / 2)
	for i := 0; i < len(m.Vertices); i += 3 {
		if m.Vertices[i+2] >= 0 {
			m.Vertices[i+2] += shift
		} else {
			m.Vertices[i+2] -= shift
		}
	}
	m.RecomputeNormals()
	return m, nil
}
