package primitive

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/camber/pkg/arc"
	"github.com/chazu/camber/pkg/kernel"
)

// Cylinder is a solid circular cylinder on the z axis, centered at the
// origin.
type Cylinder struct {
	Radius float64
	Height float64
	// Sections is the number of facets around the circumference. When
	// zero the cross-section density comes from the arc discretizer
	// and the resolution bounds.
	Sections int
}

var _ Primitive = Cylinder{}

// Validate checks the cylinder parameters.
func (c Cylinder) Validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("cylinder radius must be positive, got %g", c.Radius)
	}
	if c.Height <= 0 {
		return fmt.Errorf("cylinder height must be positive, got %g", c.Height)
	}
	if c.Sections != 0 && c.Sections < 3 {
		return fmt.Errorf("cylinder sections must be 0 or >= 3, got %d", c.Sections)
	}
	return nil
}

// Mesh returns the cylinder mesh: a triangulated side wall plus two
// cap fans.
func (c Cylinder) Mesh(res arc.Resolution) (*kernel.Mesh, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var ring []v3.Vec
	if c.Sections > 0 {
		ring = uniformRing(c.Radius, c.Sections)
	} else {
		var err error
		ring, err = circleRing(c.Radius, res)
		if err != nil {
			return nil, err
		}
	}

	return revolveRing(ring, c.Height), nil
}

// revolveRing builds a closed solid from a counterclockwise XY-plane
// ring: a side wall between z = -height/2 and z = +height/2 and a
// triangle fan cap on each end.
func revolveRing(ring []v3.Vec, height float64) *kernel.Mesh {
	n := uint32(len(ring))
	h := height / 2

	var mb builder
	for _, p := range ring {
		mb.vertex(v3.Vec{X: p.X, Y: p.Y, Z: -h})
	}
	for _, p := range ring {
		mb.vertex(v3.Vec{X: p.X, Y: p.Y, Z: h})
	}
	bottomCenter := mb.vertex(v3.Vec{Z: -h})
	topCenter := mb.vertex(v3.Vec{Z: h})

	for i := uint32(0); i < n; i++ {
		j := (i + 1) % n
		// Side wall, outward for a counterclockwise ring.
		mb.triangle(i, j, n+j)
		mb.triangle(i, n+j, n+i)
		// Caps: bottom wound downward, top wound upward.
		mb.triangle(bottomCenter, j, i)
		mb.triangle(topCenter, n+i, n+j)
	}
	return mb.mesh()
}
