package primitive

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/camber/pkg/arc"
	"github.com/chazu/camber/pkg/kernel"
)

// Box is an axis-aligned rectangular solid.
type Box struct {
	Center  v3.Vec
	Extents v3.Vec // full edge lengths along x, y, z
}

var _ Primitive = Box{}

// boxFaces indexes the 8 box corners into 12 outward-wound triangles.
// Corners 0-3 walk the bottom face counterclockwise from (-x,-y);
// corners 4-7 are the same walk on the top face.
var boxFaces = [12][3]uint32{
	{0, 2, 1}, {0, 3, 2}, // bottom, -z
	{4, 5, 6}, {4, 6, 7}, // top, +z
	{0, 1, 5}, {0, 5, 4}, // front, -y
	{2, 3, 7}, {2, 7, 6}, // back, +y
	{0, 4, 7}, {0, 7, 3}, // left, -x
	{1, 2, 6}, {1, 6, 5}, // right, +x
}

// Validate checks that every extent is positive.
func (b Box) Validate() error {
	if b.Extents.X <= 0 || b.Extents.Y <= 0 || b.Extents.Z <= 0 {
		return fmt.Errorf("box extents must be positive, got %v", b.Extents)
	}
	return nil
}

// Mesh returns the 12-triangle box mesh. The resolution is unused
// since boxes have no curved surfaces.
func (b Box) Mesh(_ arc.Resolution) (*kernel.Mesh, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	hx, hy, hz := b.Extents.X/2, b.Extents.Y/2, b.Extents.Z/2
	corners := [8]v3.Vec{
		{X: -hx, Y: -hy, Z: -hz},
		{X: hx, Y: -hy, Z: -hz},
		{X: hx, Y: hy, Z: -hz},
		{X: -hx, Y: hy, Z: -hz},
		{X: -hx, Y: -hy, Z: hz},
		{X: hx, Y: -hy, Z: hz},
		{X: hx, Y: hy, Z: hz},
		{X: -hx, Y: hy, Z: hz},
	}

	var mb builder
	for _, c := range corners {
		mb.vertex(c.Add(b.Center))
	}
	for _, f := range boxFaces {
		mb.triangle(f[0], f[1], f[2])
	}
	return mb.mesh(), nil
}
