// Package primitive provides parametric solid primitives (sphere, box,
// cylinder, capsule, extrusion) that generate watertight, consistently
// wound triangle meshes. Curved cross-sections are discretized with the
// arc package so mesh density follows the same resolution bounds as
// path geometry.
package primitive

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/camber/pkg/arc"
	"github.com/chazu/camber/pkg/kernel"
)

// Primitive is a parametric solid that can validate its parameters and
// generate an indexed triangle mesh.
type Primitive interface {
	Validate() error
	Mesh(res arc.Resolution) (*kernel.Mesh, error)
}

// builder accumulates an indexed triangle mesh with shared vertices.
type builder struct {
	verts []v3.Vec
	faces [][3]uint32
}

func (b *builder) vertex(v v3.Vec) uint32 {
	b.verts = append(b.verts, v)
	return uint32(len(b.verts) - 1)
}

func (b *builder) triangle(i, j, k uint32) {
	b.faces = append(b.faces, [3]uint32{i, j, k})
}

// mesh flattens the accumulated geometry into a kernel.Mesh with
// smooth per-vertex normals (area-weighted average of adjacent face
// normals).
func (b *builder) mesh() *kernel.Mesh {
	normals := make([]v3.Vec, len(b.verts))
	for _, f := range b.faces {
		a, c, d := b.verts[f[0]], b.verts[f[1]], b.verts[f[2]]
		n := c.Sub(a).Cross(d.Sub(a))
		for _, idx := range f {
			normals[idx] = normals[idx].Add(n)
		}
	}

	m := &kernel.Mesh{
		Vertices: make([]float32, 0, len(b.verts)*3),
		Normals:  make([]float32, 0, len(b.verts)*3),
		Indices:  make([]uint32, 0, len(b.faces)*3),
	}
	for i, v := range b.verts {
		m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
		n := normals[i]
		if l := n.Length(); l > 0 {
			n = n.MulScalar(1 / l)
		} else {
			n = v3.Vec{Z: 1}
		}
		m.Normals = append(m.Normals, float32(n.X), float32(n.Y), float32(n.Z))
	}
	for _, f := range b.faces {
		m.Indices = append(m.Indices, f[0], f[1], f[2])
	}
	return m
}

// circleRing returns the ring of n or more unique XY-plane points on a
// circle of the given radius, derived from the arc discretizer so the
// density honors the resolution bounds. The duplicated closing point
// is dropped.
func circleRing(radius float64, res arc.Resolution) ([]v3.Vec, error) {
	control := []arc.Point{{radius, 0}, {0, radius}, {-radius, 0}}
	discrete, err := arc.Discretize(control, true, radius, res)
	if err != nil {
		return nil, err
	}
	ring := make([]v3.Vec, len(discrete)-1)
	for i := range ring {
		ring[i] = v3.Vec{X: discrete[i][0], Y: discrete[i][1]}
	}
	return ring, nil
}

// uniformRing returns n evenly spaced XY-plane points on a circle of
// the given radius, counterclockwise starting at the positive x axis.
func uniformRing(radius float64, n int) []v3.Vec {
	ring := make([]v3.Vec, n)
	for i := range ring {
		t := 2 * math.Pi * float64(i) / float64(n)
		ring[i] = v3.Vec{X: radius * math.Cos(t), Y: radius * math.Sin(t)}
	}
	return ring
}
