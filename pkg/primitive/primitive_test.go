package primitive

import (
	"math"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/camber/pkg/arc"
)

// square returns an axis-aligned square loop. Positive side gives a
// counterclockwise (solid) loop, negative a clockwise (hole) loop.
func square(cx, cy, side float64) []v2.Vec {
	h := side / 2
	loop := []v2.Vec{
		{X: cx - h, Y: cy - h},
		{X: cx + h, Y: cy - h},
		{X: cx + h, Y: cy + h},
		{X: cx - h, Y: cy + h},
	}
	if side < 0 {
		h = -side / 2
		loop = []v2.Vec{
			{X: cx - h, Y: cy - h},
			{X: cx - h, Y: cy + h},
			{X: cx + h, Y: cy + h},
			{X: cx + h, Y: cy - h},
		}
	}
	return loop
}

func TestPrimitiveMeshes(t *testing.T) {
	tests := []struct {
		name string
		prim Primitive
	}{
		{"default sphere", Sphere{Radius: 1}},
		{"offset sphere", Sphere{Center: v3.Vec{Z: 100}, Radius: 10, Subdivisions: 5}},
		{"unit box", Box{Extents: v3.Vec{X: 1, Y: 1, Z: 1}}},
		{"offset box", Box{Center: v3.Vec{X: 102.2, Z: 102}, Extents: v3.Vec{X: 29, Y: 100, Z: 1000}}},
		{"default cylinder", Cylinder{Radius: 1, Height: 1}},
		{"sectioned cylinder", Cylinder{Radius: 10, Height: 1, Sections: 40}},
		{"capsule", Capsule{Radius: 1.5, Height: 10}},
		{"extrusion", Extrusion{Polygon: [][]v2.Vec{square(0, 0, 2)}, Height: 1}},
		{"extrusion with hole", Extrusion{
			Polygon: [][]v2.Vec{square(0, 0, 2), square(0, 0, -1)},
			Height:  293292.322,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.prim.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			m, err := tt.prim.Mesh(arc.DefaultResolution)
			if err != nil {
				t.Fatalf("Mesh() error = %v", err)
			}
			if m.TriangleCount() == 0 {
				t.Fatal("mesh has no triangles")
			}
			if len(m.Vertices) != len(m.Normals) {
				t.Fatalf("vertices length %d != normals length %d", len(m.Vertices), len(m.Normals))
			}
			if !m.IsWatertight() {
				t.Error("mesh is not watertight")
			}
			if !m.IsWindingConsistent() {
				t.Error("mesh winding is not consistent")
			}
			if vol := m.Volume(); vol <= 0 {
				t.Errorf("Volume() = %g, want > 0", vol)
			}
		})
	}
}

func TestBoxVolume(t *testing.T) {
	b := Box{Center: v3.Vec{X: 5, Y: -3, Z: 2}, Extents: v3.Vec{X: 2, Y: 3, Z: 4}}
	m, err := b.Mesh(arc.DefaultResolution)
	if err != nil {
		t.Fatalf("Mesh() error = %v", err)
	}
	if m.TriangleCount() != 12 {
		t.Errorf("TriangleCount() = %d, want 12", m.TriangleCount())
	}
	want := 2.0 * 3.0 * 4.0
	if vol := m.Volume(); math.Abs(vol-want) > 1e-3 {
		t.Errorf("Volume() = %g, want %g", vol, want)
	}
}

func TestSphereVolume(t *testing.T) {
	s := Sphere{Radius: 2}
	m, err := s.Mesh(arc.DefaultResolution)
	if err != nil {
		t.Fatalf("Mesh() error = %v", err)
	}
	want := 4.0 / 3.0 * math.Pi * 8
	if vol := m.Volume(); math.Abs(vol-want)/want > 0.05 {
		t.Errorf("Volume() = %g, want within 5%% of %g", vol, want)
	}
}

func TestCylinderVolume(t *testing.T) {
	c := Cylinder{Radius: 3, Height: 5}
	m, err := c.Mesh(arc.DefaultResolution)
	if err != nil {
		t.Fatalf("Mesh() error = %v", err)
	}
	want := math.Pi * 9 * 5
	if vol := m.Volume(); math.Abs(vol-want)/want > 0.02 {
		t.Errorf("Volume() = %g, want within 2%% of %g", vol, want)
	}
}

func TestCylinderSectionsFromResolution(t *testing.T) {
	coarse := arc.Resolution{SegAngle: 0.5, SegFrac: 0.5, Zero: 1e-12, Merge: 1e-5}
	fine := arc.Resolution{SegAngle: 0.02, SegFrac: 0.02, Zero: 1e-12, Merge: 1e-5}
	c := Cylinder{Radius: 1, Height: 1}

	a, err := c.Mesh(coarse)
	if err != nil {
		t.Fatalf("coarse Mesh() error = %v", err)
	}
	b, err := c.Mesh(fine)
	if err != nil {
		t.Fatalf("fine Mesh() error = %v", err)
	}
	if b.TriangleCount() <= a.TriangleCount() {
		t.Errorf("fine resolution gave %d triangles, coarse %d; want more",
			b.TriangleCount(), a.TriangleCount())
	}
}

func TestCapsuleVolume(t *testing.T) {
	c := Capsule{Radius: 1.5, Height: 10}
	m, err := c.Mesh(arc.DefaultResolution)
	if err != nil {
		t.Fatalf("Mesh() error = %v", err)
	}
	// At least the two hemispherical caps, and no more than the
	// bounding cylinder.
	sphereVol := 4.0 / 3.0 * math.Pi * math.Pow(1.5, 3)
	boundVol := math.Pi * math.Pow(1.5, 2) * (10 + 3)
	vol := m.Volume()
	if vol < sphereVol*0.9 {
		t.Errorf("Volume() = %g, want at least the end caps %g", vol, sphereVol)
	}
	if vol > boundVol {
		t.Errorf("Volume() = %g, want below the bounding cylinder %g", vol, boundVol)
	}
}

func TestExtrusionVolume(t *testing.T) {
	// 2x2 outer square with a 1x1 hole: cross-section area 3.
	e := Extrusion{
		Polygon: [][]v2.Vec{square(0, 0, 2), square(0, 0, -1)},
		Height:  2,
	}
	m, err := e.Mesh(arc.DefaultResolution)
	if err != nil {
		t.Fatalf("Mesh() error = %v", err)
	}
	want := 3.0 * 2.0
	if vol := m.Volume(); math.Abs(vol-want)/want > 1e-4 {
		t.Errorf("Volume() = %g, want %g", vol, want)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		prim Primitive
	}{
		{"zero radius sphere", Sphere{Radius: 0}},
		{"negative radius sphere", Sphere{Radius: -1}},
		{"excessive subdivisions", Sphere{Radius: 1, Subdivisions: 9}},
		{"flat box", Box{Extents: v3.Vec{X: 1, Y: 0, Z: 1}}},
		{"negative box", Box{Extents: v3.Vec{X: 1, Y: 1, Z: -1}}},
		{"zero height cylinder", Cylinder{Radius: 1}},
		{"two section cylinder", Cylinder{Radius: 1, Height: 1, Sections: 2}},
		{"zero radius capsule", Capsule{Height: 1}},
		{"empty extrusion", Extrusion{Height: 1}},
		{"degenerate loop", Extrusion{Polygon: [][]v2.Vec{{{X: 0, Y: 0}, {X: 1, Y: 0}}}, Height: 1}},
		{"flat extrusion", Extrusion{Polygon: [][]v2.Vec{square(0, 0, 2)}, Height: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.prim.Validate(); err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if _, err := tt.prim.Mesh(arc.DefaultResolution); err == nil {
				t.Fatal("Mesh() = nil error, want error")
			}
		})
	}
}
