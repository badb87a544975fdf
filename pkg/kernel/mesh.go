package kernel

import "math"

// Mesh is a triangle mesh.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	PartName string    `json:"partName"` // which part this came from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// edge is an undirected vertex index pair with lo <= hi.
type edge struct {
	lo, hi uint32
}

// edgeUse counts how often an undirected edge occurs and in which
// directions.
type edgeUse struct {
	count   int
	forward int // occurrences as (lo -> hi)
}

// edgeUses walks all triangles and tallies directed edge occurrences.
// The result is only meaningful for index-shared meshes; triangle
// soups with duplicated vertices report every edge as a boundary.
func (m *Mesh) edgeUses() map[edge]*edgeUse {
	uses := make(map[edge]*edgeUse, len(m.Indices))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		tri := [3]uint32{m.Indices[t], m.Indices[t+1], m.Indices[t+2]}
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			e := edge{lo: a, hi: b}
			forward := true
			if a > b {
				e = edge{lo: b, hi: a}
				forward = false
			}
			u := uses[e]
			if u == nil {
				u = &edgeUse{}
				uses[e] = u
			}
			u.count++
			if forward {
				u.forward++
			}
		}
	}
	return uses
}

// IsWatertight reports whether every edge is shared by exactly two
// triangles, i.e. the surface is closed with no boundary or non-manifold
// edges.
func (m *Mesh) IsWatertight() bool {
	if m.TriangleCount() == 0 {
		return false
	}
	for _, u := range m.edgeUses() {
		if u.count != 2 {
			return false
		}
	}
	return true
}

// IsWindingConsistent reports whether adjacent triangles agree on
// orientation: each shared edge is traversed once in each direction.
func (m *Mesh) IsWindingConsistent() bool {
	if m.TriangleCount() == 0 {
		return false
	}
	for _, u := range m.edgeUses() {
		if u.count == 2 && u.forward != 1 {
			return false
		}
	}
	return true
}

// RecomputeNormals rebuilds per-vertex normals as the area-weighted
// average of adjacent face normals. Call after mutating vertex
// positions.
func (m *Mesh) RecomputeNormals() {
	accum := make([]float64, len(m.Vertices))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		i, j, k := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		ax := float64(m.Vertices[j*3] - m.Vertices[i*3])
		ay := float64(m.Vertices[j*3+1] - m.Vertices[i*3+1])
		az := float64(m.Vertices[j*3+2] - m.Vertices[i*3+2])
		bx := float64(m.Vertices[k*3] - m.Vertices[i*3])
		by := float64(m.Vertices[k*3+1] - m.Vertices[i*3+1])
		bz := float64(m.Vertices[k*3+2] - m.Vertices[i*3+2])
		nx, ny, nz := ay*bz-az*by, az*bx-ax*bz, ax*by-ay*bx
		for _, idx := range [3]uint32{i, j, k} {
			accum[idx*3] += nx
			accum[idx*3+1] += ny
			accum[idx*3+2] += nz
		}
	}
	m.Normals = make([]float32, len(m.Vertices))
	for i := 0; i < len(accum); i += 3 {
		x, y, z := accum[i], accum[i+1], accum[i+2]
		l := x*x + y*y + z*z
		if l > 0 {
			l = 1 / math.Sqrt(l)
			m.Normals[i] = float32(x * l)
			m.Normals[i+1] = float32(y * l)
			m.Normals[i+2] = float32(z * l)
		} else {
			m.Normals[i+2] = 1
		}
	}
}

// Volume returns the signed volume enclosed by the mesh, computed as
// the sum of signed tetrahedra against the origin. The result is only
// meaningful for watertight meshes; consistent outward winding gives a
// positive value.
func (m *Mesh) Volume() float64 {
	vert := func(i uint32) (x, y, z float64) {
		return float64(m.Vertices[i*3]), float64(m.Vertices[i*3+1]), float64(m.Vertices[i*3+2])
	}
	var total float64
	for t := 0; t+2 < len(m.Indices); t += 3 {
		ax, ay, az := vert(m.Indices[t])
		bx, by, bz := vert(m.Indices[t+1])
		cx, cy, cz := vert(m.Indices[t+2])
		total += ax*(by*cz-bz*cy) - ay*(bx*cz-bz*cx) + az*(bx*cy-by*cx)
	}
	return total / 6.0
}
