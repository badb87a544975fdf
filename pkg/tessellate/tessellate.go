// Package tessellate walks an assembly tree and produces triangle
// meshes using a geometry kernel. One mesh is produced per primitive
// part.
package tessellate

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/camber/pkg/kernel"
	"github.com/chazu/camber/pkg/primitive"
)

// NodeKind identifies what an assembly node contributes.
type NodeKind int

const (
	NodePrimitive NodeKind = iota
	NodeTransform
	NodeGroup
)

// Node is one element of an assembly tree. Primitive nodes carry a
// primitive descriptor in Data; transform nodes carry TransformData
// and apply it to their subtree; group nodes only collect children.
type Node struct {
	Kind     NodeKind
	Name     string
	Data     any
	Children []*Node
}

// TransformData is the spatial offset a transform node applies to its
// subtree.
type TransformData struct {
	Translation *v3.Vec
	Rotation    *v3.Vec // Euler angles in degrees
}

// transformStack accumulates spatial transforms during tree traversal.
type transformStack struct {
	translations []v3.Vec
	rotations    []v3.Vec
}

func newTransformStack() *transformStack {
	return &transformStack{}
}

func (ts *transformStack) push(translation, rotation v3.Vec) {
	ts.translations = append(ts.translations, translation)
	ts.rotations = append(ts.rotations, rotation)
}

func (ts *transformStack) pop() {
	if len(ts.translations) > 0 {
		ts.translations = ts.translations[:len(ts.translations)-1]
	}
	if len(ts.rotations) > 0 {
		ts.rotations = ts.rotations[:len(ts.rotations)-1]
	}
}

// accumulatedTranslation returns the sum of all translations on the stack.
func (ts *transformStack) accumulatedTranslation() v3.Vec {
	var sum v3.Vec
	for _, t := range ts.translations {
		sum = sum.Add(t)
	}
	return sum
}

// accumulatedRotation returns the sum of all rotations on the stack.
func (ts *transformStack) accumulatedRotation() v3.Vec {
	var sum v3.Vec
	for _, r := range ts.rotations {
		sum = sum.Add(r)
	}
	return sum
}

// Tessellate walks the assembly roots and produces one triangle mesh
// per primitive part using the provided geometry kernel. The
// tessellator is read-only and never mutates the tree.
func Tessellate(roots []*Node, k kernel.Kernel) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh
	ts := newTransformStack()

	for _, root := range roots {
		if root == nil {
			continue
		}
		collected, err := walkNode(k, root, ts)
		if err != nil {
			return nil, fmt.Errorf("tessellate: error walking root %q: %w", root.Name, err)
		}
		meshes = append(meshes, collected...)
	}

	return meshes, nil
}

// walkNode recursively traverses a node and its children, collecting meshes.
func walkNode(k kernel.Kernel, n *Node, ts *transformStack) ([]*kernel.Mesh, error) {
	switch n.Kind {
	case NodePrimitive:
		return handlePrimitive(k, n, ts)

	case NodeTransform:
		return handleTransform(k, n, ts)

	case NodeGroup:
		return handleGroup(k, n, ts)

	default:
		return nil, fmt.Errorf("unknown node kind: %v", n.Kind)
	}
}

// handlePrimitive creates geometry for a primitive node.
func handlePrimitive(k kernel.Kernel, n *Node, ts *transformStack) ([]*kernel.Mesh, error) {
	var solid kernel.Solid
	var offset v3.Vec

	switch data := n.Data.(type) {
	case primitive.Box:
		solid = k.Box(data.Extents.X, data.Extents.Y, data.Extents.Z)
		offset = data.Center
	case primitive.Sphere:
		solid = k.Sphere(data.Radius)
		offset = data.Center
	case primitive.Cylinder:
		solid = k.Cylinder(data.Height, data.Radius, data.Sections)
	case primitive.Capsule:
		solid = k.Capsule(data.Height, data.Radius)
	case primitive.Extrusion:
		if len(data.Polygon) == 0 {
			return nil, fmt.Errorf("extrusion node %q has no polygon", n.Name)
		}
		solid = k.Extrude(loopPoints(data.Polygon[0], false), data.Height)
		// The kernel extrudes a single loop; holes are realized by
		// subtracting their extrusions. Hole loops are clockwise and
		// get reversed so the kernel always sees a solid outline.
		for _, hole := range data.Polygon[1:] {
			cutter := k.Extrude(loopPoints(hole, true), data.Height)
			solid = k.Difference(solid, cutter)
		}
	default:
		return nil, fmt.Errorf("primitive node %q has unsupported data type %T", n.Name, n.Data)
	}

	// Apply accumulated rotation first, then translation.
	rot := ts.accumulatedRotation()
	if rot.X != 0 || rot.Y != 0 || rot.Z != 0 {
		solid = k.Rotate(solid, rot.X, rot.Y, rot.Z)
	}

	trans := ts.accumulatedTranslation().Add(offset)
	if trans.X != 0 || trans.Y != 0 || trans.Z != 0 {
		solid = k.Translate(solid, trans.X, trans.Y, trans.Z)
	}

	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("tessellate: ToMesh failed for node %q: %w", n.Name, err)
	}

	mesh.PartName = n.Name
	return []*kernel.Mesh{mesh}, nil
}

// loopPoints flattens a polygon loop for the kernel, optionally
// reversing its direction.
func loopPoints(loop []v2.Vec, reverse bool) [][2]float64 {
	points := make([][2]float64, len(loop))
	for i, p := range loop {
		j := i
		if reverse {
			j = len(loop) - 1 - i
		}
		points[j] = [2]float64{p.X, p.Y}
	}
	return points
}

// handleTransform pushes the transform, recurses into children, then pops.
func handleTransform(k kernel.Kernel, n *Node, ts *transformStack) ([]*kernel.Mesh, error) {
	td, ok := n.Data.(TransformData)
	if !ok {
		return nil, fmt.Errorf("transform node %q has unexpected data type %T", n.Name, n.Data)
	}

	translation := v3.Vec{}
	rotation := v3.Vec{}
	if td.Translation != nil {
		translation = *td.Translation
	}
	if td.Rotation != nil {
		rotation = *td.Rotation
	}
	ts.push(translation, rotation)

	var meshes []*kernel.Mesh
	for _, child := range n.Children {
		collected, err := walkNode(k, child, ts)
		if err != nil {
			ts.pop()
			return nil, err
		}
		meshes = append(meshes, collected...)
	}

	ts.pop()
	return meshes, nil
}

// handleGroup recurses into children transparently.
func handleGroup(k kernel.Kernel, n *Node, ts *transformStack) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh
	for _, child := range n.Children {
		collected, err := walkNode(k, child, ts)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, collected...)
	}
	return meshes, nil
}
