// Package mesh generates vertex data for the primitives the renderer draws.
package mesh

import "github.com/Faultbox/cubefold/pkg/math"

// BoxStride is the number of floats per box vertex: position (3) + normal (3) + UV (2).
const BoxStride = 8

// BoxVertexCount is the number of vertices for a solid box (6 faces × 2 triangles × 3).
const BoxVertexCount = 36

// EdgeVertexCount is the number of vertices for a box wireframe (12 edges × 2).
const EdgeVertexCount = 24

// LineStride is the number of floats per line vertex.
const LineStride = 3

// Box returns a unit cube centred on the origin as triangles, format
// [x, y, z, nx, ny, nz, u, v] per vertex. The renderer scales it to the box size.
func Box() []float32 {
	const h = 0.5

	// Corners of each face in counter-clockwise order seen from outside.
	faces := [6][4]math.Vec3{
		{{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}},     // +Z
		{{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}}, // -Z
		{{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}},     // +X
		{{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}}, // -X
		{{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}},     // +Y
		{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}}, // -Y
	}
	normals := [6]math.Vec3{{Z: 1}, {Z: -1}, {X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	order := [6]int{0, 1, 2, 0, 2, 3}

	verts := make([]float32, 0, BoxVertexCount*BoxStride)
	for fi, f := range faces {
		n := normals[fi]
		for _, i := range order {
			p := f[i]
			verts = append(verts, p.X, p.Y, p.Z, n.X, n.Y, n.Z, uvs[i][0], uvs[i][1])
		}
	}
	return verts
}

// Edges returns line vertices for the 12 edges of the box spanning lo..hi,
// format [x, y, z] per vertex.
func Edges(lo, hi math.Vec3) []float32 {
	return []float32{
		// Bottom face
		lo.X, lo.Y, lo.Z, hi.X, lo.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, lo.Y, hi.Z,
		hi.X, lo.Y, hi.Z, lo.X, lo.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, lo.Y, lo.Z,
		// Top face
		lo.X, hi.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, hi.Y, lo.Z, hi.X, hi.Y, hi.Z,
		hi.X, hi.Y, hi.Z, lo.X, hi.Y, hi.Z,
		lo.X, hi.Y, hi.Z, lo.X, hi.Y, lo.Z,
		// Vertical edges
		lo.X, lo.Y, lo.Z, lo.X, hi.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, lo.Y, hi.Z, hi.X, hi.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, hi.Y, hi.Z,
	}
}

// UnitEdges returns the wireframe of the unit cube centred on the origin.
func UnitEdges() []float32 {
	return Edges(math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}, math.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
}

// Line returns the two vertices of a segment.
func Line(from, to math.Vec3) []float32 {
	return []float32{from.X, from.Y, from.Z, to.X, to.Y, to.Z}
}
