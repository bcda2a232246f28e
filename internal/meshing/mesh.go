package meshing

import "github.com/go-gl/mathgl/mgl32"

// VertexStride is number of float32 per interleaved vertex (pos.xyz + normal.xyz + uv)
const VertexStride = 8

// Vertex is one corner of an emitted triangle.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// RenderMesh is an unindexed triangle stream: every three vertices form one
// triangle. All triangles share a single atlas-textured surface.
type RenderMesh struct {
	Vertices []Vertex
}

// TriangleCount returns the number of triangles in the stream.
func (m *RenderMesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// Empty reports whether nothing was emitted.
func (m *RenderMesh) Empty() bool {
	return len(m.Vertices) == 0
}

func (m *RenderMesh) add(pos, normal mgl32.Vec3, uv mgl32.Vec2) {
	m.Vertices = append(m.Vertices, Vertex{Position: pos, Normal: normal, UV: uv})
}

// Interleaved flattens the stream into pos/normal/uv floats, VertexStride per vertex.
func (m *RenderMesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*VertexStride)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.UV[0], v.UV[1],
		)
	}
	return out
}

// IndexedMesh is the welded form of a RenderMesh.
type IndexedMesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Indexed welds bit-identical stream vertices into a shared vertex buffer.
// Triangle order and winding are preserved.
func (m *RenderMesh) Indexed() IndexedMesh {
	seen := make(map[Vertex]uint32, len(m.Vertices)/2)
	out := IndexedMesh{
		Vertices: make([]Vertex, 0, len(m.Vertices)/2),
		Indices:  make([]uint32, 0, len(m.Vertices)),
	}
	for _, v := range m.Vertices {
		idx, ok := seen[v]
		if !ok {
			idx = uint32(len(out.Vertices))
			out.Vertices = append(out.Vertices, v)
			seen[v] = idx
		}
		out.Indices = append(out.Indices, idx)
	}
	return out
}

// CollisionSet is a triangle soup of positions, grouped in threes.
type CollisionSet struct {
	Positions []mgl32.Vec3
}

// TriangleCount returns the number of triangles in the soup.
func (c *CollisionSet) TriangleCount() int {
	return len(c.Positions) / 3
}

func (c *CollisionSet) add(pos mgl32.Vec3) {
	c.Positions = append(c.Positions, pos)
}
