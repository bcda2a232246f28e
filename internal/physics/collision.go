package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max mgl32.Vec3
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p mgl32.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// ConcaveShape is an exact, non-convex triangle soup. Faces holds three
// positions per triangle, unindexed and unwelded.
type ConcaveShape struct {
	Faces []mgl32.Vec3
}

// TriangleCount returns the number of triangles in the shape.
func (s *ConcaveShape) TriangleCount() int {
	return len(s.Faces) / 3
}

// Triangle returns the corners of triangle i.
func (s *ConcaveShape) Triangle(i int) (a, b, c mgl32.Vec3) {
	return s.Faces[i*3], s.Faces[i*3+1], s.Faces[i*3+2]
}

// StaticBody is an immovable collider holding one concave shape.
type StaticBody struct {
	Shape  *ConcaveShape
	Bounds AABB
}

// NewStaticBody wraps a collision triangle soup. An empty soup produces no
// body and returns nil. The slice is retained, not copied.
func NewStaticBody(faces []mgl32.Vec3) *StaticBody {
	if len(faces) == 0 {
		return nil
	}
	if len(faces)%3 != 0 {
		panic(fmt.Sprintf("physics: triangle soup length %d is not a multiple of 3", len(faces)))
	}

	bounds := AABB{Min: faces[0], Max: faces[0]}
	for _, p := range faces[1:] {
		for i := 0; i < 3; i++ {
			bounds.Min[i] = min(bounds.Min[i], p[i])
			bounds.Max[i] = max(bounds.Max[i], p[i])
		}
	}

	return &StaticBody{
		Shape:  &ConcaveShape{Faces: faces},
		Bounds: bounds,
	}
}
