package physics

import (
	"chunkmesh/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const rayEpsilon = 1e-6

// RaycastResult stores the nearest hit of a ray against a static body.
type RaycastResult struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
	Triangle int
	Hit      bool
}

// Raycast intersects a ray with every triangle of the body and returns the
// nearest hit within maxDist. Only front faces count: the mesher winds
// outward faces clockwise, so a triangle is hit when the ray travels against
// its outward normal. direction must be normalized.
func (b *StaticBody) Raycast(origin, direction mgl32.Vec3, maxDist float32) RaycastResult {
	defer profiling.Track("physics.Raycast")()

	result := RaycastResult{Distance: maxDist}
	if b == nil || b.Shape == nil {
		return result
	}

	for i := 0; i < b.Shape.TriangleCount(); i++ {
		v0, v1, v2 := b.Shape.Triangle(i)
		t, ok := intersectTriangle(origin, direction, v0, v1, v2)
		if !ok || t > result.Distance {
			continue
		}
		// Clockwise front faces: outward normal is (v2-v0) x (v1-v0).
		n := v2.Sub(v0).Cross(v1.Sub(v0)).Normalize()
		if n.Dot(direction) >= 0 {
			continue
		}
		result = RaycastResult{
			Point:    origin.Add(direction.Mul(t)),
			Normal:   n,
			Distance: t,
			Triangle: i,
			Hit:      true,
		}
	}
	return result
}

// intersectTriangle is the Möller–Trumbore test, two-sided.
func intersectTriangle(origin, dir, v0, v1, v2 mgl32.Vec3) (float32, bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	p := dir.Cross(e2)
	det := e1.Dot(p)
	if det > -rayEpsilon && det < rayEpsilon {
		return 0, false
	}
	inv := 1 / det
	s := origin.Sub(v0)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t < rayEpsilon {
		return 0, false
	}
	return t, true
}
