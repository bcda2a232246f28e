package meshing

import "github.com/go-gl/mathgl/mgl32"

// Face identifies one of the six axis-aligned faces of a voxel.
type Face int

const (
	FaceFront  Face = iota // -Z
	FaceBack               // +Z
	FaceLeft               // -X
	FaceRight              // +X
	FaceTop                // +Y
	FaceBottom             // -Y
)

// AllFaces lists the faces in emission order.
var AllFaces = [6]Face{FaceFront, FaceBack, FaceLeft, FaceRight, FaceTop, FaceBottom}

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// FaceDefinition describes one face of the unit cube at the voxel's minimum corner.
type FaceDefinition struct {
	// Offset to the neighbouring cell across this face.
	Offset [3]int
	// Corners of the quad; UV corner i maps onto Corners[i].
	Corners [4]mgl32.Vec3
	// Two triangles over Corners.
	Triangles [6]int
	// Normal is the outward direction, equal to Offset.
	Normal mgl32.Vec3
}

var (
	windingForward  = [6]int{0, 1, 2, 2, 3, 0}
	windingReversed = [6]int{0, 3, 2, 2, 1, 0}
)

// Faces is indexed by Face. Back, left and bottom quads have the opposite
// handedness from their partners, so they use the reversed winding.
var Faces = [6]FaceDefinition{
	FaceFront: {
		Offset:    [3]int{0, 0, -1},
		Corners:   [4]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Triangles: windingForward,
		Normal:    mgl32.Vec3{0, 0, -1},
	},
	FaceBack: {
		Offset:    [3]int{0, 0, 1},
		Corners:   [4]mgl32.Vec3{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
		Triangles: windingReversed,
		Normal:    mgl32.Vec3{0, 0, 1},
	},
	FaceLeft: {
		Offset:    [3]int{-1, 0, 0},
		Corners:   [4]mgl32.Vec3{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
		Triangles: windingReversed,
		Normal:    mgl32.Vec3{-1, 0, 0},
	},
	FaceRight: {
		Offset:    [3]int{1, 0, 0},
		Corners:   [4]mgl32.Vec3{{1, 0, 0}, {1, 0, 1}, {1, 1, 1}, {1, 1, 0}},
		Triangles: windingForward,
		Normal:    mgl32.Vec3{1, 0, 0},
	},
	FaceTop: {
		Offset:    [3]int{0, 1, 0},
		Corners:   [4]mgl32.Vec3{{0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1}},
		Triangles: windingForward,
		Normal:    mgl32.Vec3{0, 1, 0},
	},
	FaceBottom: {
		Offset:    [3]int{0, -1, 0},
		Corners:   [4]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
		Triangles: windingReversed,
		Normal:    mgl32.Vec3{0, -1, 0},
	},
}

// Definition returns the table entry for f.
func Definition(f Face) FaceDefinition {
	return Faces[f]
}
