package meshing

import (
	"math/rand"
	"testing"

	"chunkmesh/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

type faceKey struct {
	x, y, z int
	face    Face
}

// emittedFaces recovers (cell, face) pairs from the render stream. Each quad
// is six consecutive vertices sharing one normal.
func emittedFaces(t *testing.T, m *RenderMesh) map[faceKey]int {
	t.Helper()
	if len(m.Vertices)%6 != 0 {
		t.Fatalf("stream length %d is not a multiple of 6", len(m.Vertices))
	}
	out := make(map[faceKey]int)
	for q := 0; q < len(m.Vertices); q += 6 {
		quad := m.Vertices[q : q+6]
		face := Face(-1)
		for _, f := range AllFaces {
			if quad[0].Normal == Faces[f].Normal {
				face = f
			}
		}
		if face < 0 {
			t.Fatalf("quad %d has non-axis normal %v", q/6, quad[0].Normal)
		}
		lo := quad[0].Position
		for _, v := range quad {
			if v.Normal != quad[0].Normal {
				t.Fatalf("quad %d mixes normals", q/6)
			}
			for i := 0; i < 3; i++ {
				if v.Position[i] < lo[i] {
					lo[i] = v.Position[i]
				}
			}
		}
		off := Faces[face].Offset
		cell := [3]int{int(lo[0]), int(lo[1]), int(lo[2])}
		for i := 0; i < 3; i++ {
			if off[i] > 0 {
				cell[i]--
			}
		}
		out[faceKey{cell[0], cell[1], cell[2], face}]++
	}
	return out
}

func TestSingleVoxelMesh(t *testing.T) {
	for _, size := range []int{1, 3} {
		g := world.NewGrid(size, size, size)
		c := size / 2
		g.Set(c, c, c, world.BlockTypeSolid)

		res := Build(g, NewAtlas(16))
		if res.Faces != 6 {
			t.Errorf("size %d: got %d faces, want 6", size, res.Faces)
		}
		if n := len(res.Render.Vertices); n != 36 {
			t.Errorf("size %d: got %d stream vertices, want 36", size, n)
		}
		if n := len(res.Collision.Positions); n != 36 {
			t.Errorf("size %d: got %d collision vertices, want 36", size, n)
		}
		if n := res.Render.TriangleCount(); n != 12 {
			t.Errorf("size %d: got %d triangles, want 12", size, n)
		}
		for _, f := range AllFaces {
			if res.FaceCounts[f] != 1 {
				t.Errorf("size %d: %s emitted %d times, want 1", size, f, res.FaceCounts[f])
			}
		}
	}
}

func TestTwoBlocksTouching(t *testing.T) {
	g := world.NewGrid(4, 4, 4)
	g.Set(1, 1, 1, world.BlockTypeSolid)
	g.Set(2, 1, 1, world.BlockTypeSolid)

	res := Build(g, NewAtlas(16))
	// The shared face is hidden on both sides; no greedy merge.
	if res.Faces != 10 {
		t.Fatalf("got %d faces, want 10", res.Faces)
	}
	faces := emittedFaces(t, &res.Render)
	if faces[faceKey{1, 1, 1, FaceRight}] != 0 || faces[faceKey{2, 1, 1, FaceLeft}] != 0 {
		t.Error("face between two solid cells was emitted")
	}
}

func TestEmptyGrid(t *testing.T) {
	g := world.NewGrid(5, 7, 3)
	res := Build(g, NewAtlas(16))
	if !res.Render.Empty() || len(res.Collision.Positions) != 0 || res.Faces != 0 {
		t.Errorf("empty grid produced %d render and %d collision vertices",
			len(res.Render.Vertices), len(res.Collision.Positions))
	}
}

// TestBoundaryFacesOpen fills the grid solid: only faces on the chunk edge survive.
func TestBoundaryFacesOpen(t *testing.T) {
	w, h, d := 3, 4, 2
	g := world.NewGrid(w, h, d)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			for z := 0; z < d; z++ {
				g.Set(x, y, z, world.BlockTypeSolid)
			}
		}
	}

	res := Build(g, NewAtlas(16))
	want := 2 * (w*h + w*d + h*d)
	if res.Faces != want {
		t.Fatalf("got %d faces, want %d surface faces", res.Faces, want)
	}
	if res.FaceCounts[FaceLeft] != h*d || res.FaceCounts[FaceRight] != h*d {
		t.Errorf("x faces: left=%d right=%d, want %d each", res.FaceCounts[FaceLeft], res.FaceCounts[FaceRight], h*d)
	}
	if res.FaceCounts[FaceTop] != w*d || res.FaceCounts[FaceBottom] != w*d {
		t.Errorf("y faces: top=%d bottom=%d, want %d each", res.FaceCounts[FaceTop], res.FaceCounts[FaceBottom], w*d)
	}
	if res.FaceCounts[FaceFront] != w*h || res.FaceCounts[FaceBack] != w*h {
		t.Errorf("z faces: front=%d back=%d, want %d each", res.FaceCounts[FaceFront], res.FaceCounts[FaceBack], w*h)
	}

	faces := emittedFaces(t, &res.Render)
	for y := 0; y < h; y++ {
		for z := 0; z < d; z++ {
			if faces[faceKey{0, y, z, FaceLeft}] != 1 {
				t.Errorf("missing boundary face left of (0,%d,%d)", y, z)
			}
			if faces[faceKey{w - 1, y, z, FaceRight}] != 1 {
				t.Errorf("missing boundary face right of (%d,%d,%d)", w-1, y, z)
			}
		}
	}
}

func randomGrid(seed int64, w, h, d int, fill float64) *world.Grid {
	rng := rand.New(rand.NewSource(seed))
	g := world.NewGrid(w, h, d)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			for z := 0; z < d; z++ {
				if rng.Float64() < fill {
					g.Set(x, y, z, world.BlockType(1+rng.Intn(40)))
				}
			}
		}
	}
	return g
}

// TestFaceVisibility checks a face is emitted iff its neighbour is outside the grid or air.
func TestFaceVisibility(t *testing.T) {
	g := randomGrid(7, 6, 5, 7, 0.45)
	res := Build(g, NewAtlas(16))
	faces := emittedFaces(t, &res.Render)

	w, h, d := g.Dims()
	expected := 0
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			for z := 0; z < d; z++ {
				for _, f := range AllFaces {
					key := faceKey{x, y, z, f}
					if !g.IsSolid(x, y, z) {
						if faces[key] != 0 {
							t.Errorf("face %v emitted for an air cell", key)
						}
						continue
					}
					off := Faces[f].Offset
					nx, ny, nz := x+off[0], y+off[1], z+off[2]
					visible := !g.InBounds(nx, ny, nz) || g.Get(nx, ny, nz) == world.BlockTypeAir
					want := 0
					if visible {
						want = 1
						expected++
					}
					if faces[key] != want {
						t.Errorf("face %v emitted %d times, want %d", key, faces[key], want)
					}
				}
			}
		}
	}
	if res.Faces != expected {
		t.Errorf("Faces = %d, want %d", res.Faces, expected)
	}
}

func TestCollisionParity(t *testing.T) {
	g := randomGrid(11, 8, 8, 8, 0.5)
	res := Build(g, NewAtlas(16))

	if len(res.Collision.Positions) != 3*res.Render.TriangleCount() {
		t.Fatalf("collision vertices %d != 3 * %d triangles", len(res.Collision.Positions), res.Render.TriangleCount())
	}
	if res.Collision.TriangleCount() != res.Render.TriangleCount() {
		t.Errorf("triangle counts differ: collision %d, render %d", res.Collision.TriangleCount(), res.Render.TriangleCount())
	}
	for i, v := range res.Render.Vertices {
		if res.Collision.Positions[i] != v.Position {
			t.Fatalf("vertex %d: collision %v != render %v", i, res.Collision.Positions[i], v.Position)
		}
	}
}

func TestUVsStayInAtlasCell(t *testing.T) {
	const n = 16
	g := world.NewGrid(3, 3, 3)
	types := []world.BlockType{1, 17, 42}
	for i, b := range types {
		g.Set(i, i, i, b)
	}

	res := Build(g, NewAtlas(n))
	faces := 0
	for q := 0; q < len(res.Render.Vertices); q += 6 {
		quad := res.Render.Vertices[q : q+6]
		// Voxels sit on the diagonal, so any corner's x floor identifies the block.
		cell := int(quad[0].Position[0])
		for _, v := range quad {
			if int(v.Position[0]) < cell {
				cell = int(v.Position[0])
			}
		}
		if quad[0].Normal == Faces[FaceRight].Normal {
			cell--
		}
		b := types[cell]
		tx, ty := float32(int(b)%n), float32(int(b)/n)
		for _, v := range quad {
			u, vv := v.UV[0], v.UV[1]
			if u < tx/n-1e-6 || u > (tx+1)/n+1e-6 || vv < ty/n-1e-6 || vv > (ty+1)/n+1e-6 {
				t.Errorf("block %d: uv %v outside cell [%f,%f]x[%f,%f]", b, v.UV, tx/n, (tx+1)/n, ty/n, (ty+1)/n)
			}
		}
		faces++
	}
	if faces != 18 {
		t.Errorf("expected 18 faces for three isolated voxels, got %d", faces)
	}
}

// TestUVCornersFollowFaceCorners checks texture orientation is the same on every face.
func TestUVCornersFollowFaceCorners(t *testing.T) {
	g := world.NewGrid(1, 1, 1)
	g.Set(0, 0, 0, world.BlockTypeSolid)
	atlas := NewAtlas(16)
	uvs := atlas.Corners(world.BlockTypeSolid)

	res := Build(g, atlas)
	for fi, f := range AllFaces {
		def := Faces[f]
		for k, ci := range def.Triangles {
			v := res.Render.Vertices[fi*6+k]
			if v.Position != def.Corners[ci] {
				t.Errorf("%s vertex %d: position %v, want %v", f, k, v.Position, def.Corners[ci])
			}
			if v.UV != uvs[ci] {
				t.Errorf("%s vertex %d: uv %v, want %v", f, k, v.UV, uvs[ci])
			}
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	g := randomGrid(3, 6, 6, 6, 0.4)
	a := Build(g, NewAtlas(16))
	b := Build(g, NewAtlas(16))
	if len(a.Render.Vertices) != len(b.Render.Vertices) {
		t.Fatal("vertex counts differ between runs")
	}
	for i := range a.Render.Vertices {
		if a.Render.Vertices[i] != b.Render.Vertices[i] {
			t.Fatalf("vertex %d differs between runs", i)
		}
	}
}

func TestIndexedWeldsSharedCorners(t *testing.T) {
	g := world.NewGrid(1, 1, 1)
	g.Set(0, 0, 0, world.BlockTypeSolid)
	res := Build(g, NewAtlas(16))

	idx := res.Render.Indexed()
	// Corners differ by normal between faces, so each face keeps its 4 corners.
	if len(idx.Vertices) != 24 {
		t.Errorf("indexed vertices = %d, want 24", len(idx.Vertices))
	}
	if len(idx.Indices) != 36 {
		t.Fatalf("indices = %d, want 36", len(idx.Indices))
	}
	for i, j := range idx.Indices {
		if idx.Vertices[j] != res.Render.Vertices[i] {
			t.Fatalf("index %d resolves to %v, want %v", i, idx.Vertices[j], res.Render.Vertices[i])
		}
	}
}

func TestInterleaved(t *testing.T) {
	m := RenderMesh{}
	m.add(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{0.25, 0.5})
	got := m.Interleaved()
	want := []float32{1, 2, 3, 0, 1, 0, 0.25, 0.5}
	if len(got) != VertexStride || len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), VertexStride)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("float %d = %f, want %f", i, got[i], want[i])
		}
	}
}

func BenchmarkBuildTerrainChunk(b *testing.B) {
	g := world.NewGrid(80, 128, 80)
	world.NewGenerator(world.NewPerlinNoise(43, 0.02), world.NewPerlinNoise(92, 0.05), world.DefaultGeneratorSettings()).Populate(g)
	atlas := NewAtlas(16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Build(g, atlas)
	}
}
