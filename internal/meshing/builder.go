package meshing

import (
	"chunkmesh/internal/profiling"
	"chunkmesh/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Result holds both outputs of one meshing pass.
type Result struct {
	Render    RenderMesh
	Collision CollisionSet
	// Faces is the number of emitted quads; FaceCounts splits it per direction.
	Faces      int
	FaceCounts [6]int
}

// Build walks the grid in x, y, z order and emits a quad for every face of
// a solid cell whose neighbour is not solid. Cells on the grid edge always
// emit their outward faces. Render and collision streams receive the same
// positions in the same order.
func Build(g *world.Grid, atlas Atlas) Result {
	defer profiling.Track("meshing.Build")()

	var res Result
	w, h, d := g.Dims()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			for z := 0; z < d; z++ {
				block := g.Get(x, y, z)
				if !block.IsSolid() {
					continue
				}
				addBlock(&res, g, atlas, x, y, z, block)
			}
		}
	}
	return res
}

func addBlock(res *Result, g *world.Grid, atlas Atlas, x, y, z int, block world.BlockType) {
	for _, f := range AllFaces {
		off := Faces[f].Offset
		if g.IsSolid(x+off[0], y+off[1], z+off[2]) {
			continue
		}
		addFace(res, atlas, x, y, z, f, block)
	}
}

func addFace(res *Result, atlas Atlas, x, y, z int, f Face, block world.BlockType) {
	def := &Faces[f]
	base := mgl32.Vec3{float32(x), float32(y), float32(z)}
	uvs := atlas.Corners(block)

	for _, i := range def.Triangles {
		pos := base.Add(def.Corners[i])
		res.Render.add(pos, def.Normal, uvs[i])
		res.Collision.add(pos)
	}
	res.Faces++
	res.FaceCounts[f]++
}
