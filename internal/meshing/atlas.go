package meshing

import (
	"chunkmesh/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultAtlasGridSize is the number of cells along each side of the atlas.
const DefaultAtlasGridSize = 16

// Atlas maps block types onto cells of an N x N texture atlas.
type Atlas struct {
	GridSize int
}

// NewAtlas returns an atlas mapper; non-positive sizes fall back to the default.
func NewAtlas(gridSize int) Atlas {
	if gridSize <= 0 {
		gridSize = DefaultAtlasGridSize
	}
	return Atlas{GridSize: gridSize}
}

// CellSize is the UV width and height of one atlas cell.
func (a Atlas) CellSize() float32 {
	return 1 / float32(a.GridSize)
}

// Cell returns the column and row of the block's texture. Types past N*N
// are not validated; their row runs off the atlas and the sampler wraps it.
func (a Atlas) Cell(b world.BlockType) (col, row int) {
	n := a.GridSize
	return int(b) % n, int(b) / n
}

// Origin returns the UV of the cell's minimum corner.
func (a Atlas) Origin(b world.BlockType) mgl32.Vec2 {
	col, row := a.Cell(b)
	n := float32(a.GridSize)
	return mgl32.Vec2{float32(col) / n, float32(row) / n}
}

// Corners returns the four UVs of the block's cell in face-corner order.
func (a Atlas) Corners(b world.BlockType) [4]mgl32.Vec2 {
	o := a.Origin(b)
	c := a.CellSize()
	return [4]mgl32.Vec2{
		o,
		o.Add(mgl32.Vec2{c, 0}),
		o.Add(mgl32.Vec2{c, c}),
		o.Add(mgl32.Vec2{0, c}),
	}
}
