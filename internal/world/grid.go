package world

import "fmt"

// Grid is a dense, fixed-size voxel volume. Cells are stored in a flat
// buffer indexed as x + W*(y + H*z).
type Grid struct {
	w, h, d int
	blocks  []BlockType
}

// NewGrid allocates an all-air grid. Non-positive dimensions are a caller bug.
func NewGrid(w, h, d int) *Grid {
	if w <= 0 || h <= 0 || d <= 0 {
		panic(fmt.Sprintf("world: invalid grid dimensions %dx%dx%d", w, h, d))
	}
	return &Grid{
		w:      w,
		h:      h,
		d:      d,
		blocks: make([]BlockType, w*h*d),
	}
}

// Dims returns the grid dimensions.
func (g *Grid) Dims() (w, h, d int) {
	return g.w, g.h, g.d
}

// Volume returns the number of cells.
func (g *Grid) Volume() int {
	return len(g.blocks)
}

// InBounds reports whether the coordinate addresses a stored cell.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h && z >= 0 && z < g.d
}

func (g *Grid) index(x, y, z int) int {
	return x + g.w*(y+g.h*z)
}

// Get returns the block at the coordinate; anything outside the grid is air.
func (g *Grid) Get(x, y, z int) BlockType {
	if !g.InBounds(x, y, z) {
		return BlockTypeAir
	}
	return g.blocks[g.index(x, y, z)]
}

// Set stores a block. Out-of-range writes are dropped.
func (g *Grid) Set(x, y, z int, b BlockType) {
	if !g.InBounds(x, y, z) {
		return
	}
	g.blocks[g.index(x, y, z)] = b
}

// IsSolid reports whether the cell is occupied. The chunk edge is open:
// coordinates outside the grid are never solid.
func (g *Grid) IsSolid(x, y, z int) bool {
	return g.Get(x, y, z).IsSolid()
}

// CountSolid returns the number of non-air cells.
func (g *Grid) CountSolid() int {
	n := 0
	for _, b := range g.blocks {
		if b.IsSolid() {
			n++
		}
	}
	return n
}

// Blocks exposes the backing buffer in index order. Callers must not modify it.
func (g *Grid) Blocks() []BlockType {
	return g.blocks
}

// TopSolid returns the highest solid y in the column, or -1 when the column is empty.
func (g *Grid) TopSolid(x, z int) int {
	for y := g.h - 1; y >= 0; y-- {
		if g.IsSolid(x, y, z) {
			return y
		}
	}
	return -1
}
