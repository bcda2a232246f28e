package world

// BlockType is the per-cell type code. Zero is air; anything else is solid
// and doubles as the texture atlas slot.
type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeSolid
)

// IsSolid reports whether the block type occupies its cell.
func (b BlockType) IsSolid() bool {
	return b != BlockTypeAir
}
