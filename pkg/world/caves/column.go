package caves

// Decision asks the column to carve one block.
type Decision struct {
	X, Y, Z        int // chunk-local block coordinates
	ChunkX, ChunkZ int
	// Top reports whether the block is its biome's surface block. It only
	// changes how the block is replaced, not whether it is carved.
	Top bool
}

// Column is the chunk column a generator sculpts. Implementations decide
// what a carved block becomes; any error they return aborts the column.
type Column interface {
	// IsGround reports whether the block counts as terrain when looking for
	// the surface. Air, liquids and foliage are not ground.
	IsGround(x, y, z int) (bool, error)
	// IsTopBlock reports whether the block is the surface block of its biome.
	IsTopBlock(x, y, z int) (bool, error)
	// Carve applies a carve decision.
	Carve(d Decision) error
}

// ColumnGenerator carves caves into one chunk column.
type ColumnGenerator interface {
	GenerateColumn(col Column, chunkX, chunkZ int) error
}
