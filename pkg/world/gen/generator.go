package gen

import (
	"errors"
	"fmt"
)

const (
	// WorldHeight is the number of block levels in a chunk column.
	WorldHeight = 256

	sectionCount = WorldHeight / 16
)

// ErrOutOfRange is returned when a block position lies outside the chunk column.
var ErrOutOfRange = errors.New("block position out of range")

// ChunkPos identifies a chunk by its X and Z coordinates.
type ChunkPos struct{ X, Z int }

// Section holds block data for a 16×16×16 vertical slice of a chunk.
// Index = y*256 + z*16 + x, value = blockID<<4 | metadata.
type Section struct {
	Blocks [4096]uint16
}

// ChunkData holds the generated terrain for one chunk column.
type ChunkData struct {
	Sections [sectionCount]*Section // nil = all-air
	Biomes   [256]byte              // index = z*16 + x → biome ID
}

// Generator produces chunk data deterministically from a seed.
type Generator interface {
	Generate(chunkX, chunkZ int) (*ChunkData, error)
	HeightAt(blockX, blockZ int) int
}

// SetBlock sets a block state at the given local coordinates within the chunk.
// x, z must be in [0,16), y must be in [0,WorldHeight).
func (c *ChunkData) SetBlock(x, y, z int, state uint16) {
	sec := y >> 4
	if c.Sections[sec] == nil {
		if state == 0 {
			return
		}
		c.Sections[sec] = &Section{}
	}
	c.Sections[sec].Blocks[(y&0xF)*256+z*16+x] = state
}

// GetBlock returns the block state at the given local coordinates.
func (c *ChunkData) GetBlock(x, y, z int) uint16 {
	sec := y >> 4
	if c.Sections[sec] == nil {
		return 0
	}
	return c.Sections[sec].Blocks[(y&0xF)*256+z*16+x]
}

// Block is GetBlock with bounds checking.
func (c *ChunkData) Block(x, y, z int) (uint16, error) {
	if !inColumn(x, y, z) {
		return 0, fmt.Errorf("block (%d,%d,%d): %w", x, y, z, ErrOutOfRange)
	}
	return c.GetBlock(x, y, z), nil
}

// SetBiome sets the biome ID at the given local x, z coordinates.
func (c *ChunkData) SetBiome(x, z int, biome byte) {
	c.Biomes[z*16+x] = biome
}

// BiomeAt returns the biome ID at the given local x, z coordinates.
func (c *ChunkData) BiomeAt(x, z int) byte {
	return c.Biomes[z*16+x]
}

func inColumn(x, y, z int) bool {
	return x >= 0 && x < 16 && z >= 0 && z < 16 && y >= 0 && y < WorldHeight
}
