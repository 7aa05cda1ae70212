package gen

import (
	"github.com/OCharnyshevich/worleycaves/pkg/world/caves"
)

var _ caves.Column = (*Column)(nil)

// Column exposes a generated chunk to a cave generator.
type Column struct {
	chunk     *ChunkData
	lavaDepth int
}

// NewColumn wraps chunk. Carved blocks at or below lavaDepth become lava.
func NewColumn(chunk *ChunkData, lavaDepth int) *Column {
	return &Column{chunk: chunk, lavaDepth: lavaDepth}
}

func (c *Column) IsGround(x, y, z int) (bool, error) {
	state, err := c.chunk.Block(x, y, z)
	if err != nil {
		return false, err
	}
	return KindOf(state) == KindSolid && state>>4 != blockBedrock, nil
}

// IsTopBlock reports whether the block is its biome's surface block. Desert
// and beach compare against grass.
func (c *Column) IsTopBlock(x, y, z int) (bool, error) {
	state, err := c.chunk.Block(x, y, z)
	if err != nil {
		return false, err
	}
	switch biome := c.chunk.BiomeAt(x, z); biome {
	case biomeDesert, biomeBeach:
		return state>>4 == blockGrass, nil
	default:
		return state>>4 == TopBlock(biome)>>4, nil
	}
}

func (c *Column) Carve(d caves.Decision) error {
	state, err := c.chunk.Block(d.X, d.Y, d.Z)
	if err != nil {
		return err
	}
	var above uint16
	if d.Y+1 < WorldHeight {
		above = c.chunk.GetBlock(d.X, d.Y+1, d.Z)
	}

	p := surfaceFor(c.chunk.BiomeAt(d.X, d.Z))
	if !diggable(state, above) && state != p.top && state != p.filler {
		return nil
	}

	if d.Y <= c.lavaDepth {
		c.chunk.SetBlock(d.X, d.Y, d.Z, blockLava<<4)
		return nil
	}
	c.chunk.SetBlock(d.X, d.Y, d.Z, blockAir)

	// Exposed dirt under a carved surface block becomes the surface block.
	if d.Top && d.Y > 0 && c.chunk.GetBlock(d.X, d.Y-1, d.Z)>>4 == blockDirt {
		c.chunk.SetBlock(d.X, d.Y-1, d.Z, p.top)
	}
	return nil
}
