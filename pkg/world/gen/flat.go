package gen

import (
	"fmt"

	"github.com/OCharnyshevich/worleycaves/pkg/world/caves"
)

// DefaultFlatHeight is the grass level of a FlatGenerator built with height 0.
const DefaultFlatHeight = 100

// FlatGenerator generates a stone plateau capped with dirt and grass, then
// carves caves into it. Every column looks the same before carving, so the
// caves stand out clearly in previews.
type FlatGenerator struct {
	height    int
	caves     caves.ColumnGenerator
	lavaDepth int
}

// NewFlatGenerator creates a FlatGenerator whose grass sits at height.
func NewFlatGenerator(height int, cg caves.ColumnGenerator, lavaDepth int) *FlatGenerator {
	if height <= 4 {
		height = DefaultFlatHeight
	}
	return &FlatGenerator{
		height:    min(height, WorldHeight-2),
		caves:     cg,
		lavaDepth: lavaDepth,
	}
}

func (g *FlatGenerator) Generate(chunkX, chunkZ int) (*ChunkData, error) {
	c := &ChunkData{}

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			c.SetBlock(x, 0, z, blockBedrock<<4)
			for y := 1; y < g.height-3; y++ {
				c.SetBlock(x, y, z, blockStone<<4)
			}
			for y := g.height - 3; y < g.height; y++ {
				c.SetBlock(x, y, z, blockDirt<<4)
			}
			c.SetBlock(x, g.height, z, blockGrass<<4)
			c.SetBiome(x, z, biomePlains)
		}
	}

	if g.caves != nil {
		if err := g.caves.GenerateColumn(NewColumn(c, g.lavaDepth), chunkX, chunkZ); err != nil {
			return nil, fmt.Errorf("generate chunk %d,%d: %w", chunkX, chunkZ, err)
		}
	}
	return c, nil
}

func (g *FlatGenerator) HeightAt(_, _ int) int {
	return g.height
}
