package gen

import (
	"fmt"

	"github.com/ojrac/opensimplex-go"

	"github.com/OCharnyshevich/worleycaves/pkg/world/caves"
)

// DefaultGenerator produces vanilla-like terrain with biomes and trees, then
// hands each chunk to a cave generator.
type DefaultGenerator struct {
	terrain   opensimplex.Noise
	detail    opensimplex.Noise
	biomes    *BiomeGenerator
	trees     *TreeGenerator
	caves     caves.ColumnGenerator
	lavaDepth int
}

// NewDefaultGenerator creates a DefaultGenerator from a seed. A nil cave
// generator leaves the terrain solid.
func NewDefaultGenerator(seed int64, cg caves.ColumnGenerator, lavaDepth int) *DefaultGenerator {
	return &DefaultGenerator{
		terrain:   opensimplex.New(seed),
		detail:    opensimplex.New(seed + 1),
		biomes:    NewBiomeGenerator(seed),
		trees:     NewTreeGenerator(seed),
		caves:     cg,
		lavaDepth: lavaDepth,
	}
}

func (g *DefaultGenerator) Generate(chunkX, chunkZ int) (*ChunkData, error) {
	c := &ChunkData{}

	var heights [16][16]int
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			bx, bz := chunkX*16+x, chunkZ*16+z

			biome := g.biomes.BiomeAt(bx, bz)
			c.SetBiome(x, z, biome)

			h := g.terrainHeight(bx, bz, biome)
			heights[x][z] = h
			g.fillColumn(c, x, z, bx, bz, h, biome)
		}
	}

	// Trees go in first so the carver has foliage to step around.
	g.trees.Decorate(c, chunkX, chunkZ, &heights)

	if g.caves != nil {
		if err := g.caves.GenerateColumn(NewColumn(c, g.lavaDepth), chunkX, chunkZ); err != nil {
			return nil, fmt.Errorf("generate chunk %d,%d: %w", chunkX, chunkZ, err)
		}
	}
	return c, nil
}

func (g *DefaultGenerator) HeightAt(blockX, blockZ int) int {
	return g.terrainHeight(blockX, blockZ, g.biomes.BiomeAt(blockX, blockZ))
}

func (g *DefaultGenerator) terrainHeight(bx, bz int, biome byte) int {
	base := octave2(g.terrain, float64(bx)/128.0, float64(bz)/128.0, 6, 0.5)
	detail := octave2(g.detail, float64(bx)/32.0, float64(bz)/32.0, 3, 0.5)

	amplitude, baseHeight := biomeRelief(biome)
	h := int(baseHeight + base*amplitude + detail*4.0)
	return min(max(h, 1), WorldHeight-6)
}

// biomeRelief returns the noise amplitude and base height of a biome.
func biomeRelief(biome byte) (amplitude, baseHeight float64) {
	switch biome {
	case biomeOcean:
		return 8, 40
	case biomeBeach:
		return 3, seaLevel
	case biomeDesert:
		return 10, seaLevel + 2
	case biomeForest:
		return 16, seaLevel + 2
	case biomeTaiga:
		return 18, seaLevel + 4
	case biomeMountains:
		return 40, seaLevel + 10
	default:
		return 12, seaLevel
	}
}

func (g *DefaultGenerator) fillColumn(c *ChunkData, x, z, bx, bz, height int, biome byte) {
	c.SetBlock(x, 0, z, blockBedrock<<4)
	for y := 1; y <= 3; y++ {
		if g.terrain.Eval2(float64(bx)*0.5, float64(bz+y*7)*0.5) > 0 {
			c.SetBlock(x, y, z, blockBedrock<<4)
		} else {
			c.SetBlock(x, y, z, blockStone<<4)
		}
	}
	for y := 4; y <= height; y++ {
		c.SetBlock(x, y, z, blockStone<<4)
	}

	applySurface(c, x, z, height, biome)

	for y := height + 1; y <= seaLevel; y++ {
		c.SetBlock(x, y, z, blockWater<<4)
	}
}
