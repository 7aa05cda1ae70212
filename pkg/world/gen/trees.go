package gen

// TreeGenerator places trees and ground vegetation per biome.
type TreeGenerator struct {
	seed int64
}

// NewTreeGenerator creates a TreeGenerator from a seed.
func NewTreeGenerator(seed int64) *TreeGenerator {
	return &TreeGenerator{seed: seed}
}

// Decorate places trees and vegetation in the chunk. Trees are clipped to
// the chunk so neighbouring chunks never need to be touched.
func (tg *TreeGenerator) Decorate(c *ChunkData, chunkX, chunkZ int, heights *[16][16]int) {
	rng := newChunkRNG(tg.seed, chunkX, chunkZ, 600)

	for range treesPerChunk(c.BiomeAt(8, 8)) {
		x, z := rng.nextN(16), rng.nextN(16)
		y := heights[x][z]
		if y <= seaLevel || y >= WorldHeight-12 || c.GetBlock(x, y, z) != blockGrass<<4 {
			continue
		}
		if c.BiomeAt(x, z) == biomeTaiga {
			placeSpruce(c, x, y+1, z, rng)
		} else {
			placeOak(c, x, y+1, z, rng)
		}
	}

	for range 20 {
		x, z := rng.nextN(16), rng.nextN(16)
		y := heights[x][z]
		if y <= seaLevel || y >= WorldHeight-4 || c.GetBlock(x, y+1, z) != blockAir {
			continue
		}
		switch top := c.GetBlock(x, y, z); {
		case top == blockSand<<4 && c.BiomeAt(x, z) == biomeDesert:
			if rng.nextN(8) == 0 {
				h := 1 + rng.nextN(3)
				for dy := 1; dy <= h; dy++ {
					c.SetBlock(x, y+dy, z, blockCactus<<4)
				}
			} else if rng.nextN(4) == 0 {
				c.SetBlock(x, y+1, z, blockDeadBush<<4)
			}
		case top == blockGrass<<4:
			if rng.nextN(3) == 0 {
				c.SetBlock(x, y+1, z, blockTallGrass<<4|1)
			} else if rng.nextN(8) == 0 {
				c.SetBlock(x, y+1, z, blockFlower<<4)
			}
		}
	}
}

func treesPerChunk(biome byte) int {
	switch biome {
	case biomeOcean, biomeBeach, biomeDesert:
		return 0
	case biomePlains, biomeMountains:
		return 1
	case biomeTundra:
		return 3
	case biomeTaiga:
		return 6
	case biomeForest:
		return 8
	default:
		return 2
	}
}

func placeOak(c *ChunkData, x, baseY, z int, rng *chunkRNG) {
	trunk := 4 + rng.nextN(3)
	wood := woodOak
	if rng.nextN(3) == 0 {
		wood = woodBirch
	}

	for y := baseY; y < baseY+trunk; y++ {
		c.SetBlock(x, y, z, blockLog<<4|uint16(wood))
	}

	leafBase := baseY + trunk - 2
	for dy := range 4 {
		r := 2
		if dy >= 2 {
			r = 1
		}
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				// Round off the wide layers.
				if r == 2 && abs(dx) == 2 && abs(dz) == 2 && rng.nextN(2) == 0 {
					continue
				}
				placeLeaf(c, x+dx, leafBase+dy, z+dz, wood)
			}
		}
	}
}

func placeSpruce(c *ChunkData, x, baseY, z int, rng *chunkRNG) {
	trunk := 6 + rng.nextN(4)

	for y := baseY; y < baseY+trunk; y++ {
		c.SetBlock(x, y, z, blockLog<<4|woodSpruce)
	}

	for dy := 1; dy < trunk; dy++ {
		r := min((trunk-dy)/2, 3)
		if r == 0 || (r >= 2 && dy%2 == 0) {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				placeLeaf(c, x+dx, baseY+dy, z+dz, woodSpruce)
			}
		}
	}
	placeLeaf(c, x, baseY+trunk, z, woodSpruce)
}

// placeLeaf fills air inside the chunk with leaves.
func placeLeaf(c *ChunkData, x, y, z, wood int) {
	if inColumn(x, y, z) && c.GetBlock(x, y, z) == blockAir {
		c.SetBlock(x, y, z, blockLeaves<<4|uint16(wood))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// chunkRNG is a small deterministic LCG seeded per chunk.
type chunkRNG struct {
	state int64
}

func newChunkRNG(seed int64, cx, cz int, salt int64) *chunkRNG {
	return &chunkRNG{state: seed ^ (int64(cx)*341873128712 + int64(cz)*132897987541 + salt)}
}

func (r *chunkRNG) nextN(n int) int {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	v := int(r.state>>33) % n
	if v < 0 {
		v = -v
	}
	return v
}
