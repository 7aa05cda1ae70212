package gen

// surfaceProfile is the layering a biome puts on top of its stone.
type surfaceProfile struct {
	top        uint16 // placed above sea level
	underwater uint16 // replaces top at or below sea level
	filler     uint16
	depth      int // filler blocks below the top block
}

var surfaces = map[byte]surfaceProfile{
	biomeOcean:  {top: blockGravel << 4, underwater: blockGravel << 4, filler: blockDirt << 4, depth: 3},
	biomeDesert: {top: blockSand << 4, underwater: blockSand << 4, filler: blockSandstone << 4, depth: 4},
	biomeBeach:  {top: blockSand << 4, underwater: blockSand << 4, filler: blockSandstone << 4, depth: 3},
}

var defaultSurface = surfaceProfile{top: blockGrass << 4, underwater: blockDirt << 4, filler: blockDirt << 4, depth: 3}

func surfaceFor(biome byte) surfaceProfile {
	if p, ok := surfaces[biome]; ok {
		return p
	}
	return defaultSurface
}

// TopBlock returns the block state a biome uses for its surface.
func TopBlock(biome byte) uint16 {
	return surfaceFor(biome).top
}

// applySurface places the biome's surface layers at the top of a stone
// column whose highest block is height.
func applySurface(c *ChunkData, x, z, height int, biome byte) {
	if height <= 3 {
		return
	}
	p := surfaceFor(biome)

	top := p.top
	if height <= seaLevel {
		top = p.underwater
	}
	// Bare stone peaks in the hills.
	if biome == biomeMountains && height > 100 {
		return
	}
	c.SetBlock(x, height, z, top)
	for y := height - 1; y >= height-p.depth && y > 3; y-- {
		c.SetBlock(x, y, z, p.filler)
	}

	if (biome == biomeTundra || biome == biomeTaiga) && height > seaLevel && height+1 < WorldHeight {
		c.SetBlock(x, height+1, z, blockSnowLayer<<4)
	}
}
