package gen

// Block IDs matching Minecraft 1.8.
const (
	blockAir       = 0
	blockStone     = 1
	blockGrass     = 2
	blockDirt      = 3
	blockBedrock   = 7
	blockWater     = 9 // stationary water
	blockLava      = 11
	blockSand      = 12
	blockGravel    = 13
	blockLog       = 17
	blockLeaves    = 18
	blockSandstone = 24
	blockTallGrass = 31
	blockDeadBush  = 32
	blockFlower    = 38
	blockSnowLayer = 78
	blockCactus    = 81

	// Log and leaves variants (metadata).
	woodOak    = 0
	woodSpruce = 1
	woodBirch  = 2

	seaLevel = 62
)

// Kind is a coarse classification of a block state.
type Kind int

const (
	KindAir Kind = iota
	KindSolid
	KindWater
	KindLava
	KindFoliage
)

// KindOf classifies a block state.
func KindOf(state uint16) Kind {
	switch state >> 4 {
	case blockAir:
		return KindAir
	case blockWater, 8:
		return KindWater
	case blockLava, 10:
		return KindLava
	case blockLog, blockLeaves, blockTallGrass, blockDeadBush, blockFlower, blockCactus:
		return KindFoliage
	default:
		return KindSolid
	}
}

// diggable reports whether caves may cut through state. Sand and gravel are
// left alone under water so carving cannot drain the sea floor.
func diggable(state, above uint16) bool {
	switch state >> 4 {
	case blockStone, blockDirt, blockGrass, blockSandstone, blockSnowLayer:
		return true
	case blockSand, blockGravel:
		return KindOf(above) != KindWater
	default:
		return false
	}
}
