package gen

import "github.com/ojrac/opensimplex-go"

// Biome IDs matching Minecraft 1.8.
const (
	biomeOcean     byte = 0
	biomePlains    byte = 1
	biomeDesert    byte = 2
	biomeMountains byte = 3 // extreme hills
	biomeForest    byte = 4
	biomeTaiga     byte = 5
	biomeTundra    byte = 12
	biomeBeach     byte = 16
)

// BiomeGenerator picks biomes from temperature and rainfall fields.
type BiomeGenerator struct {
	temp    opensimplex.Noise
	rain    opensimplex.Noise
	terrain opensimplex.Noise
}

// NewBiomeGenerator creates a BiomeGenerator from a seed. The terrain field must
// share its seed with the height field so oceans line up with low ground.
func NewBiomeGenerator(seed int64) *BiomeGenerator {
	return &BiomeGenerator{
		temp:    opensimplex.New(seed + 100),
		rain:    opensimplex.New(seed + 200),
		terrain: opensimplex.New(seed),
	}
}

// BiomeAt returns the biome ID at the given world block coordinates.
func (bg *BiomeGenerator) BiomeAt(bx, bz int) byte {
	base := octave2(bg.terrain, float64(bx)/128.0, float64(bz)/128.0, 6, 0.5)
	switch h := float64(seaLevel) + base*8.0; {
	case h < seaLevel-8:
		return biomeOcean
	case h < seaLevel-2:
		return biomeBeach
	}

	tx, tz := float64(bx)/512.0, float64(bz)/512.0
	temp := octave2(bg.temp, tx, tz, 4, 0.5)*0.8 + 0.75
	rain := octave2(bg.rain, tx+100, tz+100, 4, 0.5)*0.5 + 0.5
	return climateBiome(temp, rain)
}

func climateBiome(temp, rain float64) byte {
	switch {
	case temp < 0.3:
		if rain < 0.4 {
			return biomeTundra
		}
		return biomeTaiga
	case temp < 0.7:
		if rain < 0.35 {
			return biomePlains
		}
		return biomeForest
	case temp < 1.2:
		if rain < 0.25 {
			return biomeMountains
		}
		return biomePlains
	default:
		return biomeDesert
	}
}

// octave2 sums octaves of 2D noise, normalised to roughly [-1, 1].
func octave2(n opensimplex.Noise, x, z float64, octaves int, persistence float64) float64 {
	var total, norm float64
	freq, amp := 1.0, 1.0
	for range octaves {
		total += n.Eval2(x*freq, z*freq) * amp
		norm += amp
		amp *= persistence
		freq *= 2
	}
	return total / norm
}
