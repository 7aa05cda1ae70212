package caves

import (
	"fmt"

	"github.com/ojrac/opensimplex-go"
)

// NoiseCaves is the classic cave carver: blocks are removed wherever the
// average of two OpenSimplex fields exceeds a fixed threshold. It is used for
// dimensions the Worley carver is disabled in.
type NoiseCaves struct {
	noise1 opensimplex.Noise
	noise2 opensimplex.Noise
}

// NewNoiseCaves creates a NoiseCaves carver from a seed.
func NewNoiseCaves(seed int64) *NoiseCaves {
	return &NoiseCaves{
		noise1: opensimplex.New(seed + 300),
		noise2: opensimplex.New(seed + 400),
	}
}

// GenerateColumn carves the chunk column at (chunkX, chunkZ), keeping four
// blocks of rock above bedrock and below the surface.
func (nc *NoiseCaves) GenerateColumn(col Column, chunkX, chunkZ int) error {
	const threshold = 0.55

	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			surface, err := surfaceHeight(col, x, z)
			if err != nil {
				return fmt.Errorf("find surface at %d,%d: %w", x, z, err)
			}
			if surface < 5 {
				continue
			}

			bx := float64(chunkX*ChunkSize + x)
			bz := float64(chunkZ*ChunkSize + z)
			for y := 4; y < surface-4; y++ {
				by := float64(y)

				n1 := nc.noise1.Eval3(bx/32.0, by/24.0, bz/32.0)
				n2 := nc.noise2.Eval3(bx/48.0, by/32.0, bz/48.0)
				if (n1+n2)/2.0 <= threshold {
					continue
				}

				d := Decision{X: x, Y: y, Z: z, ChunkX: chunkX, ChunkZ: chunkZ}
				if err := col.Carve(d); err != nil {
					return fmt.Errorf("carve chunk %d,%d: %w", chunkX, chunkZ, err)
				}
			}
		}
	}
	return nil
}

// surfaceHeight returns the Y of the highest ground block in the column
// below MaxHeight, or -1 when there is none.
func surfaceHeight(col Column, x, z int) (int, error) {
	for y := MaxHeight - 1; y >= 0; y-- {
		ground, err := col.IsGround(x, y, z)
		if err != nil {
			return 0, err
		}
		if ground {
			return y, nil
		}
	}
	return -1, nil
}
