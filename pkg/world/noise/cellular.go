// Package noise provides the deterministic noise primitives used by the cave
// generator. Every type is immutable after construction and safe for
// concurrent use.
package noise

import (
	"math"
	"math/rand"
)

const (
	// CellularFrequency is the feature point density of the cave wall field.
	CellularFrequency = 0.016

	cellularJitter = 0.45
)

// Cellular is 3D Worley noise. Each unit cell holds one feature point,
// displaced from the cell center by a seed-derived direction.
type Cellular struct {
	seed      int64
	frequency float64
	offsets   [256][3]float64
}

// NewCellular creates a Cellular noise source from a seed.
func NewCellular(seed int64) *Cellular {
	c := &Cellular{seed: seed, frequency: CellularFrequency}

	rng := rand.New(rand.NewSource(seed))
	for i := range c.offsets {
		// Uniform direction on the unit sphere.
		z := rng.Float64()*2 - 1
		theta := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - z*z)
		c.offsets[i] = [3]float64{r * math.Cos(theta), r * math.Sin(theta), z}
	}
	return c
}

// EdgeRatio3 returns F1/F3 - 1 for the given coordinates, where F1 and F3 are
// the squared distances to the nearest and third-nearest feature points.
// Output is in the range [-1, 0]; values near 0 lie on the edges where three
// cells meet, which is where tunnels form.
func (c *Cellular) EdgeRatio3(x, y, z float64) float64 {
	x *= c.frequency
	y *= c.frequency
	z *= c.frequency

	xr := fastRound(x)
	yr := fastRound(y)
	zr := fastRound(z)

	d0, d1, d2 := math.MaxFloat64, math.MaxFloat64, math.MaxFloat64
	for xi := xr - 1; xi <= xr+1; xi++ {
		for yi := yr - 1; yi <= yr+1; yi++ {
			for zi := zr - 1; zi <= zr+1; zi++ {
				off := &c.offsets[hash3(c.seed, xi, yi, zi)&255]

				dx := float64(xi) - x + off[0]*cellularJitter
				dy := float64(yi) - y + off[1]*cellularJitter
				dz := float64(zi) - z + off[2]*cellularJitter
				dist := dx*dx + dy*dy + dz*dz

				switch {
				case dist < d0:
					d0, d1, d2 = dist, d0, d1
				case dist < d1:
					d1, d2 = dist, d1
				case dist < d2:
					d2 = dist
				}
			}
		}
	}
	return d0/d2 - 1
}

func fastRound(x float64) int {
	if x >= 0 {
		return int(x + 0.5)
	}
	return int(x - 0.5)
}

func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func hash3(seed int64, x, y, z int) uint64 {
	ux := uint64(uint32(int32(x)))
	uy := uint64(uint32(int32(y)))
	uz := uint64(uint32(int32(z)))
	v := uint64(seed) ^ (ux * 0x9e3779b97f4a7c15) ^ (uy * 0xc2b2ae3d27d4eb4f) ^ (uz * 0xbf58476d1ce4e5b9)
	return mix64(v)
}
