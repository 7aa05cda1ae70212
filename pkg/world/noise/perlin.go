package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	// PerlinFrequency is the sampling frequency of the displacement field.
	PerlinFrequency = 0.05

	// perlinPeriod is the lattice period of go-perlin's permutation table.
	perlinPeriod = 256
)

// Perlin is single-octave classic Perlin noise sampled at a fixed frequency.
type Perlin struct {
	p         *perlin.Perlin
	frequency float64
}

// NewPerlin creates a Perlin noise source from a seed.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{
		p:         perlin.NewPerlin(2, 2, 1, seed),
		frequency: PerlinFrequency,
	}
}

// Noise3 returns 3D Perlin noise for the given coordinates.
// Output is in the range [-1, 1].
func (p *Perlin) Noise3(x, y, z float64) float64 {
	return p.p.Noise3D(p.fold(x), p.fold(y), p.fold(z))
}

// fold scales v into noise space and wraps it into [0, perlinPeriod). The
// field repeats with that period, and go-perlin mis-indexes coordinates far
// below zero.
func (p *Perlin) fold(v float64) float64 {
	m := math.Mod(v*p.frequency, perlinPeriod)
	if m < 0 {
		m += perlinPeriod
	}
	return m
}
