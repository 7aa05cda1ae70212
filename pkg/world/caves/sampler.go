package caves

import "github.com/OCharnyshevich/worleycaves/pkg/world/noise"

const (
	// Y offsets that make the three displacement axes read disjoint regions
	// of the same Perlin field.
	displacementOffsetY = 256
	displacementOffsetZ = 512

	// displacementFalloff is the fraction of MaxHeight over which the warp
	// amplitude grows to WarpAmplitude.
	displacementFalloff = 0.85
)

// Sampler evaluates the warped cellular density field. Every value it
// returns is a pure function of world coordinates, the params and the seed,
// so neighboring chunks agree on the points they share.
type Sampler struct {
	params Params
	cells  *noise.Cellular
	warp   *noise.Perlin
}

// NewSampler creates a Sampler from params and a world seed.
func NewSampler(params Params, seed int64) *Sampler {
	return &Sampler{
		params: params,
		cells:  noise.NewCellular(seed),
		warp:   noise.NewPerlin(seed + 1),
	}
}

// Params returns the parameters the sampler was built with.
func (s *Sampler) Params() Params {
	return s.params
}

// Displacement returns the domain warp applied at a world position. The
// amplitude grows as y decreases and is not clamped, so it exceeds
// WarpAmplitude near the bottom of the world.
func (s *Sampler) Displacement(x, y, z float64) (dx, dy, dz float64) {
	amp := s.params.WarpAmplitude * (MaxHeight - y) / (MaxHeight * displacementFalloff)

	dx = s.warp.Noise3(x, y, z) * amp
	dy = s.warp.Noise3(x, y-displacementOffsetY, z) * amp
	dz = s.warp.Noise3(x, y-displacementOffsetZ, z) * amp
	return dx, dy, dz
}

// Density returns the unsmoothed density at a world position.
func (s *Sampler) Density(x, y, z float64) float64 {
	dx, dy, dz := s.Displacement(x, y, z)
	return s.cells.EdgeRatio3(
		x*s.params.HorizontalCompression+dx,
		y*s.params.VerticalCompression+dy,
		z*s.params.HorizontalCompression+dz,
	)
}

// RawLattice samples the density field of a chunk column at every lattice
// point without smoothing.
func (s *Sampler) RawLattice(chunkX, chunkZ int) *Lattice {
	l := &Lattice{}
	for x := 0; x < LatticeXZ; x++ {
		realX := float64(x*StrideXZ + chunkX*ChunkSize)
		for z := 0; z < LatticeXZ; z++ {
			realZ := float64(z*StrideXZ + chunkZ*ChunkSize)
			for y := LatticeY - 1; y >= 0; y-- {
				l.Set(x, y, z, s.Density(realX, float64(y*StrideY), realZ))
			}
		}
	}
	return l
}

// Lattice samples the density field of a chunk column and applies the
// neighbor smoothing pass. The smoothing only looks inside the chunk, so the
// shared edge can differ slightly from what the neighbor chunk computes.
func (s *Sampler) Lattice(chunkX, chunkZ int) *Lattice {
	l := s.RawLattice(chunkX, chunkZ)
	l.smooth(s.params.Cutoff)
	return l
}
