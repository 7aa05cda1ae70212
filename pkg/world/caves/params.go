package caves

import "math"

// surfaceCutoffBoost raises the cutoff at the surface by this fraction of |Cutoff|.
const surfaceCutoffBoost = 0.55

// Params configures the Worley cave carver. A Params value is never modified
// once a generator has been built from it.
type Params struct {
	// Cutoff is the density above which a block is carved.
	Cutoff float64
	// WarpAmplitude scales the Perlin domain displacement.
	WarpAmplitude float64
	// EaseInDepth is the number of blocks below the surface over which the
	// cutoff falls from the surface cutoff to Cutoff.
	EaseInDepth float64
	// VerticalCompression multiplies world Y before cellular sampling.
	VerticalCompression float64
	// HorizontalCompression multiplies world X and Z before cellular sampling.
	HorizontalCompression float64
	// LavaDepth is the highest Y at which carved blocks become lava.
	LavaDepth int
}

// DefaultParams returns the stock cave tuning.
func DefaultParams() Params {
	return Params{
		Cutoff:                -0.18,
		WarpAmplitude:         8.0,
		EaseInDepth:           15,
		VerticalCompression:   2.0,
		HorizontalCompression: 1.0,
		LavaDepth:             10,
	}
}

// SurfaceCutoff is the cutoff applied at depth 0.
func (p Params) SurfaceCutoff() float64 {
	return p.Cutoff + math.Abs(p.Cutoff)*surfaceCutoffBoost
}

// CutoffAt returns the carving cutoff for a block depth blocks below the
// surface. Shallow blocks get a higher cutoff so caves thin out towards the
// surface; at EaseInDepth and below the base Cutoff applies.
func (p Params) CutoffAt(depth int) float64 {
	d := float64(depth)
	if d >= p.EaseInDepth {
		return p.Cutoff
	}
	return clampedLerp(p.Cutoff, p.SurfaceCutoff(), (p.EaseInDepth-d)/p.EaseInDepth)
}

func clampedLerp(a, b, t float64) float64 {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	default:
		return a + (b-a)*t
	}
}
