package caves

const (
	// ChunkSize is the horizontal size of a chunk column in blocks.
	ChunkSize = 16
	// MaxHeight is the number of block levels the carver works on.
	MaxHeight = 128

	// StrideXZ is the horizontal block distance between lattice points.
	StrideXZ = 4
	// StrideY is the vertical block distance between lattice points.
	StrideY = 2

	// LatticeXZ is the number of lattice points along X and Z. The last one
	// lies in the neighboring chunk and is only used as an interpolation endpoint.
	LatticeXZ = ChunkSize/StrideXZ + 1
	// LatticeY is the number of lattice points along Y.
	LatticeY = MaxHeight/StrideY + 1

	cellsXZ = LatticeXZ - 1
)

// Lattice is the coarse density field of one chunk column, stored as a flat
// array indexed by (x, y, z) lattice coordinates.
type Lattice struct {
	v [LatticeXZ * LatticeY * LatticeXZ]float64
}

func latticeIndex(x, y, z int) int {
	return (x*LatticeY+y)*LatticeXZ + z
}

// At returns the density at lattice point (x, y, z).
func (l *Lattice) At(x, y, z int) float64 {
	return l.v[latticeIndex(x, y, z)]
}

// Set stores the density at lattice point (x, y, z).
func (l *Lattice) Set(x, y, z int, v float64) {
	l.v[latticeIndex(x, y, z)] = v
}

// smooth biases the field around every point whose sampled density exceeds
// cutoff. Each such point leaks 20% of its density into its -x and -z
// neighbors, and pulls the two points above it up towards its own density
// so cave floors get headroom.
//
// Points are visited in sampling order (x, then z, then y from the top) and
// writes only ever land on points visited earlier, so the pass reads the
// sampled densities from a snapshot and must stay sequential.
func (l *Lattice) smooth(cutoff float64) {
	raw := l.v

	for x := 0; x < LatticeXZ; x++ {
		for z := 0; z < LatticeXZ; z++ {
			for y := LatticeY - 1; y >= 0; y-- {
				d := raw[latticeIndex(x, y, z)]
				if d <= cutoff {
					continue
				}

				if x > 0 {
					i := latticeIndex(x-1, y, z)
					l.v[i] = d*0.2 + l.v[i]*0.8
				}
				if z > 0 {
					i := latticeIndex(x, y, z-1)
					l.v[i] = d*0.2 + l.v[i]*0.8
				}

				if y < LatticeY-1 {
					i := latticeIndex(x, y+1, z)
					if above := l.v[i]; d > above {
						l.v[i] = d*0.8 + above*0.2
					}
					if y < LatticeY-2 {
						i := latticeIndex(x, y+2, z)
						if twoAbove := l.v[i]; d > twoAbove {
							l.v[i] = d*0.35 + twoAbove*0.65
						}
					}
				}
			}
		}
	}
}

// Sample is one block of the column with its interpolated density.
type Sample struct {
	X, Y, Z int // chunk-local block coordinates
	// Group identifies the 4x4 horizontal sub-group the block belongs to.
	Group int
	// Probe is set on the first block of the sub-group at each level.
	Probe   bool
	Density float64
}

// Expand walks every block of the column in carving order and hands it to
// visit with a density interpolated from the eight surrounding lattice points.
// Sub-groups are visited one at a time, each from the top level down; within
// a level blocks go x-major, then z.
//
// The per-axis steps are derived once per cell and per row and then added
// cumulatively, so blocks on lattice points get the lattice value exactly.
// Expand stops at the first error returned by visit.
func (l *Lattice) Expand(visit func(Sample) error) error {
	const (
		stepXZ = 1.0 / StrideXZ
		stepY  = 1.0 / StrideY
	)

	for cx := 0; cx < cellsXZ; cx++ {
		for cz := 0; cz < cellsXZ; cz++ {
			group := cx*cellsXZ + cz

			for cy := LatticeY - 2; cy >= 0; cy-- {
				// Corners ordered x0z0, x0z1, x1z0, x1z1.
				lower := [4]float64{
					l.At(cx, cy, cz), l.At(cx, cy, cz+1),
					l.At(cx+1, cy, cz), l.At(cx+1, cy, cz+1),
				}
				upper := [4]float64{
					l.At(cx, cy+1, cz), l.At(cx, cy+1, cz+1),
					l.At(cx+1, cy+1, cz), l.At(cx+1, cy+1, cz+1),
				}
				var dy [4]float64
				for i := range dy {
					dy[i] = (upper[i] - lower[i]) * stepY
				}

				for sy := StrideY - 1; sy >= 0; sy-- {
					y := cy*StrideY + sy
					fy := float64(sy)

					startZ := lower[0] + dy[0]*fy
					endZ := lower[1] + dy[1]*fy
					stepX0 := (lower[2] + dy[2]*fy - startZ) * stepXZ
					stepX1 := (lower[3] + dy[3]*fy - endZ) * stepXZ

					for sx := 0; sx < StrideXZ; sx++ {
						stepZ := (endZ - startZ) * stepXZ
						density := startZ

						for sz := 0; sz < StrideXZ; sz++ {
							err := visit(Sample{
								X:       cx*StrideXZ + sx,
								Y:       y,
								Z:       cz*StrideXZ + sz,
								Group:   group,
								Probe:   sx == 0 && sz == 0,
								Density: density,
							})
							if err != nil {
								return err
							}
							density += stepZ
						}

						startZ += stepX0
						endZ += stepX1
					}
				}
			}
		}
	}
	return nil
}
