package caves

import "fmt"

// WorleyCarver carves cave networks along the edges of a warped cellular
// noise field.
type WorleyCarver struct {
	sampler *Sampler
}

// NewWorleyCarver creates a WorleyCarver from params and a world seed.
func NewWorleyCarver(params Params, seed int64) *WorleyCarver {
	return &WorleyCarver{sampler: NewSampler(params, seed)}
}

// Sampler returns the density sampler backing the carver.
func (w *WorleyCarver) Sampler() *Sampler {
	return w.sampler
}

// GenerateColumn carves the chunk column at (chunkX, chunkZ).
func (w *WorleyCarver) GenerateColumn(col Column, chunkX, chunkZ int) error {
	return w.carve(col, w.sampler.Lattice(chunkX, chunkZ), chunkX, chunkZ)
}

// surfaceTracker follows the depth below the surface of one 4x4 sub-group.
type surfaceTracker struct {
	found bool
	depth int
}

// probe advances the tracker by one level. Only the probe block of each
// sub-group is inspected; the other fifteen columns share its depth.
func (t *surfaceTracker) probe(col Column, x, y, z int) error {
	if t.found {
		t.depth++
		return nil
	}
	ground, err := col.IsGround(x, y, z)
	if err != nil {
		return err
	}
	if ground {
		t.found = true
		t.depth = 1
	}
	return nil
}

func (w *WorleyCarver) carve(col Column, l *Lattice, chunkX, chunkZ int) error {
	params := w.sampler.params

	var tracker surfaceTracker
	group := -1

	err := l.Expand(func(s Sample) error {
		if s.Group != group {
			group = s.Group
			tracker = surfaceTracker{}
		}

		if s.Probe {
			if err := tracker.probe(col, s.X, s.Y, s.Z); err != nil {
				return err
			}
		} else if !tracker.found {
			// Above the surface only the probe block is considered.
			return nil
		}

		if s.Density <= params.CutoffAt(tracker.depth) {
			return nil
		}

		top, err := col.IsTopBlock(s.X, s.Y, s.Z)
		if err != nil {
			return err
		}
		return col.Carve(Decision{
			X: s.X, Y: s.Y, Z: s.Z,
			ChunkX: chunkX, ChunkZ: chunkZ,
			Top: top,
		})
	})
	if err != nil {
		return fmt.Errorf("carve chunk %d,%d: %w", chunkX, chunkZ, err)
	}
	return nil
}
