package world

import "github.com/OCharnyshevich/worleycaves/pkg/world/gen"

// Region is an inclusive rectangle of chunk coordinates.
type Region struct {
	MinX, MinZ int
	MaxX, MaxZ int
}

// Chunks lists the region's chunk positions, X-major then Z.
func (r Region) Chunks() []gen.ChunkPos {
	if r.MinX > r.MaxX || r.MinZ > r.MaxZ {
		return nil
	}
	out := make([]gen.ChunkPos, 0, (r.MaxX-r.MinX+1)*(r.MaxZ-r.MinZ+1))
	for x := r.MinX; x <= r.MaxX; x++ {
		for z := r.MinZ; z <= r.MaxZ; z++ {
			out = append(out, gen.ChunkPos{X: x, Z: z})
		}
	}
	return out
}

// Contains reports whether pos lies inside the region.
func (r Region) Contains(pos gen.ChunkPos) bool {
	return pos.X >= r.MinX && pos.X <= r.MaxX && pos.Z >= r.MinZ && pos.Z <= r.MaxZ
}
