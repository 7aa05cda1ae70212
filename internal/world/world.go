package world

import (
	"fmt"
	"sync"

	"github.com/OCharnyshevich/worleycaves/pkg/world/gen"
)

// World caches chunks produced by a generator.
type World struct {
	mu        sync.RWMutex
	generator gen.Generator
	chunks    map[gen.ChunkPos]*gen.ChunkData
}

// NewWorld creates a new World with the given generator.
func NewWorld(generator gen.Generator) *World {
	return &World{
		generator: generator,
		chunks:    make(map[gen.ChunkPos]*gen.ChunkData),
	}
}

// GetOrGenerateChunk returns the ChunkData for the given chunk coordinates,
// generating and caching it if needed.
func (w *World) GetOrGenerateChunk(cx, cz int) (*gen.ChunkData, error) {
	pos := gen.ChunkPos{X: cx, Z: cz}

	w.mu.RLock()
	if c, ok := w.chunks[pos]; ok {
		w.mu.RUnlock()
		return c, nil
	}
	w.mu.RUnlock()

	c, err := w.generator.Generate(cx, cz)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	// Another goroutine may have generated the chunk meanwhile.
	if existing, ok := w.chunks[pos]; ok {
		return existing, nil
	}
	w.chunks[pos] = c
	return c, nil
}

// Chunk returns a cached chunk without generating it.
func (w *World) Chunk(cx, cz int) (*gen.ChunkData, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, ok := w.chunks[gen.ChunkPos{X: cx, Z: cz}]
	return c, ok
}

// Len returns the number of cached chunks.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// GetBlock returns the block state at the given world position, generating
// the chunk if needed. Positions above or below the world are air.
func (w *World) GetBlock(x, y, z int) (uint16, error) {
	if y < 0 || y >= gen.WorldHeight {
		return 0, nil
	}
	c, err := w.GetOrGenerateChunk(x>>4, z>>4)
	if err != nil {
		return 0, fmt.Errorf("get block %d,%d,%d: %w", x, y, z, err)
	}
	return c.GetBlock(x&0xF, y, z&0xF), nil
}

// SurfaceHeight returns the generator's terrain height at a block column.
func (w *World) SurfaceHeight(x, z int) int {
	return w.generator.HeightAt(x, z)
}
