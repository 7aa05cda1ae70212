// Package report turns carve decisions into per-chunk statistics, traces
// and previews.
package report

import (
	"encoding/binary"
	"fmt"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/OCharnyshevich/worleycaves/pkg/world/caves"
	"github.com/OCharnyshevich/worleycaves/pkg/world/gen"
)

// cellBlocks is the number of blocks in a chunk's cave range.
const cellBlocks = caves.ChunkSize * caves.ChunkSize * caves.MaxHeight

// ChunkStat is one row of chunks.csv. Decisions counts carve requests the
// column accepted, including ones that left the block unchanged (air, water,
// bedrock); AirBlocks and LavaBlocks describe the finished chunk.
type ChunkStat struct {
	ChunkX          int     `csv:"chunk_x"`
	ChunkZ          int     `csv:"chunk_z"`
	Decisions       int     `csv:"decisions"`
	TopBlocks       int     `csv:"top_blocks"`
	AirBlocks       int     `csv:"air_blocks"`
	LavaBlocks      int     `csv:"lava_blocks"`
	DecisionPercent float64 `csv:"decision_percent"`
	Digest          string  `csv:"digest"`
}

type tally struct {
	decisions int
	top       int
	digest    *xxhash.Digest
}

// Collector counts carve decisions per chunk. Observe is safe for
// concurrent use; decisions of one chunk must arrive from one goroutine.
type Collector struct {
	mu     sync.Mutex
	chunks map[gen.ChunkPos]*tally
	trace  *Trace
}

// NewCollector creates a Collector. A non-nil trace receives every decision.
func NewCollector(trace *Trace) *Collector {
	return &Collector{chunks: make(map[gen.ChunkPos]*tally), trace: trace}
}

// Observe records one decision.
func (c *Collector) Observe(d caves.Decision) error {
	c.mu.Lock()
	pos := gen.ChunkPos{X: d.ChunkX, Z: d.ChunkZ}
	t, ok := c.chunks[pos]
	if !ok {
		t = &tally{digest: xxhash.New()}
		c.chunks[pos] = t
	}
	t.decisions++
	if d.Top {
		t.top++
	}
	var buf [13]byte
	binary.LittleEndian.PutUint32(buf[0:], uint32(d.X))
	binary.LittleEndian.PutUint32(buf[4:], uint32(d.Y))
	binary.LittleEndian.PutUint32(buf[8:], uint32(d.Z))
	if d.Top {
		buf[12] = 1
	}
	t.digest.Write(buf[:])
	c.mu.Unlock()

	if c.trace != nil {
		return c.trace.Write(d)
	}
	return nil
}

// Stats returns one row per position, sorted by X then Z. chunk looks up the
// generated chunk for block counts; positions it does not know get zero
// counts.
func (c *Collector) Stats(positions []gen.ChunkPos, chunk func(cx, cz int) (*gen.ChunkData, bool)) []ChunkStat {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]ChunkStat, 0, len(positions))
	for _, pos := range positions {
		s := ChunkStat{ChunkX: pos.X, ChunkZ: pos.Z, Digest: fmt.Sprintf("%016x", xxhash.Sum64(nil))}
		if t, ok := c.chunks[pos]; ok {
			s.Decisions = t.decisions
			s.TopBlocks = t.top
			s.Digest = fmt.Sprintf("%016x", t.digest.Sum64())
		}
		s.DecisionPercent = 100 * float64(s.Decisions) / cellBlocks
		if data, ok := chunk(pos.X, pos.Z); ok {
			s.AirBlocks, s.LavaBlocks = countOpen(data)
		}
		out = append(out, s)
	}

	slices.SortFunc(out, func(a, b ChunkStat) int {
		if a.ChunkX != b.ChunkX {
			return a.ChunkX - b.ChunkX
		}
		return a.ChunkZ - b.ChunkZ
	})
	return out
}

// countOpen counts air and lava inside the cave range, above bedrock.
func countOpen(c *gen.ChunkData) (air, lava int) {
	for y := 1; y < caves.MaxHeight; y++ {
		for z := 0; z < 16; z++ {
			for x := 0; x < 16; x++ {
				switch gen.KindOf(c.GetBlock(x, y, z)) {
				case gen.KindAir:
					air++
				case gen.KindLava:
					lava++
				}
			}
		}
	}
	return air, lava
}
