package gen

import (
	"errors"
	"testing"

	"github.com/OCharnyshevich/worleycaves/pkg/world/caves"
)

func TestColumnIsGround(t *testing.T) {
	c := &ChunkData{}
	c.SetBlock(0, 1, 0, blockStone<<4)
	c.SetBlock(0, 2, 0, blockWater<<4)
	c.SetBlock(0, 3, 0, blockLeaves<<4)
	c.SetBlock(0, 4, 0, blockLava<<4)
	c.SetBlock(0, 5, 0, blockSnowLayer<<4)
	c.SetBlock(0, 6, 0, blockBedrock<<4)
	col := NewColumn(c, 10)

	tests := []struct {
		y    int
		want bool
	}{
		{0, false}, // air
		{1, true},
		{2, false},
		{3, false},
		{4, false},
		{5, true},
		{6, false}, // bedrock
	}
	for _, tt := range tests {
		got, err := col.IsGround(0, tt.y, 0)
		if err != nil {
			t.Fatalf("IsGround(0,%d,0): %v", tt.y, err)
		}
		if got != tt.want {
			t.Errorf("IsGround(0,%d,0) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestColumnIsTopBlock(t *testing.T) {
	tests := []struct {
		name  string
		biome byte
		block uint16
		want  bool
	}{
		{"plains grass", biomePlains, blockGrass << 4, true},
		{"plains stone", biomePlains, blockStone << 4, false},
		{"desert sand", biomeDesert, blockSand << 4, false},
		{"desert grass", biomeDesert, blockGrass << 4, true},
		{"beach grass", biomeBeach, blockGrass << 4, true},
		{"ocean gravel", biomeOcean, blockGravel << 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &ChunkData{}
			c.SetBiome(3, 4, tt.biome)
			c.SetBlock(3, 50, 4, tt.block)

			got, err := NewColumn(c, 10).IsTopBlock(3, 50, 4)
			if err != nil {
				t.Fatalf("IsTopBlock: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsTopBlock = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColumnCarve(t *testing.T) {
	tests := []struct {
		name  string
		block uint16
		above uint16
		y     int
		want  uint16
	}{
		{"stone to air", blockStone << 4, blockStone << 4, 40, blockAir},
		{"stone to lava", blockStone << 4, blockStone << 4, 10, blockLava << 4},
		{"lava boundary", blockStone << 4, blockStone << 4, 11, blockAir},
		{"dirt", blockDirt << 4, blockGrass << 4, 60, blockAir},
		{"sandstone", blockSandstone << 4, blockStone << 4, 40, blockAir},
		{"sand under air", blockSand << 4, blockAir, 60, blockAir},
		{"sand under water", blockSand << 4, blockWater << 4, 60, blockSand << 4},
		{"gravel under water", blockGravel << 4, blockWater << 4, 60, blockGravel << 4},
		{"bedrock kept", blockBedrock << 4, blockStone << 4, 2, blockBedrock << 4},
		{"log kept", blockLog << 4, blockLeaves << 4, 70, blockLog << 4},
		{"leaves kept", blockLeaves << 4, blockAir, 70, blockLeaves << 4},
		{"water kept", blockWater << 4, blockWater << 4, 50, blockWater << 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &ChunkData{}
			c.SetBiome(5, 5, biomePlains)
			c.SetBlock(5, tt.y, 5, tt.block)
			c.SetBlock(5, tt.y+1, 5, tt.above)

			d := caves.Decision{X: 5, Y: tt.y, Z: 5}
			if err := NewColumn(c, 10).Carve(d); err != nil {
				t.Fatalf("Carve: %v", err)
			}
			if got := c.GetBlock(5, tt.y, 5); got != tt.want {
				t.Errorf("block = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestColumnCarveTopRegrowsSurface(t *testing.T) {
	tests := []struct {
		name  string
		biome byte
		top   bool
		want  uint16
	}{
		{"plains top", biomePlains, true, blockGrass << 4},
		{"plains not top", biomePlains, false, blockDirt << 4},
		{"desert top", biomeDesert, true, blockSand << 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &ChunkData{}
			c.SetBiome(1, 2, tt.biome)
			c.SetBlock(1, 69, 2, blockDirt<<4)
			c.SetBlock(1, 70, 2, blockGrass<<4)

			d := caves.Decision{X: 1, Y: 70, Z: 2, Top: tt.top}
			if err := NewColumn(c, 10).Carve(d); err != nil {
				t.Fatalf("Carve: %v", err)
			}
			if got := c.GetBlock(1, 70, 2); got != blockAir {
				t.Errorf("carved block = %d, want air", got)
			}
			if got := c.GetBlock(1, 69, 2); got != tt.want {
				t.Errorf("block below = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestColumnOutOfRange(t *testing.T) {
	col := NewColumn(&ChunkData{}, 10)

	if _, err := col.IsGround(16, 0, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("IsGround error = %v, want ErrOutOfRange", err)
	}
	if _, err := col.IsTopBlock(0, -1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("IsTopBlock error = %v, want ErrOutOfRange", err)
	}
	if err := col.Carve(caves.Decision{X: 0, Y: WorldHeight, Z: 0}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Carve error = %v, want ErrOutOfRange", err)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		state uint16
		want  Kind
	}{
		{blockAir, KindAir},
		{blockStone << 4, KindSolid},
		{blockWater << 4, KindWater},
		{blockLava << 4, KindLava},
		{blockLeaves<<4 | woodSpruce, KindFoliage},
		{blockTallGrass<<4 | 1, KindFoliage},
	}
	for _, tt := range tests {
		if got := KindOf(tt.state); got != tt.want {
			t.Errorf("KindOf(%d) = %d, want %d", tt.state, got, tt.want)
		}
	}
}

type carveOnce caves.Decision

func (d carveOnce) GenerateColumn(col caves.Column, _, _ int) error {
	return col.Carve(caves.Decision(d))
}

func TestObservedDecisionMayLeaveBlock(t *testing.T) {
	c := &ChunkData{}
	c.SetBiome(2, 2, biomePlains)
	c.SetBlock(2, 3, 2, blockBedrock<<4)

	var seen []caves.Decision
	g := caves.Observe(carveOnce{X: 2, Y: 3, Z: 2}, func(d caves.Decision) error {
		seen = append(seen, d)
		return nil
	})
	if err := g.GenerateColumn(NewColumn(c, 10), 0, 0); err != nil {
		t.Fatalf("GenerateColumn: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("observed %d decisions, want 1", len(seen))
	}
	if got := c.GetBlock(2, 3, 2); got != blockBedrock<<4 {
		t.Errorf("block = %d, want bedrock", got)
	}
}
