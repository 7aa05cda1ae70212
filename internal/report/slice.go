package report

import (
	"fmt"
	"strings"

	"github.com/OCharnyshevich/worleycaves/internal/world"
	"github.com/OCharnyshevich/worleycaves/pkg/world/gen"
)

// BlockSource reads block states in world coordinates.
type BlockSource interface {
	GetBlock(x, y, z int) (uint16, error)
}

var sliceGlyphs = map[gen.Kind]byte{
	gen.KindAir:     ' ',
	gen.KindSolid:   '#',
	gen.KindWater:   '~',
	gen.KindLava:    '%',
	gen.KindFoliage: '*',
}

// RenderSlice draws the horizontal layer y of a region, one character per
// block, north at the top.
func RenderSlice(src BlockSource, region world.Region, y int) (string, error) {
	minX, maxX := region.MinX*16, region.MaxX*16+15
	minZ, maxZ := region.MinZ*16, region.MaxZ*16+15

	var sb strings.Builder
	sb.Grow((maxX - minX + 2) * (maxZ - minZ + 1))
	for z := minZ; z <= maxZ; z++ {
		for x := minX; x <= maxX; x++ {
			b, err := src.GetBlock(x, y, z)
			if err != nil {
				return "", fmt.Errorf("render slice y=%d: %w", y, err)
			}
			sb.WriteByte(sliceGlyphs[gen.KindOf(b)])
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
