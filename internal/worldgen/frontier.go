package worldgen

import (
	"math"

	"voxelcore/internal/registry"
)

// FrontierCell is one entry of a far-LOD frontier heightmap: the block
// visible from above at this column, and its world height.
type FrontierCell struct {
	Block  registry.BlockId
	Height int
}

// Frontier is a cheaper variant of the column generator that emits
// only the surface tile and water level, for distant low-detail tiles.
func (g *Generator) Frontier(x, z int) FrontierCell {
	fx, fz := float64(x), float64(z)
	falloff := g.islandFalloff(fx, fz)
	if falloff >= float64(g.params.SeaLevel) {
		return FrontierCell{Block: 0, Height: 0}
	}

	height, _, mountain, cliff, mountainAmt := g.heightmap(fx, fz)
	truncated := height - falloff
	heightAbs := int(math.Floor(truncated)) + g.params.SeaLevel

	surface, _, _ := g.surfaceTile(truncated, height, mountain, cliff, mountainAmt)

	if heightAbs < g.params.SeaLevel {
		return FrontierCell{Block: g.blocks.Water, Height: g.params.SeaLevel}
	}
	return FrontierCell{Block: surface, Height: heightAbs}
}
