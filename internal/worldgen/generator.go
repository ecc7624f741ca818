// Package worldgen assembles per-column terrain from layered
// coherent-noise fields, deterministically keyed on world coordinates.
package worldgen

import (
	"math"

	"voxelcore/internal/noise"
	"voxelcore/internal/registry"
)

// BlockIDs names the registered blocks the generator needs to place.
// Callers build this once against their registry.Registry and pass it to
// New.
type BlockIDs struct {
	Rock   registry.BlockId
	Dirt   registry.BlockId
	Sand   registry.BlockId
	Grass  registry.BlockId
	Snow   registry.BlockId
	Water  registry.BlockId
	Leaves registry.BlockId
}

// Params collects the tunable constants the height, cave, and tree
// passes read.
type Params struct {
	SeaLevel     int
	IslandRadius float64
	DirtDepth    int

	CaveEnabled    bool
	kCaveLevels    int
	CaveRadius     float64
	CaveCutoff     float64
	CaveDeltaY     int
	CaveWaveRadius float64
	CaveWaveHeight float64
	CaveHeight     float64
}

// DefaultParams returns sane defaults for overworld generation.
func DefaultParams() Params {
	return Params{
		SeaLevel:     64,
		IslandRadius: 1024,
		DirtDepth:    4,

		CaveEnabled:    true,
		kCaveLevels:    3,
		CaveRadius:     128,
		CaveCutoff:     0.2,
		CaveDeltaY:     20,
		CaveWaveRadius: 64,
		CaveWaveHeight: 8,
		CaveHeight:     24,
	}
}

// Generator produces deterministic per-column terrain. All noise state
// lives in the composers below; Generator itself holds no mutable state
// and is safe to call concurrently from multiple columns.
type Generator struct {
	blocks BlockIDs
	params Params

	cliffSelect     *noise.Fractal
	mountainSelect  *noise.Fractal
	heightGround    *noise.Fractal
	heightCliff     *noise.Fractal
	mountainRidge   *noise.Ridge

	caveCarvers []*noise.Fractal
	caveWobbles []*noise.Fractal
}

// New builds a generator. counter is consumed octave-by-octave and
// composer-by-composer in a fixed order so that the same counter seed
// always produces the same generator.
func New(counter *noise.SeedCounter, blocks BlockIDs, params Params) *Generator {
	g := &Generator{
		blocks: blocks,
		params: params,

		cliffSelect:    noise.NewFractal(counter, 0, 1, 400, 3, 0.5, 2.0),
		mountainSelect: noise.NewFractal(counter, 0, 1, 800, 3, 0.5, 2.0),
		heightGround:   noise.NewFractal(counter, 64, 32, 256, 4, 0.5, 2.0),
		heightCliff:    noise.NewFractal(counter, 64, 48, 128, 4, 0.5, 2.0),
		mountainRidge:  noise.NewRidge(counter, 0.5, 1.0/512),
	}
	g.caveCarvers = make([]*noise.Fractal, params.kCaveLevels)
	g.caveWobbles = make([]*noise.Fractal, params.kCaveLevels)
	for i := 0; i < params.kCaveLevels; i++ {
		g.caveCarvers[i] = noise.NewFractal(counter, 0, 1, 1, 3, 0.5, 2.0)
		g.caveWobbles[i] = noise.NewFractal(counter, 0, 1, 1, 2, 0.5, 2.0)
	}
	return g
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// heightmap blends the cliff/mountain selectors to pick among ground,
// cliff, and mountain candidate heights.
func (g *Generator) heightmap(x, z float64) (height, heightGround float64, mountain, cliff bool, mountainAmt float64) {
	cliffSelect := g.cliffSelect.Call(x, z)
	mountainSelect := g.mountainSelect.Call(x, z)

	cliffX := clamp01(16*math.Abs(cliffSelect) - 4)
	mountainX := math.Sqrt(math.Max(8*mountainSelect, 0))
	cliffAmt := cliffX - mountainX
	mountainAmt = -cliffAmt

	hGround := g.heightGround.Call(x, z)
	height = hGround

	if mountainAmt > 0 {
		hMountain := hGround + 64*math.Pow(g.mountainRidge.Call(x, z)-1.25, 1.5)
		if hMountain > hGround {
			height = hMountain
			mountain, cliff = true, false
		}
	}
	if !mountain && cliffAmt > 0 {
		hCliff := g.heightCliff.Call(x, z)
		if hCliff > hGround {
			height = hCliff
			cliff = true
		}
	}
	return height, hGround, mountain, cliff, mountainAmt
}

// surfaceTile picks the surface block for a column given its truncated
// height, raw height, and terrain classification. The snow line is
// carried in terms of the untruncated height and the mountain amount,
// per the mountain-surface rule: snow if height - (72 - 8*mountain) > 0.
func (g *Generator) surfaceTile(truncated, height float64, mountain, cliff bool, mountainAmt float64) (block registry.BlockId, snowDepth float64, isRockOrSnow bool) {
	switch {
	case truncated < -1:
		return g.blocks.Dirt, 0, false
	case mountain:
		snowDepth = height - (72 - 8*mountainAmt)
		if snowDepth > 0 {
			return g.blocks.Snow, snowDepth, true
		}
		return g.blocks.Rock, 0, true
	case cliff:
		return g.blocks.Dirt, 0, false
	case truncated < 1:
		return g.blocks.Sand, 0, false
	default:
		return g.blocks.Grass, 0, false
	}
}

// islandFalloff returns a radial penalty that sinks terrain toward
// ocean as distance from the world origin grows.
func (g *Generator) islandFalloff(x, z float64) float64 {
	base := math.Sqrt(x*x+z*z) / g.params.IslandRadius
	return 16 * base * base
}

// LoadChunk returns a per-column callback: given world (x, z) and a
// Column sink, it writes that column's block stack deterministically.
func (g *Generator) LoadChunk() func(x, z int, col Column) {
	return func(x, z int, col Column) {
		g.fillColumn(float64(x), float64(z), col)
	}
}

func (g *Generator) fillColumn(x, z float64, col Column) {
	falloff := g.islandFalloff(x, z)
	if falloff >= float64(g.params.SeaLevel) {
		return // S1: beyond the island, emit an empty column
	}

	height, _, mountain, cliff, mountainAmt := g.heightmap(x, z)
	truncated := height - falloff
	heightAbs := int(math.Floor(truncated)) + g.params.SeaLevel

	surface, snowDepth, rockOrSnow := g.surfaceTile(truncated, height, mountain, cliff, mountainAmt)

	switch {
	case rockOrSnow && surface == g.blocks.Snow:
		rockTop := heightAbs - int(math.Floor(snowDepth))
		col.Push(g.blocks.Rock, rockTop)
		col.Push(g.blocks.Snow, heightAbs)
	case rockOrSnow: // bare rock mountain face
		col.Push(g.blocks.Rock, heightAbs)
	default:
		rockTop := heightAbs - 1 - g.params.DirtDepth
		col.Push(g.blocks.Rock, rockTop)
		col.Push(g.blocks.Dirt, heightAbs-1)
		col.Push(surface, heightAbs)
	}

	if heightAbs < g.params.SeaLevel {
		col.Push(g.blocks.Water, g.params.SeaLevel)
	}

	if surface == g.blocks.Grass && hasTree(int(x), int(z)) {
		col.Overwrite(g.blocks.Leaves, heightAbs+1)
	}

	g.carveCaves(int(x), int(z), col)
}
