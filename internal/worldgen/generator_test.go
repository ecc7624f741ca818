package worldgen

import (
	"testing"

	"voxelcore/internal/noise"
	"voxelcore/internal/registry"
)

func testBlockIDs() BlockIDs {
	return BlockIDs{
		Rock:   1,
		Dirt:   2,
		Sand:   3,
		Grass:  4,
		Snow:   5,
		Water:  6,
		Leaves: 7,
	}
}

func collectColumn(g *Generator, x, z int) map[int]registry.BlockId {
	out := make(map[int]registry.BlockId)
	col := NewTensorColumn(func(y int, block registry.BlockId) {
		out[y] = block
	})
	g.LoadChunk()(x, z, col)
	return out
}

func TestLoadChunkEmptyBeyondIsland(t *testing.T) {
	p := DefaultParams()
	g := New(noise.NewSeedCounterFrom(1), testBlockIDs(), p)

	far := int(p.IslandRadius) * 2
	col := collectColumn(g, far, far)
	if len(col) != 0 {
		t.Fatalf("expected empty column beyond island radius, got %d blocks", len(col))
	}
}

func TestLoadChunkCenterHasSurfaceAndNoUnderwaterGapAtSeaLevel(t *testing.T) {
	p := DefaultParams()
	p.kCaveLevels = 0 // isolate surface fill from cave carving
	g := New(noise.NewSeedCounterFrom(1), testBlockIDs(), p)

	col := collectColumn(g, 0, 0)
	if len(col) == 0 {
		t.Fatalf("expected non-empty column at island center")
	}

	maxY := -1
	for y := range col {
		if y > maxY {
			maxY = y
		}
	}
	top := col[maxY]
	if top != g.blocks.Grass && top != g.blocks.Sand && top != g.blocks.Rock && top != g.blocks.Snow {
		t.Fatalf("unexpected top block %d at column top %d", top, maxY)
	}

	if maxY < p.SeaLevel {
		if w, ok := col[p.SeaLevel]; !ok || w != g.blocks.Water {
			t.Fatalf("expected water at sea level %d for submerged column, got %v (ok=%v)", p.SeaLevel, w, ok)
		}
	}
}

func TestGeneratorDeterministicForSameSeed(t *testing.T) {
	p := DefaultParams()
	blocks := testBlockIDs()

	g1 := New(noise.NewSeedCounterFrom(42), blocks, p)
	g2 := New(noise.NewSeedCounterFrom(42), blocks, p)

	for _, pt := range [][2]int{{0, 0}, {100, -200}, {500, 500}, {-1000, 300}} {
		c1 := collectColumn(g1, pt[0], pt[1])
		c2 := collectColumn(g2, pt[0], pt[1])
		if len(c1) != len(c2) {
			t.Fatalf("column size mismatch at %v: %d vs %d", pt, len(c1), len(c2))
		}
		for y, b := range c1 {
			if c2[y] != b {
				t.Fatalf("column mismatch at %v, y=%d: %d vs %d", pt, y, b, c2[y])
			}
		}
	}
}

func TestGeneratorDivergesForDifferentSeed(t *testing.T) {
	p := DefaultParams()
	blocks := testBlockIDs()

	g1 := New(noise.NewSeedCounterFrom(1), blocks, p)
	g2 := New(noise.NewSeedCounterFrom(2), blocks, p)

	diverged := false
	for x := 0; x < 2000 && !diverged; x += 137 {
		for z := 0; z < 2000 && !diverged; z += 211 {
			c1 := collectColumn(g1, x, z)
			c2 := collectColumn(g2, x, z)
			if len(c1) != len(c2) {
				diverged = true
				break
			}
			for y, b := range c1 {
				if c2[y] != b {
					diverged = true
					break
				}
			}
		}
	}
	if !diverged {
		t.Fatalf("expected columns to diverge across a wide sample for different seeds")
	}
}

func TestFrontierMatchesSurfaceOfFullColumn(t *testing.T) {
	p := DefaultParams()
	p.kCaveLevels = 0
	blocks := testBlockIDs()
	g := New(noise.NewSeedCounterFrom(7), blocks, p)

	cell := g.Frontier(50, 50)
	col := collectColumn(g, 50, 50)

	if topB, ok := col[cell.Height]; ok {
		if topB != cell.Block && cell.Block != g.blocks.Water {
			t.Fatalf("frontier block %d disagrees with full column block %d at height %d", cell.Block, topB, cell.Height)
		}
	}
}

func TestFrontierEmptyBeyondIsland(t *testing.T) {
	p := DefaultParams()
	g := New(noise.NewSeedCounterFrom(1), testBlockIDs(), p)

	far := int(p.IslandRadius) * 2
	cell := g.Frontier(far, far)
	if cell.Block != 0 {
		t.Fatalf("expected empty frontier cell beyond island radius, got block %d", cell.Block)
	}
}
