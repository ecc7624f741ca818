package meshing

import (
	"testing"

	"voxelcore/internal/registry"
)

func TestMeshFrontierMergesUniformRegion(t *testing.T) {
	reg := registry.New()
	reg.AddMaterialOfColor("grass", registry.RGBA{R: 50, G: 160, B: 50, A: 255})
	grass := reg.AddBlock([]string{"grass"}, true)
	mesher := NewTerrainMesher(reg)

	const sx, sz = 4, 4
	heightmap := make([]FrontierCell, sx*sz)
	for i := range heightmap {
		heightmap[i] = FrontierCell{Block: uint32(grass), Height: 64}
	}

	geom := mesher.MeshFrontier(heightmap, sx, sz, 0, 0, 1, 7, false, nil)
	if geom.QuadCount() != 1 {
		t.Fatalf("expected a uniform frontier tile to merge into one quad, got %d", geom.QuadCount())
	}

	base := 0
	if geom.Data[base+OffsetSize+0] != sx || geom.Data[base+OffsetSize+1] != sz {
		t.Fatalf("merged quad size = (%v, %v), want (%d, %d)", geom.Data[base+OffsetSize+0], geom.Data[base+OffsetSize+1], sx, sz)
	}
	if geom.Data[base+OffsetMask] != 7 {
		t.Fatalf("expected Mask field to carry the caller's tag, got %v", geom.Data[base+OffsetMask])
	}

	for _, c := range heightmap {
		if c.consumed() {
			t.Fatalf("sentinel bit leaked past MeshFrontier: %v", c)
		}
	}
}

func TestMeshFrontierEmitsSkirtAtDrop(t *testing.T) {
	reg := registry.New()
	reg.AddMaterialOfColor("sand", registry.RGBA{R: 220, G: 200, B: 120, A: 255})
	sand := reg.AddBlock([]string{"sand"}, true)
	mesher := NewTerrainMesher(reg)

	heightmap := []FrontierCell{
		{Block: uint32(sand), Height: 64}, {Block: uint32(sand), Height: 60},
		{Block: uint32(sand), Height: 64}, {Block: uint32(sand), Height: 64},
	}

	geom := mesher.MeshFrontier(heightmap, 2, 2, 0, 0, 1, 0, true, nil)
	if geom.QuadCount() <= 1 {
		t.Fatalf("expected top quads plus at least one skirt quad, got %d", geom.QuadCount())
	}
}

func TestMeshHighlightSixFaces(t *testing.T) {
	geom := MeshHighlight([4]float32{1, 1, 1, 0.4}, 3)
	if geom.QuadCount() != 6 {
		t.Fatalf("expected 6 highlight quads, got %d", geom.QuadCount())
	}
	seen := map[float32]bool{}
	for i := 0; i < 6; i++ {
		seen[geom.Data[i*Stride+OffsetMask]] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 distinct Mask face indices, got %d", len(seen))
	}
}
