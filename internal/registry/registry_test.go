package registry

import "testing"

func TestAddBlockRoundTrip(t *testing.T) {
	r := New()
	r.AddMaterialOfColor("grass_top", RGBA{100, 200, 80, 255})
	r.AddMaterialOfColor("dirt", RGBA{120, 90, 60, 255})

	id := r.AddBlock([]string{"grass_top", "dirt", "dirt"}, true)

	cases := []struct {
		face Face
		want string
	}{
		{FacePosY, "grass_top"},
		{FaceNegY, "dirt"},
		{FacePosX, "dirt"},
		{FaceNegX, "dirt"},
		{FacePosZ, "dirt"},
		{FaceNegZ, "dirt"},
	}
	for _, c := range cases {
		matID := r.GetBlockFaceMaterial(id, c.face)
		mat := r.GetMaterialData(matID)
		if mat.Name != c.want {
			t.Errorf("face %v: got material %q, want %q", c.face, mat.Name, c.want)
		}
	}

	if !r.IsSolid(id) {
		t.Errorf("expected block to be solid")
	}
	if !r.IsOpaque(id) {
		t.Errorf("expected fully opaque faces to make the block opaque")
	}
}

func TestAddBlockSingleName(t *testing.T) {
	r := New()
	r.AddMaterialOfColor("stone", RGBA{128, 128, 128, 255})
	id := r.AddBlock([]string{"stone"}, true)
	for f := FacePosX; f <= FaceNegZ; f++ {
		mat := r.GetMaterialData(r.GetBlockFaceMaterial(id, f))
		if mat.Name != "stone" {
			t.Errorf("face %v: got %q, want stone", f, mat.Name)
		}
	}
}

func TestTranslucentMaterialMakesBlockNonOpaque(t *testing.T) {
	r := New()
	r.AddMaterialOfColor("water", RGBA{50, 90, 200, 180})
	id := r.AddBlock([]string{"water"}, false)
	if r.IsOpaque(id) {
		t.Errorf("block with translucent material must not be opaque")
	}
}

func TestDuplicateMaterialNamePanics(t *testing.T) {
	r := New()
	r.AddMaterialOfColor("dup", RGBA{1, 1, 1, 255})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate material name")
		}
	}()
	r.AddMaterialOfColor("dup", RGBA{2, 2, 2, 255})
}

func TestAddBlockUnknownMaterialPanics(t *testing.T) {
	r := New()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unknown material name")
		}
	}()
	r.AddBlock([]string{"nonexistent"}, true)
}

func TestAddBlockBadNameCountPanics(t *testing.T) {
	r := New()
	r.AddMaterialOfColor("a", RGBA{1, 1, 1, 255})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on invalid name count")
		}
	}()
	r.AddBlock([]string{"a", "a", "a", "a"}, true)
}

func TestMaterialZeroIsNoMaterial(t *testing.T) {
	if NoMaterial != 0 {
		t.Fatalf("NoMaterial sentinel must be zero")
	}
}

func TestSetTintRoundTrip(t *testing.T) {
	r := New()
	id := r.AddMaterialOfColor("grass_top", RGBA{255, 255, 255, 255})
	r.SetTint(id, RGBA{90, 200, 70, 255})

	mat := r.GetMaterialData(id)
	if mat.TintColor != (RGBA{90, 200, 70, 255}) {
		t.Fatalf("expected tint color to be set, got %+v", mat.TintColor)
	}
}

func TestSetTintInvalidIDPanics(t *testing.T) {
	r := New()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on invalid material id")
		}
	}()
	r.SetTint(99, RGBA{1, 1, 1, 1})
}

func TestAddModelBlockIsNeverSolidOrOpaque(t *testing.T) {
	r := New()
	post := r.AddMaterialOfColor("fence_post", RGBA{140, 110, 70, 255})
	id := r.AddModelBlock(Model{
		{
			From: [3]float32{0.4, 0, 0.4}, To: [3]float32{0.6, 1, 0.6},
			Faces: [6]ModelFace{
				FacePosX: {Material: post}, FaceNegX: {Material: post},
				FacePosY: {Material: post}, FaceNegY: {Material: post},
				FacePosZ: {Material: post}, FaceNegZ: {Material: post},
			},
		},
	})

	if r.IsSolid(id) || r.IsOpaque(id) {
		t.Fatalf("model blocks must never be solid or opaque")
	}
	if r.GetBlockFaceMaterial(id, FacePosY) != NoMaterial {
		t.Fatalf("model blocks must carry no face materials, so greedy meshing skips them")
	}

	model, ok := r.GetModel(id)
	if !ok || len(model) != 1 {
		t.Fatalf("expected the registered model to round-trip, got ok=%v len=%d", ok, len(model))
	}
}

func TestGetModelMissingReturnsFalse(t *testing.T) {
	r := New()
	r.AddMaterialOfColor("stone", RGBA{128, 128, 128, 255})
	id := r.AddBlock([]string{"stone"}, true)
	if _, ok := r.GetModel(id); ok {
		t.Fatalf("expected no model registered for a plain cube block")
	}
}
