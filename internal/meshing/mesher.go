package meshing

import (
	"voxelcore/internal/mathutil"
	"voxelcore/internal/registry"
)

// TerrainMesher converts a voxel tensor into greedy-merged, AO-baked
// quads. Scratch buffers are instance fields rather than package-level
// statics, so that a caller running several meshers concurrently — one
// per worker, see WorkerPool — needs no locking.
type TerrainMesher struct {
	reg *registry.Registry

	mask     []int32 // (signed_material << 8) | ao_byte, 0 == no face
	maskBuf  []int32 // not used by meshAxis, which clears and reuses mask for every slab
}

// NewTerrainMesher builds a mesher bound to reg. reg is read-only for
// the mesher's lifetime.
func NewTerrainMesher(reg *registry.Registry) *TerrainMesher {
	return &TerrainMesher{reg: reg}
}

// faceForAxis maps a normal axis and sign to the registry's face enum.
func faceForAxis(axis int, positive bool) registry.Face {
	switch axis {
	case 0:
		if positive {
			return registry.FacePosX
		}
		return registry.FaceNegX
	case 1:
		if positive {
			return registry.FacePosY
		}
		return registry.FaceNegY
	default:
		if positive {
			return registry.FacePosZ
		}
		return registry.FaceNegZ
	}
}

// axesFor returns the (u, v) in-plane axes for normal axis d: for
// d == 0 the natural order (1, 2) is swapped to (2, 1) so that Y — the
// privileged long axis — is the inner, fast-extending greedy dimension.
func axesFor(d int) (u, v int) {
	if d == 0 {
		return 2, 1
	}
	return (d + 1) % 3, (d + 2) % 3
}

// signedFaceMaterial resolves the face rule for one adjacent voxel pair
// along axis d. Returns 0 if no face is emitted.
func (m *TerrainMesher) signedFaceMaterial(block0, block1 uint16, d int) int32 {
	id0, id1 := registry.BlockId(block0), registry.BlockId(block1)
	opaque0, opaque1 := m.reg.IsOpaque(id0), m.reg.IsOpaque(id1)

	switch {
	case opaque0 && opaque1:
		return 0
	case opaque0:
		mat := m.reg.GetBlockFaceMaterial(id0, faceForAxis(d, true))
		if mat == registry.NoMaterial {
			return 0
		}
		return int32(mat)
	case opaque1:
		mat := m.reg.GetBlockFaceMaterial(id1, faceForAxis(d, false))
		if mat == registry.NoMaterial {
			return 0
		}
		return -int32(mat)
	default:
		m0 := m.reg.GetBlockFaceMaterial(id0, faceForAxis(d, true))
		m1 := m.reg.GetBlockFaceMaterial(id1, faceForAxis(d, false))
		switch {
		case m0 == m1:
			return 0
		case m0 == registry.NoMaterial:
			return -int32(m1)
		case m1 == registry.NoMaterial:
			return int32(m0)
		default:
			return 0
		}
	}
}

// aoAt samples the 8 in-plane neighbors of the occluded (air-side)
// voxel around corner (iu, iv) of a face at d-coordinate dCoord.
func (m *TerrainMesher) aoAt(voxels *mathutil.Tensor3, d, u, v, dCoord, iu, iv, deltaU, deltaV int) uint8 {
	solidAt := func(cu, cv int) bool {
		coords := [3]int{}
		coords[d] = dCoord
		coords[u] = cu
		coords[v] = cv
		return m.reg.IsSolid(registry.BlockId(voxels.Get(coords[0], coords[1], coords[2])))
	}

	edgeU := solidAt(iu+deltaU, iv)
	edgeV := solidAt(iu, iv+deltaV)
	diag := solidAt(iu+deltaU, iv+deltaV)

	count := 0
	if edgeU {
		count++
	}
	if edgeV {
		count++
	}
	if count == 0 && diag {
		count++
	}
	return uint8(count)
}

// MeshChunk greedy-meshes all three axes of voxels into opaque and
// translucent Geometry buffers. oldSolid and oldWater are reused when
// non-nil, avoiding a fresh allocation on re-mesh.
func (m *TerrainMesher) MeshChunk(voxels *mathutil.Tensor3, oldSolid, oldWater *Geometry) (solid, water *Geometry) {
	solid = oldSolid
	if solid == nil {
		solid = NewGeometry(256)
	} else {
		solid.Reset()
	}
	water = oldWater
	if water == nil {
		water = NewGeometry(64)
	} else {
		water.Reset()
	}

	dims := [3]int{voxels.SizeX, voxels.SizeY, voxels.SizeZ}

	for d := 0; d < 3; d++ {
		m.meshAxis(voxels, dims, d, solid, water)
	}
	return solid, water
}

func (m *TerrainMesher) meshAxis(voxels *mathutil.Tensor3, dims [3]int, d int, solid, water *Geometry) {
	u, v := axesFor(d)
	lu, lv := dims[u]-2, dims[v]-2
	if lu <= 0 || lv <= 0 {
		return
	}
	lastSlab := dims[d] - 2

	if len(m.mask) < lu*lv {
		m.mask = make([]int32, lu*lv)
	}
	mask := m.mask[:lu*lv]

	getAt := func(dCoord, cu, cv int) uint16 {
		coords := [3]int{}
		coords[d] = dCoord
		coords[u] = cu + 1
		coords[v] = cv + 1
		return voxels.Get(coords[0], coords[1], coords[2])
	}

	for id := 0; id <= lastSlab; id++ {
		for i := range mask {
			mask[i] = 0
		}

		for iu := 0; iu < lu; iu++ {
			for iv := 0; iv < lv; iv++ {
				block0 := getAt(id, iu, iv)
				block1 := getAt(id+1, iu, iv)
				signed := m.signedFaceMaterial(block0, block1, d)
				if signed == 0 {
					continue
				}
				if id == 0 && signed > 0 {
					continue // boundary trim: positive face belongs to neighbor chunk
				}
				if id == lastSlab && signed < 0 {
					continue // boundary trim: negative face belongs to neighbor chunk
				}

				positive := signed > 0
				dCoord := id + 1
				if !positive {
					dCoord = id
				}

				ao := m.packQuadAO(voxels, d, u, v, dCoord, iu+1, iv+1)
				mask[iu*lv+iv] = (signed << 8) | int32(ao)
			}
		}

		m.greedyMerge(mask, lu, lv, d, u, v, id, solid, water)
	}
}

// packQuadAO samples all four corners of the face whose occluded voxel
// sits at the plane d == dCoord, with the face's lower corner at (cu,
// cv) in (u, v)-local (1-based interior) coordinates.
func (m *TerrainMesher) packQuadAO(voxels *mathutil.Tensor3, d, u, v, dCoord, cu, cv int) uint8 {
	a00 := m.aoAt(voxels, d, u, v, dCoord, cu, cv, -1, -1)
	a10 := m.aoAt(voxels, d, u, v, dCoord, cu, cv, +1, -1)
	a11 := m.aoAt(voxels, d, u, v, dCoord, cu, cv, +1, +1)
	a01 := m.aoAt(voxels, d, u, v, dCoord, cu, cv, -1, +1)
	return packAO(a00, a10, a11, a01)
}

// greedyMerge scans one slab's mask for maximal rectangles, then emits
// quads into the opaque or translucent buffer depending on the
// resolved material's color alpha.
func (m *TerrainMesher) greedyMerge(mask []int32, lu, lv, d, u, v, id int, solid, water *Geometry) {
	for iu := 0; iu < lu; iu++ {
		for iv := 0; iv < lv; iv++ {
			cell := mask[iu*lv+iv]
			if cell == 0 {
				continue
			}

			w := 1
			for iv+w < lv && mask[iu*lv+iv+w] == cell {
				w++
			}

			h := 1
		outer:
			for iu+h < lu {
				for k := 0; k < w; k++ {
					if mask[(iu+h)*lv+iv+k] != cell {
						break outer
					}
				}
				h++
			}

			for du := 0; du < h; du++ {
				for dv := 0; dv < w; dv++ {
					mask[(iu+du)*lv+iv+dv] = 0
				}
			}

			m.emitQuad(cell, id, iu, iv, h, w, d, u, v, solid, water)
		}
	}
}

// tintedColor resolves a material's packed quad color, multiplying in
// its TintColor when one is set.
func tintedColor(mat *registry.Material) [4]float32 {
	c := [4]float32{
		float32(mat.Color.R) / 255, float32(mat.Color.G) / 255,
		float32(mat.Color.B) / 255, float32(mat.Color.A) / 255,
	}
	if mat.TintColor.A == 0 {
		return c
	}
	t := mat.TintColor
	return [4]float32{
		c[0] * float32(t.R) / 255,
		c[1] * float32(t.G) / 255,
		c[2] * float32(t.B) / 255,
		c[3],
	}
}

func (m *TerrainMesher) emitQuad(cell int32, id, iu, iv, h, w, d, u, v int, solid, water *Geometry) {
	signed := cell >> 8
	ao := uint8(cell & 0xff)
	positive := signed > 0
	matID := registry.MaterialId(signed)
	if !positive {
		matID = registry.MaterialId(-signed)
	}
	mat := m.reg.GetMaterialData(matID)

	sizeU, sizeV := float32(h), float32(w)
	if d == 0 {
		// u/v were swapped for the inner loop; restore standard
		// (d, u, v) size ordering before emission, and swap the AO
		// byte's a10/a01 corners the same way so they still line up
		// with Size.
		sizeU, sizeV = sizeV, sizeU
		ao = swapAOUV(ao)
	}

	pos := [3]float32{}
	pos[d] = float32(id)
	pos[u] = float32(iu)
	pos[v] = float32(iv)

	dir := float32(d * 2)
	if !positive {
		dir++
	}

	color := tintedColor(mat)

	indices := packIndices(chooseDiagonal(ao))

	quad := Quad{
		Pos: pos, Size: [2]float32{sizeU, sizeV}, Color: color,
		AOs: float32(ao), Dim: float32(d), Dir: dir,
		Mask: 0, Wave: 0, Texture: float32(mat.TextureIndex),
		Indices: float32(indices),
	}

	target := solid
	if mat.Color.Alpha01() < 1 {
		target = water
	}
	target.Append(quad)

	if mat.AlphaTest {
		// Double-emit for cutout textures (leaves, fences): flip the
		// face's direction so both sides of the quad render.
		flipped := quad
		base := float32(d * 2)
		flipped.Dir = base + (1 - (quad.Dir - base))
		target.Append(flipped)
	}
}
