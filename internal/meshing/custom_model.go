package meshing

import (
	"voxelcore/internal/mathutil"
	"voxelcore/internal/registry"
)

// faceDir names one of a model's six local face directions: its axis,
// sign, and the registry.Face it corresponds to.
type faceDir struct {
	face     registry.Face
	axis     int
	positive bool
}

// customFaceDirs lists the six model-local face directions in the same
// {axis, positive} shape the highlight mesher uses, paired with the
// registry.Face each one names.
var customFaceDirs = [6]faceDir{
	{registry.FacePosX, 0, true},
	{registry.FaceNegX, 0, false},
	{registry.FacePosY, 1, true},
	{registry.FaceNegY, 1, false},
	{registry.FacePosZ, 2, true},
	{registry.FaceNegZ, 2, false},
}

// MeshCustomBlocks emits every non-full model block in voxels as raw,
// unmerged quads, one per visible element face. It never touches the
// greedy mask: a model block's registry entry carries no face
// materials, so the greedy scan in MeshChunk already skips it
// entirely. Elements are assumed full-voxel-aligned; there is no
// sub-voxel rounding beyond the element's own From/To bounds.
func MeshCustomBlocks(reg *registry.Registry, voxels *mathutil.Tensor3) *Geometry {
	out := NewGeometry(32)

	for x := 0; x < voxels.SizeX; x++ {
		for y := 0; y < voxels.SizeY; y++ {
			for z := 0; z < voxels.SizeZ; z++ {
				block := registry.BlockId(voxels.Get(x, y, z))
				if block == 0 {
					continue
				}
				model, ok := reg.GetModel(block)
				if !ok {
					continue
				}
				emitModel(reg, voxels, x, y, z, model, out)
			}
		}
	}
	return out
}

func emitModel(reg *registry.Registry, voxels *mathutil.Tensor3, x, y, z int, model registry.Model, out *Geometry) {
	for _, elem := range model {
		for _, fd := range customFaceDirs {
			mf := elem.Faces[fd.face]
			if mf.Material == registry.NoMaterial {
				continue
			}

			nx, ny, nz := x, y, z
			switch fd.axis {
			case 0:
				if fd.positive {
					nx++
				} else {
					nx--
				}
			case 1:
				if fd.positive {
					ny++
				} else {
					ny--
				}
			case 2:
				if fd.positive {
					nz++
				} else {
					nz--
				}
			}
			if reg.IsOpaque(registry.BlockId(voxels.Get(nx, ny, nz))) {
				continue
			}

			mat := reg.GetMaterialData(mf.Material)
			emitModelQuad(elem, fd, x, y, z, mat, mf.Tint, out)
		}
	}
}

func emitModelQuad(elem registry.Element, fd faceDir, x, y, z int, mat *registry.Material, tint bool, out *Geometry) {
	u, v := axesFor(fd.axis)

	lo, hi := elem.From, elem.To
	pos := [3]float32{float32(x), float32(y), float32(z)}
	if fd.positive {
		pos[fd.axis] += hi[fd.axis]
	} else {
		pos[fd.axis] += lo[fd.axis]
	}
	pos[u] += lo[u]
	pos[v] += lo[v]

	sizeU := hi[u] - lo[u]
	sizeV := hi[v] - lo[v]
	if fd.axis == 0 {
		sizeU, sizeV = sizeV, sizeU
	}

	color := [4]float32{
		float32(mat.Color.R) / 255, float32(mat.Color.G) / 255,
		float32(mat.Color.B) / 255, float32(mat.Color.A) / 255,
	}
	if tint && mat.TintColor.A != 0 {
		t := mat.TintColor
		color[0] *= float32(t.R) / 255
		color[1] *= float32(t.G) / 255
		color[2] *= float32(t.B) / 255
	}

	dir := float32(fd.axis * 2)
	if !fd.positive {
		dir++
	}

	quad := Quad{
		Pos: pos, Size: [2]float32{sizeU, sizeV}, Color: color,
		AOs: 0, Dim: float32(fd.axis), Dir: dir,
		Mask: 0, Wave: 0, Texture: float32(mat.TextureIndex),
		Indices: float32(packIndices(diagIndices00_11)),
	}
	out.Append(quad)

	if mat.AlphaTest {
		flipped := quad
		base := float32(fd.axis * 2)
		flipped.Dir = base + (1 - (quad.Dir - base))
		out.Append(flipped)
	}
}
