package meshing

import "voxelcore/internal/registry"

// sentinelConsumed marks a frontier heightmap cell as already folded
// into an emitted quad during the current meshFrontier pass.
const sentinelConsumed uint32 = 1 << 30

// FrontierCell is one entry of a far-LOD frontier heightmap: the
// surface block visible from above at this column and its world
// height. Bit 30 of Block is a transient sentinel used by MeshFrontier
// and must be 0 on entry.
type FrontierCell struct {
	Block  uint32
	Height int32
}

func (c FrontierCell) blockID() uint32 { return c.Block &^ sentinelConsumed }
func (c FrontierCell) consumed() bool  { return c.Block&sentinelConsumed != 0 }

// MeshFrontier greedy-merges a flat sx x sz grid of (block, height)
// pairs into top faces plus, if solid, side skirts against lower
// neighbors. px, pz and mask are applied to every emitted quad as a
// uniform offset/tag, matching the terrain mesher's post-emission step.
func (m *TerrainMesher) MeshFrontier(heightmap []FrontierCell, sx, sz int, px, pz, scale float32, mask float32, solid bool, old *Geometry) *Geometry {
	geom := old
	if geom == nil {
		geom = NewGeometry(64)
	} else {
		geom.Reset()
	}

	at := func(x, z int) int { return x*sz + z }

	for x := 0; x < sx; x++ {
		for z := 0; z < sz; z++ {
			idx := at(x, z)
			if heightmap[idx].consumed() {
				continue
			}
			cell := heightmap[idx]
			if cell.blockID() == 0 {
				heightmap[idx].Block |= sentinelConsumed
				continue
			}

			lenZ := 1
			for z+lenZ < sz {
				c := heightmap[at(x, z+lenZ)]
				if c.consumed() || c.blockID() != cell.blockID() || c.Height != cell.Height {
					break
				}
				lenZ++
			}

			lenX := 1
		outer:
			for x+lenX < sx {
				for k := 0; k < lenZ; k++ {
					c := heightmap[at(x+lenX, z+k)]
					if c.consumed() || c.blockID() != cell.blockID() || c.Height != cell.Height {
						break outer
					}
				}
				lenX++
			}

			for dx := 0; dx < lenX; dx++ {
				for dz := 0; dz < lenZ; dz++ {
					heightmap[at(x+dx, z+dz)].Block |= sentinelConsumed
				}
			}

			m.emitFrontierTop(geom, cell, x, z, lenX, lenZ, px, pz, scale, mask)
		}
	}

	for i := range heightmap {
		heightmap[i].Block &^= sentinelConsumed
	}

	if solid {
		m.emitFrontierSkirts(geom, heightmap, sx, sz, px, pz, scale, mask)
	}

	return geom
}

func (m *TerrainMesher) emitFrontierTop(geom *Geometry, cell FrontierCell, x, z, lenX, lenZ int, px, pz, scale float32, mask float32) {
	mat := m.reg.GetMaterialData(m.reg.GetBlockFaceMaterial(registry.BlockId(cell.blockID()), registry.FacePosY))
	color := [4]float32{
		float32(mat.Color.R) / 255, float32(mat.Color.G) / 255,
		float32(mat.Color.B) / 255, float32(mat.Color.A) / 255,
	}
	geom.Append(Quad{
		Pos:     [3]float32{float32(x)*scale + px, float32(cell.Height), float32(z)*scale + pz},
		Size:    [2]float32{float32(lenX) * scale, float32(lenZ) * scale},
		Color:   color,
		Dim:     1, // top faces have a fixed Y normal
		Dir:     0,
		Mask:    mask,
		Texture: float32(mat.TextureIndex),
		Indices: float32(packIndices(diagIndices00_11)),
	})
}

// emitFrontierSkirts samples the +y face material of each column for
// its own vertical side quad too, keeping grass/dirt appearance at
// distance consistent with the top face. Each quad spans as many
// contiguous equal-(block, height, neighbor height) columns as
// possible along the run, the same greedy merge the top-face pass
// does.
func (m *TerrainMesher) emitFrontierSkirts(geom *Geometry, heightmap []FrontierCell, sx, sz int, px, pz, scale float32, mask float32) {
	type dir struct{ dx, dz int; dirIndex float32 }
	dirs := [4]dir{{1, 0, 0}, {-1, 0, 1}, {0, 1, 2}, {0, -1, 3}}

	at := func(x, z int) int { return x*sz + z }

	for _, dd := range dirs {
		if dd.dx != 0 {
			for x := 0; x < sx; x++ {
				nx := x + dd.dx
				if nx < 0 || nx >= sx {
					continue
				}
				for z := 0; z < sz; {
					cell := heightmap[at(x, z)]
					if cell.blockID() == 0 {
						z++
						continue
					}
					neighborHeight := heightmap[at(nx, z)].Height
					if neighborHeight >= cell.Height {
						z++
						continue
					}

					run := 1
					for z+run < sz {
						c2 := heightmap[at(x, z+run)]
						if c2.blockID() != cell.blockID() || c2.Height != cell.Height {
							break
						}
						if heightmap[at(nx, z+run)].Height != neighborHeight {
							break
						}
						run++
					}

					m.emitSkirtQuad(geom, cell, neighborHeight, float32(x)*scale+px, float32(z)*scale+pz, float32(run)*scale, dd.dirIndex, scale, mask)
					z += run
				}
			}
		} else {
			for z := 0; z < sz; z++ {
				nz := z + dd.dz
				if nz < 0 || nz >= sz {
					continue
				}
				for x := 0; x < sx; {
					cell := heightmap[at(x, z)]
					if cell.blockID() == 0 {
						x++
						continue
					}
					neighborHeight := heightmap[at(x, nz)].Height
					if neighborHeight >= cell.Height {
						x++
						continue
					}

					run := 1
					for x+run < sx {
						c2 := heightmap[at(x+run, z)]
						if c2.blockID() != cell.blockID() || c2.Height != cell.Height {
							break
						}
						if heightmap[at(x+run, nz)].Height != neighborHeight {
							break
						}
						run++
					}

					m.emitSkirtQuad(geom, cell, neighborHeight, float32(x)*scale+px, float32(z)*scale+pz, float32(run)*scale, dd.dirIndex, scale, mask)
					x += run
				}
			}
		}
	}
}

func (m *TerrainMesher) emitSkirtQuad(geom *Geometry, cell FrontierCell, neighborHeight int32, posX, posZ, span, dirIndex, scale, mask float32) {
	mat := m.reg.GetMaterialData(m.reg.GetBlockFaceMaterial(registry.BlockId(cell.blockID()), registry.FacePosY))
	color := [4]float32{
		float32(mat.Color.R) / 255, float32(mat.Color.G) / 255,
		float32(mat.Color.B) / 255, float32(mat.Color.A) / 255,
	}
	geom.Append(Quad{
		Pos:     [3]float32{posX, float32(neighborHeight), posZ},
		Size:    [2]float32{span, float32(cell.Height - neighborHeight)},
		Color:   color,
		Dim:     0,
		Dir:     dirIndex,
		Mask:    mask,
		Texture: float32(mat.TextureIndex),
		Indices: float32(packIndices(diagIndices00_11)),
	})
}
