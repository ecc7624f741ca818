package meshing

// highlightEpsilon enlarges the highlight cube so its quads never
// z-fight with the block faces they outline.
const highlightEpsilon = float32(1.0 / 256)

// highlightFaces names the six outward faces of the
// unit cube in the fixed order the Mask field encodes, so the shader
// can select and draw only one face at a time.
var highlightFaces = [6]struct {
	axis     int
	positive bool
}{
	{0, true}, {0, false},
	{1, true}, {1, false},
	{2, true}, {2, false},
}

// MeshHighlight builds six thin outward-facing quads around a unit
// cube enlarged by highlightEpsilon, tagged with the translucent-white
// highlight material. Mask carries the face index 0..5 so the renderer
// can draw a single face.
func MeshHighlight(highlightMaterialColor [4]float32, highlightTextureIndex int) *Geometry {
	geom := NewGeometry(6)
	eps := highlightEpsilon

	for i, f := range highlightFaces {
		pos := [3]float32{-eps, -eps, -eps}
		size := [2]float32{1 + 2*eps, 1 + 2*eps}
		if f.positive {
			pos[f.axis] = 1 + eps
		}

		dir := float32(f.axis*2 + 1)
		if f.positive {
			dir = float32(f.axis * 2)
		}

		geom.Append(Quad{
			Pos: pos, Size: size, Color: highlightMaterialColor,
			Dim: float32(f.axis), Dir: dir, Mask: float32(i),
			Texture: float32(highlightTextureIndex),
			Indices: float32(packIndices(diagIndices00_11)),
		})
	}
	return geom
}
