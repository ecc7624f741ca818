// Package meshing turns a voxel tensor into greedy-merged, AO-baked
// quads, sharing one fixed-stride Geometry quad buffer layout across
// opaque, translucent, frontier and highlight meshes alike.
package meshing

// Geometry is a flat buffer of fixed-stride quads. Offsets are part of
// the external contract with the GPU boundary (internal/gpu): the shader
// indexes into each quad by these constants, so they must never move.
type Geometry struct {
	Data []float32
}

// Stride is the number of float32 slots per quad.
const Stride = 16

// Per-quad field offsets, in declaration order: Pos(3), Size(2),
// Color(4), AOs(1), Dim(1), Dir(1), Mask(1), Wave(1), Texture(1),
// Indices(1) == 16 total.
const (
	OffsetPos     = 0
	OffsetSize    = 3
	OffsetColor   = 5
	OffsetAOs     = 9
	OffsetDim     = 10
	OffsetDir     = 11
	OffsetMask    = 12
	OffsetWave    = 13
	OffsetTexture = 14
	OffsetIndices = 15
)

// NewGeometry returns an empty geometry buffer with room for cap quads.
func NewGeometry(capQuads int) *Geometry {
	return &Geometry{Data: make([]float32, 0, capQuads*Stride)}
}

// Reset empties the buffer while keeping its backing array, so repeated
// meshing passes reuse the allocation.
func (g *Geometry) Reset() { g.Data = g.Data[:0] }

// QuadCount returns the number of quads currently stored.
func (g *Geometry) QuadCount() int { return len(g.Data) / Stride }

// Quad describes one emitted rectangle before it is packed into a
// Geometry buffer's flat float32 layout.
type Quad struct {
	Pos     [3]float32
	Size    [2]float32
	Color   [4]float32
	AOs     float32
	Dim     float32
	Dir     float32
	Mask    float32
	Wave    float32
	Texture float32
	Indices float32
}

// Append packs q onto the end of the buffer at the fixed stride/offsets.
func (g *Geometry) Append(q Quad) {
	var buf [Stride]float32
	buf[OffsetPos+0], buf[OffsetPos+1], buf[OffsetPos+2] = q.Pos[0], q.Pos[1], q.Pos[2]
	buf[OffsetSize+0], buf[OffsetSize+1] = q.Size[0], q.Size[1]
	buf[OffsetColor+0], buf[OffsetColor+1], buf[OffsetColor+2], buf[OffsetColor+3] = q.Color[0], q.Color[1], q.Color[2], q.Color[3]
	buf[OffsetAOs] = q.AOs
	buf[OffsetDim] = q.Dim
	buf[OffsetDir] = q.Dir
	buf[OffsetMask] = q.Mask
	buf[OffsetWave] = q.Wave
	buf[OffsetTexture] = q.Texture
	buf[OffsetIndices] = q.Indices
	g.Data = append(g.Data, buf[:]...)
}

// Mesh pairs a Geometry buffer with the dirty flag the renderer watches
// to decide whether to re-upload it.
type Mesh struct {
	Geometry *Geometry
	Dirty    bool
}

// SetGeometry implements the VoxelMeshHandle contract: the mesher (or the
// renderer, on reallocation) swaps in a new buffer and marks it dirty.
func (m *Mesh) SetGeometry(g *Geometry) {
	m.Geometry = g
	m.Dirty = true
}

// GetGeometry returns the current buffer without clearing Dirty; the
// renderer clears it after upload.
func (m *Mesh) GetGeometry() *Geometry { return m.Geometry }
