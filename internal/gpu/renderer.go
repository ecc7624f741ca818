package gpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"voxelcore/internal/meshing"
	"voxelcore/internal/registry"
)

// VoxelMeshHandle is a GPU-resident copy of a mesher Geometry buffer.
type VoxelMeshHandle struct {
	vao, vbo uint32
	geometry *meshing.Geometry
	solid    bool
	quadCount int
}

// GetGeometry returns the buffer this handle last uploaded.
func (h *VoxelMeshHandle) GetGeometry() *meshing.Geometry { return h.geometry }

// SetGeometry swaps in a new buffer and re-uploads it. The mesher owns
// the geometry; the renderer only borrows it for upload.
func (h *VoxelMeshHandle) SetGeometry(g *meshing.Geometry) {
	h.geometry = g
	h.upload()
}

func (h *VoxelMeshHandle) upload() {
	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	if len(h.geometry.Data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(h.geometry.Data)*4, gl.Ptr(h.geometry.Data), gl.DYNAMIC_DRAW)
	}
	h.quadCount = h.geometry.QuadCount()
	gl.BindVertexArray(0)
}

// Dispose frees the handle's GPU buffers.
func (h *VoxelMeshHandle) Dispose() {
	gl.DeleteBuffers(1, &h.vbo)
	gl.DeleteVertexArrays(1, &h.vao)
}

// Draw issues one instanced draw call, one GPU-side instance per quad.
// The vertex shader is expected to expand each instance's pos/size/dir
// attributes into a quad's two triangles.
func (h *VoxelMeshHandle) Draw() {
	if h.quadCount == 0 {
		return
	}
	gl.BindVertexArray(h.vao)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, 6, int32(h.quadCount))
	gl.BindVertexArray(0)
}

// Renderer is the minimal renderer surface the mesher's output targets:
// it accepts geometry buffers and textures and renders them, owning all
// GPU resources itself.
type Renderer struct {
	shader  *Shader
	textures *TextureCache
}

// NewRenderer builds a renderer bound to a compiled shader and a fresh
// texture cache.
func NewRenderer(shader *Shader) *Renderer {
	return &Renderer{shader: shader, textures: NewTextureCache()}
}

// AddVoxelMesh uploads geometry as a new GPU-resident mesh and returns
// its handle. solid distinguishes the opaque pass from the translucent
// pass for the caller's render-order bookkeeping; the mesher quad
// layout is identical either way.
func (r *Renderer) AddVoxelMesh(geometry *meshing.Geometry, solid bool) *VoxelMeshHandle {
	h := &VoxelMeshHandle{solid: solid}
	gl.GenVertexArrays(1, &h.vao)
	gl.GenBuffers(1, &h.vbo)

	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)

	stride := int32(meshing.Stride) * 4
	// Each record in the geometry buffer describes one quad, not one
	// vertex; every attribute advances once per instance rather than
	// once per vertex, and the vertex shader expands 6 stock corner
	// indices against pos/size/dir into the quad's two triangles.
	attr := func(index uint32, size int32, offset int) {
		gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, uintptr(offset*4))
		gl.EnableVertexAttribArray(index)
		gl.VertexAttribDivisor(index, 1)
	}
	attr(0, 3, meshing.OffsetPos)
	attr(1, 2, meshing.OffsetSize)
	attr(2, 4, meshing.OffsetColor)
	attr(3, 1, meshing.OffsetAOs)
	attr(4, 1, meshing.OffsetDim)
	attr(5, 1, meshing.OffsetDir)
	attr(6, 1, meshing.OffsetMask)
	attr(7, 1, meshing.OffsetWave)
	attr(8, 1, meshing.OffsetTexture)
	attr(9, 1, meshing.OffsetIndices)

	gl.BindVertexArray(0)

	h.SetGeometry(geometry)
	return h
}

// AddTexture resolves mat's texture against the renderer's cache,
// uploading it on first use, and returns its non-zero GPU index, or 0
// when mat has no texture.
func (r *Renderer) AddTexture(mat *registry.Material) int32 {
	return r.textures.Resolve(mat)
}

// Shader exposes the renderer's bound program so the caller can set
// per-frame uniforms (view/projection matrices, fog, time-of-day).
func (r *Renderer) Shader() *Shader { return r.shader }
