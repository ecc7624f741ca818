package gpu

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"

	"voxelcore/internal/registry"
)

// TextureCache lazily uploads registry textures and populates each
// material's TextureIndex on first use, keeping GPU-index assignment
// out of the otherwise-pure registry package.
type TextureCache struct {
	mu      sync.Mutex
	byPath  map[string]int32
	nextID  int32
}

// NewTextureCache returns an empty cache. GPU texture unit 0 is
// reserved, so indices are assigned starting from 1 — matching the
// registry's "textureIndex == 0 means unregistered" convention.
func NewTextureCache() *TextureCache {
	return &TextureCache{byPath: make(map[string]int32), nextID: 1}
}

// Resolve returns mat's GPU texture index, uploading it on first use.
// Fatal on allocation or decode failure.
func (c *TextureCache) Resolve(mat *registry.Material) int32 {
	if mat.Texture == nil {
		return 0
	}
	if mat.TextureIndex != 0 {
		return int32(mat.TextureIndex)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if id, ok := c.byPath[mat.Texture.Path]; ok {
		mat.TextureIndex = int(id)
		return id
	}

	upload(mat.Texture.Path)
	id := c.nextID
	c.nextID++
	c.byPath[mat.Texture.Path] = id
	mat.TextureIndex = int(id)
	return id
}

func upload(path string) {
	file, err := os.Open(path)
	if err != nil {
		panic(fmt.Sprintf("gpu: failed to open texture %q: %v", path, err))
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		panic(fmt.Sprintf("gpu: failed to decode texture %q: %v", path, err))
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{0, 0}, draw.Src)

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Size().X), int32(rgba.Rect.Size().Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}
