package worldgen

import (
	"fmt"

	"voxelcore/internal/registry"
)

// Column is a write-only per-world-column sink, implemented by the
// chunk-loading caller. Push must be called with non-decreasing
// topHeight values; violating that panics immediately rather than
// silently corrupting the column.
type Column interface {
	// Push appends a run of block ending at (and including) topHeight.
	Push(block registry.BlockId, topHeight int)
	// Overwrite sets a single y slot, used by the cave carver and by
	// leaf placement.
	Overwrite(block registry.BlockId, y int)
}

// TensorColumn is a Column backed by one (x, z) pillar of a
// mathutil.Tensor3-shaped chunk. It is the Column implementation
// LoadChunk's caller is expected to hand the generator.
type TensorColumn struct {
	set func(y int, block registry.BlockId)
	top int
	any bool
}

// NewTensorColumn builds a Column that calls set(y, block) for every
// filled slot. set is typically a closure over a chunk's Tensor3 and the
// column's (x, z).
func NewTensorColumn(set func(y int, block registry.BlockId)) *TensorColumn {
	return &TensorColumn{set: set, top: -1}
}

func (c *TensorColumn) Push(block registry.BlockId, topHeight int) {
	if c.any && topHeight < c.top {
		panic(fmt.Sprintf("worldgen: column push out of order: top %d after %d", topHeight, c.top))
	}
	for y := c.top + 1; y <= topHeight; y++ {
		c.set(y, block)
	}
	c.top = topHeight
	c.any = true
}

func (c *TensorColumn) Overwrite(block registry.BlockId, y int) {
	c.set(y, block)
}
