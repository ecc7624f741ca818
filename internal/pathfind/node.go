// Package pathfind implements A* search over a voxel world, aware of
// falling, jumping gaps, and variable-cost vertical motion.
package pathfind

import "voxelcore/internal/mathutil"

// node is a single A* search node. heapIndex == -1 means the node has
// already been popped and closed; closed nodes are never reopened even
// though the heuristic is inadmissible and could otherwise re-improve
// their distance.
type node struct {
	point    mathutil.Point
	parent   *node
	distance int
	score    int
	heapIndex int
}

// closedKey packs a 30-bit signed offset from source into source's
// frame: ten bits each of (x-sx), (y-sy), (z-sz), low to high. This
// bounds search radius to roughly +/-512 per axis relative to source.
func closedKey(p, source mathutil.Point) uint32 {
	enc := func(d int) uint32 { return uint32(d+512) & 0x3ff }
	dx := enc(p.X - source.X)
	dy := enc(p.Y - source.Y)
	dz := enc(p.Z - source.Z)
	return dx | dy<<10 | dz<<20
}
