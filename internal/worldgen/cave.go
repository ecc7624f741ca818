package worldgen

import "math"

// carveCaves runs a three-level cave carver: each level samples a
// carver field and, if it clears CaveCutoff, overwrites a
// vertically-wobbling band of the column to empty.
func (g *Generator) carveCaves(x, z int, col Column) {
	p := g.params
	if !p.CaveEnabled {
		return
	}
	for i := 0; i < p.kCaveLevels; i++ {
		carver := g.caveCarvers[i].Call(float64(x)/p.CaveRadius, float64(z)/p.CaveRadius)
		if carver <= p.CaveCutoff {
			continue
		}

		dy := float64(p.SeaLevel) - float64(p.CaveDeltaY)*float64(p.kCaveLevels-1)/2 + float64(i*p.CaveDeltaY)
		wobble := g.caveWobbles[i].Call(float64(x)/p.CaveWaveRadius, float64(z)/p.CaveWaveRadius)
		offset := int(math.Floor(dy + p.CaveWaveHeight*wobble))

		blocks := int(math.Floor((carver - p.CaveCutoff) * p.CaveHeight))

		for y := offset - blocks; y <= offset+blocks+2; y++ {
			col.Overwrite(0, y) // 0 == empty block
		}
	}
}
