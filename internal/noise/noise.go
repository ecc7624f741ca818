// Package noise provides the two coherent-noise composers the world
// generator is built on: a fractal (multi-octave) composer and a ridge
// composer, both sitting on top of github.com/aquilax/go-perlin rather
// than a hand-rolled lattice.
//
// Each composer is a small struct holding its per-octave generators and
// parameters with a call method. The seed counter is threaded through
// construction as an explicit parameter rather than hidden global
// state, so two generators in the same process never share it.
package noise

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// perlinAlpha/perlinBeta are smoothing/frequency constants for the
// underlying go-perlin instances; go-perlin has no "standard" default,
// so one pair is pinned and reused everywhere noise is sampled.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = int32(3)
)

// SeedCounter hands out one seed per call to a noise factory, drawn
// from a monotonic counter. Callers that want reproducible output
// across runs construct one explicitly with NewSeedCounterFrom and pass
// it to every composer constructor, rather than relying on a package
// global.
type SeedCounter struct {
	next int64
}

// NewSeedCounter creates a counter initialized from a random 30-bit
// value. Use NewSeedCounterFrom for deterministic seeding.
func NewSeedCounter() *SeedCounter {
	return NewSeedCounterFrom(rand.Int63n(1 << 30))
}

// NewSeedCounterFrom creates a counter starting at the given seed,
// letting callers reproduce a specific generator run.
func NewSeedCounterFrom(seed int64) *SeedCounter {
	return &SeedCounter{next: seed}
}

// take consumes and returns the next seed.
func (c *SeedCounter) take() int64 {
	s := c.next
	c.next++
	return s
}

func newPerlin(seed int64) *perlin.Perlin {
	return perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)
}

// sample2D returns a single raw Perlin sample, roughly in [-1, 1];
// go-perlin's Noise2D is not guaranteed to stay inside that band for all
// inputs and no clamping is applied here.
func sample2D(p *perlin.Perlin, x, z float64) float64 {
	return p.Noise2D(x, z)
}

// Fractal is a fractal Perlin-style composer:
// f(x,z) = scale * sum_i octaves persistence^i * noise(x/spread*lac^i, z/spread*lac^i) + offset.
type Fractal struct {
	offset      float64
	scale       float64
	spread      float64
	octaves     int
	persistence float64
	lacunarity  float64
	layers      []*perlin.Perlin // one independent generator per octave
}

// NewFractal constructs a fractal composer, consuming one seed per octave
// from counter.
func NewFractal(counter *SeedCounter, offset, scale, spread float64, octaves int, persistence, lacunarity float64) *Fractal {
	f := &Fractal{
		offset: offset, scale: scale, spread: spread,
		octaves: octaves, persistence: persistence, lacunarity: lacunarity,
		layers: make([]*perlin.Perlin, octaves),
	}
	for i := 0; i < octaves; i++ {
		f.layers[i] = newPerlin(counter.take())
	}
	return f
}

// Call evaluates the composer at world coordinates (x, z).
func (f *Fractal) Call(x, z float64) float64 {
	sum := 0.0
	for i := 0; i < f.octaves; i++ {
		freq := math.Pow(f.lacunarity, float64(i))
		sample := sample2D(f.layers[i], x/f.spread*freq, z/f.spread*freq)
		sum += sample * math.Pow(f.persistence, float64(i))
	}
	return f.scale*sum + f.offset
}

// ridgeOctaves is the fixed octave count for Ridge.
const ridgeOctaves = 4

// Ridge is a ridge composer:
// f(x,z) = sum_{i=0}^{3} (1 - |noise(x*s, z*s)|) * persistence^i, s doubling per octave from scale.
type Ridge struct {
	persistence float64
	scale       float64
	layers      [ridgeOctaves]*perlin.Perlin
}

// NewRidge constructs a ridge composer, consuming ridgeOctaves seeds from
// counter.
func NewRidge(counter *SeedCounter, persistence, scale float64) *Ridge {
	r := &Ridge{persistence: persistence, scale: scale}
	for i := range r.layers {
		r.layers[i] = newPerlin(counter.take())
	}
	return r
}

// Call evaluates the composer at world coordinates (x, z).
func (r *Ridge) Call(x, z float64) float64 {
	sum := 0.0
	s := r.scale
	for i := 0; i < ridgeOctaves; i++ {
		n := sample2D(r.layers[i], x*s, z*s)
		sum += (1 - math.Abs(n)) * math.Pow(r.persistence, float64(i))
		s *= 2
	}
	return sum
}
