// Package camera turns raw pointer deltas into an orientation and a
// view-projection matrix, smoothing out sudden large deltas before
// integrating heading and pitch.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	degreesPerPixel = 0.066
	pitchEpsilon    = 0.01
	jerkThreshold   = 400.0
	jerkRatio       = 4.0
	maxZoom         = 10
)

// Camera owns the player's look orientation and the pointer-delta
// smoothing that feeds it.
type Camera struct {
	Position mgl32.Vec3
	heading  float64 // radians, wrapped to [0, 2*pi)
	pitch    float64 // radians, clamped to (-pi/2+eps, pi/2-eps)
	zoom     int     // integer zoom level, clamped to [0, maxZoom]

	lastDX, lastDY float64

	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

// New builds a camera with a standard 60-degree lens.
func New(width, height int) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// ApplyDelta jerk-smooths dx/dy, integrates heading and pitch, and
// adjusts zoom by dscroll.
func (c *Camera) ApplyDelta(dx, dy, dscroll float64) {
	dx = c.smooth(dx, c.lastDX)
	dy = c.smooth(dy, c.lastDY)
	c.lastDX, c.lastDY = dx, dy

	c.heading += dx * degreesPerPixel * math.Pi / 180
	for c.heading >= 2*math.Pi {
		c.heading -= 2 * math.Pi
	}
	for c.heading < 0 {
		c.heading += 2 * math.Pi
	}

	c.pitch += dy * degreesPerPixel * math.Pi / 180
	limit := math.Pi/2 - pitchEpsilon
	if c.pitch > limit {
		c.pitch = limit
	}
	if c.pitch < -limit {
		c.pitch = -limit
	}

	if dscroll > 0 {
		c.zoom++
	} else if dscroll < 0 {
		c.zoom--
	}
	if c.zoom < 0 {
		c.zoom = 0
	}
	if c.zoom > maxZoom {
		c.zoom = maxZoom
	}
}

// smooth implements the jerk-suppression rule: a single-frame pointer
// spike (magnitude over jerkThreshold and jerkRatio times the previous
// frame's delta) is replaced by the previous delta instead.
func (c *Camera) smooth(delta, last float64) float64 {
	if last != 0 && math.Abs(delta) > jerkThreshold && math.Abs(delta/last) > jerkRatio {
		return last
	}
	return delta
}

// Direction returns the unit +z vector rotated by pitch then heading.
func (c *Camera) Direction() mgl32.Vec3 {
	v := mgl32.Vec3{0, 0, 1}
	rot := mgl32.HomogRotate3DY(float32(c.heading)).Mul4(mgl32.HomogRotate3DX(float32(c.pitch)))
	out := rot.Mul4x1(v.Vec4(0))
	return mgl32.Vec3{out.X(), out.Y(), out.Z()}
}

// Zoom returns the current integer zoom level, [0, maxZoom].
func (c *Camera) Zoom() int { return c.zoom }

// ProjectionMatrix returns the perspective projection for this lens.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ViewMatrix looks from Position along Direction().
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	dir := c.Direction()
	return mgl32.LookAtV(c.Position, c.Position.Add(dir), mgl32.Vec3{0, 1, 0})
}

// Transform returns projection * view.
func (c *Camera) Transform() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// TransformFor returns the view-projection matrix for a mesh whose
// world position is offset; offset is subtracted from Position before
// building the view matrix, so the renderer can fold per-mesh world
// positions into the matrix rather than baking them into vertices.
func (c *Camera) TransformFor(offset mgl32.Vec3) mgl32.Mat4 {
	dir := c.Direction()
	pos := c.Position.Sub(offset)
	view := mgl32.LookAtV(pos, pos.Add(dir), mgl32.Vec3{0, 1, 0})
	return c.ProjectionMatrix().Mul4(view)
}
