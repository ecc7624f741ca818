// Package input polls glfw for the minimal signal the camera and
// scheduler need: frame-to-frame pointer deltas and a handful of
// movement keys.
package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Delta is one frame's raw pointer motion and scroll input.
type Delta struct {
	DX, DY  float64
	DScroll float64
}

// Keys is the boolean movement-key snapshot returned by SampleKeys.
// Only meaningful when Pointer is true (pointer-lock engaged).
type Keys struct {
	Up, Left, Down, Right bool
	Pointer               bool
}

// Poller tracks glfw cursor position across frames to derive Delta, and
// glfw key state to derive Keys.
type Poller struct {
	window      *glfw.Window
	lastX, lastY float64
	scrollAccum  float64
	initialized  bool
}

// NewPoller attaches a scroll callback to window and returns a Poller
// ready to sample frame deltas.
func NewPoller(window *glfw.Window) *Poller {
	p := &Poller{window: window}
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		p.scrollAccum += yoff
	})
	return p
}

// Sample returns this frame's pointer delta and resets the scroll
// accumulator. Call once per render frame.
func (p *Poller) Sample() Delta {
	x, y := p.window.GetCursorPos()
	if !p.initialized {
		p.lastX, p.lastY = x, y
		p.initialized = true
	}
	dx, dy := x-p.lastX, y-p.lastY
	p.lastX, p.lastY = x, y

	d := Delta{DX: dx, DY: dy, DScroll: p.scrollAccum}
	p.scrollAccum = 0
	return d
}

// SampleKeys reads the current state of the four movement keys plus
// whether the cursor is pointer-locked; callers should only act on
// Keys when Pointer is true.
func (p *Poller) SampleKeys() Keys {
	pressed := func(k glfw.Key) bool { return p.window.GetKey(k) == glfw.Press }
	return Keys{
		Up:      pressed(glfw.KeyW),
		Left:    pressed(glfw.KeyA),
		Down:    pressed(glfw.KeyS),
		Right:   pressed(glfw.KeyD),
		Pointer: p.window.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled,
	}
}
