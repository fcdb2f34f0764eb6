// Package input converts raw window events into the deltas the camera
// consumes. It holds no window handle; the window layer pushes events in.
package input

import reMath "learn-opengl/math"

// CursorTracker turns absolute cursor positions into per-event offsets.
type CursorTracker struct {
	lastX, lastY float64
	seen         bool
	released     bool
}

// Move records a cursor position and returns the offset from the previous
// one. Y grows downwards on screen, so it is flipped: moving the pointer up
// yields a positive Y offset. The first event only latches the position,
// which stops the view from jumping when the cursor enters the window.
func (t *CursorTracker) Move(x, y float64) reMath.Vec2 {
	if t.released {
		return reMath.Vec2{}
	}
	if !t.seen {
		t.lastX, t.lastY = x, y
		t.seen = true
		return reMath.Vec2{}
	}
	delta := reMath.Vec2{
		X: float32(x - t.lastX),
		Y: float32(t.lastY - y),
	}
	t.lastX, t.lastY = x, y
	return delta
}

// Reset forgets the last position so the next event only latches.
func (t *CursorTracker) Reset() {
	t.seen = false
}

// Release stops reporting offsets while the pointer is free to leave the
// window.
func (t *CursorTracker) Release() {
	t.released = true
}

// Capture resumes reporting offsets. The position is reset because the
// pointer has moved freely in the meantime.
func (t *CursorTracker) Capture() {
	t.released = false
	t.Reset()
}

// Captured reports whether Move currently yields offsets. A zero tracker is
// captured.
func (t *CursorTracker) Captured() bool {
	return !t.released
}

// ScrollAccumulator sums scroll offsets between frames.
type ScrollAccumulator struct {
	y float64
}

func (s *ScrollAccumulator) Add(xoff, yoff float64) {
	s.y += yoff
}

// Drain returns the vertical offset gathered since the last call.
func (s *ScrollAccumulator) Drain() float32 {
	y := s.y
	s.y = 0
	return float32(y)
}
