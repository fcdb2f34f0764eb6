// Package core owns the GLFW window and its OpenGL context. Every call must
// happen on the main thread, which init locks.
package core

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"learn-opengl/config"
)

func init() {
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	cursorCb func(x, y float64)
	scrollCb func(xoff, yoff float64)
	resizeCb func(width, height int)
}

// NewWindow creates a window with a current OpenGL 4.1 core context.
func NewWindow(cfg config.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// Width and Height track the framebuffer, which is larger than the
	// requested window size on HiDPI displays.
	fbWidth, fbHeight := handle.GetFramebufferSize()
	w := &Window{
		Handle: handle,
		Width:  fbWidth,
		Height: fbHeight,
		Title:  cfg.Title,
	}

	handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.Width = width
		w.Height = height
		if w.resizeCb != nil {
			w.resizeCb(width, height)
		}
	})
	handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.cursorCb != nil {
			w.cursorCb(x, y)
		}
	})
	handle.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if w.scrollCb != nil {
			w.scrollCb(xoff, yoff)
		}
	})

	slog.Debug("window created",
		"width", cfg.Width, "height", cfg.Height,
		"framebuffer_width", fbWidth, "framebuffer_height", fbHeight,
		"vsync", cfg.VSync)
	return w, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) Close() {
	w.Handle.SetShouldClose(true)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

// Time is the number of seconds since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// CaptureCursor hides the cursor and keeps it inside the window so mouse
// movement turns into unbounded look deltas.
func (w *Window) CaptureCursor(capture bool) {
	mode := glfw.CursorNormal
	if capture {
		mode = glfw.CursorDisabled
	}
	w.Handle.SetInputMode(glfw.CursorMode, mode)
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) SetCursorPosCallback(cb func(x, y float64)) {
	w.cursorCb = cb
}

func (w *Window) SetScrollCallback(cb func(xoff, yoff float64)) {
	w.scrollCb = cb
}

func (w *Window) SetResizeCallback(cb func(width, height int)) {
	w.resizeCb = cb
}

const (
	KeyW      = int(glfw.KeyW)
	KeyA      = int(glfw.KeyA)
	KeyS      = int(glfw.KeyS)
	KeyD      = int(glfw.KeyD)
	KeyR      = int(glfw.KeyR)
	KeyTab    = int(glfw.KeyTab)
	KeyUp     = int(glfw.KeyUp)
	KeyDown   = int(glfw.KeyDown)
	KeyLeft   = int(glfw.KeyLeft)
	KeyRight  = int(glfw.KeyRight)
	KeyEscape = int(glfw.KeyEscape)
)
