package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the drawing surface: a GLFW window whose OpenGL 4.1 core context
// is current on the calling goroutine. The caller must have locked the OS
// thread before creating one.
type Window struct {
	win *glfw.Window
}

// NewWindow initializes GLFW, opens a window with the given title and size,
// makes its context current, and loads the OpenGL function pointers.
func NewWindow(title string, width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return &Window{win: win}, nil
}

// FramebufferSize returns the surface size in pixels, which can differ from
// the requested window size on high-DPI displays.
func (w *Window) FramebufferSize() (width, height int) {
	return w.win.GetFramebufferSize()
}

// SetFramebufferSizeCallback registers fn to run when the pixel size changes.
func (w *Window) SetFramebufferSizeCallback(fn func(width, height int)) {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// WaitEvents blocks until at least one window event arrives.
func (w *Window) WaitEvents() {
	glfw.WaitEvents()
}

// Terminate destroys the window and shuts down GLFW.
func (w *Window) Terminate() {
	w.win.Destroy()
	glfw.Terminate()
}
