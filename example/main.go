// Example draws a single triangle with a red, a green, and a blue corner,
// colors interpolated across the face, on an opaque black background.
//
// Prerequisites:
//
//	OpenGL 4.1 capable GPU and the usual GL/X11 development headers
//	go run ./example/
//
// The example opens a GLFW window, bootstraps the renderer once, and then
// only redraws on window events so the triangle keeps tracking the
// framebuffer size.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/gl-hello/triangle"
	"github.com/gl-hello/triangle/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "triangle example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	window, err := opengl.NewWindow(windowTitle, windowWidth, windowHeight)
	if err != nil {
		return err
	}
	defer window.Terminate()

	ctx := opengl.NewContext()
	defer ctx.Delete()

	renderer, err := triangle.New(ctx)
	if err != nil {
		return fmt.Errorf("renderer setup: %w", err)
	}
	defer renderer.Delete()

	w, h := window.FramebufferSize()
	renderer.Render(w, h)
	window.SwapBuffers()

	for !window.ShouldClose() {
		window.WaitEvents()
		w, h = window.FramebufferSize()
		renderer.Render(w, h)
		window.SwapBuffers()
	}

	return nil
}
