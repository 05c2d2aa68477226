/*
Package triangle bootstraps a minimal GPU renderer: it compiles a vertex and
fragment shader pair, links them into a program, uploads per-vertex position
and color buffers, and submits a single triangle-list draw call.

# Overview

The package is split from its backend. All logic lives here against the
Context interface, which models the graphics API surface the renderer needs
(shader compilation, program linking, buffer upload, attribute layout,
viewport, clear, draw). backend/opengl implements Context on a real OpenGL
4.1 core context; tests implement it in memory.

The lifecycle is strictly linear: New compiles, links, and uploads; Render
clears and draws; Delete releases the GPU resources. There is no frame loop
and no shared state between renderers, so independent contexts yield fully
independent renderers.

# Quick Start

	// On the main thread, after runtime.LockOSThread:
	window, err := opengl.NewWindow("triangle", 800, 600)
	if err != nil {
	    return err
	}
	defer window.Terminate()

	ctx := opengl.NewContext()
	defer ctx.Delete()

	renderer, err := triangle.New(ctx)
	if err != nil {
	    return err // compile/link diagnostics already logged
	}
	defer renderer.Delete()

	w, h := window.FramebufferSize()
	renderer.Render(w, h)
	window.SwapBuffers()

# Error Handling

Compile and link failures are detected by polling the backend's status flags,
never by panics. They surface as *CompileError and *LinkError values carrying
the backend's diagnostic text, and the same text is emitted through the
renderer's slog logger. A failed stage aborts the bootstrap: no program is
linked against a missing shader and no draw call is issued.
*/
package triangle
