package triangle

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer owns the GPU resources for drawing one colored triangle list: a
// linked program and one buffer per vertex attribute. All resources live on
// the Context passed to New; two Renderers over two Contexts share nothing.
type Renderer struct {
	ctx    Context
	logger *slog.Logger

	mesh        Mesh
	clear       mgl32.Vec4
	vertexSrc   string
	fragmentSrc string

	program   Program
	posBuffer Buffer
	colBuffer Buffer
}

// New compiles the shader pair, links the program, and uploads the mesh
// attributes on the given context. The default configuration is the
// red/green/blue triangle on an opaque black background; options override it.
//
// Compile and link failures are logged with the backend diagnostic and
// returned as *CompileError or *LinkError; no draw-ready renderer exists in
// that case and no GPU resources are left behind.
func New(ctx Context, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		ctx:         ctx,
		logger:      slog.Default(),
		mesh:        DefaultTriangle(),
		clear:       mgl32.Vec4{0, 0, 0, 1},
		vertexSrc:   DefaultVertexShader,
		fragmentSrc: DefaultFragmentShader,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.mesh.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mesh: %w", err)
	}

	program, err := Link(ctx, r.vertexSrc, r.fragmentSrc)
	if err != nil {
		r.logFailure(err)
		return nil, err
	}
	r.program = program

	r.posBuffer = uploadAttribute(ctx, program, positionAttrib, positionComponents, r.mesh.FlatPositions())
	r.colBuffer = uploadAttribute(ctx, program, colorAttrib, colorComponents, r.mesh.FlatColors())

	return r, nil
}

// logFailure routes the backend diagnostic to the operator-visible log.
func (r *Renderer) logFailure(err error) {
	var compileErr *CompileError
	var linkErr *LinkError
	switch {
	case errors.As(err, &compileErr):
		r.logger.Error("shader compilation failed",
			"stage", compileErr.Stage.String(), "log", compileErr.Log)
	case errors.As(err, &linkErr):
		r.logger.Error("program linking failed", "log", linkErr.Log)
	default:
		r.logger.Error("renderer setup failed", "err", err)
	}
}

// Render draws the mesh once into a surface of the given pixel size: it
// configures the viewport, clears to the renderer's clear color, activates
// the program, and submits a single triangle-list draw starting at vertex 0.
// The mesh coordinates are in normalized device coordinates, so the triangle
// scales with the surface.
func (r *Renderer) Render(width, height int) {
	r.ctx.Viewport(0, 0, int32(width), int32(height))
	r.ctx.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	r.ctx.Clear()
	r.ctx.UseProgram(r.program)
	r.ctx.DrawTriangles(0, int32(r.mesh.VertexCount()))
}

// Delete releases the renderer's GPU resources. The renderer must not be
// used afterwards.
func (r *Renderer) Delete() {
	if r.colBuffer != 0 {
		r.ctx.DeleteBuffer(r.colBuffer)
		r.colBuffer = 0
	}
	if r.posBuffer != 0 {
		r.ctx.DeleteBuffer(r.posBuffer)
		r.posBuffer = 0
	}
	if r.program != 0 {
		r.ctx.DeleteProgram(r.program)
		r.program = 0
	}
}
