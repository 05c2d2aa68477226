package triangle

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithMesh replaces the default triangle. The mesh is validated by New.
func WithMesh(m Mesh) Option {
	return func(r *Renderer) { r.mesh = m }
}

// WithClearColor sets the background color. Channels are clamped to [0, 1].
func WithClearColor(c mgl32.Vec4) Option {
	return func(r *Renderer) {
		for i, v := range c {
			c[i] = math32.Max(0, math32.Min(1, v))
		}
		r.clear = c
	}
}

// WithShaderSources overrides the built-in shader pair. The sources must
// declare the "position" and "color" vertex attributes for both mesh
// buffers to take effect.
func WithShaderSources(vertex, fragment string) Option {
	return func(r *Renderer) {
		r.vertexSrc = vertex
		r.fragmentSrc = fragment
	}
}

// WithLogger routes compile and link diagnostics to the given logger
// instead of slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}
