package triangle

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Position is a vertex position in normalized device coordinates, roughly
// [-1, 1] on each axis.
type Position = mgl32.Vec2

// Color is an RGBA color with channels in [0, 1].
type Color = mgl32.Vec4

// Mesh is a triangle list held as parallel per-vertex attribute slices.
// Index i in Positions corresponds to index i in Colors; Validate checks
// that the slices agree in length.
type Mesh struct {
	Positions []Position
	Colors    []Color
}

// DefaultTriangle returns the canonical three-vertex mesh: a triangle
// spanning the bottom of clip space with a red, a green, and a blue corner.
func DefaultTriangle() Mesh {
	return Mesh{
		Positions: []Position{
			{-1, -1},
			{0, 0.5},
			{1, -1},
		},
		Colors: []Color{
			{1, 0, 0, 1},
			{0, 1, 0, 1},
			{0, 0, 1, 1},
		},
	}
}

// VertexCount returns the number of vertices in the mesh.
func (m Mesh) VertexCount() int {
	return len(m.Positions)
}

// Validate checks the structural invariant that every position has a
// matching color. A mismatch would otherwise be a silent rendering bug:
// the backend reads both buffers by vertex index.
func (m Mesh) Validate() error {
	if len(m.Positions) != len(m.Colors) {
		return fmt.Errorf("mesh has %d positions but %d colors", len(m.Positions), len(m.Colors))
	}
	return nil
}

// FlatPositions serializes the positions into the flat float32 layout the
// backend consumes: x0, y0, x1, y1, ...
func (m Mesh) FlatPositions() []float32 {
	out := make([]float32, 0, len(m.Positions)*positionComponents)
	for _, p := range m.Positions {
		out = append(out, p[:]...)
	}
	return out
}

// FlatColors serializes the colors into the flat float32 layout the backend
// consumes: r0, g0, b0, a0, r1, ...
func (m Mesh) FlatColors() []float32 {
	out := make([]float32, 0, len(m.Colors)*colorComponents)
	for _, c := range m.Colors {
		out = append(out, c[:]...)
	}
	return out
}
