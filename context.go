package triangle

// Stage identifies a shader stage.
type Stage int

const (
	// VertexStage runs per vertex and emits clip-space positions.
	VertexStage Stage = iota
	// FragmentStage runs per fragment and emits pixel colors.
	FragmentStage
)

// String returns the stage name used in diagnostics.
func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// Handles for GPU-side resources. The zero value of each type is never a
// valid live resource, so it doubles as the "absent" sentinel.
type (
	// Shader is a compiled shader object handle.
	Shader uint32
	// Program is a linked program handle.
	Program uint32
	// Buffer is a vertex buffer handle.
	Buffer uint32
	// Attrib is a vertex attribute slot resolved by name from a program.
	Attrib int32
)

// NoAttrib is the slot returned for an attribute name the linked program does
// not declare.
const NoAttrib Attrib = -1

// Context is the GPU command submission interface the renderer drives. It is
// the one external collaborator of this package; backend/opengl implements it
// on a real OpenGL context, and tests implement it in memory.
//
// All resources created through a Context are scoped to its lifetime. A
// Context is not safe for concurrent use; the renderer drives it from a
// single goroutine in strict sequence.
type Context interface {
	CreateShader(stage Stage) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)

	CreateBuffer() Buffer
	BindBuffer(b Buffer)
	// BufferData uploads data into the bound buffer as static draw data.
	BufferData(data []float32)
	DeleteBuffer(b Buffer)

	AttribLocation(p Program, name string) Attrib
	// VertexAttribPointer describes the bound buffer to the attribute slot:
	// the given number of float32 components per vertex, not normalized,
	// tightly packed, zero offset.
	VertexAttribPointer(a Attrib, components int32)
	EnableVertexAttribArray(a Attrib)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	// Clear clears the color buffer.
	Clear()
	// DrawTriangles submits count vertices starting at first, interpreted as
	// a triangle list.
	DrawTriangles(first, count int32)
}
