// Package opengl provides an OpenGL 4.1 backend for the triangle package.
package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gl-hello/triangle"
)

// Context implements triangle.Context on the OpenGL context current on the
// calling goroutine. gl.Init must have run before NewContext.
//
// The core profile refuses to draw without a vertex array object, so Context
// owns a single VAO kept bound for its whole lifetime.
type Context struct {
	vao uint32
}

// NewContext creates a backend context and binds its vertex array object.
func NewContext() *Context {
	c := &Context{}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	return c
}

// Delete releases the context's vertex array object.
func (c *Context) Delete() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
}

func stageEnum(stage triangle.Stage) uint32 {
	if stage == triangle.FragmentStage {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func (c *Context) CreateShader(stage triangle.Stage) triangle.Shader {
	return triangle.Shader(gl.CreateShader(stageEnum(stage)))
}

func (c *Context) ShaderSource(s triangle.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (c *Context) CompileShader(s triangle.Shader) {
	gl.CompileShader(uint32(s))
}

func (c *Context) ShaderCompiled(s triangle.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ShaderInfoLog(s triangle.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	infoLog := make([]byte, logLength+1)
	gl.GetShaderInfoLog(uint32(s), logLength, nil, &infoLog[0])
	return string(infoLog[:logLength])
}

func (c *Context) DeleteShader(s triangle.Shader) {
	gl.DeleteShader(uint32(s))
}

func (c *Context) CreateProgram() triangle.Program {
	return triangle.Program(gl.CreateProgram())
}

func (c *Context) AttachShader(p triangle.Program, s triangle.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (c *Context) LinkProgram(p triangle.Program) {
	gl.LinkProgram(uint32(p))
}

func (c *Context) ProgramLinked(p triangle.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ProgramInfoLog(p triangle.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	infoLog := make([]byte, logLength+1)
	gl.GetProgramInfoLog(uint32(p), logLength, nil, &infoLog[0])
	return string(infoLog[:logLength])
}

func (c *Context) UseProgram(p triangle.Program) {
	gl.UseProgram(uint32(p))
}

func (c *Context) DeleteProgram(p triangle.Program) {
	gl.DeleteProgram(uint32(p))
}

func (c *Context) CreateBuffer() triangle.Buffer {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return triangle.Buffer(buf)
}

func (c *Context) BindBuffer(b triangle.Buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
}

func (c *Context) BufferData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (c *Context) DeleteBuffer(b triangle.Buffer) {
	buf := uint32(b)
	gl.DeleteBuffers(1, &buf)
}

func (c *Context) AttribLocation(p triangle.Program, name string) triangle.Attrib {
	return triangle.Attrib(gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00")))
}

func (c *Context) VertexAttribPointer(a triangle.Attrib, components int32) {
	if a == triangle.NoAttrib {
		return
	}
	gl.VertexAttribPointerWithOffset(uint32(a), components, gl.FLOAT, false, 0, 0)
}

func (c *Context) EnableVertexAttribArray(a triangle.Attrib) {
	if a == triangle.NoAttrib {
		return
	}
	gl.EnableVertexAttribArray(uint32(a))
}

func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (c *Context) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}
