package triangle_test

import (
	"slices"

	"github.com/gl-hello/triangle"
)

// fakeContext is an in-memory triangle.Context for tests. It hands out
// sequential handles, records every call, and lets tests inject compile and
// link failures.
type fakeContext struct {
	nextHandle uint32

	// Failure injection: a non-empty diagnostic fails the stage or the link.
	compileLogs map[triangle.Stage]string
	linkLog     string

	shaderStages   map[triangle.Shader]triangle.Stage
	shaderSources  map[triangle.Shader]string
	compiled       map[triangle.Shader]bool
	deletedShaders []triangle.Shader

	programs        []triangle.Program
	attached        map[triangle.Program][]triangle.Shader
	linked          map[triangle.Program]bool
	linkCalls       int
	usedPrograms    []triangle.Program
	deletedPrograms []triangle.Program

	buffersCreated []triangle.Buffer
	boundBuffer    triangle.Buffer
	bufferData     map[triangle.Buffer][]float32
	deletedBuffers []triangle.Buffer

	attribSlots    map[string]triangle.Attrib
	missingAttribs map[string]bool
	pointerComps   map[triangle.Attrib]int32
	enabledAttribs []triangle.Attrib

	viewports  [][4]int32
	clearColor [4]float32
	clearCalls int
	draws      [][2]int32
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		compileLogs:    make(map[triangle.Stage]string),
		shaderStages:   make(map[triangle.Shader]triangle.Stage),
		shaderSources:  make(map[triangle.Shader]string),
		compiled:       make(map[triangle.Shader]bool),
		attached:       make(map[triangle.Program][]triangle.Shader),
		linked:         make(map[triangle.Program]bool),
		bufferData:     make(map[triangle.Buffer][]float32),
		attribSlots:    make(map[string]triangle.Attrib),
		missingAttribs: make(map[string]bool),
		pointerComps:   make(map[triangle.Attrib]int32),
	}
}

func (f *fakeContext) handle() uint32 {
	f.nextHandle++
	return f.nextHandle
}

func (f *fakeContext) CreateShader(stage triangle.Stage) triangle.Shader {
	s := triangle.Shader(f.handle())
	f.shaderStages[s] = stage
	return s
}

func (f *fakeContext) ShaderSource(s triangle.Shader, src string) {
	f.shaderSources[s] = src
}

func (f *fakeContext) CompileShader(s triangle.Shader) {
	f.compiled[s] = f.compileLogs[f.shaderStages[s]] == ""
}

func (f *fakeContext) ShaderCompiled(s triangle.Shader) bool {
	return f.compiled[s]
}

func (f *fakeContext) ShaderInfoLog(s triangle.Shader) string {
	return f.compileLogs[f.shaderStages[s]]
}

func (f *fakeContext) DeleteShader(s triangle.Shader) {
	f.deletedShaders = append(f.deletedShaders, s)
}

func (f *fakeContext) CreateProgram() triangle.Program {
	p := triangle.Program(f.handle())
	f.programs = append(f.programs, p)
	return p
}

func (f *fakeContext) AttachShader(p triangle.Program, s triangle.Shader) {
	f.attached[p] = append(f.attached[p], s)
}

func (f *fakeContext) LinkProgram(p triangle.Program) {
	f.linkCalls++
	f.linked[p] = f.linkLog == ""
}

func (f *fakeContext) ProgramLinked(p triangle.Program) bool {
	return f.linked[p]
}

func (f *fakeContext) ProgramInfoLog(p triangle.Program) string {
	return f.linkLog
}

func (f *fakeContext) UseProgram(p triangle.Program) {
	f.usedPrograms = append(f.usedPrograms, p)
}

func (f *fakeContext) DeleteProgram(p triangle.Program) {
	f.deletedPrograms = append(f.deletedPrograms, p)
}

func (f *fakeContext) CreateBuffer() triangle.Buffer {
	b := triangle.Buffer(f.handle())
	f.buffersCreated = append(f.buffersCreated, b)
	return b
}

func (f *fakeContext) BindBuffer(b triangle.Buffer) {
	f.boundBuffer = b
}

func (f *fakeContext) BufferData(data []float32) {
	f.bufferData[f.boundBuffer] = slices.Clone(data)
}

func (f *fakeContext) DeleteBuffer(b triangle.Buffer) {
	f.deletedBuffers = append(f.deletedBuffers, b)
}

func (f *fakeContext) AttribLocation(p triangle.Program, name string) triangle.Attrib {
	if f.missingAttribs[name] {
		return triangle.NoAttrib
	}
	slot, ok := f.attribSlots[name]
	if !ok {
		slot = triangle.Attrib(len(f.attribSlots))
		f.attribSlots[name] = slot
	}
	return slot
}

func (f *fakeContext) VertexAttribPointer(a triangle.Attrib, components int32) {
	if a == triangle.NoAttrib {
		return
	}
	f.pointerComps[a] = components
}

func (f *fakeContext) EnableVertexAttribArray(a triangle.Attrib) {
	if a == triangle.NoAttrib {
		return
	}
	f.enabledAttribs = append(f.enabledAttribs, a)
}

func (f *fakeContext) Viewport(x, y, width, height int32) {
	f.viewports = append(f.viewports, [4]int32{x, y, width, height})
}

func (f *fakeContext) ClearColor(r, g, b, a float32) {
	f.clearColor = [4]float32{r, g, b, a}
}

func (f *fakeContext) Clear() {
	f.clearCalls++
}

func (f *fakeContext) DrawTriangles(first, count int32) {
	f.draws = append(f.draws, [2]int32{first, count})
}
