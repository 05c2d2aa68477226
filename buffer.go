package triangle

// Shader attribute names and their per-vertex component counts.
const (
	positionAttrib     = "position"
	positionComponents = 2

	colorAttrib     = "color"
	colorComponents = 4
)

// uploadAttribute pushes one flat float array into a fresh GPU buffer and
// wires it to the named program input: static upload, layout description
// (float32 components, not normalized, tightly packed, zero offset), then
// slot activation for the draw call.
//
// A name the program does not declare resolves to NoAttrib; backends ignore
// layout and enable calls on that slot, so the draw proceeds with the
// attribute left at its default value. The built-in shaders declare both
// attributes, so this is only reachable with custom sources.
func uploadAttribute(ctx Context, program Program, name string, components int32, data []float32) Buffer {
	buf := ctx.CreateBuffer()
	ctx.BindBuffer(buf)
	ctx.BufferData(data)

	slot := ctx.AttribLocation(program, name)
	ctx.VertexAttribPointer(slot, components)
	ctx.EnableVertexAttribArray(slot)

	return buf
}
