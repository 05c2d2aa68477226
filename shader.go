package triangle

// Built-in shader pair for the colored triangle. The vertex stage passes
// positions through in clip space and hands the per-vertex color to the
// fragment stage as a varying, which the rasterizer interpolates across the
// face. Attributes are resolved by name, so no layout qualifiers.
const DefaultVertexShader = `
#version 410 core
in vec2 position;
in vec4 color;

out vec4 vColor;

void main() {
    gl_Position = vec4(position, 0.0, 1.0);
    vColor = color;
}
`

const DefaultFragmentShader = `
#version 410 core
in vec4 vColor;

out vec4 fragColor;

void main() {
    fragColor = vColor;
}
`

// Compile compiles one shader stage on the given context. Status is polled
// after compilation; on failure the partially created shader object is
// deleted and the backend diagnostic is returned inside a *CompileError.
func Compile(ctx Context, stage Stage, source string) (Shader, error) {
	shader := ctx.CreateShader(stage)
	ctx.ShaderSource(shader, source)
	ctx.CompileShader(shader)

	if !ctx.ShaderCompiled(shader) {
		infoLog := ctx.ShaderInfoLog(shader)
		ctx.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: infoLog}
	}
	return shader, nil
}

// Link compiles a vertex and fragment source pair and links the stages into a
// program. A compile failure in either stage aborts the link; nothing is ever
// attached to a program that is missing a stage. The shader objects are
// deleted once attached (the program owns the linked stages). On link failure
// the program object is deleted and the linker diagnostic is returned inside
// a *LinkError.
func Link(ctx Context, vertexSrc, fragmentSrc string) (Program, error) {
	vert, err := Compile(ctx, VertexStage, vertexSrc)
	if err != nil {
		return 0, err
	}

	frag, err := Compile(ctx, FragmentStage, fragmentSrc)
	if err != nil {
		ctx.DeleteShader(vert)
		return 0, err
	}

	program := ctx.CreateProgram()
	ctx.AttachShader(program, vert)
	ctx.AttachShader(program, frag)
	ctx.LinkProgram(program)

	ctx.DeleteShader(vert)
	ctx.DeleteShader(frag)

	if !ctx.ProgramLinked(program) {
		infoLog := ctx.ProgramInfoLog(program)
		ctx.DeleteProgram(program)
		return 0, &LinkError{Log: infoLog}
	}
	return program, nil
}
