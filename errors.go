package triangle

import "fmt"

// CompileError reports a shader stage rejected by the backend compiler.
// Log carries the compiler's diagnostic text verbatim.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link. Log carries the linker's
// diagnostic text verbatim.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program linking failed: %s", e.Log)
}
