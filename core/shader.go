package core

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// maxLogLength bounds the diagnostic text read back from the driver
const maxLogLength = 512

// CompileError is returned when the driver rejects shader source. It
// carries the stage that failed and the compiler diagnostic.
type CompileError struct {
	Stage ShaderType
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}

// LinkError is returned when a program fails to link
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "program link: " + e.Log
}

// CompiledShader owns one compiled GPU shader stage. A value exists
// only for a successfully compiled stage, there is no partial state.
type CompiledShader struct {
	handle     uint32
	shaderType ShaderType
}

// CompileShader submits source text for the given stage and compiles
// it. On failure the shader object is released before the CompileError
// is returned.
func CompileShader(source string, shaderType ShaderType) (*CompiledShader, error) {
	var glType uint32
	switch shaderType {
	case VertexShaderType:
		glType = gl.VERTEX_SHADER
	case FragmentShaderType:
		glType = gl.FRAGMENT_SHADER
	default:
		return nil, fmt.Errorf("gl.CreateShader(): unknown shader type %d", shaderType)
	}

	handle := gl.CreateShader(glType)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		diag := shaderLog(handle)
		gl.DeleteShader(handle)
		return nil, &CompileError{Stage: shaderType, Log: diag}
	}

	return &CompiledShader{handle: handle, shaderType: shaderType}, nil
}

// Destroy releases the shader object. Safe to call once the owning
// program has linked.
func (s *CompiledShader) Destroy() {
	if s.handle != 0 {
		gl.DeleteShader(s.handle)
		s.handle = 0
	}
}

// Program owns one linked GPU program. A value exists only fully
// linked, so attribute and uniform lookups are always valid on it.
type Program struct {
	handle uint32
}

// LinkProgram attaches one vertex and one fragment stage, declares the
// fragment color output "outColor" at location 0 and links. On failure
// the program object is released before the LinkError is returned.
func LinkProgram(vertex, fragment *CompiledShader) (*Program, error) {
	if vertex.shaderType != VertexShaderType {
		return nil, fmt.Errorf("gl.AttachShader(): %s shader given for the vertex stage", vertex.shaderType)
	}
	if fragment.shaderType != FragmentShaderType {
		return nil, fmt.Errorf("gl.AttachShader(): %s shader given for the fragment stage", fragment.shaderType)
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertex.handle)
	gl.AttachShader(handle, fragment.handle)
	gl.BindFragDataLocation(handle, 0, gl.Str("outColor\x00"))
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		diag := programLog(handle)
		gl.DeleteProgram(handle)
		return nil, &LinkError{Log: diag}
	}

	return &Program{handle: handle}, nil
}

// Use makes this program the active rasterization program for all
// subsequent draw calls
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// AttribLocation looks up a vertex attribute by name
func (p *Program) AttribLocation(name string) (uint32, error) {
	loc := gl.GetAttribLocation(p.handle, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("gl.GetAttribLocation(): no active attribute %q", name)
	}
	return uint32(loc), nil
}

// UniformLocation looks up a uniform by name
func (p *Program) UniformLocation(name string) (int32, error) {
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("gl.GetUniformLocation(): no active uniform %q", name)
	}
	return loc, nil
}

// Destroy releases the program object
func (p *Program) Destroy() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

func shaderLog(handle uint32) string {
	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	if logLength > maxLogLength {
		logLength = maxLogLength
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func programLog(handle uint32) string {
	var logLength int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	if logLength > maxLogLength {
		logLength = maxLogLength
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}
