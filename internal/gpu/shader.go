// Package gpu is the boundary adapter between the mesher's Geometry
// buffers and an OpenGL context: shader programs, texture uploads, and
// VBO/VAO-backed VoxelMeshHandles. None of this is exercised by the
// mesher, generator, or pathfinder themselves; it exists because
// something external has to actually draw their output.
package gpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shader is a linked OpenGL program.
type Shader struct {
	ID uint32
}

// CompileShader links a vertex+fragment program from source, panicking
// with a descriptive message on compile or link failure. Shader setup
// is a construction-time, unconditionally fatal error.
func CompileShader(vertexSrc, fragmentSrc string) *Shader {
	vs := compileStage(vertexSrc, gl.VERTEX_SHADER)
	fs := compileStage(fragmentSrc, gl.FRAGMENT_SHADER)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		panic(fmt.Sprintf("gpu: shader link failed: %s", programLog(program)))
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return &Shader{ID: program}
}

func compileStage(source string, stage uint32) uint32 {
	shader := gl.CreateShader(stage)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		panic(fmt.Sprintf("gpu: shader compile failed: %s", shaderLog(shader)))
	}
	return shader
}

func shaderLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	logStr := strings.Repeat("\x00", int(length+1))
	gl.GetShaderInfoLog(shader, length, nil, gl.Str(logStr))
	return logStr
}

func programLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	logStr := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(program, length, nil, gl.Str(logStr))
	return logStr
}

// Use activates the program.
func (s *Shader) Use() { gl.UseProgram(s.ID) }

// SetMatrix4 sets a mat4 uniform from a column-major float32 pointer.
func (s *Shader) SetMatrix4(name string, value *float32) {
	gl.UniformMatrix4fv(gl.GetUniformLocation(s.ID, gl.Str(name+"\x00")), 1, false, value)
}

// SetInt sets an integer uniform.
func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(gl.GetUniformLocation(s.ID, gl.Str(name+"\x00")), value)
}
