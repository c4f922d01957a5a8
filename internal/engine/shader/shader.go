// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
)

// Kind is a programmable pipeline stage.
type Kind uint32

// Pipeline stages.
const (
	Vertex      Kind = gl.VERTEX_SHADER
	TessControl Kind = gl.TESS_CONTROL_SHADER
	TessEval    Kind = gl.TESS_EVALUATION_SHADER
	Fragment    Kind = gl.FRAGMENT_SHADER
)

// String returns the stage name used in error messages.
func (k Kind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case TessControl:
		return "tess control"
	case TessEval:
		return "tess evaluation"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage 0x%x", uint32(k))
	}
}

// Stage is one shader source for a program.
type Stage struct {
	Kind   Kind
	Name   string // file name, for diagnostics and directory overrides
	Source string
}

// WithOverrides replaces each stage's source with dir/Name when that file
// exists. An empty dir returns stages unchanged.
func WithOverrides(stages []Stage, dir string) ([]Stage, error) {
	if dir == "" {
		return stages, nil
	}

	out := make([]Stage, len(stages))
	copy(out, stages)
	for i := range out {
		path := filepath.Join(dir, out[i].Name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		out[i].Source = string(data)
	}
	return out, nil
}

// CompileProgram compiles every stage and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(stages ...Stage) (uint32, error) {
	if len(stages) == 0 {
		return 0, fmt.Errorf("no shader stages")
	}

	shaders := make([]uint32, 0, len(stages))
	defer func() {
		for _, s := range shaders {
			gl.DeleteShader(s)
		}
	}()

	for _, st := range stages {
		s, err := compileShader(st.Source, uint32(st.Kind), st.Kind.String())
		if err != nil {
			return 0, fmt.Errorf("%s: %w", st.Name, err)
		}
		shaders = append(shaders, s)
	}

	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", strings.TrimRight(log, "\x00"))
	}

	for _, s := range shaders {
		gl.DetachShader(program, s)
	}
	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

// Program is a linked program with cached uniform locations.
type Program struct {
	ID        uint32
	locations map[string]int32
}

// NewProgram compiles and links stages into a Program.
func NewProgram(stages ...Stage) (*Program, error) {
	id, err := CompileProgram(stages...)
	if err != nil {
		return nil, err
	}
	return &Program{ID: id, locations: make(map[string]int32)}, nil
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Uniform returns the location for name, or -1 if the uniform is inactive.
// Setting a -1 location is a no-op in GL.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := GetUniform(p.ID, name)
	p.locations[name] = loc
	return loc
}

// Require returns an error naming every uniform that is not active.
func (p *Program) Require(names ...string) error {
	var err error
	for _, name := range names {
		if p.Uniform(name) < 0 {
			err = multierr.Append(err, fmt.Errorf("uniform %q not found", name))
		}
	}
	return err
}

// SetInt sets an int or sampler uniform. The program must be current.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.Uniform(name), v)
}

// SetFloat sets a float uniform. The program must be current.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.Uniform(name), v)
}

// SetVec3 sets a vec3 uniform. The program must be current.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.Uniform(name), v[0], v[1], v[2])
}

// SetMat4 sets a mat4 uniform. The program must be current.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, &m[0])
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// GetUniform returns the uniform location for the given name.
// Returns -1 if the uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
