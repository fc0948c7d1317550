package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// A linked and validated shader program.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// Compile the vertex and fragment stages, link them into a program and
// validate it against the current GL state.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id := gl.CreateProgram()
	if id == 0 {
		return nil, ErrNoProgram
	}

	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		gl.DeleteProgram(id)
		return nil, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		gl.DeleteProgram(id)
		return nil, err
	}

	gl.AttachShader(id, vertexShader)
	gl.AttachShader(id, fragmentShader)

	// Stages are reference counted by the program after attachment.
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.LinkProgram(id)
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(id)
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("%w: %s", ErrProgramLink, infoLog)
	}

	gl.ValidateProgram(id)
	gl.GetProgramiv(id, gl.VALIDATE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(id)
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("%w: %s", ErrProgramValidate, infoLog)
	}

	return &Program{
		id:       id,
		uniforms: make(map[string]int32),
	}, nil
}

// Look up a uniform location. Unknown or optimized-out uniforms yield -1,
// which GL silently ignores on upload.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}

	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		logger.Debugf("uniform %q not found in program %d", name, p.id)
	}
	p.uniforms[name] = loc
	return loc
}

// Upload a float uniform; the program must be in use.
func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.Uniform(name), value)
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

func (p *Program) Unuse() {
	gl.UseProgram(0)
}

func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("%w: %s stage: %s", ErrShaderCompile, stageName(shaderType), strings.TrimRight(infoLog, "\x00"))
	}

	return shader, nil
}

func programInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)

	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", shaderType)
}
