package renderer

import (
	"errors"
	"fmt"
)

var (
	ErrShaderCompile   = errors.New("renderer: shader compilation failed")
	ErrProgramLink     = errors.New("renderer: shader program linking failed")
	ErrProgramValidate = errors.New("renderer: shader program validation failed")
	ErrNoProgram       = errors.New("renderer: could not create shader program")
	ErrWindowClosed    = errors.New("renderer: window already closed")
)

var glErrorNames = map[uint32]string{
	0x500: "GL_INVALID_ENUM",
	0x501: "GL_INVALID_VALUE",
	0x502: "GL_INVALID_OPERATION",
	0x503: "GL_STACK_OVERFLOW",
	0x504: "GL_STACK_UNDERFLOW",
	0x505: "GL_OUT_OF_MEMORY",
	0x506: "GL_INVALID_FRAMEBUFFER_OPERATION",
}

// Get a readable name for an opengl error code.
func glErrorName(code uint32) string {
	if name, ok := glErrorNames[code]; ok {
		return name
	}
	return fmt.Sprintf("GL_ERROR(0x%x)", code)
}
