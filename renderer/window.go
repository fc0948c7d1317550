package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns a GLFW window and its OpenGL 3.3 core context. It must be
// created and used from the main OS thread.
type Window struct {
	win *glfw.Window
}

// Initialize GLFW, open a window and make its OpenGL context current.
func NewWindow(opts Options) (*Window, error) {
	var err error
	if err = glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %s", err.Error())
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w := &Window{}
	w.win, err = glfw.CreateWindow(int(opts.FrameW), int(opts.FrameH), opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not create opengl window: %s", err.Error())
	}
	w.win.MakeContextCurrent()

	if err = gl.Init(); err != nil {
		w.Close()
		return nil, fmt.Errorf("could not init opengl: %s", err.Error())
	}

	if version := gl.GetString(gl.VERSION); version == nil {
		logger.Warning("no valid opengl context after making it current")
	} else {
		logger.Infof("opengl version: %s", gl.GoStr(version))
		logger.Infof("renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
		logger.Infof("vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	}

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// The framebuffer may be larger than the window on high-dpi displays.
	bufferW, bufferH := w.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(bufferW), int32(bufferH))
	logger.Debugf("framebuffer size: %dx%d", bufferW, bufferH)

	w.win.SetKeyCallback(w.onKeyEvent)
	return w, nil
}

func (w *Window) ShouldClose() bool {
	return w.win == nil || w.win.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// Destroy the window and terminate GLFW. Calling Close more than once is a no-op.
func (w *Window) Close() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}

func (w *Window) onKeyEvent(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	if key == glfw.KeyEscape {
		win.SetShouldClose(true)
	}
}
