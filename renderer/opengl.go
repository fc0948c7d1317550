package renderer

import (
	"github.com/achilleasa/glsteps/log"
	"github.com/achilleasa/glsteps/scene"
	"github.com/achilleasa/glsteps/types"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// An interactive opengl renderer for a single scene.
type interactiveGLRenderer struct {
	scene *scene.Scene

	window  *Window
	program *Program
	mesh    *Mesh

	loop *frameLoop
}

// Open a window and upload the scene's shaders and geometry. The caller must
// invoke this from the main OS thread and Close the returned renderer.
func NewInteractive(sc *scene.Scene, opts Options) (Renderer, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if opts.Title == "" {
		opts.Title = sc.Name
	}

	r := &interactiveGLRenderer{scene: sc}

	var err error
	if r.window, err = NewWindow(opts); err != nil {
		return nil, err
	}

	if sc.HasGeometry() {
		r.mesh = NewMesh(sc.Vertices)

		// Core profiles only validate programs while a vertex array is bound.
		r.mesh.Bind()
		r.program, err = NewProgram(sc.VertexShader, sc.FragmentShader)
		r.mesh.Unbind()
		if err != nil {
			r.Close()
			return nil, err
		}
	}

	src, err := opts.clockSource()
	if err != nil {
		r.Close()
		return nil, err
	}

	if r.loop, err = newFrameLoop(sc, opts.effectiveFPS(sc), src, opts); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

func (r *interactiveGLRenderer) Render() error {
	if r.window.win == nil {
		return ErrWindowClosed
	}

	r.loop.run(r.window, r.drawFrame)
	return nil
}

func (r *interactiveGLRenderer) Stats() LoopStats {
	if r.loop == nil {
		return LoopStats{}
	}
	return r.loop.stats.stats
}

// Release resources in reverse creation order.
func (r *interactiveGLRenderer) Close() {
	if r.program != nil {
		r.program.Delete()
		r.program = nil
	}
	if r.mesh != nil {
		r.mesh.Delete()
		r.mesh = nil
	}
	if r.window != nil {
		r.window.Close()
	}
}

func (r *interactiveGLRenderer) drawFrame(offset types.Vec2) {
	cc := r.scene.ClearColor
	gl.ClearColor(cc[0], cc[1], cc[2], cc[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if r.program != nil {
		r.program.Use()
		r.program.SetFloat(scene.UniformXMove, offset[0])
		r.program.SetFloat(scene.UniformYMove, offset[1])
		r.mesh.Draw()
		r.program.Unuse()
	}

	if log.Enabled(log.Debug, "renderer") {
		for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
			logger.Debugf("opengl error: %s", glErrorName(code))
		}
	}
}
