package scene

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/achilleasa/glsteps/asset"
	"github.com/achilleasa/glsteps/log"
	"github.com/achilleasa/glsteps/types"
)

var logger = log.New("scene")

// On-disk representation of a scene.
//
//	name = "bounce"
//	fps = 60.0
//	clear_color = [0.0, 0.0, 0.0, 1.0]
//	vertices = [[-0.1, -0.1, 0.0], [0.1, -0.1, 0.0], [0.0, 0.1, 0.0]]
//
//	[shaders]
//	vertex_file = "shaders/bounce.vert"
//	fragment = "..."
//
//	[animation]
//	kind = "delta"
//	step = [0.5, 0.335]
//	max_offset = [0.9, 0.9]
type sceneFile struct {
	Name        string      `toml:"name"`
	Description string      `toml:"description"`
	FPS         float64     `toml:"fps"`
	ClearColor  []float32   `toml:"clear_color"`
	Vertices    [][]float32 `toml:"vertices"`

	Shaders struct {
		Vertex       string `toml:"vertex"`
		VertexFile   string `toml:"vertex_file"`
		Fragment     string `toml:"fragment"`
		FragmentFile string `toml:"fragment_file"`
	} `toml:"shaders"`

	Animation struct {
		Kind      string    `toml:"kind"`
		Step      []float32 `toml:"step"`
		MaxOffset []float32 `toml:"max_offset"`
	} `toml:"animation"`
}

// Read and validate a scene definition from a local file or http(s) URL.
// Shader files referenced by the scene are resolved relative to it.
func Read(pathToScene string) (*Scene, error) {
	res, err := asset.Open(pathToScene, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return parse(res)
}

// Parse a scene definition from a stream. Relative shader paths are resolved
// against name.
func Parse(name string, source io.Reader) (*Scene, error) {
	return parse(asset.FromStream(name, source))
}

func parse(res *asset.Resource) (*Scene, error) {
	data, err := asset.ReadAll(res)
	if err != nil {
		return nil, err
	}

	var file sceneFile
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidScene, res.Path(), err)
	}
	for _, key := range meta.Undecoded() {
		logger.Warningf("%s: ignoring unknown key %q", res.Path(), key.String())
	}

	sc := &Scene{
		Name:        file.Name,
		Description: file.Description,
		FPS:         file.FPS,
		ClearColor:  types.XYZW(0, 0, 0, 1),
	}

	if file.ClearColor != nil {
		if len(file.ClearColor) != 4 {
			return nil, fmt.Errorf("%w: %s: clear_color needs 4 components; got %d", ErrInvalidScene, res.Path(), len(file.ClearColor))
		}
		copy(sc.ClearColor[:], file.ClearColor)
	}

	for index, v := range file.Vertices {
		if len(v) != 3 {
			return nil, fmt.Errorf("%w: %s: vertex %d needs 3 components; got %d", ErrInvalidScene, res.Path(), index, len(v))
		}
		sc.Vertices = append(sc.Vertices, types.XYZ(v[0], v[1], v[2]))
	}

	if sc.VertexShader, err = shaderSource(res, "vertex", file.Shaders.Vertex, file.Shaders.VertexFile); err != nil {
		return nil, err
	}
	if sc.FragmentShader, err = shaderSource(res, "fragment", file.Shaders.Fragment, file.Shaders.FragmentFile); err != nil {
		return nil, err
	}

	switch strings.ToLower(file.Animation.Kind) {
	case "", "none":
		sc.Animation.Kind = AnimationNone
	case string(AnimationFixed):
		sc.Animation.Kind = AnimationFixed
	case string(AnimationDelta):
		sc.Animation.Kind = AnimationDelta
	default:
		return nil, fmt.Errorf("%w: %s: unknown animation kind %q", ErrInvalidScene, res.Path(), file.Animation.Kind)
	}

	if sc.Animation.Kind != AnimationNone {
		if sc.Animation.Step, err = vec2(res, "animation.step", file.Animation.Step); err != nil {
			return nil, err
		}
		if sc.Animation.MaxOffset, err = vec2(res, "animation.max_offset", file.Animation.MaxOffset); err != nil {
			return nil, err
		}
	}

	if err = sc.Validate(); err != nil {
		return nil, err
	}

	logger.Debugf("loaded scene %q from %s (%d vertices)", sc.Name, res.Path(), len(sc.Vertices))
	return sc, nil
}

func shaderSource(res *asset.Resource, stage, inline, file string) (string, error) {
	switch {
	case inline != "" && file != "":
		return "", fmt.Errorf("%w: %s: %s shader is defined both inline and as a file", ErrInvalidScene, res.Path(), stage)
	case file != "":
		data, err := asset.Load(file, res)
		if err != nil {
			return "", fmt.Errorf("scene: could not load %s shader: %w", stage, err)
		}
		return string(data), nil
	}
	return inline, nil
}

func vec2(res *asset.Resource, key string, v []float32) (types.Vec2, error) {
	if len(v) != 2 {
		return types.Vec2{}, fmt.Errorf("%w: %s: %s needs 2 components; got %d", ErrInvalidScene, res.Path(), key, len(v))
	}
	return types.XY(v[0], v[1]), nil
}
