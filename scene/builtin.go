package scene

import (
	"fmt"
	"sort"

	"github.com/achilleasa/glsteps/types"
)

const staticVertexShader = `
#version 330

layout (location = 0) in vec3 pos;

void main() {
	gl_Position = vec4(pos.x, pos.y, pos.z, 1.0);
}
`

const translatedVertexShader = `
#version 330

layout (location = 0) in vec3 pos;
uniform float xMove;
uniform float yMove;

void main() {
	gl_Position = vec4(pos.x + xMove, pos.y + yMove, pos.z, 1.0);
}
`

const redFragmentShader = `
#version 330

out vec4 colour;

void main() {
	colour = vec4(1.0, 0.0, 0.0, 1.0);
}
`

var (
	largeTriangle = []types.Vec3{
		{-0.5, -0.5, 0},
		{0.5, -0.5, 0},
		{0, 0.5, 0},
	}

	smallTriangle = []types.Vec3{
		{-0.1, -0.1, 0},
		{0.1, -0.1, 0},
		{0, 0.1, 0},
	}

	black = types.XYZW(0, 0, 0, 1)
)

// Builtin returns the catalogue of bundled scenes sorted by name. Each call
// returns fresh copies that the caller may modify.
func Builtin() []*Scene {
	list := []*Scene{
		{
			Name:        "blank",
			Description: "empty window cleared every frame",
			ClearColor:  black,
		},
		{
			Name:           "triangle",
			Description:    "static red triangle",
			VertexShader:   staticVertexShader,
			FragmentShader: redFragmentShader,
			Vertices:       append([]types.Vec3(nil), largeTriangle...),
			ClearColor:     black,
		},
		{
			Name:           "bounce-fixed",
			Description:    "triangle bouncing by a fixed amount per rendered frame",
			VertexShader:   translatedVertexShader,
			FragmentShader: redFragmentShader,
			Vertices:       append([]types.Vec3(nil), smallTriangle...),
			ClearColor:     black,
			Animation: Animation{
				Kind:      AnimationFixed,
				Step:      types.XY(0.001, 0.005),
				MaxOffset: types.XY(0.9, 0.9),
			},
		},
		{
			Name:           "bounce",
			Description:    "triangle bouncing at a frame-rate independent speed",
			VertexShader:   translatedVertexShader,
			FragmentShader: redFragmentShader,
			Vertices:       append([]types.Vec3(nil), smallTriangle...),
			ClearColor:     black,
			FPS:            60,
			Animation: Animation{
				Kind:      AnimationDelta,
				Step:      types.XY(0.5, 0.335),
				MaxOffset: types.XY(0.9, 0.9),
			},
		},
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Lookup a bundled scene by name.
func Lookup(name string) (*Scene, error) {
	for _, sc := range Builtin() {
		if sc.Name == name {
			return sc, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
}
