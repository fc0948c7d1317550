package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/achilleasa/glsteps/types"
)

var (
	ErrUnknownScene = errors.New("scene: unknown scene")
	ErrInvalidScene = errors.New("scene: invalid scene definition")
)

// Names of the float uniforms that receive the animation offset.
const (
	UniformXMove = "xMove"
	UniformYMove = "yMove"
)

// A Scene bundles everything the render loop needs to draw a single
// triangle-based example: shaders, geometry, clear colour, pacing and
// animation parameters.
type Scene struct {
	Name        string
	Description string

	// GLSL sources. Both are required when the scene has geometry.
	VertexShader   string
	FragmentShader string

	// Triangle list; every 3 vertices form a triangle.
	Vertices []types.Vec3

	ClearColor types.Vec4

	// Target frame rate. A zero value disables frame pacing.
	FPS float64

	Animation Animation
}

// Check that the scene definition can be rendered.
func (s *Scene) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScene)
	}

	if len(s.Vertices)%3 != 0 {
		return fmt.Errorf("%w: scene %q has %d vertices; expected a multiple of 3", ErrInvalidScene, s.Name, len(s.Vertices))
	}

	if len(s.Vertices) != 0 && (s.VertexShader == "" || s.FragmentShader == "") {
		return fmt.Errorf("%w: scene %q defines geometry but is missing a shader", ErrInvalidScene, s.Name)
	}

	if s.FPS < 0 || math.IsNaN(s.FPS) || math.IsInf(s.FPS, 0) {
		return fmt.Errorf("%w: scene %q has invalid fps %v", ErrInvalidScene, s.Name, s.FPS)
	}

	switch s.Animation.Kind {
	case AnimationNone:
		return nil
	case AnimationFixed:
	case AnimationDelta:
		if s.FPS == 0 {
			return fmt.Errorf("%w: scene %q uses delta animation without a target fps", ErrInvalidScene, s.Name)
		}
	default:
		return fmt.Errorf("%w: scene %q has unknown animation kind %q", ErrInvalidScene, s.Name, s.Animation.Kind)
	}

	if s.Animation.MaxOffset[0] <= 0 || s.Animation.MaxOffset[1] <= 0 {
		return fmt.Errorf("%w: scene %q has non-positive animation bounds %v", ErrInvalidScene, s.Name, s.Animation.MaxOffset)
	}

	return nil
}

// Returns true if the scene has geometry to draw.
func (s *Scene) HasGeometry() bool {
	return len(s.Vertices) != 0
}
