package scene

import (
	"github.com/achilleasa/glsteps/types"
)

type AnimationKind string

// Supported animation kinds.
const (
	// The geometry stays at the origin.
	AnimationNone AnimationKind = ""

	// The offset moves by Step every rendered frame regardless of elapsed time.
	AnimationFixed AnimationKind = "fixed"

	// The offset moves by Step units per second, scaled by the frame delta.
	AnimationDelta AnimationKind = "delta"
)

// Animation parameters for bouncing geometry back and forth inside
// [-MaxOffset, MaxOffset] on each axis.
type Animation struct {
	Kind      AnimationKind
	Step      types.Vec2
	MaxOffset types.Vec2
}

// An Animator advances the translation applied to a scene's geometry.
type Animator interface {
	// Advance the animation. The delta argument is the time in seconds since
	// the previous rendered frame.
	Update(delta float64)

	// Current translation.
	Offset() types.Vec2
}

// Create an animator for the supplied parameters.
func NewAnimator(anim Animation) Animator {
	if anim.Kind == AnimationNone {
		return staticAnimator{}
	}

	return &bounceAnimator{
		step:         anim.Step,
		maxOffset:    anim.MaxOffset,
		scaleByDelta: anim.Kind == AnimationDelta,
		positive:     [2]bool{true, true},
	}
}

type staticAnimator struct{}

func (staticAnimator) Update(float64)      {}
func (staticAnimator) Offset() types.Vec2 { return types.Vec2{} }

type bounceAnimator struct {
	offset    types.Vec2
	step      types.Vec2
	maxOffset types.Vec2

	// Movement direction per axis.
	positive [2]bool

	scaleByDelta bool
}

func (a *bounceAnimator) Update(delta float64) {
	step := a.step
	if a.scaleByDelta {
		step = step.Mul(float32(delta))
	}

	for axis := 0; axis < 2; axis++ {
		if a.positive[axis] {
			a.offset[axis] += step[axis]
		} else {
			a.offset[axis] -= step[axis]
		}

		// Only turn around while heading outwards. The overshoot is kept and a
		// long frame can leave the offset past the bound for several updates.
		outwards := a.positive[axis] == (a.offset[axis] > 0)
		if outwards && abs32(a.offset[axis]) >= a.maxOffset[axis] {
			a.positive[axis] = !a.positive[axis]
		}
	}
}

func (a *bounceAnimator) Offset() types.Vec2 {
	return a.offset
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
