package renderer

import (
	"fmt"
	"time"

	"github.com/achilleasa/glsteps/clock"
	"github.com/achilleasa/glsteps/scene"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// The time source used for frame pacing.
type ClockKind string

const (
	// Monotonic runtime clock.
	SystemClock ClockKind = "system"

	// GLFW timer.
	GLFWClock ClockKind = "glfw"

	// Monotonic runtime clock truncated to millisecond ticks.
	CoarseClock ClockKind = "coarse"
)

type Options struct {
	// Window dims.
	FrameW uint32
	FrameH uint32

	// Window title. Defaults to the scene name.
	Title string

	// Target frame rate. When positive it overrides the scene's own rate.
	FPS float64

	// Time to sleep after a skipped poll. A zero value busy-polls.
	Yield time.Duration

	// Stop after rendering this many frames. Zero renders until the window
	// is closed.
	MaxFrames uint64

	// Synchronize buffer swaps with the display refresh.
	VSync bool

	Clock ClockKind
}

// Returns the frame rate to pace the scene at; zero means unpaced.
func (o Options) effectiveFPS(sc *scene.Scene) float64 {
	if o.FPS > 0 {
		return o.FPS
	}
	return sc.FPS
}

// Create the time source selected by the options.
func (o Options) clockSource() (clock.Source, error) {
	switch o.Clock {
	case SystemClock, "":
		return clock.SystemSource(), nil
	case GLFWClock:
		return GLFWSource(), nil
	case CoarseClock:
		return clock.Truncate(clock.SystemSource(), time.Millisecond), nil
	}
	return nil, fmt.Errorf("renderer: unknown clock source %q", o.Clock)
}

// GLFWSource returns a time source backed by the GLFW timer. GLFW must be
// initialized before the source is sampled.
func GLFWSource() clock.Source {
	return clock.SourceFunc(func() time.Duration {
		return time.Duration(glfw.GetTime() * float64(time.Second))
	})
}
