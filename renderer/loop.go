package renderer

import (
	"time"

	"github.com/achilleasa/glsteps/clock"
	"github.com/achilleasa/glsteps/scene"
	"github.com/achilleasa/glsteps/types"
)

// The window operations used by the render loop.
type surface interface {
	ShouldClose() bool
	PollEvents()
	SwapBuffers()
}

// frameLoop holds all mutable state of a running scene. It is owned by the
// renderer and only touched from the goroutine driving the loop.
type frameLoop struct {
	src   clock.Source
	pacer *clock.Pacer

	animator scene.Animator

	yield     time.Duration
	maxFrames uint64
	sleep     func(time.Duration)

	// Timestamp of the previous rendered frame; used when unpaced.
	lastFrame time.Duration

	stats statsRecorder
}

// Create a loop for the given scene. A pacer is attached only when fps is
// positive.
func newFrameLoop(sc *scene.Scene, fps float64, src clock.Source, opts Options) (*frameLoop, error) {
	l := &frameLoop{
		src:       src,
		animator:  scene.NewAnimator(sc.Animation),
		yield:     opts.Yield,
		maxFrames: opts.MaxFrames,
		sleep:     time.Sleep,
	}

	if fps > 0 {
		pacer, err := clock.NewPacer(fps, src)
		if err != nil {
			return nil, err
		}
		l.pacer = pacer
		logger.Infof("pacing %q at %.2f fps (interval %s)", sc.Name, fps, pacer.Interval())
	} else {
		logger.Infof("rendering %q unpaced", sc.Name)
	}

	l.lastFrame = src.Now()
	return l, nil
}

// Run the loop until the surface requests closing or the frame budget is
// exhausted. The draw callback receives the current animation offset.
func (l *frameLoop) run(win surface, draw func(offset types.Vec2)) {
	start := l.src.Now()
	defer func() {
		l.stats.stats.Elapsed = l.src.Now() - start
	}()

	for !win.ShouldClose() {
		if l.pacer != nil && l.pacer.Poll() {
			l.stats.skip()
			if l.yield > 0 {
				l.sleep(l.yield)
			}
			continue
		}

		delta := l.frameDelta()

		win.PollEvents()
		l.animator.Update(delta.Seconds())
		draw(l.animator.Offset())
		win.SwapBuffers()

		l.stats.frame(delta)
		if l.maxFrames != 0 && l.stats.stats.Frames >= l.maxFrames {
			logger.Debugf("reached frame budget of %d frames", l.maxFrames)
			return
		}
	}
}

func (l *frameLoop) frameDelta() time.Duration {
	if l.pacer != nil {
		return l.pacer.DeltaDuration()
	}

	now := l.src.Now()
	delta := now - l.lastFrame
	l.lastFrame = now
	return delta
}
