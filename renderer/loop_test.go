package renderer

import (
	"testing"
	"time"

	"github.com/achilleasa/glsteps/clock"
	"github.com/achilleasa/glsteps/scene"
	"github.com/achilleasa/glsteps/types"
)

// A surface that advances a manual clock every time the loop checks whether to close.
type mockSurface struct {
	src       *clock.ManualSource
	tick      time.Duration
	maxChecks int

	checks int
	polls  int
	swaps  int
}

func (s *mockSurface) ShouldClose() bool {
	if s.checks >= s.maxChecks {
		return true
	}
	s.checks++
	s.src.Advance(s.tick)
	return false
}

func (s *mockSurface) PollEvents()  { s.polls++ }
func (s *mockSurface) SwapBuffers() { s.swaps++ }

func mustLookup(t *testing.T, name string) *scene.Scene {
	sc, err := scene.Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func TestPacedLoopSkipsUntilInterval(t *testing.T) {
	src := clock.NewManualSource(0)
	sc := mustLookup(t, "bounce")

	loop, err := newFrameLoop(sc, 60, src, Options{})
	if err != nil {
		t.Fatal(err)
	}

	// 5ms per iteration; 60fps accepts every 4th iteration (20ms).
	surface := &mockSurface{src: src, tick: 5 * time.Millisecond, maxChecks: 12}
	var offsets []types.Vec2
	loop.run(surface, func(offset types.Vec2) {
		offsets = append(offsets, offset)
	})

	stats := loop.stats.stats
	if stats.Frames != 3 || stats.SkippedPolls != 9 {
		t.Fatalf("expected 3 frames and 9 skipped polls; got %d and %d", stats.Frames, stats.SkippedPolls)
	}
	if surface.polls != 3 || surface.swaps != 3 {
		t.Fatalf("expected events to be polled and buffers swapped once per frame; got %d polls and %d swaps", surface.polls, surface.swaps)
	}
	if stats.MinDelta != 20*time.Millisecond || stats.MaxDelta != 20*time.Millisecond || stats.AvgDelta != 20*time.Millisecond {
		t.Fatalf("expected all deltas to be 20ms; got min %s max %s avg %s", stats.MinDelta, stats.MaxDelta, stats.AvgDelta)
	}
	if stats.Elapsed != 60*time.Millisecond {
		t.Fatalf("expected elapsed time 60ms; got %s", stats.Elapsed)
	}

	// Speed 0.5 units/s over 20ms frames.
	for index, offset := range offsets {
		exp := float32(index+1) * 0.5 * 0.02
		if diff := offset[0] - exp; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("[frame %d] expected x offset %f; got %f", index, exp, offset[0])
		}
	}
}

func TestUnpacedLoopRendersEveryIteration(t *testing.T) {
	src := clock.NewManualSource(0)
	sc := mustLookup(t, "bounce-fixed")

	loop, err := newFrameLoop(sc, 0, src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if loop.pacer != nil {
		t.Fatal("expected no pacer for an unpaced scene")
	}

	surface := &mockSurface{src: src, tick: time.Millisecond, maxChecks: 10}
	var last types.Vec2
	loop.run(surface, func(offset types.Vec2) { last = offset })

	stats := loop.stats.stats
	if stats.Frames != 10 || stats.SkippedPolls != 0 {
		t.Fatalf("expected 10 frames and no skipped polls; got %d and %d", stats.Frames, stats.SkippedPolls)
	}
	if stats.AvgDelta != time.Millisecond {
		t.Fatalf("expected average delta 1ms; got %s", stats.AvgDelta)
	}
	if exp := float32(10 * 0.001); last[0]-exp > 1e-6 || exp-last[0] > 1e-6 {
		t.Fatalf("expected x offset %f after 10 fixed steps; got %f", exp, last[0])
	}
}

func TestLoopHonorsFrameBudget(t *testing.T) {
	src := clock.NewManualSource(0)
	loop, err := newFrameLoop(mustLookup(t, "triangle"), 0, src, Options{MaxFrames: 4})
	if err != nil {
		t.Fatal(err)
	}

	surface := &mockSurface{src: src, tick: time.Millisecond, maxChecks: 100}
	loop.run(surface, func(types.Vec2) {})

	if loop.stats.stats.Frames != 4 {
		t.Fatalf("expected loop to stop after 4 frames; got %d", loop.stats.stats.Frames)
	}
}

func TestLoopYieldsOnSkippedPolls(t *testing.T) {
	src := clock.NewManualSource(0)
	loop, err := newFrameLoop(mustLookup(t, "bounce"), 50, src, Options{Yield: 2 * time.Millisecond, MaxFrames: 2})
	if err != nil {
		t.Fatal(err)
	}

	var slept []time.Duration
	loop.sleep = func(d time.Duration) {
		slept = append(slept, d)
		src.Advance(d)
	}

	// The surface itself does not move the clock; only yielding does.
	surface := &mockSurface{src: src, tick: 0, maxChecks: 100}
	loop.run(surface, func(types.Vec2) {})

	stats := loop.stats.stats
	if stats.Frames != 2 {
		t.Fatalf("expected 2 frames; got %d", stats.Frames)
	}
	// 20ms interval / 2ms yield = 10 skipped polls per frame.
	if stats.SkippedPolls != 20 || len(slept) != 20 {
		t.Fatalf("expected 20 skipped polls each followed by a yield; got %d polls and %d yields", stats.SkippedPolls, len(slept))
	}
	for index, d := range slept {
		if d != 2*time.Millisecond {
			t.Fatalf("[yield %d] expected 2ms sleep; got %s", index, d)
		}
	}
}

func TestZeroRateProducesUnpacedLoop(t *testing.T) {
	loop, err := newFrameLoop(mustLookup(t, "bounce"), 0, clock.NewManualSource(0), Options{})
	if err != nil {
		t.Fatalf("expected zero fps to produce an unpaced loop; got %v", err)
	}
	if loop.pacer != nil {
		t.Fatal("expected no pacer to be attached")
	}
}

func TestEffectiveFPS(t *testing.T) {
	sc := mustLookup(t, "bounce")

	if got := (Options{}).effectiveFPS(sc); got != 60 {
		t.Fatalf("expected scene fps 60; got %v", got)
	}
	if got := (Options{FPS: 144}).effectiveFPS(sc); got != 144 {
		t.Fatalf("expected override fps 144; got %v", got)
	}
}

func TestClockSource(t *testing.T) {
	for _, kind := range []ClockKind{"", SystemClock, CoarseClock, GLFWClock} {
		if _, err := (Options{Clock: kind}).clockSource(); err != nil {
			t.Fatalf("unexpected error for clock %q: %v", kind, err)
		}
	}

	if _, err := (Options{Clock: "sundial"}).clockSource(); err == nil {
		t.Fatal("expected error for unknown clock source")
	}
}

func TestLoopStatsFPS(t *testing.T) {
	stats := LoopStats{Frames: 120, Elapsed: 2 * time.Second}
	if stats.FPS() != 60 {
		t.Fatalf("expected 60 fps; got %v", stats.FPS())
	}
	if (LoopStats{Frames: 3}).FPS() != 0 {
		t.Fatal("expected zero fps when no time has elapsed")
	}
}

func TestGLErrorName(t *testing.T) {
	if got := glErrorName(0x502); got != "GL_INVALID_OPERATION" {
		t.Fatalf("expected GL_INVALID_OPERATION; got %s", got)
	}
	if got := glErrorName(0x1234); got != "GL_ERROR(0x1234)" {
		t.Fatalf("expected fallback name; got %s", got)
	}
}

func TestPacedLoopRecordsExactDeltas(t *testing.T) {
	src := clock.NewManualSource(0)
	loop, err := newFrameLoop(mustLookup(t, "triangle"), 60, src, Options{})
	if err != nil {
		t.Fatal(err)
	}

	tick := time.Duration(1<<55 + 3)
	surface := &mockSurface{src: src, tick: tick, maxChecks: 2}
	loop.run(surface, func(types.Vec2) {})

	stats := loop.stats.stats
	if stats.Frames != 2 || stats.MinDelta != tick || stats.MaxDelta != tick {
		t.Fatalf("expected 2 frames with a delta of exactly %d; got %d frames, min %d, max %d", tick, stats.Frames, stats.MinDelta, stats.MaxDelta)
	}
}
