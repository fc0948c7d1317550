package renderer

import "time"

type LoopStats struct {
	// Number of rendered frames.
	Frames uint64

	// Number of pacer polls that skipped the frame.
	SkippedPolls uint64

	// Delta statistics across rendered frames.
	MinDelta time.Duration
	MaxDelta time.Duration
	AvgDelta time.Duration

	// Wall time spent inside the render loop.
	Elapsed time.Duration
}

// Average rendered frames per second over the loop lifetime.
func (s LoopStats) FPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

type statsRecorder struct {
	stats LoopStats
	total time.Duration
}

func (r *statsRecorder) skip() {
	r.stats.SkippedPolls++
}

func (r *statsRecorder) frame(delta time.Duration) {
	if r.stats.Frames == 0 || delta < r.stats.MinDelta {
		r.stats.MinDelta = delta
	}
	if delta > r.stats.MaxDelta {
		r.stats.MaxDelta = delta
	}
	r.stats.Frames++
	r.total += delta
	r.stats.AvgDelta = r.total / time.Duration(r.stats.Frames)
}
