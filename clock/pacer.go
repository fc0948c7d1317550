package clock

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrInvalidConfiguration = errors.New("clock: frames per second must be a positive finite number")
)

// Pacer is a busy-poll frame limiter. The caller invokes Poll repeatedly from
// its render loop and skips all per-frame work while Poll returns true.
//
// A Pacer is not safe for concurrent use; it is meant to be owned by the
// goroutine driving the loop.
type Pacer struct {
	src Source

	// Target duration between two accepted frames.
	interval time.Duration

	// Timestamp of the last accepted frame.
	last time.Duration

	// Duration between the two most recent accepted frames.
	delta time.Duration
}

// Create a new pacer targeting fps frames per second. The pacer treats the
// moment of its construction as the last accepted frame.
func NewPacer(fps float64, src Source) (*Pacer, error) {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return nil, fmt.Errorf("%w; got %v", ErrInvalidConfiguration, fps)
	}
	if src == nil {
		src = SystemSource()
	}

	return &Pacer{
		src:      src,
		interval: time.Duration(float64(time.Second) / fps),
		last:     src.Now(),
	}, nil
}

// Poll samples the time source once and reports whether the current frame
// should be skipped. When enough time has elapsed since the last accepted
// frame, Poll records the elapsed time as the new delta and returns false.
func (p *Pacer) Poll() bool {
	now := p.src.Now()
	if now-p.last < p.interval {
		return true
	}

	p.delta = now - p.last
	p.last = now
	return false
}

// Delta returns the time between the two most recent accepted frames in seconds.
func (p *Pacer) Delta() float64 {
	return p.delta.Seconds()
}

// DeltaDuration returns the time between the two most recent accepted frames.
func (p *Pacer) DeltaDuration() time.Duration {
	return p.delta
}

// Interval returns the target frame interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Last returns the source timestamp of the last accepted frame.
func (p *Pacer) Last() time.Duration {
	return p.last
}
