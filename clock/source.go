package clock

import "time"

// Source provides monotonic timestamps expressed as an offset from an
// arbitrary, source-specific epoch.
type Source interface {
	Now() time.Duration
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() time.Duration

func (f SourceFunc) Now() time.Duration {
	return f()
}

// SystemSource returns a source backed by the runtime's monotonic clock. Its
// epoch is the time of the call.
func SystemSource() Source {
	epoch := time.Now()
	return SourceFunc(func() time.Duration {
		return time.Since(epoch)
	})
}

// Truncate wraps src so that its readings are rounded down to a multiple of
// resolution. Use it to model coarse clocks such as a millisecond tick counter.
func Truncate(src Source, resolution time.Duration) Source {
	if resolution <= 1 {
		return src
	}
	return SourceFunc(func() time.Duration {
		return src.Now().Truncate(resolution)
	})
}

// ManualSource is a Source that only moves when told to. It is used for
// headless simulations and tests.
type ManualSource struct {
	now time.Duration
}

// Create a manual source whose first reading is start.
func NewManualSource(start time.Duration) *ManualSource {
	return &ManualSource{now: start}
}

func (s *ManualSource) Now() time.Duration {
	return s.now
}

// Advance moves the clock forward by d. Negative values are ignored so that
// the source stays monotonic.
func (s *ManualSource) Advance(d time.Duration) {
	if d > 0 {
		s.now += d
	}
}
