package pipeline

import "time"

// Metrics records per-stage timings and sizes for one Compile call.
type Metrics struct {
	ThresholdTime time.Duration
	ScaleTime     time.Duration
	SampleTime    time.Duration
	TraceTime     time.Duration

	ForegroundPixels int
	SampledPoints    int
	PathCount        int
	PathPoints       int
}

// Total is the wall time spent across all stages.
func (m Metrics) Total() time.Duration {
	return m.ThresholdTime + m.ScaleTime + m.SampleTime + m.TraceTime
}

// timed runs fn and stores its duration in *slot.
func timed(slot *time.Duration, fn func()) {
	start := time.Now()
	fn()
	*slot = time.Since(start)
}
