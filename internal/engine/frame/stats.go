package frame

import "time"

// Stats accumulates frame counts over a reporting window.
type Stats struct {
	window  time.Duration
	elapsed time.Duration
	frames  int
	work    time.Duration
}

// Report is a summary of one finished window.
type Report struct {
	Frames  int
	FPS     float64
	AvgWork time.Duration
}

// NewStats creates a stats accumulator that reports once per window.
func NewStats(window time.Duration) *Stats {
	return &Stats{window: window}
}

// Add records a frame. It returns a report and true when the window fills,
// then starts a new window.
func (s *Stats) Add(t Timing) (Report, bool) {
	s.frames++
	s.elapsed += t.Duration
	s.work += t.Work
	if s.elapsed < s.window {
		return Report{}, false
	}

	r := Report{
		Frames:  s.frames,
		FPS:     float64(s.frames) / s.elapsed.Seconds(),
		AvgWork: s.work / time.Duration(s.frames),
	}
	s.frames = 0
	s.elapsed = 0
	s.work = 0
	return r, true
}
