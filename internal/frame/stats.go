package frame

import "time"

// Stats records the last N frame intervals into a ring buffer so the host can
// show a smoothed frame rate.
type Stats struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
	last      time.Time
}

// NewStats keeps up to ringSize intervals.
func NewStats(ringSize int) *Stats {
	if ringSize < 1 {
		ringSize = 1
	}
	return &Stats{
		buffer: make([]time.Duration, ringSize),
	}
}

// Mark records the interval since the previous call. The first call only
// sets the reference time.
func (s *Stats) Mark(now time.Time) {
	if !s.last.IsZero() {
		s.buffer[s.nextIndex] = now.Sub(s.last)
		s.nextIndex++
		if s.nextIndex >= len(s.buffer) {
			s.nextIndex = 0
		}
		if s.filled < len(s.buffer) {
			s.filled++
		}
	}
	s.last = now
}

// Snapshot returns up to the last n intervals, oldest first.
func (s *Stats) Snapshot(n int) []time.Duration {
	if n > s.filled {
		n = s.filled
	}
	out := make([]time.Duration, 0, n)
	// Walk backwards from nextIndex - 1
	idx := s.nextIndex - 1
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(s.buffer) - 1
		}
		out = append(out, s.buffer[idx])
		idx--
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// FPS returns the mean frame rate over the recorded intervals, or 0 before
// any interval is known.
func (s *Stats) FPS() float64 {
	intervals := s.Snapshot(len(s.buffer))
	if len(intervals) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range intervals {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(len(intervals)) / total.Seconds()
}
