package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsFPS(t *testing.T) {
	s := NewStats(10)
	assert.Zero(t, s.FPS())

	now := time.Unix(0, 0)
	s.Mark(now)
	assert.Zero(t, s.FPS())

	for i := 0; i < 25; i++ {
		now = now.Add(time.Second / 50)
		s.Mark(now)
	}
	assert.InDelta(t, 50, s.FPS(), 1e-6)
	assert.Len(t, s.Snapshot(100), 10)
}

func TestStatsSnapshotOrder(t *testing.T) {
	s := NewStats(3)
	now := time.Unix(0, 0)
	s.Mark(now)
	for i := 1; i <= 4; i++ {
		now = now.Add(time.Duration(i) * time.Millisecond)
		s.Mark(now)
	}

	assert.Equal(t, []time.Duration{2 * time.Millisecond, 3 * time.Millisecond, 4 * time.Millisecond}, s.Snapshot(3))
	assert.Equal(t, []time.Duration{3 * time.Millisecond, 4 * time.Millisecond}, s.Snapshot(2))
	assert.Empty(t, NewStats(0).Snapshot(5))
}
