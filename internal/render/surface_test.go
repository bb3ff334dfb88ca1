package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTarget struct {
	resized [][2]int
}

func (s *stubTarget) Clear()                                       {}
func (s *stubTarget) FillCircle(x, y, r float64, clr color.NRGBA) {}
func (s *stubTarget) FillPolygon(center Point, ring []Point, clr color.NRGBA) {
}
func (s *stubTarget) FillRadialGradient(x, y, r float64, inner, outer color.NRGBA) {
}
func (s *stubTarget) Resize(width, height int) {
	s.resized = append(s.resized, [2]int{width, height})
}

func TestSurfaceResizeNotifies(t *testing.T) {
	target := &stubTarget{}
	s := NewSurface(target, 400, 200)
	require.NotNil(t, s.Canvas())

	calls := 0
	remove := s.OnResize(func() { calls++ })

	s.Resize(400, 200)
	assert.Equal(t, 0, calls, "same size must not notify")
	assert.Empty(t, target.resized)

	s.Resize(800, 600)
	assert.Equal(t, 1, calls)
	w, h := s.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, [][2]int{{800, 600}}, target.resized)

	remove()
	remove()
	s.Resize(100, 100)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Listeners())
}

func TestSurfaceListenerRemovesItself(t *testing.T) {
	s := NewSurface(&stubTarget{}, 10, 10)

	var remove func()
	calls := 0
	remove = s.OnResize(func() {
		calls++
		remove()
	})
	other := 0
	s.OnResize(func() { other++ })

	s.Resize(20, 20)
	s.Resize(30, 30)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestSurfaceWithoutTarget(t *testing.T) {
	s := NewSurface(nil, 10, 10)
	assert.Nil(t, s.Canvas())

	var nilSurface *Surface
	assert.Nil(t, nilSurface.Canvas())

	s.Resize(-5, 20)
	w, h := s.Size()
	assert.Equal(t, 0, w)
	assert.Equal(t, 20, h)
}
