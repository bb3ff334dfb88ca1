package render

import "slices"

// Surface is a resizable drawing area owned by the host shell. Animators hold
// it to reach the canvas and subscribe to size changes.
type Surface struct {
	target        Target
	width, height int

	listeners map[int]func()
	nextID    int
}

// NewSurface wraps target with its current size. A nil target makes a
// surface without a drawing context.
func NewSurface(target Target, width, height int) *Surface {
	return &Surface{
		target:    target,
		width:     width,
		height:    height,
		listeners: map[int]func(){},
	}
}

// Canvas returns the drawing context, or nil when none is attached.
func (s *Surface) Canvas() Canvas {
	if s == nil || s.target == nil {
		return nil
	}
	return s.target
}

// Size returns the current width and height in pixels.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize changes the surface size and notifies resize listeners. Resizing to
// the current size does nothing.
func (s *Surface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	if s.target != nil {
		s.target.Resize(width, height)
	}

	// Listeners may unsubscribe while being notified.
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := s.listeners[id]; ok {
			fn()
		}
	}
}

// OnResize registers fn to run after every size change and returns a
// function that removes it.
func (s *Surface) OnResize(fn func()) (remove func()) {
	s.nextID++
	id := s.nextID
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

// Listeners returns the number of registered resize listeners.
func (s *Surface) Listeners() int {
	return len(s.listeners)
}
