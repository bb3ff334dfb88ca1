package render

// Viewport is a vertical window of height View onto content of height
// Content, scrolled by Offset.
type Viewport struct {
	Offset  float64
	View    float64
	Content float64
}

// MaxOffset is the largest valid offset.
func (v Viewport) MaxOffset() float64 {
	return max(v.Content-v.View, 0)
}

// Scroll moves by delta and clamps to the content.
func (v *Viewport) Scroll(delta float64) {
	v.ScrollTo(v.Offset + delta)
}

// ScrollTo sets the offset, clamped to the content.
func (v *Viewport) ScrollTo(offset float64) {
	v.Offset = min(max(offset, 0), v.MaxOffset())
}

// Resize updates the view and content heights, keeping the offset valid.
func (v *Viewport) Resize(view, content float64) {
	v.View, v.Content = view, content
	v.ScrollTo(v.Offset)
}

// Progress returns how far the view has scrolled through the content, 0..1.
func (v Viewport) Progress() float64 {
	m := v.MaxOffset()
	if m == 0 {
		return 0
	}
	return v.Offset / m
}
