package render

import "image/color"

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Canvas is the 2D drawing context the animators paint into. It abstracts the
// underlying graphics backend so the star field runs in a window or a terminal
// without change.
type Canvas interface {
	// Clear erases the whole drawing area to transparent.
	Clear()

	// FillCircle fills a disc of radius r centred at (x, y).
	FillCircle(x, y, r float64, clr color.NRGBA)

	// FillPolygon fills the closed polygon ring. The polygon must be
	// star-shaped about center; it is filled as a fan from center.
	FillPolygon(center Point, ring []Point, clr color.NRGBA)

	// FillRadialGradient fills a disc of radius r centred at (x, y), shading
	// linearly from inner at the centre to outer at the rim.
	FillRadialGradient(x, y, r float64, inner, outer color.NRGBA)
}

// Target is a Canvas whose backing store the host can resize.
type Target interface {
	Canvas

	// Resize reallocates the backing store. Existing content is lost.
	Resize(width, height int)
}
