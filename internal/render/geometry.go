package render

import "math"

// CircleSegments is the ring resolution used for gradient discs.
const CircleSegments = 32

// Ring returns n points evenly spaced on the circle of radius r around
// (cx, cy), starting at angle 0.
func Ring(cx, cy, r float64, n int) []Point {
	if n < 3 {
		n = 3
	}
	pts := make([]Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		a := float64(i) * step
		pts[i] = Point{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r}
	}
	return pts
}

// FanIndices returns triangle indices for a fan whose vertex 0 is the centre
// and vertices 1..n are the closed ring. base offsets every index.
func FanIndices(dst []uint16, base uint16, n int) []uint16 {
	for i := 0; i < n; i++ {
		next := (i+1)%n + 1
		dst = append(dst, base, base+uint16(i+1), base+uint16(next))
	}
	return dst
}
