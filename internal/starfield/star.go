package starfield

import (
	"math"

	"github.com/iburimskiy/starfield/internal/render"
)

// StarPath returns the outline of a spiked star centred at (cx, cy): 2*spikes
// vertices alternating between the outer and inner radius, starting straight
// up (270°) and advancing π/spikes per vertex. The path is implicitly closed
// back to the first vertex.
func StarPath(cx, cy float64, spikes int, outer, inner float64) []render.Point {
	if spikes <= 0 {
		return nil
	}
	pts := make([]render.Point, 0, 2*spikes)
	rot := math.Pi / 2 * 3
	step := math.Pi / float64(spikes)
	for i := 0; i < spikes; i++ {
		pts = append(pts, render.Point{X: cx + math.Cos(rot)*outer, Y: cy + math.Sin(rot)*outer})
		rot += step
		pts = append(pts, render.Point{X: cx + math.Cos(rot)*inner, Y: cy + math.Sin(rot)*inner})
		rot += step
	}
	return pts
}
