package starfield

import (
	"image/color"

	"github.com/iburimskiy/starfield/internal/render"
)

type opKind int

const (
	opClear opKind = iota
	opCircle
	opPolygon
	opGradient
)

type op struct {
	kind   opKind
	x, y   float64
	r      float64
	ring   []render.Point
	fill   color.NRGBA
	outer  color.NRGBA
	center render.Point
}

// recorder is a render.Target that keeps every call made since the last
// Clear, plus a count of clears.
type recorder struct {
	ops     []op
	clears  int
	resizes int
}

func (r *recorder) Clear() {
	r.clears++
	r.ops = r.ops[:0]
}

func (r *recorder) FillCircle(x, y, radius float64, clr color.NRGBA) {
	r.ops = append(r.ops, op{kind: opCircle, x: x, y: y, r: radius, fill: clr})
}

func (r *recorder) FillPolygon(center render.Point, ring []render.Point, clr color.NRGBA) {
	r.ops = append(r.ops, op{kind: opPolygon, center: center, ring: ring, fill: clr})
}

func (r *recorder) FillRadialGradient(x, y, radius float64, inner, outer color.NRGBA) {
	r.ops = append(r.ops, op{kind: opGradient, x: x, y: y, r: radius, fill: inner, outer: outer})
}

func (r *recorder) Resize(width, height int) {
	r.resizes++
}

func (r *recorder) count(kind opKind) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}
