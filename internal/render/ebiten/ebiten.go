package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/starfield/internal/render"
)

// Target implements render.Target on an offscreen ebiten.Image. The host
// draws Image() onto the screen in its Draw pass.
type Target struct {
	img   *ebiten.Image
	white *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewTarget allocates a width x height offscreen image.
func NewTarget(width, height int) *Target {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Target{
		img:   ebiten.NewImage(max(width, 1), max(height, 1)),
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Image returns the backing image.
func (t *Target) Image() *ebiten.Image {
	return t.img
}

// Clear erases the image to transparent.
func (t *Target) Clear() {
	t.img.Clear()
}

// FillCircle draws an anti-aliased disc.
func (t *Target) FillCircle(x, y, r float64, clr color.NRGBA) {
	vector.DrawFilledCircle(t.img, float32(x), float32(y), float32(r), clr, true)
}

// FillPolygon fills ring as a fan around center in a single color.
func (t *Target) FillPolygon(center render.Point, ring []render.Point, clr color.NRGBA) {
	if len(ring) < 3 {
		return
	}
	t.fan(center, ring, clr, clr)
}

// FillRadialGradient fills a disc whose color runs from inner at the centre
// to outer at the rim. The GPU interpolates vertex colors linearly, which
// matches a two-stop canvas gradient.
func (t *Target) FillRadialGradient(x, y, r float64, inner, outer color.NRGBA) {
	if r <= 0 {
		return
	}
	t.fan(render.Point{X: x, Y: y}, render.Ring(x, y, r, render.CircleSegments), inner, outer)
}

// Resize reallocates the backing image; the old content is discarded.
func (t *Target) Resize(width, height int) {
	if t.img != nil {
		t.img.Deallocate()
	}
	t.img = ebiten.NewImage(max(width, 1), max(height, 1))
}

func (t *Target) fan(center render.Point, ring []render.Point, mid, rim color.NRGBA) {
	t.vertices = t.vertices[:0]
	t.vertices = append(t.vertices, vertex(center, mid))
	for _, p := range ring {
		t.vertices = append(t.vertices, vertex(p, rim))
	}
	t.indices = render.FanIndices(t.indices[:0], 0, len(ring))

	t.img.DrawTriangles(t.vertices, t.indices, t.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// vertex builds a solid-color vertex sampling the white pixel. Vertex colors
// are premultiplied.
func vertex(p render.Point, clr color.NRGBA) ebiten.Vertex {
	a := float32(clr.A) / 0xff
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 0xff * a,
		ColorG: float32(clr.G) / 0xff * a,
		ColorB: float32(clr.B) / 0xff * a,
		ColorA: a,
	}
}
