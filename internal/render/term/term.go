// Package term draws the star field into a terminal through tcell. Each cell
// stands for a CellWidth x CellHeight block of surface pixels; glyphs carry
// particle bodies and cell backgrounds carry glow.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/starfield/internal/render"
)

const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	glyphDot  = '·'
	glyphDisc = '•'
	glyphStar = '✦'
)

type cell struct {
	glyph rune
	fg    colorful.Color
	fgA   float64
	bg    colorful.Color
}

// Target implements render.Target on a tcell screen. Drawing calls only
// touch an in-memory grid; Present copies the grid to the screen.
type Target struct {
	screen     tcell.Screen
	background colorful.Color

	cols, rows int
	cells      []cell
}

// NewTarget sizes a grid to the screen. background is the color glow and
// glyphs are blended against.
func NewTarget(screen tcell.Screen, background colorful.Color) *Target {
	t := &Target{screen: screen, background: background}
	cols, rows := screen.Size()
	t.alloc(cols, rows)
	return t
}

// PixelSize converts a cell grid size into surface pixels.
func PixelSize(cols, rows int) (int, int) {
	return cols * CellWidth, rows * CellHeight
}

func (t *Target) alloc(cols, rows int) {
	t.cols, t.rows = max(cols, 0), max(rows, 0)
	t.cells = make([]cell, t.cols*t.rows)
	t.Clear()
}

// Clear resets every cell to the background.
func (t *Target) Clear() {
	for i := range t.cells {
		t.cells[i] = cell{bg: t.background}
	}
}

// Resize takes a size in surface pixels.
func (t *Target) Resize(width, height int) {
	t.alloc(width/CellWidth, height/CellHeight)
}

func (t *Target) at(x, y float64) *cell {
	cx, cy := int(math.Floor(x/CellWidth)), int(math.Floor(y/CellHeight))
	if cx < 0 || cy < 0 || cx >= t.cols || cy >= t.rows {
		return nil
	}
	return &t.cells[cy*t.cols+cx]
}

func toColorful(clr color.NRGBA) (colorful.Color, float64) {
	return colorful.Color{
		R: float64(clr.R) / 0xff,
		G: float64(clr.G) / 0xff,
		B: float64(clr.B) / 0xff,
	}, float64(clr.A) / 0xff
}

// glyph keeps the brightest body drawn into a cell.
func (t *Target) glyph(x, y float64, g rune, clr color.NRGBA) {
	c := t.at(x, y)
	if c == nil {
		return
	}
	col, a := toColorful(clr)
	if c.glyph != 0 && a < c.fgA {
		return
	}
	c.glyph, c.fg, c.fgA = g, col, a
}

// FillCircle marks the cell under (x, y) with a dot sized by r.
func (t *Target) FillCircle(x, y, r float64, clr color.NRGBA) {
	g := glyphDot
	if r >= 1 {
		g = glyphDisc
	}
	t.glyph(x, y, g, clr)
}

// FillPolygon marks the cell under center with a star glyph.
func (t *Target) FillPolygon(center render.Point, ring []render.Point, clr color.NRGBA) {
	t.glyph(center.X, center.Y, glyphStar, clr)
}

// FillRadialGradient tints the background of every cell whose centre lies
// inside the disc.
func (t *Target) FillRadialGradient(x, y, r float64, inner, outer color.NRGBA) {
	if r <= 0 {
		return
	}
	ic, ia := toColorful(inner)
	oc, oa := toColorful(outer)

	// Glow radii are small next to a cell, so the home cell always takes the
	// inner color.
	home := t.at(x, y)
	if home != nil {
		home.bg = home.bg.BlendRgb(ic, ia)
	}

	minX := int(math.Floor((x - r) / CellWidth))
	maxX := int(math.Floor((x + r) / CellWidth))
	minY := int(math.Floor((y - r) / CellHeight))
	maxY := int(math.Floor((y + r) / CellHeight))
	for cy := max(minY, 0); cy <= min(maxY, t.rows-1); cy++ {
		for cx := max(minX, 0); cx <= min(maxX, t.cols-1); cx++ {
			c := &t.cells[cy*t.cols+cx]
			if c == home {
				continue
			}
			px := float64(cx*CellWidth) + CellWidth/2
			py := float64(cy*CellHeight) + CellHeight/2
			d := math.Hypot(px-x, py-y) / r
			if d >= 1 {
				continue
			}
			col := ic.BlendRgb(oc, d)
			a := ia + (oa-ia)*d
			c.bg = c.bg.BlendRgb(col, a)
		}
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Present writes the grid to the screen and shows it.
func (t *Target) Present() {
	for cy := 0; cy < t.rows; cy++ {
		for cx := 0; cx < t.cols; cx++ {
			c := t.cells[cy*t.cols+cx]
			style := tcell.StyleDefault.Background(toTcell(c.bg))
			g := ' '
			if c.glyph != 0 {
				g = c.glyph
				style = style.Foreground(toTcell(c.bg.BlendRgb(c.fg, c.fgA)))
			}
			t.screen.SetContent(cx, cy, g, nil, style)
		}
	}
	t.screen.Show()
}

// Cells returns the grid size.
func (t *Target) Cells() (int, int) {
	return t.cols, t.rows
}
