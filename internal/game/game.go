package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/starfield/internal/config"
	"github.com/iburimskiy/starfield/internal/frame"
	"github.com/iburimskiy/starfield/internal/render"
	renderebiten "github.com/iburimskiy/starfield/internal/render/ebiten"
	"github.com/iburimskiy/starfield/internal/starfield"
	"github.com/iburimskiy/starfield/internal/theme"
)

type pickResult struct {
	name theme.Name
	err  error
}

// Game is the desktop shell: a dark page with a drifting star field behind
// everything and a denser hero field in the top band.
type Game struct {
	cfg   *config.Config
	loop  *frame.Loop
	stats *frame.Stats
	theme theme.Name

	width, height int
	viewport      render.Viewport

	pageTarget  *renderebiten.Target
	pageSurface *render.Surface
	page        *starfield.Animator

	heroTarget  *renderebiten.Target
	heroSurface *render.Surface
	hero        *starfield.Animator

	background *ebiten.Image

	// input edge detection
	prevKey map[ebiten.Key]bool

	// theme picker dialog
	picks   chan pickResult
	picking bool

	lastErr error
}

// NewGame builds the shell and mounts both star fields.
func NewGame(cfg *config.Config) *Game {
	g := &Game{
		cfg:     cfg,
		loop:    frame.NewLoop(),
		stats:   frame.NewStats(config.FrameStatsSize),
		theme:   cfg.Theme,
		width:   cfg.Width,
		height:  cfg.Height,
		prevKey: map[ebiten.Key]bool{},
		picks:   make(chan pickResult, 1),
	}
	if !theme.Known(g.theme) {
		log.Printf("unknown theme %q, using each field's default color", g.theme)
	}

	pw, ph := g.pageSize()
	g.pageTarget = renderebiten.NewTarget(pw, ph)
	g.pageSurface = render.NewSurface(g.pageTarget, pw, ph)

	hw, hh := g.heroSize()
	g.heroTarget = renderebiten.NewTarget(hw, hh)
	g.heroSurface = render.NewSurface(g.heroTarget, hw, hh)

	g.viewport = render.Viewport{View: float64(g.height), Content: float64(ph)}
	g.mount()
	g.buildBackground()
	return g
}

func (g *Game) pageSize() (int, int) {
	return g.width, g.height * g.cfg.PageFactor
}

func (g *Game) heroSize() (int, int) {
	return g.width, g.cfg.HeroHeight
}

// mount creates and starts an animator per surface for the current theme.
func (g *Game) mount() {
	g.page = starfield.New(g.pageSurface, g.theme, starfield.FullPage(g.cfg.Count), starfield.WithScheduler(g.loop))
	g.hero = starfield.New(g.heroSurface, g.theme, starfield.Hero(), starfield.WithScheduler(g.loop))
	g.page.Start()
	g.hero.Start()
}

func (g *Game) unmount() {
	if g.page != nil {
		g.page.Stop()
	}
	if g.hero != nil {
		g.hero.Stop()
	}
}

// SetTheme switches the theme color. The animators resolve their color once,
// so both are torn down and re-created.
func (g *Game) SetTheme(name theme.Name) {
	if name == g.theme {
		return
	}
	log.Printf("theme: %s -> %s", g.theme, name)
	g.theme = name
	g.unmount()
	g.mount()
	g.buildBackground()
}

// Theme returns the current theme name.
func (g *Game) Theme() theme.Name {
	return g.theme
}

// tint is the page field's resolved color, unknown themes included.
func (g *Game) tint() theme.RGB {
	return g.page.Color()
}

func (g *Game) buildBackground() {
	if g.background != nil {
		g.background.Deallocate()
	}
	g.background = ebiten.NewImage(max(g.width, 1), max(g.height, 1))
	tint := g.tint()
	for y := 0; y < g.height; y++ {
		ratio := float64(y) / float64(g.height)
		vector.DrawFilledRect(g.background, 0, float32(y), float32(g.width), 1, backgroundRow(tint, ratio), false)
	}
}

func (g *Game) openPicker() {
	if g.picking {
		return
	}
	g.picking = true

	items := make([]string, len(theme.Palette))
	for i, n := range theme.Palette {
		items[i] = string(n)
	}
	current := string(g.Theme())
	go func() {
		choice, err := zenity.List(
			"Choose a theme color",
			items,
			zenity.Title("Theme"),
			zenity.DefaultItems(current),
		)
		g.picks <- pickResult{name: theme.Name(choice), err: err}
	}()
}

func (g *Game) pollPicker() {
	select {
	case res := <-g.picks:
		g.picking = false
		if res.err != nil {
			if errors.Is(res.err, zenity.ErrCanceled) {
				return
			}
			log.Printf("theme picker: %v", res.err)
			g.lastErr = res.err
			return
		}
		if theme.Known(res.name) {
			g.SetTheme(res.name)
		}
	default:
	}
}

func (g *Game) Update() error {
	g.stats.Mark(time.Now())

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.unmount()
		return ebiten.Termination
	}

	if justPressed(ebiten.KeyT) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.SetTheme(theme.Prev(g.Theme()))
		} else {
			g.SetTheme(theme.Next(g.Theme()))
		}
	}
	if justPressed(ebiten.KeyP) {
		g.openPicker()
	}
	g.pollPicker()

	// Scrolling
	_, wheel := ebiten.Wheel()
	g.viewport.Scroll(-wheel * config.ScrollStep)
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.viewport.Scroll(config.ScrollStep / 4)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.viewport.Scroll(-config.ScrollStep / 4)
	}
	if justPressed(ebiten.KeyPageDown) {
		g.viewport.Scroll(float64(g.height))
	}
	if justPressed(ebiten.KeyPageUp) {
		g.viewport.Scroll(-float64(g.height))
	}
	if justPressed(ebiten.KeyHome) {
		g.viewport.ScrollTo(0)
	}
	if justPressed(ebiten.KeyEnd) {
		g.viewport.ScrollTo(g.viewport.MaxOffset())
	}

	// Run this tick's animation frames.
	g.loop.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.background, nil)

	// The page field is as tall as the page and scrolls with it.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, -g.viewport.Offset)
	screen.DrawImage(g.pageTarget.Image(), op)

	// The hero band sits at the top of the page.
	if g.cfg.HeroHeight > 0 && g.viewport.Offset < float64(g.cfg.HeroHeight) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, -g.viewport.Offset)
		screen.DrawImage(g.heroTarget.Image(), op)
	}

	g.drawProgressBar(screen)

	status := fmt.Sprintf("Theme: %s | T/Shift+T: cycle, P: pick, arrows/wheel: scroll, Esc/Q: quit | %s",
		g.Theme(), formatFPS(g.stats.FPS()))
	if g.picking {
		status += " | choosing theme..."
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// drawProgressBar draws the scroll position as a theme-colored bar along the
// top edge.
func (g *Game) drawProgressBar(screen *ebiten.Image) {
	progress := clamp01(g.viewport.Progress())
	if progress <= 0 {
		return
	}
	fill := g.tint().NRGBA(1)
	vector.DrawFilledRect(screen, 0, 0, float32(progress*float64(g.width)), config.ProgressBarHeight, fill, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

// resize propagates a window size change to both surfaces. The animators
// pick up the new bounds through their resize listeners.
func (g *Game) resize(width, height int) {
	g.width, g.height = max(width, 1), max(height, 1)

	pw, ph := g.pageSize()
	g.pageSurface.Resize(pw, ph)
	hw, hh := g.heroSize()
	g.heroSurface.Resize(hw, hh)

	g.viewport.Resize(float64(g.height), float64(ph))
	g.buildBackground()
}
