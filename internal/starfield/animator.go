// Package starfield animates a twinkling star field on a render.Canvas.
//
// An Animator is bound to one surface and one theme color. Start populates the
// particles and begins a frame loop on the scheduler; every frame clears the
// canvas, advances each particle's blink and glow, draws it, and (for the
// drifting variant) moves it down the surface. Stop cancels the loop.
package starfield

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/starfield/internal/frame"
	"github.com/iburimskiy/starfield/internal/render"
	"github.com/iburimskiy/starfield/internal/theme"
)

// Surface is the host-owned drawing area an Animator paints into.
type Surface interface {
	// Canvas returns the drawing context, or nil when none is available.
	Canvas() render.Canvas
	Size() (width, height int)
	OnResize(fn func()) (remove func())
}

// Option configures an Animator.
type Option func(*Animator)

// WithScheduler sets the frame scheduler. The default is a private
// frame.Loop that nothing ticks, so only Step advances frames.
func WithScheduler(s frame.Scheduler) Option {
	return func(a *Animator) {
		a.sched = s
	}
}

// WithRand sets the random source used for particle placement.
func WithRand(r *rand.Rand) Option {
	return func(a *Animator) {
		a.rng = r
	}
}

// WithCount overrides the variant's particle count.
func WithCount(n int) Option {
	return func(a *Animator) {
		if n > 0 {
			a.variant.Count = n
		}
	}
}

// Animator renders a looping star field onto a surface until stopped.
type Animator struct {
	surface Surface
	variant Variant
	color   theme.RGB
	sched   frame.Scheduler
	rng     *rand.Rand

	canvas        render.Canvas
	width, height int
	particles     []Particle

	pending      frame.ID
	hasPending   bool
	removeResize func()
	running      bool
	frames       uint64
	wraps        uint64
}

// New creates an animator for surface. The theme is resolved once here; an
// unknown name falls back to the variant's default theme.
func New(surface Surface, name theme.Name, v Variant, opts ...Option) *Animator {
	a := &Animator{
		surface: surface,
		variant: v,
		color:   theme.Resolve(name, v.DefaultTheme),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.sched == nil {
		a.sched = frame.NewLoop()
	}
	if a.rng == nil {
		seed := uint64(time.Now().UnixNano())
		a.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return a
}

// Start populates the particles, subscribes to resizes, draws the first frame
// and schedules the rest. Without a surface or canvas it does nothing.
func (a *Animator) Start() {
	if a.running || a.surface == nil {
		return
	}
	canvas := a.surface.Canvas()
	if canvas == nil {
		return
	}

	a.canvas = canvas
	a.width, a.height = a.surface.Size()
	a.removeResize = a.surface.OnResize(a.resize)

	n := a.variant.ParticleCount(a.width, a.height)
	a.particles = make([]Particle, n)
	for i := range a.particles {
		a.particles[i] = newParticle(a.variant, a.width, a.height, a.rng)
	}

	a.running = true
	a.animate()
}

// Stop cancels the next frame and the resize subscription and discards the
// particles. The canvas keeps whatever was drawn last.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	if a.hasPending {
		a.sched.Cancel(a.pending)
		a.hasPending = false
	}
	if a.removeResize != nil {
		a.removeResize()
		a.removeResize = nil
	}
	a.particles = nil
	a.canvas = nil
}

// resize records the surface's new size. Particles keep their positions.
func (a *Animator) resize() {
	if !a.running {
		return
	}
	a.width, a.height = a.surface.Size()
}

func (a *Animator) animate() {
	a.hasPending = false
	if !a.running {
		return
	}
	a.Step()
	a.pending = a.sched.Request(a.animate)
	a.hasPending = true
}

// Step advances and draws one frame without scheduling another.
func (a *Animator) Step() {
	if a.canvas == nil {
		return
	}
	a.canvas.Clear()

	w, h := float64(a.width), float64(a.height)
	for i := range a.particles {
		p := &a.particles[i]
		p.Blink()
		p.Pulse()
		a.draw(p)
		if a.variant.Drift && p.Drift(w, h, a.rng) {
			a.wraps++
		}
	}
	a.frames++
}

func (a *Animator) draw(p *Particle) {
	if p.HasGlow {
		r := p.Size * a.variant.GlowRadius
		inner := a.color.NRGBA(p.Opacity * p.GlowIntensity * a.variant.GlowScale)
		outer := a.color.NRGBA(0)
		a.canvas.FillRadialGradient(p.X, p.Y, r, inner, outer)
	}

	fill := a.color.NRGBA(p.Opacity)
	if p.IsStar() {
		ring := StarPath(p.X, p.Y, starSpikes, p.Size, p.Size/2)
		a.canvas.FillPolygon(render.Point{X: p.X, Y: p.Y}, ring, fill)
		return
	}
	a.canvas.FillCircle(p.X, p.Y, p.Size, fill)
}

// Running reports whether the frame loop is active.
func (a *Animator) Running() bool {
	return a.running
}

// Count returns the number of live particles.
func (a *Animator) Count() int {
	return len(a.particles)
}

// Particles returns a copy of the current particle states.
func (a *Animator) Particles() []Particle {
	out := make([]Particle, len(a.particles))
	copy(out, a.particles)
	return out
}

// Size returns the surface size recorded at start or at the last resize.
func (a *Animator) Size() (int, int) {
	return a.width, a.height
}

// Color returns the resolved theme color.
func (a *Animator) Color() theme.RGB {
	return a.color
}

// Variant returns the animator's configuration.
func (a *Animator) Variant() Variant {
	return a.variant
}

// Frames returns how many frames have been drawn.
func (a *Animator) Frames() uint64 {
	return a.frames
}

// Wraps returns how many times a drifting particle restarted at the top.
func (a *Animator) Wraps() uint64 {
	return a.wraps
}
