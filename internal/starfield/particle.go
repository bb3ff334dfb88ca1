package starfield

import "math/rand/v2"

const (
	minOpacity = 0.2
	maxOpacity = 1.0

	minGlow  = 0.3
	maxGlow  = 0.8
	glowStep = 0.01

	// Particles above this size render as a star instead of a dot.
	starThreshold = 1.5
	starSpikes    = 4
)

// Particle is one star of the field.
type Particle struct {
	X, Y  float64
	Size  float64
	Speed float64

	Opacity   float64
	BlinkRate float64
	BlinkDir  float64

	HasGlow       bool
	GlowIntensity float64
	GlowDir       float64
}

func direction(rng *rand.Rand) float64 {
	if rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

// newParticle samples a particle uniformly inside a width x height surface.
func newParticle(v Variant, width, height int, rng *rand.Rand) Particle {
	p := Particle{
		X:         rng.Float64() * float64(width),
		Y:         rng.Float64() * float64(height),
		Size:      v.Size.sample(rng.Float64()),
		Opacity:   v.Opacity.sample(rng.Float64()),
		BlinkRate: v.Blink.sample(rng.Float64()),
		BlinkDir:  direction(rng),
		HasGlow:   rng.Float64() < v.GlowChance,
	}
	if v.Drift {
		p.Speed = v.Speed.sample(rng.Float64())
	}
	if p.HasGlow {
		p.GlowIntensity = v.Glow.sample(rng.Float64())
	}
	p.GlowDir = direction(rng)
	return p
}

// Blink advances opacity by one frame, clamping at the bounds and reversing
// direction there.
func (p *Particle) Blink() {
	p.Opacity += p.BlinkRate * p.BlinkDir
	if p.Opacity >= maxOpacity {
		p.Opacity = maxOpacity
		p.BlinkDir = -1
	} else if p.Opacity <= minOpacity {
		p.Opacity = minOpacity
		p.BlinkDir = 1
	}
}

// Pulse advances the glow intensity by one frame. Particles without glow are
// left untouched.
func (p *Particle) Pulse() {
	if !p.HasGlow {
		return
	}
	p.GlowIntensity += glowStep * p.GlowDir
	if p.GlowIntensity >= maxGlow {
		p.GlowIntensity = maxGlow
		p.GlowDir = -1
	} else if p.GlowIntensity <= minGlow {
		p.GlowIntensity = minGlow
		p.GlowDir = 1
	}
}

// Drift moves the particle down by its speed. Past the bottom edge it
// restarts at the top with a fresh x. It reports whether it wrapped.
func (p *Particle) Drift(width, height float64, rng *rand.Rand) bool {
	p.Y += p.Speed
	if p.Y > height {
		p.Y = 0
		p.X = rng.Float64() * width
		return true
	}
	return false
}

// IsStar reports whether the particle renders as a spiked star.
func (p *Particle) IsStar() bool {
	return p.Size > starThreshold
}
