package starfield

import "github.com/iburimskiy/starfield/internal/theme"

// Span is a uniform random range [Min, Min+Width).
type Span struct {
	Min, Width float64
}

func (s Span) sample(u float64) float64 {
	return s.Min + u*s.Width
}

// Variant holds the tunables that differ between the hero band and the
// full-page background.
type Variant struct {
	Name string

	// Count is the fixed particle count. Zero derives the count from the
	// surface area using Density.
	Count int
	// Density is the surface area in square pixels per particle.
	Density float64

	Size    Span
	Opacity Span
	Blink   Span
	Speed   Span
	Glow    Span

	// GlowChance is the probability that a particle gets a halo.
	GlowChance float64
	// GlowScale multiplies the halo's inner alpha.
	GlowScale float64
	// GlowRadius is the halo radius as a multiple of particle size.
	GlowRadius float64

	// Drift moves particles down by their speed every frame, wrapping at the
	// bottom edge.
	Drift bool

	DefaultTheme theme.Name
}

const (
	// DefaultCount is the full-page particle count when the caller gives none.
	DefaultCount = 300
	// HeroDensity is the hero band's area per particle.
	HeroDensity = 800
)

// Hero is the dense, static field behind the landing section. Its particle
// count follows the surface area.
func Hero() Variant {
	return Variant{
		Name:         "hero",
		Density:      HeroDensity,
		Size:         Span{0.5, 1.5},
		Opacity:      Span{0.2, 0.6},
		Blink:        Span{0.005, 0.015},
		Glow:         Span{0.2, 0.4},
		GlowChance:   0.08,
		GlowScale:    0.7,
		GlowRadius:   4,
		DefaultTheme: theme.Orange,
	}
}

// FullPage is the slowly drifting field behind the whole page. count <= 0
// selects DefaultCount.
func FullPage(count int) Variant {
	if count <= 0 {
		count = DefaultCount
	}
	return Variant{
		Name:         "page",
		Count:        count,
		Size:         Span{0.5, 2},
		Opacity:      Span{0.2, 0.8},
		Blink:        Span{0.005, 0.02},
		Speed:        Span{0.01, 0.05},
		Glow:         Span{0.3, 0.5},
		GlowChance:   0.15,
		GlowScale:    1,
		GlowRadius:   6,
		Drift:        true,
		DefaultTheme: theme.Purple,
	}
}

// ParticleCount returns how many particles the variant creates for a
// surface of the given size.
func (v Variant) ParticleCount(width, height int) int {
	if v.Count > 0 || v.Density <= 0 {
		return max(v.Count, 0)
	}
	if width <= 0 || height <= 0 {
		return 0
	}
	return int(float64(width) * float64(height) / v.Density)
}
