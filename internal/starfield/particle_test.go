package starfield

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlinkClampAndReverse(t *testing.T) {
	tests := []struct {
		name        string
		opacity     float64
		rate        float64
		dir         float64
		wantOpacity float64
		wantDir     float64
	}{
		{"rising inside bounds", 0.5, 0.01, 1, 0.51, 1},
		{"falling inside bounds", 0.5, 0.01, -1, 0.49, -1},
		{"overshoots top", 0.995, 0.01, 1, 1, -1},
		{"undershoots bottom", 0.205, 0.01, -1, 0.2, 1},
		{"lands on bottom", 0.21, 0.01, -1, 0.2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Particle{Opacity: tt.opacity, BlinkRate: tt.rate, BlinkDir: tt.dir}
			p.Blink()
			assert.InDelta(t, tt.wantOpacity, p.Opacity, 1e-9)
			assert.Equal(t, tt.wantDir, p.BlinkDir)
		})
	}
}

func TestPulseClampAndReverse(t *testing.T) {
	p := Particle{HasGlow: true, GlowIntensity: 0.795, GlowDir: 1}
	p.Pulse()
	assert.Equal(t, 0.8, p.GlowIntensity)
	assert.Equal(t, -1.0, p.GlowDir)

	p = Particle{HasGlow: true, GlowIntensity: 0.2, GlowDir: -1}
	p.Pulse()
	assert.Equal(t, 0.3, p.GlowIntensity)
	assert.Equal(t, 1.0, p.GlowDir)

	p = Particle{HasGlow: true, GlowIntensity: 0.25, GlowDir: 1}
	p.Pulse()
	assert.Equal(t, 0.3, p.GlowIntensity, "initial hero glow below the floor clamps up")
	assert.Equal(t, 1.0, p.GlowDir)

	p = Particle{GlowIntensity: 0, GlowDir: -1}
	p.Pulse()
	assert.Equal(t, 0.0, p.GlowIntensity, "glow-less particles do not pulse")
}

func TestBoundsHoldOverManyFrames(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, v := range []Variant{Hero(), FullPage(0)} {
		t.Run(v.Name, func(t *testing.T) {
			particles := make([]Particle, 200)
			for i := range particles {
				particles[i] = newParticle(v, 640, 480, rng)
			}

			for frame := 0; frame < 2000; frame++ {
				for i := range particles {
					p := &particles[i]
					prevDir := p.BlinkDir
					wouldBe := p.Opacity + p.BlinkRate*p.BlinkDir

					p.Blink()
					p.Pulse()

					require.GreaterOrEqual(t, p.Opacity, minOpacity)
					require.LessOrEqual(t, p.Opacity, maxOpacity)
					if p.HasGlow {
						require.GreaterOrEqual(t, p.GlowIntensity, minGlow)
						require.LessOrEqual(t, p.GlowIntensity, maxGlow)
					}
					switch {
					case wouldBe >= maxOpacity:
						require.Equal(t, -1.0, p.BlinkDir)
					case wouldBe <= minOpacity:
						require.Equal(t, 1.0, p.BlinkDir)
					default:
						require.Equal(t, prevDir, p.BlinkDir)
					}
				}
			}
		})
	}
}

func TestNewParticleRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	hero := Hero()
	page := FullPage(0)
	for i := 0; i < 1000; i++ {
		p := newParticle(hero, 400, 200, rng)
		require.True(t, p.X >= 0 && p.X < 400)
		require.True(t, p.Y >= 0 && p.Y < 200)
		require.True(t, p.Size >= 0.5 && p.Size < 2)
		require.True(t, p.Opacity >= 0.2 && p.Opacity < 0.8)
		require.True(t, p.BlinkRate >= 0.005 && p.BlinkRate < 0.02)
		require.Zero(t, p.Speed)
		if p.HasGlow {
			require.True(t, p.GlowIntensity >= 0.2 && p.GlowIntensity < 0.6)
		} else {
			require.Zero(t, p.GlowIntensity)
		}
		require.True(t, math.Abs(p.BlinkDir) == 1)

		q := newParticle(page, 800, 600, rng)
		require.True(t, q.Size >= 0.5 && q.Size < 2.5)
		require.True(t, q.Opacity >= 0.2 && q.Opacity < 1)
		require.True(t, q.Speed >= 0.01 && q.Speed < 0.06)
		if q.HasGlow {
			require.True(t, q.GlowIntensity >= 0.3 && q.GlowIntensity < 0.8)
		}
	}
}

func TestDriftWraps(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	p := Particle{X: 10, Y: 599.99, Speed: 0.05}
	wrapped := p.Drift(800, 600, rng)
	require.True(t, wrapped)
	assert.GreaterOrEqual(t, p.Y, 0.0)
	assert.Less(t, p.Y, p.Speed)
	assert.GreaterOrEqual(t, p.X, 0.0)
	assert.Less(t, p.X, 800.0)

	p = Particle{X: 10, Y: 100, Speed: 0.05}
	assert.False(t, p.Drift(800, 600, rng))
	assert.InDelta(t, 100.05, p.Y, 1e-9)
	assert.Equal(t, 10.0, p.X)

	// Reaching the bottom edge without passing it does not wrap.
	p = Particle{X: 10, Y: 599.95, Speed: 0.05}
	p.Drift(800, 600.0000001, rng)
	assert.InDelta(t, 600, p.Y, 1e-6)
}
