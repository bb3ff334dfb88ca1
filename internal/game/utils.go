package game

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/starfield/internal/theme"
)

var (
	gray900 = theme.RGB{R: 17, G: 24, B: 39}
	black   = theme.RGB{}
)

// backgroundRow returns the page background color at ratio (0 top, 1
// bottom): a theme-tinted gray fading to black.
func backgroundRow(tint theme.RGB, ratio float64) color.RGBA {
	top := gray900.Mix(tint, 0.12)
	c := top.Mix(black, clamp01(ratio))
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatFPS formats a frame rate for the status line.
func formatFPS(fps float64) string {
	if fps <= 0 {
		return "-- fps"
	}
	return fmt.Sprintf("%.0f fps", fps)
}
