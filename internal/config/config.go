package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/starfield/internal/theme"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Hero band at the top of the page
	HeroHeight = 320

	// The page background is taller than the window and scrolls
	PageFactor = 3
	ScrollStep = 40

	ParticleCount = 300
	FPS           = 60

	DefaultTheme = theme.Orange

	// Progress bar
	ProgressBarHeight = 4

	FrameStatsSize = 120
)

// Variant names accepted by the terminal shell.
const (
	VariantPage = "page"
	VariantHero = "hero"
)

// Config holds the command-line settings shared by both shells.
type Config struct {
	Theme      theme.Name
	Count      int
	Width      int
	Height     int
	HeroHeight int
	PageFactor int
	FPS        int
	Variant    string
	LogFile    string
	ListThemes bool
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme:      DefaultTheme,
		Count:      ParticleCount,
		Width:      WindowWidth,
		Height:     WindowHeight,
		HeroHeight: HeroHeight,
		PageFactor: PageFactor,
		FPS:        FPS,
		Variant:    VariantPage,
	}
}

// ParseFlags parses args (without the program name) into a Config. Parse
// errors and invalid values are returned; -h prints usage to out and returns
// flag.ErrHelp.
func ParseFlags(name string, args []string, out io.Writer) (*Config, error) {
	cfg := Default()

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(out)

	themeName := flags.String("theme", string(cfg.Theme), "Theme color: "+paletteList())
	flags.IntVar(&cfg.Count, "count", cfg.Count, "Particle count of the page background")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels")
	flags.IntVar(&cfg.HeroHeight, "hero-height", cfg.HeroHeight, "Height of the hero band in pixels")
	flags.IntVar(&cfg.PageFactor, "page-factor", cfg.PageFactor, "Page height as a multiple of the window height")
	flags.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frames per second")
	flags.StringVar(&cfg.Variant, "variant", cfg.Variant, "Terminal field variant: page or hero")
	flags.StringVar(&cfg.LogFile, "log", "", "Write logs to this file")
	flags.BoolVar(&cfg.ListThemes, "list-themes", false, "List theme colors and exit")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	cfg.Theme = theme.Name(strings.ToLower(strings.TrimSpace(*themeName)))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks numeric ranges. Unknown theme names are allowed; they
// resolve to each field's default color.
func (c *Config) Validate() error {
	var errs []error
	if c.Count <= 0 {
		errs = append(errs, fmt.Errorf("count must be positive, got %d", c.Count))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.HeroHeight < 0 {
		errs = append(errs, fmt.Errorf("hero height must not be negative, got %d", c.HeroHeight))
	}
	if c.PageFactor < 1 {
		errs = append(errs, fmt.Errorf("page factor must be at least 1, got %d", c.PageFactor))
	}
	if c.FPS <= 0 || c.FPS > 240 {
		errs = append(errs, fmt.Errorf("fps must be in 1..240, got %d", c.FPS))
	}
	if c.Variant != VariantPage && c.Variant != VariantHero {
		errs = append(errs, fmt.Errorf("variant must be %q or %q, got %q", VariantPage, VariantHero, c.Variant))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func paletteList() string {
	names := make([]string, len(theme.Palette))
	for i, n := range theme.Palette {
		names[i] = string(n)
	}
	return strings.Join(names, ", ")
}

// PrintThemes writes the palette with a color swatch per theme, marking the
// current one.
func PrintThemes(w io.Writer, current theme.Name) {
	label := lipgloss.NewStyle().Width(8)
	for _, n := range theme.Palette {
		rgb, _ := theme.Lookup(n)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(rgb.Hex())).Render("    ")
		line := fmt.Sprintf("%s %s %s", swatch, label.Render(string(n)), rgb.Hex())
		if n == current {
			line += lipgloss.NewStyle().Bold(true).Render("  *")
		}
		fmt.Fprintln(w, line)
	}
}
