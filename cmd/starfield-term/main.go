package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/starfield/internal/config"
	"github.com/iburimskiy/starfield/internal/frame"
	"github.com/iburimskiy/starfield/internal/render"
	"github.com/iburimskiy/starfield/internal/render/term"
	"github.com/iburimskiy/starfield/internal/starfield"
	"github.com/iburimskiy/starfield/internal/theme"
)

// Page background, gray-900.
var background = colorful.Color{R: 17.0 / 255, G: 24.0 / 255, B: 39.0 / 255}

func main() {
	cfg, err := config.ParseFlags("starfield-term", os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}

	if cfg.ListThemes {
		config.PrintThemes(os.Stdout, cfg.Theme)
		return
	}

	// Anything written to stderr would tear through the screen.
	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(cfg); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

func variant(cfg *config.Config) starfield.Variant {
	if cfg.Variant == config.VariantHero {
		return starfield.Hero()
	}
	return starfield.FullPage(cfg.Count)
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	target := term.NewTarget(screen, background)
	width, height := term.PixelSize(screen.Size())
	surface := render.NewSurface(target, width, height)
	loop := frame.NewLoop()

	current := cfg.Theme
	if !theme.Known(current) {
		log.Printf("unknown theme %q, using the default color", current)
	}
	mount := func() *starfield.Animator {
		a := starfield.New(surface, current, variant(cfg), starfield.WithScheduler(loop))
		a.Start()
		return a
	}
	anim := mount()
	defer func() { anim.Stop() }()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				surface.Resize(term.PixelSize(ev.Size()))
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					return nil
				case ev.Rune() == 't':
					anim.Stop()
					current = theme.Next(current)
					log.Printf("theme: %s", current)
					anim = mount()
				}
			}
		case sig := <-sigChan:
			log.Printf("Received signal: %v", sig)
			return nil
		case <-ticker.C:
			loop.Tick()
			target.Present()
		}
	}
}
