// Command sdldemo opens a window and clears frames until the window is
// closed or a time limit expires. It exercises the library end to end:
// init, video, events, renderer, and teardown.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gosdl/sdl3"
)

// profile is the optional YAML window profile.
type profile struct {
	Title     string `yaml:"title"`
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	DrawColor struct {
		R uint8 `yaml:"r"`
		G uint8 `yaml:"g"`
		B uint8 `yaml:"b"`
		A uint8 `yaml:"a"`
	} `yaml:"draw_color"`
}

func defaultProfile() profile {
	p := profile{Title: "sdldemo", Width: 800, Height: 600}
	p.DrawColor.R = 30
	p.DrawColor.G = 30
	p.DrawColor.B = 46
	p.DrawColor.A = 255
	return p
}

func loadProfile(path string) (profile, error) {
	p := defaultProfile()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML window profile")
		title      = flag.String("title", "", "window title (overrides profile)")
		duration   = flag.Duration("duration", 0, "exit after this long (0 = run until quit)")
		verbose    = flag.Bool("v", false, "log library diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		sdl3.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := loadProfile(*configPath)
	if err != nil {
		log.Fatalf("sdldemo: %v", err)
	}
	if *title != "" {
		cfg.Title = *title
	}

	if err := run(cfg, *duration, *verbose); err != nil {
		log.Fatalf("sdldemo: %v", err)
	}
}

func run(cfg profile, duration time.Duration, verbose bool) error {
	sdl, err := sdl3.Init()
	if err != nil {
		return err
	}
	defer sdl.Close()

	if verbose {
		if err := sdl.RouteNativeLogs(); err != nil {
			return err
		}
	}

	video, err := sdl.Video()
	if err != nil {
		return err
	}
	defer video.Close()

	events, err := sdl.Events()
	if err != nil {
		return err
	}
	defer events.Close()

	var flags sdl3.WindowFlags
	if cfg.Resizable {
		flags |= sdl3.WindowResizable
	}
	win, err := video.CreateWindow(cfg.Title, cfg.Width, cfg.Height, flags)
	if err != nil {
		return err
	}
	defer win.Destroy()

	renderer, err := win.CreateRenderer("")
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	if name, err := renderer.Name(); err == nil {
		log.Printf("renderer: %s", name)
	}

	pump, err := events.Pump()
	if err != nil {
		return err
	}
	defer pump.Close()

	drawColor := sdl3.Color{R: cfg.DrawColor.R, G: cfg.DrawColor.G, B: cfg.DrawColor.B, A: cfg.DrawColor.A}
	deadline := time.Time{}
	if duration > 0 {
		deadline = time.Now().Add(duration)
	}

	for {
		for {
			ev, err := pump.Poll()
			if err != nil {
				return err
			}
			if ev == nil {
				break
			}
			switch e := ev.(type) {
			case sdl3.QuitEvent:
				return nil
			case sdl3.KeyDownEvent:
				if e.Scancode == sdl3.ScancodeEscape {
					return nil
				}
			}
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return nil
		}
		if err := renderer.SetDrawColor(drawColor); err != nil {
			return err
		}
		if err := renderer.Clear(); err != nil {
			return err
		}
		if err := renderer.Present(); err != nil {
			return err
		}
	}
}
