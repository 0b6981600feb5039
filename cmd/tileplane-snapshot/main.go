// Command tileplane-snapshot renders an app headlessly and writes the final
// frame as PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"tileplane/internal/app"
	_ "tileplane/internal/apps/plane"
	_ "tileplane/internal/apps/window"
	"tileplane/internal/core"
	"tileplane/internal/render"
)

func main() {
	fs := flag.NewFlagSet("tileplane-snapshot", flag.ExitOnError)
	pan := fs.String("pan", "0,0", "scroll delta applied before every tick, as dx,dy")
	ticks := fs.Int("ticks", 1, "number of ticks to render")
	out := fs.String("out", "frame.png", "output PNG path")

	defaults := app.NewConfig()
	defaults.Width, defaults.Height = 800, 600
	cfg, err := app.ParseInto(defaults, fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	dx, dy, err := parsePan(*pan)
	if err != nil {
		log.Fatalf("invalid -pan: %v", err)
	}
	if *ticks < 1 {
		log.Fatalf("invalid -ticks %d", *ticks)
	}

	factory, ok := core.Apps()[cfg.App]
	if !ok {
		log.Fatalf("unknown app %q (available: %v)", cfg.App, core.Names())
	}
	a := factory(cfg.AppOptions())
	if l, ok := a.(core.LoggerSetter); ok && cfg.Verbose {
		l.SetLogger(log.Default())
	}

	frame := core.NewFrame(cfg.Width, cfg.Height)
	for i := 0; i < *ticks; i++ {
		if dx != 0 || dy != 0 {
			a.OnScroll(dx, dy)
		}
		a.Tick(frame)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := render.WritePNG(f, frame); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	if cfg.Verbose {
		log.Printf("wrote %s (%dx%d, %d ticks)", *out, cfg.Width, cfg.Height, *ticks)
	}
}

func parsePan(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected dx,dy, got %q", s)
	}
	dx, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, err
	}
	dy, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, err
	}
	return dx, dy, nil
}
