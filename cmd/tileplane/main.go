//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"tileplane/internal/app"
	_ "tileplane/internal/apps/plane"
	_ "tileplane/internal/apps/window"
	"tileplane/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Apps()[cfg.App]
	if !ok {
		log.Fatalf("unknown app %q (available: %v)", cfg.App, core.Names())
	}
	a := factory(cfg.AppOptions())
	if l, ok := a.(core.LoggerSetter); ok && cfg.Verbose {
		l.SetLogger(log.Default())
	}

	game := app.New(a, cfg.Width, cfg.Height, cfg.WheelScale)

	ebiten.SetWindowTitle("tileplane - " + a.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
