package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iburimskiy/circle-through-point/internal/config"
	"github.com/iburimskiy/circle-through-point/internal/control"
	"github.com/iburimskiy/circle-through-point/internal/export"
	"github.com/iburimskiy/circle-through-point/internal/game"
	"github.com/iburimskiy/circle-through-point/internal/plane"
)

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// renderOnce draws the requested point to a PNG file without opening a window.
func renderOnce(opts config.Options, log *slog.Logger) error {
	target := opts.Target()
	vp := plane.Viewport{Width: opts.Size.Width, Height: opts.Size.Height}
	d := plane.Render(target, opts.Grid, vp)
	if err := export.SavePNG(opts.Render, d); err != nil {
		return err
	}

	attrs := []any{"path", opts.Render, "size", opts.Size.String(), "grid", opts.Grid}
	if m, ok := target.Metrics(); ok {
		attrs = append(attrs,
			"radius", control.RadiusLabel(m.Radius),
			"angle", control.AngleLabel(m.Angle))
	}
	log.Info("rendered", attrs...)
	return nil
}

func run() error {
	opts, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		return err
	}
	log := newLogger(opts.Verbose)

	if opts.Render != "" {
		return renderOnce(opts, log)
	}

	r := plane.NewRenderer()
	r.SetGridDensity(opts.Grid)
	return game.Run(control.NewSession(r, log), opts, log)
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
