// SPDX-License-Identifier: Unlicense OR MIT

// Command vextdemo renders a demo scene to a PNG file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"vextui.org/app/headless"
	"vextui.org/raster"
	"vextui.org/scene"
	"vextui.org/text"
)

var (
	demoName = flag.String("demo", "layout", "demo scene to render (layout, text, button).")
	width    = flag.Int("width", 1280, "window width in pixels.")
	height   = flag.Int("height", 720, "window height in pixels.")
	destPath = flag.String("o", "", "output PNG file. Defaults to <demo>.png.")
	fontPath = flag.String("font", "", "TrueType font to use as the default font instead of Go regular.")
	verbose  = flag.Bool("v", false, "log debug messages.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: vextdemo [flags]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if err := mainErr(logger); err != nil {
		fmt.Fprintf(os.Stderr, "vextdemo: %v\n", err)
		os.Exit(1)
	}
}

func mainErr(logger *slog.Logger) error {
	build, ok := demos[*demoName]
	if !ok {
		return fmt.Errorf("unknown -demo %q", *demoName)
	}
	if flag.NArg() > 0 {
		return errors.New("unexpected arguments")
	}
	fonts, err := loadFonts(logger)
	if err != nil {
		return err
	}
	w, err := headless.NewWindow(*width, *height,
		headless.WithRasterizer(raster.New(fonts)),
		headless.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	sc := scene.New(w, scene.WithMetrics(fonts), scene.WithLogger(logger))
	if err := build(sc); err != nil {
		return fmt.Errorf("building %s demo: %w", *demoName, err)
	}
	if _, err := w.Frame(sc); err != nil {
		return err
	}
	img, err := w.Screenshot()
	if err != nil {
		return err
	}
	out := *destPath
	if out == "" {
		out = *demoName + ".png"
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("rendered", "demo", *demoName, "file", out)
	return nil
}

func loadFonts(logger *slog.Logger) (*text.Collection, error) {
	if *fontPath == "" {
		return text.NewCollection(text.WithLogger(logger), text.WithGoFont())
	}
	ttf, err := os.ReadFile(*fontPath)
	if err != nil {
		return nil, err
	}
	key := filepath.Base(*fontPath)
	return text.NewCollection(
		text.WithLogger(logger),
		text.WithFont(text.GoRegular, goRegular()),
		text.WithDefault(key, ttf),
	)
}
