// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements headless windows for rendering
// a scene to an image.
package headless

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"golang.org/x/image/colornames"

	"vextui.org/op"
	"vextui.org/raster"
	"vextui.org/scene"
)

// Window is a headless window. It is the viewport of the scenes
// it draws. A Window is not safe for concurrent use.
type Window struct {
	size    image.Point
	resized bool
	ops     op.Ops
	raster  *raster.Rasterizer
	bg      color.NRGBA
	img     *image.RGBA
	logger  *slog.Logger
	frames  int
}

// Option configures a Window.
type Option func(w *Window)

// WithRasterizer sets the rasterizer. The default draws labels in
// the Go regular font.
func WithRasterizer(r *raster.Rasterizer) Option {
	return func(w *Window) {
		w.raster = r
	}
}

// WithBackground sets the color the window is cleared to before
// each frame. The default is white.
func WithBackground(c color.NRGBA) Option {
	return func(w *Window) {
		w.bg = c
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *Window) {
		w.logger = l
	}
}

// NewWindow creates a new headless window.
func NewWindow(width, height int, opts ...Option) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("headless: invalid window size %dx%d", width, height)
	}
	w := &Window{
		size:   image.Point{X: width, Y: height},
		raster: new(raster.Rasterizer),
		bg:     color.NRGBA(colornames.White),
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(w)
	}
	w.img = image.NewRGBA(image.Rectangle{Max: w.size})
	w.clear()
	return w, nil
}

// Width implements scene.Viewport.
func (w *Window) Width() int {
	return w.size.X
}

// Height implements scene.Viewport.
func (w *Window) Height() int {
	return w.size.Y
}

// Resize the window. The next frame is drawn regardless of whether
// the scene changed.
func (w *Window) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("headless: invalid window size %dx%d", width, height)
	}
	sz := image.Point{X: width, Y: height}
	if sz == w.size {
		return nil
	}
	w.size = sz
	w.resized = true
	w.img = image.NewRGBA(image.Rectangle{Max: sz})
	w.clear()
	return nil
}

// Frame draws sc if it owes a redraw and reports whether it did.
func (w *Window) Frame(sc *scene.Scene) (bool, error) {
	if sc == nil {
		return false, errors.New("headless: nil scene")
	}
	if w.resized {
		sc.MarkDirty()
		w.resized = false
	}
	w.ops.Reset()
	drawn, err := sc.Frame(&w.ops)
	if err != nil {
		return drawn, err
	}
	if !drawn {
		w.logger.Debug("frame skipped", "frame", w.frames)
		return false, nil
	}
	w.clear()
	if err := w.raster.Frame(&w.ops, w.img); err != nil {
		return true, err
	}
	w.frames++
	w.logger.Debug("frame drawn",
		"frame", w.frames,
		"ops", len(w.ops.Data()),
		"width", w.size.X,
		"height", w.size.Y,
	)
	return true, nil
}

// Frames returns the number of frames drawn.
func (w *Window) Frames() int {
	return w.frames
}

// Screenshot returns an image with the content of the window.
func (w *Window) Screenshot() (*image.RGBA, error) {
	img := image.NewRGBA(w.img.Bounds())
	copy(img.Pix, w.img.Pix)
	return img, nil
}

func (w *Window) clear() {
	draw.Draw(w.img, w.img.Bounds(), image.NewUniform(w.bg), image.Point{}, draw.Src)
}
