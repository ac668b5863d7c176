// SPDX-License-Identifier: Unlicense OR MIT

/*
Package scene implements a retained mode scene graph.

A Scene is the root of a tree of components. Each component has a
box model: a size given by dimension expressions (see package unit),
margins outside it and paddings inside it. Sizes resolve against the
maximum internal extent of the parent; the Scene's extent is the
viewport size.

	sc := scene.New(scene.Fixed(800, 600), scene.WithMetrics(fonts))
	row := scene.NewFlow(layout.Row)
	row.SetAnchor(layout.Center)
	for i := 0; i < 3; i++ {
		p := scene.NewPanel()
		p.SetSize("50px", "50px")
		row.AddChildren(p)
	}
	sc.AddChildren(row)

Drawing walks the tree depth first and emits transforms and shapes
to a Renderer. Every frame recomputes the layout; the Scene only
tracks whether anything changed since the last frame, so a caller
can skip frames that would draw the same picture:

	drawn, err := sc.Frame(renderer)

Components embed a Node and are not safe for concurrent mutation,
with the exception of their child lists, which may be appended to
while a frame is drawn.
*/
package scene

import (
	"image/color"
	"log/slog"
	"sync/atomic"

	"vextui.org/text"
)

// Renderer receives the output of a draw traversal. Rotations are
// in degrees. Shapes are drawn with their top left corner at the
// origin of the current transform.
type Renderer interface {
	PushTransform()
	PopTransform()
	Translate(x, y float32)
	Rotate(x, y, z float32)
	Scale(x, y float32)
	DrawRect(w, h float32, c color.NRGBA)
	DrawText(run text.Run, c color.NRGBA)
}

// Viewport provides the size of the drawing surface in pixels.
// The size must not change during a frame.
type Viewport interface {
	Width() int
	Height() int
}

type fixed struct {
	w, h int
}

// Fixed returns a viewport of constant size.
func Fixed(width, height int) Viewport {
	return fixed{w: width, h: height}
}

func (f fixed) Width() int  { return f.w }
func (f fixed) Height() int { return f.h }

// Scene is the root of a component tree.
type Scene struct {
	viewport Viewport
	metrics  text.Metrics
	logger   *slog.Logger
	// dirty is the redraw owed flag.
	dirty    atomic.Bool
	children childList
}

// Option configures a Scene.
type Option func(s *Scene)

// WithMetrics sets the text metrics used by Text components.
func WithMetrics(m text.Metrics) Option {
	return func(s *Scene) {
		s.metrics = m
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Scene) {
		s.logger = l
	}
}

// New returns an empty Scene covering vp. A new Scene is dirty.
func New(vp Viewport, opts ...Option) *Scene {
	s := &Scene{
		viewport: vp,
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	s.dirty.Store(true)
	return s
}

func (s *Scene) Viewport() Viewport {
	return s.viewport
}

// Metrics returns the text metrics, or nil.
func (s *Scene) Metrics() text.Metrics {
	return s.metrics
}

func (s *Scene) Logger() *slog.Logger {
	return s.logger
}

// Scene returns s.
func (s *Scene) Scene() *Scene {
	return s
}

// MarkDirty requests a redraw.
func (s *Scene) MarkDirty() {
	s.dirty.Store(true)
}

// Dirty reports whether a redraw is owed.
func (s *Scene) Dirty() bool {
	return s.dirty.Load()
}

func (s *Scene) SetDirty(dirty bool) {
	s.dirty.Store(dirty)
}

func (s *Scene) Children() []Component {
	return s.children.load()
}

// AddChildren appends cs to the top level components.
func (s *Scene) AddChildren(cs ...Component) {
	for _, c := range cs {
		c.Base().setParent(s)
	}
	s.children.append(cs)
	s.MarkDirty()
}

// SetChildren replaces the top level components with cs.
func (s *Scene) SetChildren(cs ...Component) {
	for _, c := range cs {
		c.Base().setParent(s)
	}
	s.children.replace(cs)
	s.MarkDirty()
}

func (s *Scene) width() float32 {
	return float32(s.viewport.Width())
}

func (s *Scene) height() float32 {
	return float32(s.viewport.Height())
}

// CalculateWidth returns the viewport width, as do the internal,
// external and maximum internal widths.
func (s *Scene) CalculateWidth() (float32, error)    { return s.width(), nil }
func (s *Scene) ExternalWidth() (float32, error)     { return s.width(), nil }
func (s *Scene) InternalWidth() (float32, error)     { return s.width(), nil }
func (s *Scene) MaxInternalWidth() (float32, error)  { return s.width(), nil }
func (s *Scene) CalculateHeight() (float32, error)   { return s.height(), nil }
func (s *Scene) ExternalHeight() (float32, error)    { return s.height(), nil }
func (s *Scene) InternalHeight() (float32, error)    { return s.height(), nil }
func (s *Scene) MaxInternalHeight() (float32, error) { return s.height(), nil }

func (s *Scene) AnchorWidthMultiplier() float32  { return 1 }
func (s *Scene) AnchorHeightMultiplier() float32 { return 1 }

// DrawPipeline draws every top level component. It stops at the
// first error.
func (s *Scene) DrawPipeline(r Renderer) error {
	for _, c := range s.Children() {
		if err := c.DrawPipeline(r); err != nil {
			return err
		}
	}
	return nil
}

// Frame draws the tree to r if a redraw is owed, and reports
// whether it did. The flag is cleared before drawing so that
// changes made during the frame request another one; a failed
// frame leaves it set.
func (s *Scene) Frame(r Renderer) (bool, error) {
	if !s.dirty.CompareAndSwap(true, false) {
		return false, nil
	}
	if err := s.DrawPipeline(r); err != nil {
		s.dirty.Store(true)
		return true, err
	}
	return true, nil
}
