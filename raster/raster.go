// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software renderer for operation lists.

Rectangles are filled with anti-aliasing through their transformed
corners, so rotations and scales apply exactly. Labels are drawn
glyph by glyph from TrueType outlines; glyph positions follow the
transform but glyphs themselves are drawn upright at the vertical
scale of the transform.
*/
package raster

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"vextui.org/f32"
	"vextui.org/op"
	"vextui.org/text"
)

// Fonts provides the font data for the font keys of text runs.
// It is implemented by *text.Collection.
type Fonts interface {
	// Source returns the TrueType data key resolves to and the
	// resolved key.
	Source(key string) ([]byte, string, error)
}

// Rasterizer draws operation lists to images. The zero value draws
// all labels in the Go regular font.
type Rasterizer struct {
	fonts  Fonts
	parsed map[string]*opentype.Font
	faces  map[faceKey]font.Face
}

type faceKey struct {
	font string
	size float32
}

// New returns a Rasterizer resolving label fonts through fonts.
func New(fonts Fonts) *Rasterizer {
	return &Rasterizer{fonts: fonts}
}

// Frame draws the operations of frame over the content of frameBuf.
func (r *Rasterizer) Frame(frame *op.Ops, frameBuf *image.RGBA) error {
	if frame == nil {
		return nil
	}
	for _, s := range frame.Shapes() {
		if s.Label != nil {
			if err := r.drawLabel(frameBuf, s); err != nil {
				return err
			}
			continue
		}
		fillRect(frameBuf, s)
	}
	return nil
}

func fillRect(dst *image.RGBA, s op.Shape) {
	if s.Color.A == 0 {
		return
	}
	bounds := s.Bounds().Round().Intersect(dst.Bounds())
	if bounds.Empty() {
		return
	}
	off := f32.Pt(float32(-bounds.Min.X), float32(-bounds.Min.Y))
	corners := [...]f32.Point{
		{},
		{X: s.Size.X},
		s.Size,
		{Y: s.Size.Y},
	}
	vr := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	vr.DrawOp = draw.Over
	for i, c := range corners {
		p := s.Transform.Transform(c).Add(off)
		if i == 0 {
			vr.MoveTo(p.X, p.Y)
		} else {
			vr.LineTo(p.X, p.Y)
		}
	}
	vr.ClosePath()
	vr.Draw(dst, bounds, image.NewUniform(s.Color), image.Point{})
}

func (r *Rasterizer) drawLabel(dst *image.RGBA, s op.Shape) error {
	run := s.Label
	// Pixels per unit along the transformed y axis.
	sy := f32.Pt(s.Transform[4], s.Transform[5]).Len()
	size := run.Size * sy
	if size <= 0 || s.Color.A == 0 {
		return nil
	}
	face, err := r.face(run.Font, size)
	if err != nil {
		return err
	}
	ascent := float32(face.Metrics().Ascent) / 64 / sy
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(s.Color),
		Face: face,
	}
	scale := run.Scale()
	for i, g := range run.Glyphs {
		// The drawer applies the bearing itself.
		pen := s.Transform.Transform(f32.Pt((run.X[i]-g.OffsetX)*scale, ascent))
		d.Dot = fixed.Point26_6{
			X: fixed.Int26_6(pen.X * 64),
			Y: fixed.Int26_6(pen.Y * 64),
		}
		d.DrawString(string(g.Rune))
	}
	return nil
}

func (r *Rasterizer) face(key string, size float32) (font.Face, error) {
	src, resolved, err := r.source(key)
	if err != nil {
		return nil, err
	}
	k := faceKey{font: resolved, size: size}
	if f, ok := r.faces[k]; ok {
		return f, nil
	}
	f, ok := r.parsed[resolved]
	if !ok {
		f, err = opentype.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed parsing font %q: %w", resolved, err)
		}
		if r.parsed == nil {
			r.parsed = make(map[string]*opentype.Font)
		}
		r.parsed[resolved] = f
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	if r.faces == nil {
		r.faces = make(map[faceKey]font.Face)
	}
	r.faces[k] = face
	return face, nil
}

func (r *Rasterizer) source(key string) ([]byte, string, error) {
	if r.fonts == nil {
		return goregular.TTF, text.GoRegular, nil
	}
	return r.fonts.Source(key)
}
