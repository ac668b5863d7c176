// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text implements text measurement for scene text nodes.

Glyph metrics are reported at BaseSize pixels and scaled
linearly to the requested font size. A font is identified by
an opaque key; the empty key denotes the default font.
*/
package text

import (
	"errors"
	"unicode/utf8"

	"github.com/chewxy/math32"
)

// BaseSize is the pixel size glyph metrics are reported at.
const BaseSize = 24

// ErrMissingMetrics is returned when no metrics exist for a font
// key and no default font is configured.
var ErrMissingMetrics = errors.New("missing text metrics")

// Glyph holds the horizontal metrics of a single rune at
// BaseSize.
type Glyph struct {
	Rune rune
	// Advance is the distance to the next pen position.
	Advance float32
	// OffsetX is the left side bearing.
	OffsetX float32
}

// Metrics is the text measurement capability.
type Metrics interface {
	// Glyph returns the metrics of r in the font identified by
	// key. A rune missing from the font reports the metrics of
	// the space glyph.
	Glyph(key string, r rune) (Glyph, error)
	// Measure returns the width of s in pixels when set in the
	// font identified by key at the given size.
	Measure(key, s string, size float32) (float32, error)
}

// A Run is a single line of positioned glyphs.
type Run struct {
	// Font is the key of the font the run was measured with.
	Font string
	// Size is the font size in pixels.
	Size   float32
	Glyphs []Glyph
	// X holds the pen position of each glyph at BaseSize.
	X []float32
}

// Scale returns the factor from BaseSize units to pixels.
func (r Run) Scale() float32 {
	return r.Size / BaseSize
}

// Width returns the width of r in pixels.
func (r Run) Width() float32 {
	var w float32
	for _, g := range r.Glyphs {
		w += g.OffsetX + g.Advance
	}
	return w * r.Scale()
}

// String returns the runes of r.
func (r Run) String() string {
	b := make([]byte, 0, len(r.Glyphs))
	for _, g := range r.Glyphs {
		b = utf8.AppendRune(b, g.Rune)
	}
	return string(b)
}

// Layout positions the runes of s. Each glyph starts after the
// left side bearing of its predecessors, floored to a whole
// BaseSize unit.
func Layout(m Metrics, key, s string, size float32) (Run, error) {
	run := Run{
		Font:   key,
		Size:   size,
		Glyphs: make([]Glyph, 0, len(s)),
		X:      make([]float32, 0, len(s)),
	}
	var x float32
	for _, r := range s {
		g, err := m.Glyph(key, r)
		if err != nil {
			return Run{}, err
		}
		x += g.OffsetX
		run.Glyphs = append(run.Glyphs, g)
		run.X = append(run.X, math32.Floor(x))
		x += g.Advance
	}
	return run, nil
}

// width returns the width of the glyphs of s in BaseSize units.
func width(m Metrics, key, s string) (float32, error) {
	var w float32
	for _, r := range s {
		g, err := m.Glyph(key, r)
		if err != nil {
			return 0, err
		}
		w += g.OffsetX + g.Advance
	}
	return w, nil
}
