// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/chewxy/math32"

	"vextui.org/layout"
	"vextui.org/text"
	"vextui.org/unit"
)

// ErrUnsupportedMutation is returned when setting the size of a
// component whose size is derived from its content.
var ErrUnsupportedMutation = errors.New("unsupported mutation")

// DefaultFontSize is the font size of a new Text in pixels.
const DefaultFontSize = 24

// Text is a single line label. Its height is the font size and its
// width is the measured width of its content; neither can be set.
//
// Measurement uses the metrics of the owning Scene and is deferred
// until the Text is attached to one.
type Text struct {
	Node
	text     string
	font     string
	fontSize float32
	// err is the last measurement failure.
	err error
}

// NewText returns a black Text showing s in the default font.
func NewText(s string) *Text {
	t := &Text{text: s, fontSize: DefaultFontSize}
	t.Init(t)
	t.color = color.NRGBA{A: 0xff}
	t.updateSize()
	return t
}

func (t *Text) Text() string {
	return t.text
}

// SetText replaces the content and remeasures it.
func (t *Text) SetText(s string) error {
	t.text = s
	t.MarkDirty()
	return t.updateSize()
}

// Font returns the font key. The empty key selects the default
// font of the metrics.
func (t *Text) Font() string {
	return t.font
}

func (t *Text) SetFont(key string) error {
	t.font = key
	t.MarkDirty()
	return t.updateSize()
}

// FontSize returns the font size in pixels.
func (t *Text) FontSize() float32 {
	return t.fontSize
}

func (t *Text) SetFontSize(px float32) error {
	t.fontSize = px
	t.MarkDirty()
	return t.updateSize()
}

func (t *Text) derivedSize(axis string) error {
	if axis == "height" {
		return fmt.Errorf("%w: text height is derived from its font size", ErrUnsupportedMutation)
	}
	return fmt.Errorf("%w: text %s is derived from its content", ErrUnsupportedMutation, axis)
}

func (t *Text) CalculateWidth() (float32, error) {
	if t.err != nil {
		return 0, t.err
	}
	return t.Node.CalculateWidth()
}

func (t *Text) CalculateHeight() (float32, error) {
	if t.err != nil {
		return 0, t.err
	}
	return t.Node.CalculateHeight()
}

func (t *Text) sceneChanged() {
	// A failure is kept in t.err and surfaces when the size is
	// calculated.
	_ = t.updateSize()
}

func (t *Text) updateSize() error {
	t.size[layout.Vertical] = unit.Px(t.fontSize).String()
	s := t.scene
	if s == nil {
		return nil
	}
	w, err := t.measure(s)
	if err != nil {
		t.err = err
		return err
	}
	t.err = nil
	t.size[layout.Horizontal] = unit.Px(w).String()
	s.logger.Debug("text measured",
		"font", t.font,
		"text", t.text,
		"width", t.size[layout.Horizontal],
		"height", t.size[layout.Vertical],
	)
	return nil
}

func (t *Text) measure(s *Scene) (float32, error) {
	if s.metrics == nil {
		return 0, fmt.Errorf("%w: scene has no text metrics", text.ErrMissingMetrics)
	}
	w, err := s.metrics.Measure(t.font, t.text, t.fontSize)
	if err != nil {
		return 0, fmt.Errorf("measuring %q: %w", t.text, err)
	}
	return math32.Floor(w), nil
}

// Draw emits the glyph run of the text.
func (t *Text) Draw(r Renderer) error {
	if t.err != nil {
		return t.err
	}
	s := t.scene
	if s == nil || s.metrics == nil {
		return fmt.Errorf("%w: text is not attached to a scene with metrics", text.ErrMissingMetrics)
	}
	run, err := text.Layout(s.metrics, t.font, t.text, t.fontSize)
	if err != nil {
		return err
	}
	r.DrawText(run, t.color)
	return nil
}
