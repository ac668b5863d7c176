// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"fmt"

	"vextui.org/layout"
	"vextui.org/unit"
)

// DefaultSpacing is the spacing of a new Flow in pixels.
const DefaultSpacing = 10

// Flow is a Panel that stacks its children along an axis. Its
// width and height default to unit.Auto, sizing the Flow to fit
// its children plus its own paddings.
//
// Children are placed by the Flow on its axis and keep their
// anchor placement on the cross axis.
type Flow struct {
	Panel
	axis    layout.Axis
	spacing float32
}

// NewFlow returns an auto sized Flow stacking along axis.
func NewFlow(axis layout.Axis) *Flow {
	f := &Flow{axis: axis, spacing: DefaultSpacing}
	f.Init(f)
	f.size = [2]string{unit.Auto, unit.Auto}
	return f
}

func (f *Flow) Axis() layout.Axis {
	return f.axis
}

func (f *Flow) SetAxis(a layout.Axis) {
	f.axis = a
	f.MarkDirty()
}

// Spacing returns the distance between consecutive children in
// pixels.
func (f *Flow) Spacing() float32 {
	return f.spacing
}

func (f *Flow) SetSpacing(px float32) {
	f.spacing = px
	f.MarkDirty()
}

func (f *Flow) autoSize() {}

func (f *Flow) auto(a layout.Axis) bool {
	return f.size[a] == unit.Auto
}

func (f *Flow) CalculateWidth() (float32, error) {
	return f.calculate(layout.Horizontal)
}

func (f *Flow) CalculateHeight() (float32, error) {
	return f.calculate(layout.Vertical)
}

func (f *Flow) calculate(a layout.Axis) (float32, error) {
	if !f.auto(a) {
		return f.Node.calculate(a)
	}
	var v float32
	for i, c := range f.Children() {
		l, err := calculated(c, a)
		if err != nil {
			return 0, err
		}
		switch {
		case a != f.axis:
			v = max(v, l)
		case i > 0:
			v += f.spacing + l
		default:
			v += l
		}
	}
	p, err := f.resolveSum(a, f.paddingStart[a], f.paddingEnd[a])
	if err != nil {
		return 0, fmt.Errorf("padding: %w", err)
	}
	return v + p, nil
}

func (f *Flow) MaxInternalWidth() (float32, error) {
	return f.maxInternal(layout.Horizontal)
}

func (f *Flow) MaxInternalHeight() (float32, error) {
	return f.maxInternal(layout.Vertical)
}

// maxInternal measures children of an auto sized axis against the
// space the Flow itself is given, since its own size depends on
// them.
func (f *Flow) maxInternal(a layout.Axis) (float32, error) {
	if !f.auto(a) {
		return internal(f.self(), a)
	}
	ref, err := f.reference(a)
	if err != nil {
		return 0, err
	}
	p, err := f.resolveSum(a, f.paddingStart[a], f.paddingEnd[a])
	if err != nil {
		return 0, fmt.Errorf("padding: %w", err)
	}
	return ref - p, nil
}

func (f *Flow) AnchorWidthMultiplier() float32 {
	if f.axis == layout.Horizontal {
		return 0
	}
	return 1
}

func (f *Flow) AnchorHeightMultiplier() float32 {
	if f.axis == layout.Vertical {
		return 0
	}
	return 1
}

// postDraw draws each child and then advances past it along the
// axis.
func (f *Flow) postDraw(r Renderer) error {
	if err := f.paddingOrigin(r); err != nil {
		return err
	}
	for _, c := range f.Children() {
		if err := c.DrawPipeline(r); err != nil {
			return err
		}
		l, err := calculated(c, f.axis)
		if err != nil {
			return err
		}
		step := f.axis.Point(l+f.spacing, 0)
		r.Translate(step.X, step.Y)
	}
	return nil
}
