// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"image/color"

	"vextui.org/layout"
	"vextui.org/unit"
)

// derivedSizer is implemented by components whose size follows
// from their content.
type derivedSizer interface {
	// derivedSize returns the error for an attempt to set the size
	// along axis.
	derivedSize(axis string) error
}

// autoSizer is implemented by components that resolve unit.Auto
// sizes.
type autoSizer interface {
	autoSize()
}

// validate reports whether e is a well formed expression.
func validate(e string, auto bool) error {
	if auto && e == unit.Auto {
		return nil
	}
	_, err := unit.Resolve(e, 0)
	return err
}

// setExprs validates every expression before assigning any of them.
func (n *Node) setExprs(auto bool, dst []*string, es ...string) error {
	for _, e := range es {
		if err := validate(e, auto); err != nil {
			return err
		}
	}
	for i, e := range es {
		*dst[i] = e
	}
	n.MarkDirty()
	return nil
}

// setSize sets size expressions, rejecting derived sizes and auto
// sizes of components that cannot resolve them.
func (n *Node) setSize(axis string, dst []*string, es ...string) error {
	self := n.self()
	if d, ok := self.(derivedSizer); ok {
		return d.derivedSize(axis)
	}
	_, auto := self.(autoSizer)
	return n.setExprs(auto, dst, es...)
}

// Width returns the width expression.
func (n *Node) Width() string {
	return n.size[layout.Horizontal]
}

// Height returns the height expression.
func (n *Node) Height() string {
	return n.size[layout.Vertical]
}

// SetWidth sets the width expression. Only containers accept
// unit.Auto.
func (n *Node) SetWidth(e string) error {
	return n.setSize("width", []*string{&n.size[layout.Horizontal]}, e)
}

func (n *Node) SetHeight(e string) error {
	return n.setSize("height", []*string{&n.size[layout.Vertical]}, e)
}

// SetSize sets both the width and height expressions.
func (n *Node) SetSize(w, h string) error {
	return n.setSize("size", []*string{&n.size[0], &n.size[1]}, w, h)
}

// Offset returns the offset expressions.
func (n *Node) Offset() (x, y string) {
	return n.offset[0], n.offset[1]
}

func (n *Node) SetOffset(x, y string) error {
	return n.setExprs(false, []*string{&n.offset[0], &n.offset[1]}, x, y)
}

// Margin returns the margin expressions.
func (n *Node) Margin() (left, top, right, bottom string) {
	return n.marginStart[0], n.marginStart[1], n.marginEnd[0], n.marginEnd[1]
}

func (n *Node) SetMargin(left, top, right, bottom string) error {
	return n.setExprs(false, []*string{
		&n.marginStart[0], &n.marginStart[1], &n.marginEnd[0], &n.marginEnd[1],
	}, left, top, right, bottom)
}

// SetMarginAll sets all four margins to e.
func (n *Node) SetMarginAll(e string) error {
	return n.SetMargin(e, e, e, e)
}

// SetMarginHV sets the left and right margins to h and the top and
// bottom margins to v.
func (n *Node) SetMarginHV(h, v string) error {
	return n.SetMargin(h, v, h, v)
}

// Padding returns the padding expressions.
func (n *Node) Padding() (left, top, right, bottom string) {
	return n.paddingStart[0], n.paddingStart[1], n.paddingEnd[0], n.paddingEnd[1]
}

func (n *Node) SetPadding(left, top, right, bottom string) error {
	return n.setExprs(false, []*string{
		&n.paddingStart[0], &n.paddingStart[1], &n.paddingEnd[0], &n.paddingEnd[1],
	}, left, top, right, bottom)
}

func (n *Node) SetPaddingAll(e string) error {
	return n.SetPadding(e, e, e, e)
}

func (n *Node) SetPaddingHV(h, v string) error {
	return n.SetPadding(h, v, h, v)
}

func (n *Node) Scale() (x, y float32) {
	return n.scale[0], n.scale[1]
}

func (n *Node) SetScale(x, y float32) {
	n.scale = [2]float32{x, y}
	n.MarkDirty()
}

// Rotation returns the rotation angles in degrees.
func (n *Node) Rotation() (x, y, z float32) {
	return n.rotation[0], n.rotation[1], n.rotation[2]
}

// SetRotation sets the rotation around each axis in degrees.
// Rotations apply around the top left corner of the margin box.
func (n *Node) SetRotation(x, y, z float32) {
	n.rotation = [3]float32{x, y, z}
	n.MarkDirty()
}

func (n *Node) Color() color.NRGBA {
	return n.color
}

func (n *Node) SetColor(c color.NRGBA) {
	n.color = c
	n.MarkDirty()
}

func (n *Node) Anchor() layout.Anchor {
	return n.anchor
}

func (n *Node) SetAnchor(a layout.Anchor) {
	n.anchor = a
	n.MarkDirty()
}
