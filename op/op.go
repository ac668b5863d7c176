// SPDX-License-Identifier: Unlicense OR MIT

/*
Package op implements a recording renderer for scene draw traversals.

An Ops list captures the transform and drawing calls a traversal makes
so that a backend such as package raster can replay them later, or a
test can inspect what was drawn.

Drawing a square, then a label offset by 10 pixels:

	ops := new(op.Ops)
	ops.DrawRect(50, 50, color.NRGBA{A: 0xff})
	ops.PushTransform()
	ops.Translate(10, 10)
	ops.DrawText(run, color.NRGBA{A: 0xff})
	ops.PopTransform()

Transforms

An Ops list can be viewed as a very simple virtual machine: it has an
implicit transform and a stack of saved transforms. PushTransform saves
the current transform and PopTransform restores it. Translate, Rotate
and Scale compose with the current transform, so later drawing is
affected by every transform recorded since the last restore.

Ops implements scene.Renderer.
*/
package op

import (
	"image/color"

	"vextui.org/internal/opconst"
	"vextui.org/internal/ops"
	"vextui.org/text"
)

// Ops holds a list of operations. Operations are stored in
// serialized form to avoid garbage during construction of
// the ops list.
type Ops struct {
	// version is incremented at each Reset.
	version int
	// data contains the serialized operations.
	data []byte
	// External references for operations.
	refs []interface{}
	// depth is the number of pushed and not yet
	// popped transforms.
	depth int
}

// PushTransform saves the current transform.
func (o *Ops) PushTransform() {
	o.depth++
	data := o.Write(opconst.TypePushLen)
	data[0] = byte(opconst.TypePush)
}

// PopTransform restores the most recently pushed transform.
// It panics if no transform is pushed.
func (o *Ops) PopTransform() {
	if o.depth == 0 {
		panic("unbalanced pop")
	}
	o.depth--
	data := o.Write(opconst.TypePopLen)
	data[0] = byte(opconst.TypePop)
}

// Translate the current transform by (x, y).
func (o *Ops) Translate(x, y float32) {
	if x == 0 && y == 0 {
		return
	}
	data := o.Write(opconst.TypeTranslateLen)
	data[0] = byte(opconst.TypeTranslate)
	ops.EncodeFloats(data[1:], x, y)
}

// Rotate the current transform by x, y and z degrees around
// the respective axes, in that order.
func (o *Ops) Rotate(x, y, z float32) {
	if x == 0 && y == 0 && z == 0 {
		return
	}
	data := o.Write(opconst.TypeRotateLen)
	data[0] = byte(opconst.TypeRotate)
	ops.EncodeFloats(data[1:], x, y, z)
}

// Scale the current transform.
func (o *Ops) Scale(x, y float32) {
	if x == 1 && y == 1 {
		return
	}
	data := o.Write(opconst.TypeScaleLen)
	data[0] = byte(opconst.TypeScale)
	ops.EncodeFloats(data[1:], x, y)
}

// DrawRect fills the rectangle from the origin to (w, h) with c.
func (o *Ops) DrawRect(w, h float32, c color.NRGBA) {
	data := o.Write(opconst.TypeRectLen)
	data[0] = byte(opconst.TypeRect)
	ops.EncodeFloats(data[1:], w, h)
	ops.EncodeColor(data[9:], c)
}

// DrawText draws the glyph run with its top left corner at the
// origin.
func (o *Ops) DrawText(run text.Run, c color.NRGBA) {
	data := o.Write(opconst.TypeTextLen, &run)
	data[0] = byte(opconst.TypeText)
	ops.EncodeColor(data[1:], c)
}

// Reset the Ops, preparing it for re-use.
func (o *Ops) Reset() {
	o.depth = 0
	// Leave references to the GC.
	for i := range o.refs {
		o.refs[i] = nil
	}
	o.data = o.data[:0]
	o.refs = o.refs[:0]
	o.version++
}

// Depth returns the number of transforms pushed and not yet
// popped.
func (o *Ops) Depth() int {
	return o.depth
}

// Data is for internal use only.
func (o *Ops) Data() []byte {
	return o.data
}

// Refs is for internal use only.
func (o *Ops) Refs() []interface{} {
	return o.refs
}

// Version is for internal use only.
func (o *Ops) Version() int {
	return o.version
}

// Write is for internal use only.
func (o *Ops) Write(n int, refs ...interface{}) []byte {
	o.data = append(o.data, make([]byte, n)...)
	o.refs = append(o.refs, refs...)
	return o.data[len(o.data)-n:]
}
