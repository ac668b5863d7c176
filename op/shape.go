// SPDX-License-Identifier: Unlicense OR MIT

package op

import (
	"image/color"

	"github.com/chewxy/math32"

	"vextui.org/f32"
	"vextui.org/internal/opconst"
	"vextui.org/internal/ops"
	"vextui.org/text"
)

// Shape is a drawing operation together with the transform in
// effect when it was recorded.
type Shape struct {
	Transform f32.Mat4
	// Size of the shape before transformation. For labels it is
	// the run width by the font size.
	Size  f32.Point
	Color color.NRGBA
	// Label is the glyph run of a DrawText operation, or nil
	// for rectangles.
	Label *text.Run
}

// Bounds returns the bounding box of the transformed shape.
func (s Shape) Bounds() f32.Rectangle {
	return s.Transform.TransformRect(f32.Rectangle{Max: s.Size})
}

// Origin returns the transformed top left corner of the shape.
func (s Shape) Origin() f32.Point {
	return s.Transform.Transform(f32.Point{})
}

// Shapes replays the list and returns its drawing operations in
// order.
func (o *Ops) Shapes() []Shape {
	var (
		r      ops.Reader
		shapes []Shape
		stack  []f32.Mat4
	)
	t := f32.Identity()
	r.Reset(o.data, o.refs)
	for e, ok := r.Decode(); ok; e, ok = r.Decode() {
		switch e.Type {
		case opconst.TypePush:
			stack = append(stack, t)
		case opconst.TypePop:
			t = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		case opconst.TypeTranslate:
			t = t.Translate(ops.DecodeTranslate(e.Data))
		case opconst.TypeRotate:
			x, y, z := ops.DecodeRotate(e.Data)
			t = t.RotateXYZ(radians(x), radians(y), radians(z))
		case opconst.TypeScale:
			t = t.Scale(ops.DecodeScale(e.Data))
		case opconst.TypeRect:
			w, h, c := ops.DecodeRect(e.Data)
			shapes = append(shapes, Shape{
				Transform: t,
				Size:      f32.Pt(w, h),
				Color:     c,
			})
		case opconst.TypeText:
			run, c := ops.DecodeText(e.Data, e.Refs)
			shapes = append(shapes, Shape{
				Transform: t,
				Size:      f32.Pt(run.Width(), run.Size),
				Color:     c,
				Label:     run,
			})
		}
	}
	return shapes
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}
