// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "vextui.org/f32"

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Flow orientations. A Row stacks along the horizontal axis,
// a Column along the vertical axis.
const (
	Row    = Horizontal
	Column = Vertical
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Main returns the component of p along a.
func (a Axis) Main(p f32.Point) float32 {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

// Point returns the point with main along a and cross along
// the perpendicular axis.
func (a Axis) Point(main, cross float32) f32.Point {
	if a == Horizontal {
		return f32.Point{X: main, Y: cross}
	}
	return f32.Point{X: cross, Y: main}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
