// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"vextui.org/f32"
)

// Anchor is a normalized pivot in [0,1]x[0,1]. It selects both
// the point of the parent's content box a node aligns to and the
// point of the node that is aligned there.
type Anchor struct {
	X, Y float32
}

// Anchor presets.
var (
	LeftTop     = Anchor{X: 0, Y: 0}
	Top         = Anchor{X: 0.5, Y: 0}
	RightTop    = Anchor{X: 1, Y: 0}
	Right       = Anchor{X: 1, Y: 0.5}
	RightBottom = Anchor{X: 1, Y: 1}
	Bottom      = Anchor{X: 0.5, Y: 1}
	LeftBottom  = Anchor{X: 0, Y: 1}
	Left        = Anchor{X: 0, Y: 0.5}
	Center      = Anchor{X: 0.5, Y: 0.5}
)

// Place returns the offset of a box of the given size inside
// space so that the anchor points of both coincide.
func (a Anchor) Place(space, size f32.Point) f32.Point {
	return f32.Point{
		X: space.X*a.X - size.X*a.X,
		Y: space.Y*a.Y - size.Y*a.Y,
	}
}

func (a Anchor) String() string {
	switch a {
	case LeftTop:
		return "LeftTop"
	case Top:
		return "Top"
	case RightTop:
		return "RightTop"
	case Right:
		return "Right"
	case RightBottom:
		return "RightBottom"
	case Bottom:
		return "Bottom"
	case LeftBottom:
		return "LeftBottom"
	case Left:
		return "Left"
	case Center:
		return "Center"
	default:
		return fmt.Sprintf("Anchor(%g, %g)", a.X, a.Y)
	}
}
