// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Mat4 is a 4x4 transformation matrix stored in column-major
// order. Points are treated as column vectors with z = 0.
//
// The zero value is not a valid transform; start from Identity.
// The builder methods post-multiply, so
//
//	Identity().Translate(10, 0).Scale(2, 2)
//
// scales points first and translates them second.
type Mat4 [16]float32

// Identity returns the identity transform.
func Identity() Mat4 {
	return Mat4{
		0:  1,
		5:  1,
		10: 1,
		15: 1,
	}
}

// Mul returns m*n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[k*4+row] * n[c*4+k]
			}
			r[c*4+row] = s
		}
	}
	return r
}

// Translate the transform by (x, y).
func (m Mat4) Translate(x, y float32) Mat4 {
	t := Identity()
	t[12] = x
	t[13] = y
	return m.Mul(t)
}

// Scale the transform by (x, y). The z axis is left alone.
func (m Mat4) Scale(x, y float32) Mat4 {
	s := Identity()
	s[0] = x
	s[5] = y
	return m.Mul(s)
}

// RotateXYZ rotates the transform by ax radians around the X
// axis, then ay around the Y axis and finally az around the Z
// axis.
func (m Mat4) RotateXYZ(ax, ay, az float32) Mat4 {
	if ax != 0 {
		sin, cos := math32.Sincos(ax)
		r := Identity()
		r[5], r[6] = cos, sin
		r[9], r[10] = -sin, cos
		m = m.Mul(r)
	}
	if ay != 0 {
		sin, cos := math32.Sincos(ay)
		r := Identity()
		r[0], r[2] = cos, -sin
		r[8], r[10] = sin, cos
		m = m.Mul(r)
	}
	if az != 0 {
		sin, cos := math32.Sincos(az)
		r := Identity()
		r[0], r[1] = cos, sin
		r[4], r[5] = -sin, cos
		m = m.Mul(r)
	}
	return m
}

// Transform p, projected back onto the z = 0 plane.
func (m Mat4) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[4]*p.Y + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[13],
	}
}

// TransformRect returns the bounds of r after transformation.
func (m Mat4) TransformRect(r Rectangle) Rectangle {
	b0 := Rectangle{
		Min: m.Transform(r.Min),
		Max: m.Transform(r.Max),
	}.Canon()
	b1 := Rectangle{
		Min: m.Transform(Pt(r.Max.X, r.Min.Y)),
		Max: m.Transform(Pt(r.Min.X, r.Max.Y)),
	}.Canon()
	return b0.Union(b1)
}

func (m Mat4) String() string {
	return fmt.Sprintf("[[%g %g %g %g] [%g %g %g %g] [%g %g %g %g] [%g %g %g %g]]",
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	)
}
