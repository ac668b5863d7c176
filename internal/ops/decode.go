// SPDX-License-Identifier: Unlicense OR MIT

package ops

import (
	"encoding/binary"
	"image/color"
	"math"

	"vextui.org/internal/opconst"
	"vextui.org/text"
)

func decodeFloats(data []byte, dst []float32) {
	bo := binary.LittleEndian
	for i := range dst {
		dst[i] = math.Float32frombits(bo.Uint32(data[i*4:]))
	}
}

func decodeColor(data []byte) color.NRGBA {
	return color.NRGBA{R: data[0], G: data[1], B: data[2], A: data[3]}
}

// EncodeColor writes c into the 4 bytes of data.
func EncodeColor(data []byte, c color.NRGBA) {
	data[0], data[1], data[2], data[3] = c.R, c.G, c.B, c.A
}

// EncodeFloats writes vals in order into data.
func EncodeFloats(data []byte, vals ...float32) {
	bo := binary.LittleEndian
	for i, v := range vals {
		bo.PutUint32(data[i*4:], math.Float32bits(v))
	}
}

func DecodeTranslate(data []byte) (x, y float32) {
	if opconst.OpType(data[0]) != opconst.TypeTranslate {
		panic("invalid op")
	}
	var v [2]float32
	decodeFloats(data[1:], v[:])
	return v[0], v[1]
}

// DecodeRotate returns the rotation angles in degrees.
func DecodeRotate(data []byte) (x, y, z float32) {
	if opconst.OpType(data[0]) != opconst.TypeRotate {
		panic("invalid op")
	}
	var v [3]float32
	decodeFloats(data[1:], v[:])
	return v[0], v[1], v[2]
}

func DecodeScale(data []byte) (x, y float32) {
	if opconst.OpType(data[0]) != opconst.TypeScale {
		panic("invalid op")
	}
	var v [2]float32
	decodeFloats(data[1:], v[:])
	return v[0], v[1]
}

func DecodeRect(data []byte) (w, h float32, c color.NRGBA) {
	if opconst.OpType(data[0]) != opconst.TypeRect {
		panic("invalid op")
	}
	var v [2]float32
	decodeFloats(data[1:], v[:])
	return v[0], v[1], decodeColor(data[9:])
}

func DecodeText(data []byte, refs []interface{}) (*text.Run, color.NRGBA) {
	if opconst.OpType(data[0]) != opconst.TypeText {
		panic("invalid op")
	}
	return refs[0].(*text.Run), decodeColor(data[1:])
}
