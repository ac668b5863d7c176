// SPDX-License-Identifier: Unlicense OR MIT

package opconst

type OpType byte

// Start at a high number for easier debugging.
const firstOpIndex = 200

const (
	TypePush OpType = iota + firstOpIndex
	TypePop
	TypeTranslate
	TypeRotate
	TypeScale
	TypeRect
	TypeText
)

const (
	TypePushLen      = 1
	TypePopLen       = 1
	TypeTranslateLen = 1 + 4*2
	TypeRotateLen    = 1 + 4*3
	TypeScaleLen     = 1 + 4*2
	TypeRectLen      = 1 + 4*2 + 4
	TypeTextLen      = 1 + 4
)

func (t OpType) Size() int {
	return [...]int{
		TypePushLen,
		TypePopLen,
		TypeTranslateLen,
		TypeRotateLen,
		TypeScaleLen,
		TypeRectLen,
		TypeTextLen,
	}[t-firstOpIndex]
}

func (t OpType) NumRefs() int {
	switch t {
	case TypeText:
		return 1
	default:
		return 0
	}
}

func (t OpType) String() string {
	switch t {
	case TypePush:
		return "Push"
	case TypePop:
		return "Pop"
	case TypeTranslate:
		return "Translate"
	case TypeRotate:
		return "Rotate"
	case TypeScale:
		return "Scale"
	case TypeRect:
		return "Rect"
	case TypeText:
		return "Text"
	default:
		panic("unknown OpType")
	}
}
