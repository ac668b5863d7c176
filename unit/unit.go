// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements dimension expressions, the small unit
language used for node sizes, offsets, margins and paddings.

A literal is one of

	12     a bare number, used as is
	12px   pixels
	50%    a percentage of a reference size

Literals may be combined with + - * / and parentheses:

	(100%-20px)

An expression is resolved to pixels against a single reference
size, typically the space its parent makes available. Resolution
is a pure function of the expression and the reference size.

*/
package unit

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Value is a single literal with a unit.
type Value struct {
	V float32
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

const (
	// UnitNumber is a bare number. It is not scaled by
	// the reference size.
	UnitNumber Unit = iota
	// UnitPx represents pixels.
	UnitPx
	// UnitPercent represents a percentage of the
	// reference size.
	UnitPercent
)

// Auto is the marker for a dimension derived from a node's
// children instead of from an expression.
const Auto = "auto"

// ErrInvalidExpression is returned for expressions that are
// malformed or use an unknown unit.
var ErrInvalidExpression = errors.New("invalid unit expression")

var formats = [...]struct {
	pattern *regexp.Regexp
	unit    Unit
}{
	{regexp.MustCompile(`^([0-9.-]+)%$`), UnitPercent},
	{regexp.MustCompile(`^([0-9.-]+)px$`), UnitPx},
	{regexp.MustCompile(`^([0-9.-]+)$`), UnitNumber},
}

// Px returns the Value for v pixels.
func Px(v float32) Value {
	return Value{V: v, U: UnitPx}
}

// Percent returns the Value for v percent of the reference
// size.
func Percent(v float32) Value {
	return Value{V: v, U: UnitPercent}
}

// Parse a single literal such as "12", "12px" or "50%".
func Parse(lit string) (Value, error) {
	for _, f := range formats {
		m := f.pattern.FindStringSubmatch(lit)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidExpression, lit)
		}
		return Value{V: float32(v), U: f.unit}, nil
	}
	return Value{}, fmt.Errorf("%w: %q", ErrInvalidExpression, lit)
}

// Resolve v to pixels against the reference size ref.
func (v Value) Resolve(ref float32) float32 {
	switch v.U {
	case UnitPercent:
		return v.V / 100 * ref
	default:
		return v.V
	}
}

// String formats v as a literal accepted by Parse.
func (v Value) String() string {
	return strconv.FormatFloat(float64(v.V), 'f', -1, 32) + v.U.String()
}

func (u Unit) String() string {
	switch u {
	case UnitNumber:
		return ""
	case UnitPx:
		return "px"
	case UnitPercent:
		return "%"
	default:
		panic("unknown unit")
	}
}
