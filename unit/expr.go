// SPDX-License-Identifier: Unlicense OR MIT

package unit

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
)

var (
	// literalPattern matches the literal runs of a composite
	// expression.
	literalPattern = regexp.MustCompile(`[0-9%px.]+`)
	// operatorPattern detects a composite expression: an operand
	// followed by an arithmetic operator.
	operatorPattern = regexp.MustCompile(`[0-9%px.()]+[+\-*/]+`)
	// numericPattern is what remains of a composite expression
	// once every literal is substituted.
	numericPattern = regexp.MustCompile(`^[0-9.+\-*/()]+$`)
)

// Resolve the expression e to pixels against the reference size
// ref. The empty expression and "0" resolve to 0.
func Resolve(e string, ref float32) (float32, error) {
	if e == "" || e == "0" {
		return 0, nil
	}
	e = strings.Join(strings.Fields(e), "")
	if e == "" {
		return 0, nil
	}
	if operatorPattern.MatchString(e) {
		return evaluate(e, ref)
	}
	v, err := Parse(e)
	if err != nil {
		return 0, err
	}
	return v.Resolve(ref), nil
}

// evaluate a composite expression by resolving each literal in
// place and computing the remaining arithmetic.
func evaluate(e string, ref float32) (float32, error) {
	var perr error
	numeric := literalPattern.ReplaceAllStringFunc(e, func(lit string) string {
		if perr != nil {
			return lit
		}
		v, err := Parse(lit)
		if err != nil {
			perr = err
			return lit
		}
		return strconv.FormatFloat(float64(v.Resolve(ref)), 'f', -1, 32)
	})
	if perr != nil {
		return 0, fmt.Errorf("%w in %q", perr, e)
	}
	if !numericPattern.MatchString(numeric) || strings.Contains(numeric, "**") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExpression, e)
	}
	out, err := expr.Eval(numeric, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidExpression, e, err)
	}
	var v float64
	switch out := out.(type) {
	case int:
		v = float64(out)
	case float64:
		v = out
	default:
		return 0, fmt.Errorf("%w: %q evaluates to %T", ErrInvalidExpression, e, out)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidExpression, e)
	}
	return float32(v), nil
}
