// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vextui.org/unit"
)

func TestResolveLiterals(t *testing.T) {
	for _, ref := range []float32{0, 1, 37, 200, 1920.5} {
		v, err := unit.Resolve("50%", ref)
		require.NoError(t, err)
		assert.Equal(t, 0.5*ref, v, "50%% of %v", ref)

		v, err = unit.Resolve("10px", ref)
		require.NoError(t, err)
		assert.Equal(t, float32(10), v)

		v, err = unit.Resolve("", ref)
		require.NoError(t, err)
		assert.Zero(t, v)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		expr string
		ref  float32
		want float32
	}{
		{"0", 500, 0},
		{"   ", 500, 0},
		{"12", 500, 12},
		{"12.5px", 500, 12.5},
		{"-10px", 500, -10},
		{"100%", 640, 640},
		{"25%", 80, 20},
		{" 10 px ", 500, 10},
		{"(100%-20px)", 200, 180},
		{"(100% - 20px)", 200, 180},
		{"50%+10px", 200, 110},
		{"50%*2", 300, 300},
		{"10/4", 0, 2.5},
		{"((10px+5px)*2)", 0, 30},
		{"(24.0+0+0)", 0, 24},
		{"100%-2*10px", 100, 80},
	}
	for _, tc := range tests {
		got, err := unit.Resolve(tc.expr, tc.ref)
		if assert.NoError(t, err, tc.expr) {
			assert.InDelta(t, tc.want, got, 1e-4, "Resolve(%q, %v)", tc.expr, tc.ref)
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	for _, e := range []string{"33%", "(100%-20px)/3", "7px", "1.5"} {
		a, err := unit.Resolve(e, 123)
		require.NoError(t, err)
		b, err := unit.Resolve(e, 123)
		require.NoError(t, err)
		assert.Equal(t, a, b, e)
	}
}

func TestResolveInvalid(t *testing.T) {
	for _, e := range []string{
		"auto",
		"10em",
		"px",
		"1.2.3px",
		"(10px+",
		"10px+em",
		"50%%",
		"(2**3)",
		"(10px/0)",
		"(0px/0)",
	} {
		_, err := unit.Resolve(e, 100)
		assert.ErrorIs(t, err, unit.ErrInvalidExpression, e)
	}
}

func TestParse(t *testing.T) {
	v, err := unit.Parse("42%")
	require.NoError(t, err)
	assert.Equal(t, unit.Percent(42), v)
	assert.InDelta(t, 21, v.Resolve(50), 1e-5)

	v, err = unit.Parse("7")
	require.NoError(t, err)
	assert.Equal(t, unit.Value{V: 7, U: unit.UnitNumber}, v)
	assert.Equal(t, float32(7), v.Resolve(1000))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "24px", unit.Px(24).String())
	assert.Equal(t, "1234567px", unit.Px(1234567).String())
	assert.Equal(t, "12.5%", unit.Percent(12.5).String())

	// String output must parse back to the same value.
	v, err := unit.Parse(unit.Px(1234567).String())
	require.NoError(t, err)
	assert.Equal(t, unit.Px(1234567), v)
}
