// SPDX-License-Identifier: Unlicense OR MIT

package scene_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vextui.org/f32"
	"vextui.org/layout"
	"vextui.org/op"
	"vextui.org/scene"
	"vextui.org/text"
	"vextui.org/unit"
)

func TestNodeDefaults(t *testing.T) {
	n := scene.NewNode()
	assert.Equal(t, "0", n.Width())
	assert.Equal(t, "0", n.Height())
	x, y := n.Scale()
	assert.Equal(t, [2]float32{1, 1}, [2]float32{x, y})
	assert.Equal(t, layout.LeftTop, n.Anchor())
	assert.True(t, n.Dirty())
	assert.Nil(t, n.Parent())
	assert.Nil(t, n.Scene())
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, n.Color())
}

func TestBoxModel(t *testing.T) {
	sc := scene.New(scene.Fixed(800, 600))
	p := scene.NewPanel()
	require.NoError(t, p.SetSize("50%", "(100%-20px)"))
	require.NoError(t, p.SetMargin("10px", "5px", "1%", "0"))
	require.NoError(t, p.SetPaddingHV("20px", "2px"))
	sc.AddChildren(p)

	check := func(f func() (float32, error), want float32) {
		t.Helper()
		v, err := f()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	check(p.CalculateWidth, 400)
	check(p.CalculateHeight, 580)
	check(p.ExternalWidth, 418)
	check(p.ExternalHeight, 585)
	check(p.InternalWidth, 360)
	check(p.InternalHeight, 576)
	check(p.MaxInternalWidth, 360)
	check(p.MaxInternalHeight, 576)
}

func TestDetachedSize(t *testing.T) {
	p := panel(t, "50%", "12px")
	w, err := p.CalculateWidth()
	require.NoError(t, err)
	assert.Zero(t, w)
	h, err := p.CalculateHeight()
	require.NoError(t, err)
	assert.Equal(t, float32(12), h)
}

func TestInvalidExpression(t *testing.T) {
	p := scene.NewPanel()
	assert.ErrorIs(t, p.SetWidth("10em"), unit.ErrInvalidExpression)
	assert.Equal(t, "0", p.Width())
	// A failing setter leaves every attribute alone.
	assert.ErrorIs(t, p.SetMargin("1px", "2px", "3px", "4pt"), unit.ErrInvalidExpression)
	l, _, _, _ := p.Margin()
	assert.Equal(t, "0", l)

}

func TestAutoSize(t *testing.T) {
	p := scene.NewPanel()
	assert.ErrorIs(t, p.SetWidth(unit.Auto), unit.ErrInvalidExpression)
	assert.ErrorIs(t, p.SetSize("10px", unit.Auto), unit.ErrInvalidExpression)
	assert.ErrorIs(t, p.Base().SetHeight(unit.Auto), unit.ErrInvalidExpression)
	assert.Equal(t, "0", p.Width())
	assert.Equal(t, "0", p.Height())

	f := scene.NewFlow(layout.Row)
	require.NoError(t, f.SetWidth("100px"))
	require.NoError(t, f.SetWidth(unit.Auto))
	require.NoError(t, f.Base().SetSize(unit.Auto, unit.Auto))
	assert.Equal(t, unit.Auto, f.Width())
}

func TestFrameError(t *testing.T) {
	// Without metrics the text cannot be measured.
	sc := scene.New(scene.Fixed(100, 100))
	p := scene.NewPanel()
	p.AddChildren(scene.NewText("abc"))
	sc.AddChildren(p)
	var ops op.Ops
	drawn, err := sc.Frame(&ops)
	assert.True(t, drawn)
	assert.ErrorIs(t, err, text.ErrMissingMetrics)
	assert.Zero(t, ops.Depth())
	assert.True(t, sc.Dirty())
}

func TestAnchorPlacement(t *testing.T) {
	tests := []struct {
		anchor layout.Anchor
		want   f32.Point
	}{
		{layout.LeftTop, f32.Pt(0, 0)},
		{layout.Center, f32.Pt(150, 125)},
		{layout.RightBottom, f32.Pt(300, 250)},
		{layout.Bottom, f32.Pt(150, 250)},
		{layout.Right, f32.Pt(300, 125)},
	}
	for _, tc := range tests {
		t.Run(tc.anchor.String(), func(t *testing.T) {
			sc := scene.New(scene.Fixed(400, 300))
			p := panel(t, "100px", "50px")
			p.SetAnchor(tc.anchor)
			sc.AddChildren(p)

			var ops op.Ops
			_, err := sc.Frame(&ops)
			require.NoError(t, err)
			shapes := ops.Shapes()
			require.Len(t, shapes, 1)
			assert.Equal(t, tc.want, shapes[0].Origin())
		})
	}
}

// Margins are part of the footprint an anchor centers.
func TestAnchorCenterWithMargin(t *testing.T) {
	sc := scene.New(scene.Fixed(400, 300))
	p := panel(t, "100px", "50px")
	require.NoError(t, p.SetMarginAll("10px"))
	p.SetAnchor(layout.Center)
	sc.AddChildren(p)

	var ops op.Ops
	_, err := sc.Frame(&ops)
	require.NoError(t, err)
	shapes := ops.Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, f32.Pt(150, 125), shapes[0].Origin())
}

func TestPaddingAndOffset(t *testing.T) {
	sc := scene.New(scene.Fixed(400, 300))
	outer := panel(t, "200px", "200px")
	require.NoError(t, outer.SetPaddingAll("10px"))
	require.NoError(t, outer.SetOffset("5px", "10%"))
	inner := panel(t, "100%", "25%")
	outer.AddChildren(inner)
	sc.AddChildren(outer)

	w, err := inner.CalculateWidth()
	require.NoError(t, err)
	assert.Equal(t, float32(180), w)

	var ops op.Ops
	_, err = sc.Frame(&ops)
	require.NoError(t, err)
	shapes := ops.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, f32.Rect(5, 30, 205, 230), shapes[0].Bounds())
	assert.Equal(t, f32.Rect(15, 40, 195, 85), shapes[1].Bounds())
}

func TestScaleAndRotate(t *testing.T) {
	sc := scene.New(scene.Fixed(400, 300))
	p := panel(t, "10px", "10px")
	require.NoError(t, p.SetOffset("100px", "100px"))
	p.SetScale(2, 3)
	sc.AddChildren(p)

	var ops op.Ops
	_, err := sc.Frame(&ops)
	require.NoError(t, err)
	assert.Equal(t, f32.Rect(100, 100, 120, 130), ops.Shapes()[0].Bounds())

	p.SetScale(1, 1)
	p.SetRotation(0, 0, 180)
	ops.Reset()
	_, err = sc.Frame(&ops)
	require.NoError(t, err)
	b := ops.Shapes()[0].Bounds()
	assert.InDelta(t, 90, b.Min.X, 1e-3)
	assert.InDelta(t, 90, b.Min.Y, 1e-3)
	assert.InDelta(t, 100, b.Max.X, 1e-3)
	assert.InDelta(t, 100, b.Max.Y, 1e-3)
}

func TestTransparentPanel(t *testing.T) {
	sc := scene.New(scene.Fixed(400, 300))
	p := panel(t, "10px", "10px")
	p.SetColor(color.NRGBA{R: 0xff})
	sc.AddChildren(p)

	var ops op.Ops
	_, err := sc.Frame(&ops)
	require.NoError(t, err)
	assert.Empty(t, ops.Shapes())
}

func TestMarkDirty(t *testing.T) {
	sc := scene.New(scene.Fixed(400, 300))
	root := scene.NewNode()
	a := scene.NewNode()
	b, c := scene.NewNode(), scene.NewNode()
	sibling := scene.NewNode()
	a.AddChildren(b, c)
	root.AddChildren(a, sibling)
	sc.AddChildren(root)

	var ops op.Ops
	_, err := sc.Frame(&ops)
	require.NoError(t, err)
	for _, n := range []*scene.Node{root, a, b, c, sibling} {
		assert.False(t, n.Dirty())
	}
	assert.False(t, sc.Dirty())

	// A leaf leaves its relatives alone.
	b.MarkDirty()
	assert.True(t, b.Dirty())
	assert.False(t, c.Dirty())
	assert.False(t, a.Dirty())
	assert.False(t, root.Dirty())
	assert.True(t, sc.Dirty())

	_, err = sc.Frame(&ops)
	require.NoError(t, err)

	// A subtree root marks every descendant and no ancestor.
	a.MarkDirty()
	assert.True(t, a.Dirty())
	assert.True(t, b.Dirty())
	assert.True(t, c.Dirty())
	assert.False(t, root.Dirty())
	assert.False(t, sibling.Dirty())
}

func TestSettersMarkDirty(t *testing.T) {
	sc := scene.New(scene.Fixed(400, 300))
	p := scene.NewPanel()
	sc.AddChildren(p)

	var ops op.Ops
	mutations := map[string]func(){
		"size":     func() { require.NoError(t, p.SetSize("1px", "2px")) },
		"offset":   func() { require.NoError(t, p.SetOffset("1px", "2px")) },
		"margin":   func() { require.NoError(t, p.SetMarginAll("1px")) },
		"padding":  func() { require.NoError(t, p.SetPaddingAll("1px")) },
		"scale":    func() { p.SetScale(2, 2) },
		"rotation": func() { p.SetRotation(0, 0, 1) },
		"color":    func() { p.SetColor(color.NRGBA{A: 1}) },
		"anchor":   func() { p.SetAnchor(layout.Center) },
	}
	for name, mutate := range mutations {
		_, err := sc.Frame(&ops)
		require.NoError(t, err)
		require.False(t, sc.Dirty(), name)
		mutate()
		assert.True(t, p.Dirty(), name)
		assert.True(t, sc.Dirty(), name)
	}
}

func TestReparent(t *testing.T) {
	sc := scene.New(scene.Fixed(400, 300))
	a, b := scene.NewNode(), scene.NewNode()
	sc.AddChildren(a, b)
	n := scene.NewNode()
	a.AddChildren(n)
	require.Equal(t, sc, n.Scene())

	b.AddChildren(n)
	assert.Equal(t, scene.Parent(b), n.Parent())
	// The old parent keeps listing the node until it is rebuilt.
	assert.Len(t, a.Children(), 1)
	a.SetChildren()
	assert.Empty(t, a.Children())
	assert.Len(t, b.Children(), 1)
}

func TestSceneAdoption(t *testing.T) {
	sc := scene.New(scene.Fixed(400, 300))
	group := scene.NewNode()
	leaf := scene.NewNode()
	group.AddChildren(leaf)
	assert.Nil(t, leaf.Scene())

	sc.AddChildren(group)
	assert.Equal(t, sc, group.Scene())
	assert.Equal(t, sc, leaf.Scene())

	late := scene.NewNode()
	leaf.AddChildren(late)
	assert.Equal(t, sc, late.Scene())
}

func TestSetChildrenSnapshot(t *testing.T) {
	n := scene.NewNode()
	a, b := scene.NewNode(), scene.NewNode()
	n.AddChildren(a)
	snap := n.Children()
	n.AddChildren(b)
	assert.Len(t, snap, 1)
	assert.Len(t, n.Children(), 2)

	list := []scene.Component{a, b}
	n.SetChildren(list...)
	list[0] = nil
	assert.Equal(t, scene.Component(a), n.Children()[0])
}
