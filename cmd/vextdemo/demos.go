// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"

	"vextui.org/layout"
	"vextui.org/scene"
)

const sample = "Это тестовое сообщение, которое демонстрирует возможности рендера !!??.../,,,"

var demos = map[string]func(sc *scene.Scene) error{
	"layout": layoutDemo,
	"text":   textDemo,
	"button": buttonDemo,
}

func goRegular() []byte {
	return goregular.TTF
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA(c)
}

// layoutDemo centers a black row of five red squares.
func layoutDemo(sc *scene.Scene) error {
	row := scene.NewFlow(layout.Row)
	row.SetAnchor(layout.Center)
	row.SetColor(nrgba(colornames.Black))
	if err := row.SetHeight("100px"); err != nil {
		return err
	}
	for i := 0; i < 5; i++ {
		p := scene.NewPanel()
		if err := p.SetSize("50px", "50px"); err != nil {
			return err
		}
		p.SetColor(nrgba(colornames.Red))
		p.SetAnchor(layout.Center)
		row.AddChildren(p)
	}
	sc.AddChildren(row)
	return nil
}

// textDemo stacks labels in several fonts below a horizontal rule.
// Fonts that are not registered fall back to the default font.
func textDemo(sc *scene.Scene) error {
	line, err := rule()
	if err != nil {
		return err
	}
	sc.AddChildren(line)
	labels := []struct {
		font  string
		size  float32
		color color.RGBA
	}{
		{"", 32, colornames.Black},
		{"font/arial.ttf", 24, colornames.Black},
		{"font/Lobster-Regular.ttf", 24, colornames.Darkgray},
		{"font/Kablammo-Regular.ttf", 24, colornames.Black},
		{"font/RubikDirt-Regular.ttf", 24, colornames.Darkgray},
	}
	for i, l := range labels {
		t := scene.NewText(sample)
		t.SetAnchor(layout.Left)
		t.SetColor(nrgba(l.color))
		if err := t.SetOffset("50px", fmt.Sprintf("%dpx", i*64)); err != nil {
			return err
		}
		if err := t.SetFontSize(l.size); err != nil {
			return err
		}
		if err := t.SetFont(l.font); err != nil {
			return err
		}
		sc.AddChildren(t)
	}
	return nil
}

// buttonDemo centers a blue button with a white label over a
// horizontal rule.
func buttonDemo(sc *scene.Scene) error {
	line, err := rule()
	if err != nil {
		return err
	}
	button := scene.NewPanel()
	if err := button.SetSize("200px", "56px"); err != nil {
		return err
	}
	button.SetColor(nrgba(colornames.Blue))
	button.SetAnchor(layout.Center)

	label := scene.NewText("Button")
	label.SetAnchor(layout.Center)
	label.SetColor(nrgba(colornames.White))
	button.AddChildren(label)

	sc.AddChildren(line, button)
	return nil
}

func rule() (*scene.Panel, error) {
	line := scene.NewPanel()
	if err := line.SetSize("100%", "5px"); err != nil {
		return nil, err
	}
	line.SetAnchor(layout.Center)
	line.SetColor(nrgba(colornames.Red))
	return line, nil
}
