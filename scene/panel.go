// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"vextui.org/layout"
)

// Panel is a box filled with its color, white by default.
type Panel struct {
	Node
}

// NewPanel returns a Panel of size 0x0.
func NewPanel() *Panel {
	p := new(Panel)
	p.Init(p)
	return p
}

// Draw fills the calculated size of the panel. Fully transparent
// panels draw nothing.
func (p *Panel) Draw(r Renderer) error {
	if p.color.A == 0 {
		return nil
	}
	self := p.self()
	w, err := calculated(self, layout.Horizontal)
	if err != nil {
		return err
	}
	h, err := calculated(self, layout.Vertical)
	if err != nil {
		return err
	}
	r.DrawRect(w, h, p.color)
	return nil
}
