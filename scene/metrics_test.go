// SPDX-License-Identifier: Unlicense OR MIT

package scene_test

import (
	"fmt"

	"vextui.org/text"
)

// fixedMetrics gives every rune the same advance at text.BaseSize.
type fixedMetrics struct {
	advance float32
}

func (m fixedMetrics) Glyph(key string, r rune) (text.Glyph, error) {
	if key == "missing" {
		return text.Glyph{}, fmt.Errorf("%w: %q", text.ErrMissingMetrics, key)
	}
	return text.Glyph{Rune: r, Advance: m.advance}, nil
}

func (m fixedMetrics) Measure(key, s string, size float32) (float32, error) {
	var w float32
	for _, r := range s {
		g, err := m.Glyph(key, r)
		if err != nil {
			return 0, err
		}
		w += g.OffsetX + g.Advance
	}
	return w * size / text.BaseSize, nil
}
