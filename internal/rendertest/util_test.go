// SPDX-License-Identifier: Unlicense OR MIT

package rendertest

import (
	"bytes"
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"strconv"
	"strings"
	"testing"

	"vextui.org/app/headless"
	"vextui.org/raster"
	"vextui.org/scene"
	"vextui.org/text"
)

var dumpImages = flag.Bool("saveimages", false, "save test images")

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
)

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA(c)
}

func frame(f func(sc *scene.Scene), c func(r result)) frameT {
	return frameT{f: f, c: c}
}

type frameT struct {
	f func(sc *scene.Scene)
	c func(r result)
}

// multiRun draws one scene over several frames, applying each
// frame's mutation first, to test the interaction of the redraw
// flag with the rendered output.
func multiRun(t *testing.T, frames ...frameT) {
	w, fonts := newWindow(t, 128, 128)
	sc := scene.New(w, scene.WithMetrics(fonts))
	for i := range frames {
		if frames[i].f != nil {
			frames[i].f(sc)
		}
		drawn, err := w.Frame(sc)
		if err != nil {
			t.Errorf("rendering failed: %v", err)
			continue
		}
		img, err := w.Screenshot()
		if err != nil {
			t.Errorf("screenshot failed: %v", err)
			continue
		}
		if frames[i].c != nil {
			frames[i].c(result{t: t, img: img, drawn: drawn})
		}
		if *dumpImages {
			name := imageName(t)
			if i != 0 {
				name += "_" + strconv.Itoa(i)
			}
			if err := saveImage(name+".png", img); err != nil {
				t.Error(err)
			}
		}
	}
}

// run draws a scene built by f three times and checks each image,
// to ensure repeated frames generate the same output.
func run(t *testing.T, f func(sc *scene.Scene), c func(r result)) {
	multiRun(t,
		frame(f, c),
		frame(func(sc *scene.Scene) { sc.MarkDirty() }, c),
		frame(nil, c),
	)
}

func imageName(t *testing.T) string {
	return strings.ReplaceAll(t.Name(), "/", "_")
}

func colorsClose(c1, c2 color.RGBA) bool {
	return close(c1.A, c2.A) && close(c1.R, c2.R) && close(c1.G, c2.G) && close(c1.B, c2.B)
}

func close(b1, b2 uint8) bool {
	if b1 > b2 {
		b1, b2 = b2, b1
	}
	diff := b2 - b1
	return diff < 10
}

func (r result) expect(x, y int, col color.RGBA) {
	r.t.Helper()
	if r.img == nil {
		return
	}
	c := r.img.RGBAAt(x, y)
	if !colorsClose(c, col) {
		r.t.Error("expected ", col, " at ", "(", x, ",", y, ") but got ", c)
	}
}

// expectDrawn checks whether the frame was drawn or skipped.
func (r result) expectDrawn(drawn bool) {
	r.t.Helper()
	if r.drawn != drawn {
		r.t.Errorf("frame drawn: got %v, expected %v", r.drawn, drawn)
	}
}

type result struct {
	t     *testing.T
	img   *image.RGBA
	drawn bool
}

func saveImage(file string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(file, buf.Bytes(), 0666)
}

func newWindow(t testing.TB, width, height int) (*headless.Window, *text.Collection) {
	fonts, err := text.NewCollection(text.WithGoFont())
	if err != nil {
		t.Fatalf("failed to load fonts: %v", err)
	}
	w, err := headless.NewWindow(width, height, headless.WithRasterizer(raster.New(fonts)))
	if err != nil {
		t.Fatalf("failed to create headless window: %v", err)
	}
	return w, fonts
}

func panel(t *testing.T, w, h string, c color.RGBA) *scene.Panel {
	t.Helper()
	p := scene.NewPanel()
	if err := p.SetSize(w, h); err != nil {
		t.Fatal(err)
	}
	p.SetColor(nrgba(c))
	return p
}
