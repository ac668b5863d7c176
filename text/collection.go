// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/image/font/gofont/goregular"
)

// GoRegular is the key under which WithGoFont registers the Go
// regular font.
const GoRegular = "go-regular"

// Collection is a registry of fonts keyed by name. It implements
// Metrics and is safe for concurrent use.
type Collection struct {
	logger *slog.Logger

	mu    sync.Mutex
	faces map[string]*face
	// def is the key of the default font, or empty.
	def    string
	cache  glyphCache
	warned map[string]bool
	err    error
}

type face struct {
	src  []byte
	face *font.Face
	upem float32
}

// Option configures a Collection.
type Option func(c *Collection)

// WithFont registers the TrueType or OpenType font ttf under key.
// The first font of a collection file is used.
func WithFont(key string, ttf []byte) Option {
	return func(c *Collection) {
		if c.err != nil {
			return
		}
		c.err = c.register(key, ttf)
	}
}

// WithDefault registers ttf under key and makes it the default
// font.
func WithDefault(key string, ttf []byte) Option {
	return func(c *Collection) {
		WithFont(key, ttf)(c)
		if c.err == nil {
			c.def = key
		}
	}
}

// WithGoFont registers the Go regular font under GoRegular and
// makes it the default font.
func WithGoFont() Option {
	return WithDefault(GoRegular, goregular.TTF)
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Collection) {
		c.logger = l
	}
}

// NewCollection returns a collection configured by opts.
func NewCollection(opts ...Option) (*Collection, error) {
	c := &Collection{
		logger: slog.Default(),
		faces:  make(map[string]*face),
	}
	for _, o := range opts {
		o(c)
	}
	if c.err != nil {
		return nil, c.err
	}
	return c, nil
}

// Register the font ttf under key, replacing any font already
// registered under that key.
func (c *Collection) Register(key string, ttf []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.register(key, ttf)
}

func (c *Collection) register(key string, ttf []byte) error {
	if key == "" {
		return fmt.Errorf("text: empty font key")
	}
	faces, err := font.ParseTTC(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("failed parsing font %q: %w", key, err)
	}
	if len(faces) == 0 {
		return fmt.Errorf("failed parsing font %q: no faces", key)
	}
	f := faces[0]
	c.faces[key] = &face{
		src:  ttf,
		face: f,
		upem: float32(f.Upem()),
	}
	c.cache.Drop(key)
	delete(c.warned, key)
	c.logger.Info("font registered", "font", key, "family", f.Describe().Family)
	return nil
}

// SetDefault makes the font registered under key the default.
func (c *Collection) SetDefault(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.faces[key]; !ok {
		return fmt.Errorf("%w: font %q is not registered", ErrMissingMetrics, key)
	}
	c.def = key
	return nil
}

// Default returns the key of the default font and whether one
// is configured.
func (c *Collection) Default() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.def, c.def != ""
}

// Keys returns the registered font keys in sorted order.
func (c *Collection) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := maps.Keys(c.faces)
	slices.Sort(keys)
	return keys
}

// Source returns the font data that key resolves to, together
// with the resolved key.
func (c *Collection) Source(key string) ([]byte, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key, f, err := c.lookup(key)
	if err != nil {
		return nil, "", err
	}
	return f.src, key, nil
}

// Glyph implements Metrics.
func (c *Collection) Glyph(key string, r rune) (Glyph, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key, f, err := c.lookup(key)
	if err != nil {
		return Glyph{}, err
	}
	return c.glyph(key, f, r), nil
}

// Measure implements Metrics.
func (c *Collection) Measure(key, s string, size float32) (float32, error) {
	w, err := width(c, key, s)
	if err != nil {
		return 0, err
	}
	return w * size / BaseSize, nil
}

// lookup resolves key to a registered face. The empty key and
// unknown keys fall back to the default font.
func (c *Collection) lookup(key string) (string, *face, error) {
	if f, ok := c.faces[key]; ok {
		return key, f, nil
	}
	if c.def == "" {
		if key == "" {
			return "", nil, fmt.Errorf("%w: no default font", ErrMissingMetrics)
		}
		return "", nil, fmt.Errorf("%w: unknown font %q and no default font", ErrMissingMetrics, key)
	}
	if key != "" && !c.warned[key] {
		if c.warned == nil {
			c.warned = make(map[string]bool)
		}
		c.warned[key] = true
		c.logger.Warn("unknown font, using default", "font", key, "default", c.def)
	}
	return c.def, c.faces[c.def], nil
}

func (c *Collection) glyph(key string, f *face, r rune) Glyph {
	k := glyphKey{font: key, r: r}
	if g, ok := c.cache.Get(k); ok {
		return g
	}
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		gid, _ = f.face.NominalGlyph(' ')
	}
	scale := BaseSize / f.upem
	g := Glyph{
		Rune:    r,
		Advance: f.face.HorizontalAdvance(gid) * scale,
	}
	if ext, ok := f.face.GlyphExtents(gid); ok {
		g.OffsetX = ext.XBearing * scale
	}
	c.cache.Put(k, g)
	return g
}
