// SPDX-License-Identifier: Unlicense OR MIT

package text

// glyphCache is a least recently used cache of glyph metrics keyed
// by font and rune. It holds at most maxSize glyphs.
type glyphCache struct {
	m          map[glyphKey]*glyphElem
	head, tail *glyphElem
}

type glyphElem struct {
	next, prev *glyphElem
	key        glyphKey
	glyph      Glyph
}

type glyphKey struct {
	font string
	r    rune
}

const maxSize = 1000

func (c *glyphCache) Get(k glyphKey) (Glyph, bool) {
	if g, ok := c.m[k]; ok {
		c.remove(g)
		c.insert(g)
		return g.glyph, true
	}
	return Glyph{}, false
}

func (c *glyphCache) Put(k glyphKey, g Glyph) {
	if c.m == nil {
		c.m = make(map[glyphKey]*glyphElem)
		c.head = new(glyphElem)
		c.tail = new(glyphElem)
		c.head.prev = c.tail
		c.tail.next = c.head
	}
	val := &glyphElem{key: k, glyph: g}
	c.m[k] = val
	c.insert(val)
	if len(c.m) > maxSize {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
	}
}

// Drop evicts every entry for font.
func (c *glyphCache) Drop(font string) {
	for k, g := range c.m {
		if k.font == font {
			c.remove(g)
			delete(c.m, k)
		}
	}
}

func (c *glyphCache) remove(g *glyphElem) {
	g.next.prev = g.prev
	g.prev.next = g.next
}

func (c *glyphCache) insert(g *glyphElem) {
	g.next = c.head
	g.prev = c.head.prev
	g.prev.next = g
	g.next.prev = g
}
