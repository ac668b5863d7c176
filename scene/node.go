// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slices"
	"golang.org/x/image/colornames"

	"vextui.org/f32"
	"vextui.org/layout"
	"vextui.org/unit"
)

// Parent is implemented by everything that holds children: the
// Scene and every Component.
type Parent interface {
	// Children returns a snapshot of the child list. It is safe
	// to call while the list is being modified.
	Children() []Component
	AddChildren(cs ...Component)
	SetChildren(cs ...Component)
	MarkDirty()
	// Scene returns the owning Scene, or nil for detached
	// components.
	Scene() *Scene
	InternalWidth() (float32, error)
	InternalHeight() (float32, error)
	// MaxInternalWidth and MaxInternalHeight return the reference
	// size children resolve their own size expressions against.
	MaxInternalWidth() (float32, error)
	MaxInternalHeight() (float32, error)
	// AnchorWidthMultiplier and AnchorHeightMultiplier return 1
	// if children place themselves by their anchor on that axis
	// and 0 if the parent positions them.
	AnchorWidthMultiplier() float32
	AnchorHeightMultiplier() float32
}

// Component is a node of the scene tree. Implementations embed a
// Node and call its Init method with themselves.
type Component interface {
	Parent
	// Base returns the embedded Node.
	Base() *Node
	CalculateWidth() (float32, error)
	CalculateHeight() (float32, error)
	ExternalWidth() (float32, error)
	ExternalHeight() (float32, error)
	SetWidth(e string) error
	SetHeight(e string) error
	// Draw emits the component's own content, with the origin at
	// the top left corner of its border box.
	Draw(r Renderer) error
	// DrawPipeline draws the component and its children.
	DrawPipeline(r Renderer) error
	postDraw(r Renderer) error
}

// sceneHook is implemented by components that react to being
// attached to a Scene.
type sceneHook interface {
	sceneChanged()
}

// Node is the box model shared by all components. A Node is itself
// a Component that draws nothing, useful for grouping.
//
// Geometry attributes are dimension expressions as accepted by
// unit.Resolve. Sizes resolve against the parent's maximum internal
// extent, as do offsets, margins and paddings.
type Node struct {
	this   Component
	parent Parent
	scene  *Scene
	// clean is the inverse of the dirty flag, so that the zero
	// Node is dirty.
	clean    atomic.Bool
	children childList

	size   [2]string
	offset [2]string
	// Start is left or top, end is right or bottom.
	marginStart, marginEnd   [2]string
	paddingStart, paddingEnd [2]string
	scale                    [2]float32
	rotation                 [3]float32
	color                    color.NRGBA
	anchor                   layout.Anchor
}

var axes = [...]layout.Axis{layout.Horizontal, layout.Vertical}

// childList is a copy-on-write list of components. Readers get an
// immutable snapshot; writers serialize on mu and swap in a new
// slice.
type childList struct {
	mu sync.Mutex
	p  atomic.Pointer[[]Component]
}

// NewNode returns an initialized Node.
func NewNode() *Node {
	n := new(Node)
	n.Init(n)
	return n
}

// Init sets the defaults of n and records this as the component
// n is embedded in. Methods of n dispatch size calculation and
// drawing through this.
func (n *Node) Init(this Component) {
	n.this = this
	for _, a := range axes {
		n.size[a] = "0"
		n.offset[a] = "0"
		n.marginStart[a], n.marginEnd[a] = "0", "0"
		n.paddingStart[a], n.paddingEnd[a] = "0", "0"
		n.scale[a] = 1
	}
	n.color = color.NRGBA(colornames.White)
	n.anchor = layout.LeftTop
	n.clean.Store(false)
}

func (n *Node) self() Component {
	if n.this != nil {
		return n.this
	}
	return n
}

func (n *Node) Base() *Node {
	return n
}

// Parent returns the parent of n, or nil.
func (n *Node) Parent() Parent {
	return n.parent
}

func (n *Node) Scene() *Scene {
	return n.scene
}

// Dirty reports whether n changed since it was last drawn.
func (n *Node) Dirty() bool {
	return !n.clean.Load()
}

// MarkDirty flags n and all its descendants as changed and asks the
// owning Scene for a redraw. It does nothing if n is already dirty.
func (n *Node) MarkDirty() {
	if !n.clean.CompareAndSwap(true, false) {
		return
	}
	if s := n.scene; s != nil {
		s.MarkDirty()
	}
	for _, c := range n.Children() {
		c.MarkDirty()
	}
}

func (n *Node) Children() []Component {
	return n.children.load()
}

// AddChildren appends cs to the child list and reparents them to
// n. A component moved from another parent stays in that parent's
// child list; use SetChildren on the old parent to remove it.
func (n *Node) AddChildren(cs ...Component) {
	// Reparent before publishing, so a concurrent traversal only
	// sees attached children.
	for _, c := range cs {
		c.Base().setParent(n.self())
	}
	n.children.append(cs)
	n.invalidate()
}

// SetChildren replaces the child list with cs.
func (n *Node) SetChildren(cs ...Component) {
	for _, c := range cs {
		c.Base().setParent(n.self())
	}
	n.children.replace(cs)
	n.invalidate()
}

// invalidate requests a redraw after a structural change.
func (n *Node) invalidate() {
	if s := n.scene; s != nil {
		s.MarkDirty()
	}
}

func (n *Node) setParent(p Parent) {
	if n.parent == p {
		return
	}
	n.parent = p
	n.MarkDirty()
	n.setScene(p.Scene())
}

func (n *Node) setScene(s *Scene) {
	if s == nil || s == n.scene {
		return
	}
	n.MarkDirty()
	n.scene = s
	for _, c := range n.Children() {
		c.Base().setScene(s)
	}
	if h, ok := n.self().(sceneHook); ok {
		h.sceneChanged()
	}
}

// reference returns the size expressions of n resolve against on
// axis a.
func (n *Node) reference(a layout.Axis) (float32, error) {
	if n.parent == nil {
		return 0, nil
	}
	return maxInternal(n.parent, a)
}

func (n *Node) resolve(e string, a layout.Axis) (float32, error) {
	ref, err := n.reference(a)
	if err != nil {
		return 0, err
	}
	return unit.Resolve(e, ref)
}

// resolveSum resolves each expression on axis a and returns their
// sum.
func (n *Node) resolveSum(a layout.Axis, es ...string) (float32, error) {
	ref, err := n.reference(a)
	if err != nil {
		return 0, err
	}
	var sum float32
	for _, e := range es {
		v, err := unit.Resolve(e, ref)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

func (n *Node) calculate(a layout.Axis) (float32, error) {
	v, err := n.resolve(n.size[a], a)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", sizeName(a), err)
	}
	return v, nil
}

func (n *Node) external(a layout.Axis) (float32, error) {
	v, err := calculated(n.self(), a)
	if err != nil {
		return 0, err
	}
	m, err := n.resolveSum(a, n.marginStart[a], n.marginEnd[a])
	if err != nil {
		return 0, fmt.Errorf("margin: %w", err)
	}
	return v + m, nil
}

func (n *Node) internal(a layout.Axis) (float32, error) {
	v, err := calculated(n.self(), a)
	if err != nil {
		return 0, err
	}
	p, err := n.resolveSum(a, n.paddingStart[a], n.paddingEnd[a])
	if err != nil {
		return 0, fmt.Errorf("padding: %w", err)
	}
	return v - p, nil
}

// CalculateWidth resolves the width expression against the parent's
// maximum internal width, or 0 without a parent.
func (n *Node) CalculateWidth() (float32, error) {
	return n.calculate(layout.Horizontal)
}

// CalculateHeight is the vertical counterpart of CalculateWidth.
func (n *Node) CalculateHeight() (float32, error) {
	return n.calculate(layout.Vertical)
}

// ExternalWidth returns the calculated width plus horizontal margins.
func (n *Node) ExternalWidth() (float32, error) {
	return n.external(layout.Horizontal)
}

func (n *Node) ExternalHeight() (float32, error) {
	return n.external(layout.Vertical)
}

// InternalWidth returns the calculated width less horizontal
// paddings.
func (n *Node) InternalWidth() (float32, error) {
	return n.internal(layout.Horizontal)
}

func (n *Node) InternalHeight() (float32, error) {
	return n.internal(layout.Vertical)
}

func (n *Node) MaxInternalWidth() (float32, error) {
	return n.self().InternalWidth()
}

func (n *Node) MaxInternalHeight() (float32, error) {
	return n.self().InternalHeight()
}

func (n *Node) AnchorWidthMultiplier() float32 {
	return 1
}

func (n *Node) AnchorHeightMultiplier() float32 {
	return 1
}

// Draw draws nothing.
func (n *Node) Draw(r Renderer) error {
	return nil
}

// DrawPipeline saves the transform, positions the node inside its
// parent, draws it and its children and restores the transform.
// The transform is restored even if drawing fails.
func (n *Node) DrawPipeline(r Renderer) error {
	r.PushTransform()
	defer r.PopTransform()
	n.clean.Store(true)
	self := n.self()
	if err := n.preDraw(r); err != nil {
		return err
	}
	if err := self.Draw(r); err != nil {
		return err
	}
	return self.postDraw(r)
}

func (n *Node) preDraw(r Renderer) error {
	if p := n.parent; p != nil {
		var space, size f32.Point
		var err error
		if space.X, err = p.InternalWidth(); err != nil {
			return err
		}
		if space.Y, err = p.InternalHeight(); err != nil {
			return err
		}
		self := n.self()
		if size.X, err = self.ExternalWidth(); err != nil {
			return err
		}
		if size.Y, err = self.ExternalHeight(); err != nil {
			return err
		}
		pos := n.anchor.Place(space, size)
		r.Translate(pos.X*p.AnchorWidthMultiplier(), pos.Y*p.AnchorHeightMultiplier())
	}
	var off, margin [2]float32
	for _, a := range axes {
		var err error
		if off[a], err = n.resolve(n.offset[a], a); err != nil {
			return fmt.Errorf("offset: %w", err)
		}
		if margin[a], err = n.resolve(n.marginStart[a], a); err != nil {
			return fmt.Errorf("margin: %w", err)
		}
	}
	r.Translate(off[0], off[1])
	r.Translate(margin[0], margin[1])
	r.Rotate(n.rotation[0], n.rotation[1], n.rotation[2])
	r.Scale(n.scale[0], n.scale[1])
	return nil
}

// paddingOrigin translates to the top left corner of the content
// box.
func (n *Node) paddingOrigin(r Renderer) error {
	var pad [2]float32
	for _, a := range axes {
		var err error
		if pad[a], err = n.resolve(n.paddingStart[a], a); err != nil {
			return fmt.Errorf("padding: %w", err)
		}
	}
	r.Translate(pad[0], pad[1])
	return nil
}

func (n *Node) postDraw(r Renderer) error {
	if err := n.paddingOrigin(r); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if err := c.DrawPipeline(r); err != nil {
			return err
		}
	}
	return nil
}

func (l *childList) load() []Component {
	if p := l.p.Load(); p != nil {
		return *p
	}
	return nil
}

func (l *childList) append(cs []Component) {
	l.mu.Lock()
	defer l.mu.Unlock()
	next := append(slices.Clone(l.load()), cs...)
	l.p.Store(&next)
}

func (l *childList) replace(cs []Component) {
	l.mu.Lock()
	defer l.mu.Unlock()
	next := slices.Clone(cs)
	l.p.Store(&next)
}

func calculated(c Component, a layout.Axis) (float32, error) {
	if a == layout.Horizontal {
		return c.CalculateWidth()
	}
	return c.CalculateHeight()
}

func internal(p Parent, a layout.Axis) (float32, error) {
	if a == layout.Horizontal {
		return p.InternalWidth()
	}
	return p.InternalHeight()
}

func maxInternal(p Parent, a layout.Axis) (float32, error) {
	if a == layout.Horizontal {
		return p.MaxInternalWidth()
	}
	return p.MaxInternalHeight()
}

func sizeName(a layout.Axis) string {
	if a == layout.Horizontal {
		return "width"
	}
	return "height"
}
