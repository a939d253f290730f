// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package node provides the retained tree that surface-backed views and
// drawable primitives are built from.
//
// Concrete node types embed [Base] and call [Base.Init] with their own
// pointer so that tree links always refer to the outer type:
//
//	type Circle struct {
//	    node.Base
//	    R float64
//	}
//
//	func NewCircle() *Circle {
//	    c := &Circle{}
//	    c.Init(c)
//	    return c
//	}
//
// Tree mutation and update flags belong to the render goroutine; none of
// the methods here are safe for concurrent use.
package node

import (
	"sync/atomic"

	"github.com/gogpu/ggart/layout"
)

// Node is the tree capability shared by every element.
// All methods except AsBase are provided by embedding [Base].
type Node interface {
	// AsBase returns the embedded Base.
	AsBase() *Base

	Tag() int
	Parent() Node
	ChildCount() int
	ChildAt(i int) Node

	// MarkUpdated flags the node, and every ancestor not yet flagged,
	// as having a pending visual update.
	MarkUpdated()

	// MarkUpdateSeen clears the node's own pending-update flag.
	MarkUpdateSeen()

	// HasUnseenUpdates reports the pending-update flag.
	HasUnseenUpdates() bool
}

var lastTag atomic.Int64

// nextTag hands out process-unique tags, starting at 1.
func nextTag() int {
	return int(lastTag.Add(1))
}

// Base is the embeddable tree element.
type Base struct {
	// This is the outer value embedding Base. It is set by Init.
	This Node

	tag      int
	parent   Node
	children []Node
	updated  bool
	padding  layout.Spacing

	mountToView         bool
	mountChildrenToView bool
}

// Init binds b to the outer node value and assigns a fresh tag.
// It must be called once, before the node is linked into a tree.
func (b *Base) Init(this Node) {
	b.This = this
	b.tag = nextTag()
	b.padding = layout.NewSpacing()
}

// AsBase returns b.
func (b *Base) AsBase() *Base { return b }

// Tag returns the node's unique tag.
func (b *Base) Tag() int { return b.tag }

// SetTag overrides the tag assigned by Init.
func (b *Base) SetTag(tag int) { b.tag = tag }

// Parent returns the parent node, or nil for a root.
func (b *Base) Parent() Node { return b.parent }

// ChildCount returns the number of direct children.
func (b *Base) ChildCount() int { return len(b.children) }

// ChildAt returns the i-th child in tree order.
func (b *Base) ChildAt(i int) Node { return b.children[i] }

// Children returns the child slice. The slice must not be modified.
func (b *Base) Children() []Node { return b.children }

// AddChild appends child, detaching it from any previous parent.
func (b *Base) AddChild(child Node) {
	b.InsertChild(child, len(b.children))
}

// InsertChild inserts child at index i, detaching it from any previous parent.
// Indices past the end append.
func (b *Base) InsertChild(child Node, i int) {
	if b.This == nil {
		panic("node: InsertChild on a node without Init")
	}
	cb := child.AsBase()
	if cb.parent != nil {
		cb.parent.AsBase().RemoveChild(child)
	}
	if i < 0 || i > len(b.children) {
		i = len(b.children)
	}
	b.children = append(b.children, nil)
	copy(b.children[i+1:], b.children[i:])
	b.children[i] = child
	cb.parent = b.This
	b.MarkUpdated()
}

// RemoveChild unlinks child and reports whether it was found.
func (b *Base) RemoveChild(child Node) bool {
	for i, c := range b.children {
		if c == child {
			b.RemoveChildAt(i)
			return true
		}
	}
	return false
}

// RemoveChildAt unlinks and returns the i-th child.
func (b *Base) RemoveChildAt(i int) Node {
	child := b.children[i]
	b.children = append(b.children[:i], b.children[i+1:]...)
	child.AsBase().parent = nil
	b.MarkUpdated()
	return child
}

// MarkUpdated flags b and propagates the flag towards the root, stopping
// at the first ancestor that is already flagged.
func (b *Base) MarkUpdated() {
	if b.updated {
		return
	}
	b.updated = true
	if b.parent != nil {
		b.parent.MarkUpdated()
	}
}

// MarkUpdateSeen clears b's pending-update flag. Descendants are untouched.
func (b *Base) MarkUpdateSeen() { b.updated = false }

// HasUnseenUpdates reports b's pending-update flag.
func (b *Base) HasUnseenUpdates() bool { return b.updated }

// StylePadding returns the padding currently stored for edge e.
func (b *Base) StylePadding(e layout.Edge) layout.Value {
	return b.padding.Get(e)
}

// SetStylePadding stores v as the padding for edge e. It is the plain layout
// mechanism: it neither compares nor marks the node updated.
func (b *Base) SetStylePadding(e layout.Edge, v layout.Value) {
	b.padding.Set(e, v)
}

// ForceMountToView requests that this node be backed by a real platform view.
func (b *Base) ForceMountToView() { b.mountToView = true }

// ForceMountChildrenToView requests that every child also be backed by a
// platform view.
func (b *Base) ForceMountChildrenToView() { b.mountChildrenToView = true }

// MountsToView reports whether ForceMountToView was requested.
func (b *Base) MountsToView() bool { return b.mountToView }

// MountsChildrenToView reports whether ForceMountChildrenToView was requested.
func (b *Base) MountsChildrenToView() bool { return b.mountChildrenToView }
