// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package primitive

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggart/node"
)

// Group draws its drawable children with a shared transform and opacity.
type Group struct {
	node.Base
	Style
}

// NewGroup returns an opaque group with the identity transform.
func NewGroup() *Group {
	g := &Group{Style: defaultStyle()}
	g.Init(g)
	return g
}

// Draw paints the drawable children in order and clears their update flags.
// Children that are not Drawable are not painted; their subtrees are marked
// seen. A group too transparent to draw marks its whole subtree seen.
func (g *Group) Draw(dc *gg.Context, paint *gg.Paint, opacity float64) {
	opacity, ok := g.begin(dc, opacity)
	if !ok {
		node.MarkChildrenUpdatesSeen(g)
		return
	}
	defer g.end(dc)

	DrawChildren(g, dc, paint, opacity)
}

// DrawChildren paints the drawable children of parent in tree order, clearing
// each child's flag right after it is painted. Non-drawable children are
// skipped; they and their descendants are marked seen instead, so every
// descendant is cleared exactly once.
func DrawChildren(parent node.Node, dc *gg.Context, paint *gg.Paint, opacity float64) {
	for i := 0; i < parent.ChildCount(); i++ {
		child := parent.ChildAt(i)
		d, ok := child.(Drawable)
		if !ok {
			child.MarkUpdateSeen()
			node.MarkChildrenUpdatesSeen(child)
			continue
		}
		d.Draw(dc, paint, opacity)
		d.MarkUpdateSeen()
	}
}

var _ Drawable = (*Group)(nil)
