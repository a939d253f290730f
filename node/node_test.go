// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggart/layout"
)

// countingNode records how many times its flag was cleared.
type countingNode struct {
	Base
	seen int
}

func newCountingNode() *countingNode {
	n := &countingNode{}
	n.Init(n)
	return n
}

func (n *countingNode) MarkUpdateSeen() {
	n.seen++
	n.Base.MarkUpdateSeen()
}

// buildTree returns a root with the shape root -> {a -> {a1, a2}, b, c -> {c1 -> {c11}}}
// and every node flagged updated.
func buildTree() (*countingNode, []*countingNode) {
	root := newCountingNode()
	a, b, c := newCountingNode(), newCountingNode(), newCountingNode()
	a1, a2, c1, c11 := newCountingNode(), newCountingNode(), newCountingNode(), newCountingNode()
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)
	a.AddChild(a1)
	a.AddChild(a2)
	c.AddChild(c1)
	c1.AddChild(c11)
	all := []*countingNode{a, b, c, a1, a2, c1, c11}
	for _, n := range all {
		n.MarkUpdated()
	}
	return root, all
}

func TestInitAssignsUniqueTags(t *testing.T) {
	a, b := newCountingNode(), newCountingNode()
	assert.NotZero(t, a.Tag())
	assert.NotEqual(t, a.Tag(), b.Tag())
	assert.Same(t, a, a.This)
}

func TestAddChildLinksOuterType(t *testing.T) {
	root, child := newCountingNode(), newCountingNode()
	root.AddChild(child)

	require.Equal(t, 1, root.ChildCount())
	assert.Same(t, child, root.ChildAt(0))
	assert.Same(t, root, child.Parent())
}

func TestInsertChildReparents(t *testing.T) {
	p1, p2 := newCountingNode(), newCountingNode()
	x, y := newCountingNode(), newCountingNode()
	p1.AddChild(x)
	p2.AddChild(y)
	p2.InsertChild(x, 0)

	assert.Equal(t, 0, p1.ChildCount())
	require.Equal(t, 2, p2.ChildCount())
	assert.Same(t, x, p2.ChildAt(0))
	assert.Same(t, y, p2.ChildAt(1))
	assert.Same(t, p2, x.Parent())
}

func TestRemoveChild(t *testing.T) {
	root, child := newCountingNode(), newCountingNode()
	root.AddChild(child)
	root.MarkUpdateSeen()

	assert.True(t, root.RemoveChild(child))
	assert.Nil(t, child.Parent())
	assert.Equal(t, 0, root.ChildCount())
	assert.True(t, root.HasUnseenUpdates(), "removal is a visual change")
	assert.False(t, root.RemoveChild(child))
}

func TestMarkUpdatedPropagatesToAncestors(t *testing.T) {
	root, mid, leaf := newCountingNode(), newCountingNode(), newCountingNode()
	root.AddChild(mid)
	mid.AddChild(leaf)
	root.MarkUpdateSeen()
	mid.MarkUpdateSeen()

	leaf.MarkUpdated()

	assert.True(t, leaf.HasUnseenUpdates())
	assert.True(t, mid.HasUnseenUpdates())
	assert.True(t, root.HasUnseenUpdates())
}

func TestMarkUpdateSeenIsLocal(t *testing.T) {
	root, child := newCountingNode(), newCountingNode()
	root.AddChild(child)
	child.MarkUpdated()

	root.MarkUpdateSeen()

	assert.False(t, root.HasUnseenUpdates())
	assert.True(t, child.HasUnseenUpdates())
}

func TestMarkChildrenUpdatesSeen(t *testing.T) {
	root, all := buildTree()

	MarkChildrenUpdatesSeen(root)

	for i, n := range all {
		assert.False(t, n.HasUnseenUpdates(), "node %d still flagged", i)
		assert.Equal(t, 1, n.seen, "node %d cleared %d times", i, n.seen)
	}
	assert.Zero(t, root.seen, "root is cleared by its caller")
	assert.True(t, root.HasUnseenUpdates())
}

func TestMarkChildrenUpdatesSeenEmpty(t *testing.T) {
	root := newCountingNode()
	root.MarkUpdated()

	assert.NotPanics(t, func() { MarkChildrenUpdatesSeen(root) })
	assert.True(t, root.HasUnseenUpdates())
}

func TestWalkDescendantsSkipsSubtree(t *testing.T) {
	root, all := buildTree()
	a, c := all[0], all[2]

	var visited []Node
	WalkDescendants(root, func(n Node) bool {
		visited = append(visited, n)
		return n != Node(a)
	})

	// a's children are skipped; c's grandchild is reached.
	assert.Len(t, visited, 5)
	assert.Contains(t, visited, Node(c))
	assert.NotContains(t, visited, Node(all[3]))
}

func TestStylePadding(t *testing.T) {
	n := newCountingNode()
	assert.Equal(t, layout.UnitUndefined, n.StylePadding(layout.EdgeLeft).Unit)

	n.MarkUpdateSeen()
	n.SetStylePadding(layout.EdgeLeft, layout.Point(3))

	assert.Equal(t, layout.Point(3), n.StylePadding(layout.EdgeLeft))
	assert.False(t, n.HasUnseenUpdates(), "plain setter must not mark updated")
}

func TestMountFlags(t *testing.T) {
	n := newCountingNode()
	assert.False(t, n.MountsToView())
	n.ForceMountToView()
	n.ForceMountChildrenToView()
	assert.True(t, n.MountsToView())
	assert.True(t, n.MountsChildrenToView())
}
