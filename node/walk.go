// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package node

// MarkChildrenUpdatesSeen clears the pending-update flag of every descendant
// of root, in pre-order. The flag of root itself is left to its caller.
// An empty subtree is a no-op.
func MarkChildrenUpdatesSeen(root Node) {
	for i := 0; i < root.ChildCount(); i++ {
		child := root.ChildAt(i)
		child.MarkUpdateSeen()
		MarkChildrenUpdatesSeen(child)
	}
}

// WalkDescendants calls fn for every descendant of root in pre-order.
// Returning false from fn skips that node's subtree.
func WalkDescendants(root Node, fn func(Node) bool) {
	for i := 0; i < root.ChildCount(); i++ {
		child := root.ChildAt(i)
		if fn(child) {
			WalkDescendants(child, fn)
		}
	}
}
