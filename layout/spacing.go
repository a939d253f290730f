// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

// Edge identifies one side of a box.
type Edge int

const (
	// EdgeLeft is the left side.
	EdgeLeft Edge = iota
	// EdgeTop is the top side.
	EdgeTop
	// EdgeRight is the right side.
	EdgeRight
	// EdgeBottom is the bottom side.
	EdgeBottom

	edgeCount
)

// Edges lists every edge in storage order.
var Edges = [edgeCount]Edge{EdgeLeft, EdgeTop, EdgeRight, EdgeBottom}

// Valid reports whether e names one of the four edges.
func (e Edge) Valid() bool {
	return e >= EdgeLeft && e < edgeCount
}

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	default:
		return "invalid"
	}
}

// Spacing stores one Value per edge, e.g. a node's padding.
// The zero Spacing is not useful; use NewSpacing.
type Spacing struct {
	values [edgeCount]Value
}

// NewSpacing returns a Spacing with every edge undefined.
func NewSpacing() Spacing {
	var s Spacing
	for i := range s.values {
		s.values[i] = Undefined
	}
	return s
}

// Get returns the value stored for e. Invalid edges read as Undefined.
func (s *Spacing) Get(e Edge) Value {
	if !e.Valid() {
		return Undefined
	}
	return s.values[e]
}

// Set stores v for e and reports whether the stored value changed.
// Invalid edges are ignored.
func (s *Spacing) Set(e Edge, v Value) bool {
	if !e.Valid() || s.values[e].Equal(v) {
		return false
	}
	s.values[e] = v
	return true
}
