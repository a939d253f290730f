// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import "testing"

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same points", Point(10), Point(10), true},
		{"different magnitude", Point(10), Point(11), false},
		{"unit differs", Point(10), Percent(10), false},
		{"both undefined", Undefined, Undefined, true},
		{"undefined vs zero", Undefined, Point(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSpacingSet(t *testing.T) {
	s := NewSpacing()
	for _, e := range Edges {
		if got := s.Get(e); got.Unit != UnitUndefined {
			t.Errorf("fresh %v = %v, want undefined", e, got)
		}
	}

	if !s.Set(EdgeTop, Point(4)) {
		t.Error("first Set should report a change")
	}
	if s.Set(EdgeTop, Point(4)) {
		t.Error("repeated Set should not report a change")
	}
	if !s.Set(EdgeTop, Percent(4)) {
		t.Error("unit change should report a change")
	}
	if got := s.Get(EdgeTop); got != Percent(4) {
		t.Errorf("Get(top) = %v, want 4%%", got)
	}
	if s.Set(Edge(42), Point(1)) {
		t.Error("invalid edge should be ignored")
	}
}

func TestValueString(t *testing.T) {
	if got := Point(2.5).String(); got != "2.5pt" {
		t.Errorf("String() = %q", got)
	}
	if got := Percent(50).String(); got != "50%" {
		t.Errorf("String() = %q", got)
	}
	if got := Undefined.String(); got != "undefined" {
		t.Errorf("String() = %q", got)
	}
}
