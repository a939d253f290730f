// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layout holds the style values a node hands to the external layout
// engine. Only the representation lives here; resolution of percentages
// against a parent size is the layout engine's job.
package layout

import (
	"fmt"
	"math"
)

// Unit tags how a Value is to be interpreted.
type Unit int

const (
	// UnitUndefined means no value has been set.
	UnitUndefined Unit = iota
	// UnitPoint is an absolute length in points.
	UnitPoint
	// UnitPercent is a fraction of the parent's size, in percent.
	UnitPercent
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case UnitPoint:
		return "pt"
	case UnitPercent:
		return "%"
	default:
		return "undefined"
	}
}

// Value is a magnitude tagged with its unit.
type Value struct {
	Value float32
	Unit  Unit
}

// Undefined is the zero padding of a fresh node.
var Undefined = Value{Value: float32(math.NaN()), Unit: UnitUndefined}

// Point returns an absolute value.
func Point(v float32) Value {
	return Value{Value: v, Unit: UnitPoint}
}

// Percent returns a percentage value.
func Percent(v float32) Value {
	return Value{Value: v, Unit: UnitPercent}
}

// Equal reports whether both unit and magnitude match. Two undefined values
// are equal regardless of their (NaN) magnitude.
func (v Value) Equal(o Value) bool {
	if v.Unit != o.Unit {
		return false
	}
	if v.Unit == UnitUndefined {
		return true
	}
	return v.Value == o.Value
}

// String formats the value with its unit suffix.
func (v Value) String() string {
	if v.Unit == UnitUndefined {
		return "undefined"
	}
	return fmt.Sprintf("%g%s", v.Value, v.Unit)
}
