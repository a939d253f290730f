// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package primitive provides the vector nodes that paint themselves into a
// surface canvas: groups, shapes and text.
//
// A primitive never owns a surface. The view that does hands each of its
// drawable children the locked canvas, a paint reused for the whole frame,
// and the accumulated opacity. Groups pass the canvas on to their own
// children and clear their flags as they go.
package primitive

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggart/node"
)

// MinOpacityForDraw is the accumulated opacity below which a primitive is
// skipped entirely.
const MinOpacityForDraw = 0.01

// Drawable is the capability of painting into a canvas.
type Drawable interface {
	node.Node

	// Draw paints the node into dc. paint is shared by every primitive drawn
	// in the same frame; implementations overwrite the fields they use.
	// opacity is the product of the ancestors' opacities.
	Draw(dc *gg.Context, paint *gg.Paint, opacity float64)
}

// Style holds the properties every primitive has.
type Style struct {
	// Opacity multiplies the accumulated opacity. New primitives use 1.
	Opacity float64
	// Transform is applied on top of the parent's transform.
	Transform gg.Matrix
}

func defaultStyle() Style {
	return Style{Opacity: 1, Transform: gg.Identity()}
}

// begin saves the canvas state and applies the transform. It reports false,
// without touching dc, when the node is too transparent to draw.
func (s *Style) begin(dc *gg.Context, opacity float64) (float64, bool) {
	opacity *= s.Opacity
	if opacity <= MinOpacityForDraw {
		return opacity, false
	}
	dc.Push()
	dc.Transform(s.Transform)
	return opacity, true
}

func (s *Style) end(dc *gg.Context) {
	dc.Pop()
}

// withAlpha scales c's alpha by opacity.
func withAlpha(c gg.RGBA, opacity float64) gg.RGBA {
	c.A *= opacity
	return c
}

// applyPaint copies paint into dc's current state.
func applyPaint(dc *gg.Context, paint *gg.Paint) {
	dc.SetFillBrush(paint.Brush)
	dc.SetLineWidth(paint.LineWidth)
	dc.SetLineCap(paint.LineCap)
	dc.SetLineJoin(paint.LineJoin)
	dc.SetFillRule(paint.FillRule)
}
