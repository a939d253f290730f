// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package primitive

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/node"
)

// Path opcodes of the flat path encoding accepted by Shape.SetPath.
// Each opcode is followed by its arguments:
//
//	PathMoveTo  x y
//	PathClose
//	PathLineTo  x y
//	PathCurveTo c1x c1y c2x c2y x y
//	PathArc     cx cy r start end ccw   (angles in radians, ccw != 0 for counter-clockwise)
const (
	PathMoveTo = iota
	PathClose
	PathLineTo
	PathCurveTo
	PathArc
)

var opArgs = [...]int{
	PathMoveTo:  2,
	PathClose:   0,
	PathLineTo:  2,
	PathCurveTo: 6,
	PathArc:     6,
}

// ErrInvalidPath is returned by SetPath for malformed path data.
var ErrInvalidPath = errors.New("primitive: invalid path data")

// pathOp is one decoded path command.
type pathOp struct {
	op   int
	args []float64
}

// Shape fills and/or strokes a path.
type Shape struct {
	node.Base
	Style

	// Fill is the fill color; nil disables filling.
	Fill *gg.RGBA
	// Stroke is the stroke color; nil disables stroking.
	Stroke *gg.RGBA

	StrokeWidth float64
	StrokeCap   gg.LineCap
	StrokeJoin  gg.LineJoin
	FillRule    gg.FillRule

	ops []pathOp
}

// NewShape returns an empty, opaque shape with a 1px stroke width.
func NewShape() *Shape {
	s := &Shape{
		Style:       defaultStyle(),
		StrokeWidth: 1,
		StrokeJoin:  gg.LineJoinRound,
	}
	s.Init(s)
	return s
}

// SetPath decodes d and marks the shape updated. On error the previous path
// is kept.
func (s *Shape) SetPath(d []float64) error {
	ops, err := decodePath(d)
	if err != nil {
		return err
	}
	s.ops = ops
	s.MarkUpdated()
	return nil
}

// SetFill sets the fill color and marks the shape updated.
func (s *Shape) SetFill(c gg.RGBA) {
	s.Fill = &c
	s.MarkUpdated()
}

// SetStroke sets the stroke color and marks the shape updated.
func (s *Shape) SetStroke(c gg.RGBA) {
	s.Stroke = &c
	s.MarkUpdated()
}

func decodePath(d []float64) ([]pathOp, error) {
	var ops []pathOp
	for i := 0; i < len(d); {
		op := int(d[i])
		if float64(op) != d[i] || op < 0 || op >= len(opArgs) {
			return nil, fmt.Errorf("%w: unknown opcode %v at index %d", ErrInvalidPath, d[i], i)
		}
		n := opArgs[op]
		if i+1+n > len(d) {
			return nil, fmt.Errorf("%w: opcode %d at index %d needs %d arguments", ErrInvalidPath, op, i, n)
		}
		ops = append(ops, pathOp{op: op, args: d[i+1 : i+1+n]})
		i += 1 + n
	}
	return ops, nil
}

// Draw fills, then strokes, the path.
func (s *Shape) Draw(dc *gg.Context, paint *gg.Paint, opacity float64) {
	if len(s.ops) == 0 {
		return
	}
	opacity, ok := s.begin(dc, opacity)
	if !ok {
		return
	}
	defer s.end(dc)

	if s.Fill != nil {
		paint.SetBrush(gg.Solid(withAlpha(*s.Fill, opacity)))
		paint.FillRule = s.FillRule
		applyPaint(dc, paint)
		s.buildPath(dc)
		if err := dc.Fill(); err != nil {
			ggart.Logger().Debug("shape fill failed", "tag", s.Tag(), "err", err)
		}
	}
	if s.Stroke != nil && s.StrokeWidth > 0 {
		paint.SetBrush(gg.Solid(withAlpha(*s.Stroke, opacity)))
		paint.LineWidth = s.StrokeWidth
		paint.LineCap = s.StrokeCap
		paint.LineJoin = s.StrokeJoin
		applyPaint(dc, paint)
		s.buildPath(dc)
		if err := dc.Stroke(); err != nil {
			ggart.Logger().Debug("shape stroke failed", "tag", s.Tag(), "err", err)
		}
	}
}

func (s *Shape) buildPath(dc *gg.Context) {
	dc.ClearPath()
	for _, p := range s.ops {
		a := p.args
		switch p.op {
		case PathMoveTo:
			dc.MoveTo(a[0], a[1])
		case PathClose:
			dc.ClosePath()
		case PathLineTo:
			dc.LineTo(a[0], a[1])
		case PathCurveTo:
			dc.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case PathArc:
			start, end := a[3], a[4]
			if a[5] != 0 {
				// gg arcs run clockwise from start to end.
				start, end = end, start
			}
			if math.Abs(end-start) >= 2*math.Pi {
				dc.DrawCircle(a[0], a[1], a[2])
				continue
			}
			dc.DrawArc(a[0], a[1], a[2], start, end)
		}
	}
}

var _ Drawable = (*Shape)(nil)
