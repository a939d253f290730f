// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package primitive

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggart/node"
)

// TextAlign positions each line relative to the text origin.
type TextAlign int

const (
	// AlignLeft starts lines at the origin.
	AlignLeft TextAlign = iota
	// AlignCenter centers lines on the origin.
	AlignCenter
	// AlignRight ends lines at the origin.
	AlignRight
)

var (
	defaultSourceOnce sync.Once
	defaultSource     *text.FontSource
	defaultSourceErr  error
)

// DefaultFace returns a Go Regular face of the given size.
func DefaultFace(size float64) (text.Face, error) {
	defaultSourceOnce.Do(func() {
		defaultSource, defaultSourceErr = text.NewFontSource(goregular.TTF)
	})
	if defaultSourceErr != nil {
		return nil, fmt.Errorf("primitive: load default font: %w", defaultSourceErr)
	}
	return defaultSource.Face(size), nil
}

// Text draws one or more lines of text with their baseline starting at the
// origin of its transform.
type Text struct {
	node.Base
	Style

	Face  text.Face
	Fill  gg.RGBA
	Align TextAlign
	// LineHeight is the baseline distance in pixels; 0 uses 1.2 × face size.
	LineHeight float64

	lines []string
}

// NewText returns an opaque black text node using face.
func NewText(face text.Face) *Text {
	t := &Text{
		Style: defaultStyle(),
		Face:  face,
		Fill:  gg.Black,
	}
	t.Init(t)
	return t
}

// SetText replaces the content, split on newlines, and marks the node updated.
func (t *Text) SetText(s string) {
	t.lines = strings.Split(s, "\n")
	t.MarkUpdated()
}

// Lines returns the current lines.
func (t *Text) Lines() []string { return t.lines }

// Draw paints each line.
func (t *Text) Draw(dc *gg.Context, paint *gg.Paint, opacity float64) {
	if t.Face == nil || len(t.lines) == 0 {
		return
	}
	opacity, ok := t.begin(dc, opacity)
	if !ok {
		return
	}
	defer t.end(dc)

	paint.SetBrush(gg.Solid(withAlpha(t.Fill, opacity)))
	applyPaint(dc, paint)
	dc.SetFont(t.Face)

	lh := t.LineHeight
	if lh == 0 {
		lh = t.Face.Size() * 1.2
	}
	var ax float64
	switch t.Align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	for i, line := range t.lines {
		y := float64(i) * lh
		if ax == 0 {
			dc.DrawString(line, 0, y)
			continue
		}
		w, _ := dc.MeasureString(line)
		dc.DrawString(line, -w*ax, y)
	}
}

var _ Drawable = (*Text)(nil)
