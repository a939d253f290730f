// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package artview

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggart/node"
	"github.com/gogpu/ggart/primitive"
	"github.com/gogpu/ggart/surface"
)

// drawOutput requests a composite draw cycle. If another goroutine, or an
// outer call on this one, is already drawing, the request is left to it and
// drawOutput returns at once. Failures are reported to the logger and never
// returned: a dropped frame is retried by the next tick or the next
// SurfaceCreated.
func (v *SurfaceView) drawOutput() {
	v.redraw.Store(true)
	for v.redraw.Load() {
		if !v.drawing.TryLock() {
			return
		}
		v.drainRedraws()
	}
}

// drainRedraws runs draw cycles until no request is pending. The caller
// holds v.drawing.
func (v *SurfaceView) drainRedraws() {
	defer v.drawing.Unlock()
	for v.redraw.Swap(false) {
		v.drawCycle()
	}
}

func (v *SurfaceView) drawCycle() {
	sn := v.tracker.Snapshot()
	s := sn.Surface()
	if s == nil || !s.IsValid() {
		// Nothing will be painted; drain the flags so they do not pile up.
		node.MarkChildrenUpdatesSeen(v)
		return
	}

	posted, err := v.drawInto(sn, s)
	switch {
	case err == nil && !posted:
		v.logger.Debug("surface went away during draw, frame not posted")
	case err == nil:
	case surface.IsTransient(err):
		v.logger.Warn("dropped frame: surface no longer usable", "err", err)
	default:
		v.logger.Error("dropped frame", "err", err)
	}
}

// drawInto locks s, paints the children back to front and posts the frame.
// It reports false without error when sn stopped being current before the
// post; the children's flags stay cleared in that case.
func (v *SurfaceView) drawInto(sn surface.Snapshot, s surface.Surface) (bool, error) {
	dc, err := s.LockCanvas()
	if err != nil {
		return false, err
	}

	if v.clearColor == gg.Transparent {
		dc.Clear()
	} else {
		dc.ClearWithColor(v.clearColor)
	}

	paint := gg.NewPaint()
	primitive.DrawChildren(v, dc, paint, 1)

	// A destroy or create notification may have landed while painting.
	if !v.tracker.IsCurrent(sn) {
		// s is left locked: it has been destroyed, or replaced, and is not
		// ours to post to.
		return false, nil
	}
	if err := s.UnlockCanvasAndPost(dc); err != nil {
		return false, err
	}
	return true, nil
}
