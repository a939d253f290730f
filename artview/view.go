// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package artview

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/frame"
	"github.com/gogpu/ggart/layout"
	"github.com/gogpu/ggart/node"
	"github.com/gogpu/ggart/surface"
)

// PlatformBacked is implemented by nodes that are always mounted to a real
// platform view. The mount machinery consults it after each layout pass.
type PlatformBacked interface {
	node.Node

	// NeedsCustomLayoutForChildren reports whether the view lays out its
	// children itself.
	NeedsCustomLayoutForChildren() bool

	// IsPaddingChanged reports whether padding changed since the last reset.
	IsPaddingChanged() bool

	// ResetPaddingChanged consumes the padding-changed flag.
	ResetPaddingChanged()
}

// SurfaceView is a node that flattens its drawable subtree into a single
// platform surface.
//
// The update queue calls CollectExtraUpdates once per frame; the windowing
// subsystem calls the surface.Callback methods whenever it likes, possibly
// from another goroutine, including from inside a draw. No call blocks: a
// draw requested while another is running is folded into it, and lifecycle
// callbacks take no lock at all. Each draw snapshots the surface, checks it
// before locking and again before posting, and treats a surface that
// vanishes in between as a dropped frame.
type SurfaceView struct {
	node.Base

	tracker    *surface.Tracker
	logger     *slog.Logger
	clearColor gg.RGBA

	// drawing is held by the goroutine running draw cycles. A draw requested
	// while it is held sets redraw and returns; the holder runs it.
	drawing sync.Mutex
	redraw  atomic.Bool

	paddingChanged bool
}

// New creates a view without a surface. The view and its children are forced
// to mount to platform views.
func New(opts ...Option) *SurfaceView {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = ggart.Logger()
	}

	v := &SurfaceView{
		logger:     o.logger,
		clearColor: o.clearColor,
	}
	v.Init(v)
	if o.tag != 0 {
		v.SetTag(o.tag)
	}
	v.ForceMountToView()
	v.ForceMountChildrenToView()
	v.tracker = surface.NewTracker(v.drawOutput, o.logger.With("tag", v.Tag()))
	return v
}

// IsVirtual reports false: the view has a platform view of its own.
func (v *SurfaceView) IsVirtual() bool { return false }

// IsVirtualAnchor reports true: virtual descendants attach to this view.
func (v *SurfaceView) IsVirtualAnchor() bool { return true }

// NeedsCustomLayoutForChildren reports false.
func (v *SurfaceView) NeedsCustomLayoutForChildren() bool { return false }

// Surface returns the current surface snapshot, or nil.
func (v *SurfaceView) Surface() surface.Surface {
	return v.tracker.Current()
}

// CollectExtraUpdates draws the subtree and registers the view with the
// frame's update batch.
func (v *SurfaceView) CollectExtraUpdates(q frame.UpdateQueue) {
	v.drawOutput()
	q.EnqueueUpdateExtraData(v.Tag(), v)
}

// SurfaceCreated records the new surface and draws into it immediately.
func (v *SurfaceView) SurfaceCreated(h surface.Holder) {
	v.tracker.SurfaceCreated(h)
}

// SurfaceChanged is a no-op; size changes arrive through layout.
func (v *SurfaceView) SurfaceChanged(h surface.Holder, format gputypes.TextureFormat, width, height int) {
	v.tracker.SurfaceChanged(h, format, width, height)
}

// SurfaceDestroyed forgets the surface. A draw in flight will not post.
func (v *SurfaceView) SurfaceDestroyed(h surface.Holder) {
	v.tracker.SurfaceDestroyed(h)
}

// SetPadding sets an absolute padding for edge e. Setting the current value
// again is a no-op.
func (v *SurfaceView) SetPadding(e layout.Edge, padding float32) {
	v.setPadding(e, layout.Point(padding))
}

// SetPaddingPercent sets a percentage padding for edge e. Setting the current
// value again is a no-op.
func (v *SurfaceView) SetPaddingPercent(e layout.Edge, percent float32) {
	v.setPadding(e, layout.Percent(percent))
}

func (v *SurfaceView) setPadding(e layout.Edge, val layout.Value) {
	if !e.Valid() || v.StylePadding(e).Equal(val) {
		return
	}
	v.SetStylePadding(e, val)
	v.paddingChanged = true
	v.MarkUpdated()
}

// IsPaddingChanged reports whether padding changed since ResetPaddingChanged.
func (v *SurfaceView) IsPaddingChanged() bool { return v.paddingChanged }

// ResetPaddingChanged clears the padding-changed flag.
func (v *SurfaceView) ResetPaddingChanged() { v.paddingChanged = false }

var (
	_ PlatformBacked   = (*SurfaceView)(nil)
	_ surface.Callback = (*SurfaceView)(nil)
)
