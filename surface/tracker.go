// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggart"
)

// handle boxes a Surface so it can live in an atomic.Pointer.
type handle struct {
	s Surface
}

// Tracker follows the lifecycle of the one surface a view draws into.
//
// Notifications and reads are not mutually excluded: the surface is a single
// atomically swapped reference. A reader takes a snapshot with Current and
// must re-check it before each use, because a destroy notification can land
// between the check and the call. Closing that window would need a lock
// shared with the windowing subsystem, which the tracker does not own; the
// surface itself reports use-after-release as ErrIllegalState.
//
// Tracker implements Callback.
type Tracker struct {
	current   atomic.Pointer[handle]
	onCreated func()
	logger    *slog.Logger
}

// NewTracker returns a tracker without a surface. onCreated, if not nil, is
// run synchronously from SurfaceCreated after the new surface is recorded,
// so the first frame does not wait for the next scheduled tick.
// A nil logger uses ggart.Logger().
func NewTracker(onCreated func(), logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = ggart.Logger()
	}
	return &Tracker{onCreated: onCreated, logger: logger}
}

// SurfaceCreated records h's surface and triggers an immediate draw.
func (t *Tracker) SurfaceCreated(h Holder) {
	s := h.Surface()
	t.store(s)
	t.logger.Debug("surface created", "valid", s != nil && s.IsValid())
	if t.onCreated != nil {
		t.onCreated()
	}
}

// SurfaceChanged does not redraw; size changes reach the view through layout.
func (t *Tracker) SurfaceChanged(_ Holder, format gputypes.TextureFormat, width, height int) {
	t.logger.Debug("surface changed", "format", format, "width", width, "height", height)
}

// SurfaceDestroyed forgets the surface. A draw already in flight keeps its
// snapshot and will see the release as an error from the surface.
func (t *Tracker) SurfaceDestroyed(Holder) {
	t.store(nil)
	t.logger.Debug("surface destroyed")
}

// Snapshot is the tracked surface as of one Tracker.Snapshot call. Every
// SurfaceCreated starts a new snapshot, even for a surface seen before.
type Snapshot struct {
	h *handle
}

// Surface returns the surface captured by sn, or nil.
func (sn Snapshot) Surface() Surface {
	if sn.h == nil {
		return nil
	}
	return sn.h.s
}

// Snapshot captures the tracked surface for a later IsCurrent check.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{h: t.current.Load()}
}

// IsCurrent reports whether sn still holds a surface and no lifecycle
// notification has replaced it since it was taken. Surfaces are compared by
// notification, not by value, so any Surface implementation may be tracked.
func (t *Tracker) IsCurrent(sn Snapshot) bool {
	return sn.h != nil && t.current.Load() == sn.h
}

// Current returns a snapshot of the tracked surface, or nil.
func (t *Tracker) Current() Surface {
	if h := t.current.Load(); h != nil {
		return h.s
	}
	return nil
}

// Usable reports whether there is a surface and it reports itself valid.
func (t *Tracker) Usable() bool {
	s := t.Current()
	return s != nil && s.IsValid()
}

func (t *Tracker) store(s Surface) {
	if s == nil {
		t.current.Store(nil)
		return
	}
	t.current.Store(&handle{s: s})
}

var _ Callback = (*Tracker)(nil)
