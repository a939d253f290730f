// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
)

// Surface is a platform-owned drawable buffer that can be locked for drawing
// and then presented.
//
// A Surface is owned by the windowing subsystem that created it. Consumers
// hold non-owning references and must call IsValid immediately before use;
// the owner may release the surface from another goroutine at any time, in
// which case LockCanvas and UnlockCanvasAndPost fail with an error wrapping
// ErrIllegalState.
type Surface interface {
	// IsValid reports whether the surface can currently be locked.
	IsValid() bool

	// LockCanvas returns a drawing context for the next frame.
	// Only one canvas may be locked at a time.
	LockCanvas() (*gg.Context, error)

	// UnlockCanvasAndPost presents the content of canvas, which must be the
	// one returned by the matching LockCanvas, and unlocks the surface.
	UnlockCanvasAndPost(canvas *gg.Context) error

	// Format returns the pixel format of the presented buffer.
	Format() gputypes.TextureFormat

	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int
}

// Holder gives access to the surface a windowing callback is about.
type Holder interface {
	// Surface returns the current surface, or nil if there is none.
	Surface() Surface
}

// Callback receives surface lifecycle notifications from the windowing
// subsystem. Notifications may arrive on any goroutine.
type Callback interface {
	// SurfaceCreated is called once the surface is ready for drawing.
	SurfaceCreated(h Holder)

	// SurfaceChanged is called after the format or size of the surface changed.
	SurfaceChanged(h Holder, format gputypes.TextureFormat, width, height int)

	// SurfaceDestroyed is called before the surface is released. The surface
	// must not be touched after the call returns.
	SurfaceDestroyed(h Holder)
}
