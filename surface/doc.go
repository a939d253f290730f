// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface models platform-owned drawable buffers and their lifecycle.
//
// A [Surface] is created, resized and destroyed by a windowing subsystem,
// never by the code that draws into it. Drawing follows the lock/post cycle:
//
//	dc, err := s.LockCanvas()      // *gg.Context for this frame
//	...draw with gg...
//	err = s.UnlockCanvasAndPost(dc) // make the frame visible
//
// # Lifecycle
//
// The windowing subsystem reports to [Callback] implementations. [Tracker]
// is the callback a view uses: it keeps the current surface in an atomic
// reference and runs a hook when a surface appears.
//
// # Implementations
//
//   - [ImageSurface]: CPU front buffer (*image.RGBA), used headless and in tests
//   - [GPUSurface]: uploads each frame to a texture and draws it into a gogpu
//     window through gpucontext.TextureDrawer
//
// [Host] is a headless windowing subsystem owning an ImageSurface.
//
// # Errors
//
// Every failure wraps [ErrIllegalState] or [ErrIllegalArgument]. A surface
// released while a frame is in flight fails the lock or post with
// [ErrSurfaceReleased]; [IsTransient] identifies such frame-scoped failures.
package surface
