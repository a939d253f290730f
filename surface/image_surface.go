// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// ImageSurface is a CPU surface that presents into an *image.RGBA front
// buffer.
//
// Drawing happens on a gg.Context back buffer handed out by LockCanvas;
// UnlockCanvasAndPost copies it into the front buffer. The surface is owned
// by whoever created it (usually a Host) and is safe for concurrent use, so
// the owner may Resize or Release it while a frame is being drawn.
//
// Example:
//
//	s, _ := surface.NewImageSurface(800, 600)
//	defer s.Release()
//
//	dc, _ := s.LockCanvas()
//	dc.SetRGB(1, 0, 0)
//	dc.DrawCircle(400, 300, 100)
//	_ = dc.Fill()
//	_ = s.UnlockCanvasAndPost(dc)
//
//	img := s.Snapshot()
type ImageSurface struct {
	mu       sync.Mutex
	front    *image.RGBA
	back     *gg.Context
	locked   *gg.Context
	released bool
	frames   int
}

// NewImageSurface creates a CPU surface with the given dimensions.
func NewImageSurface(width, height int) (*ImageSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &ImageSurface{
		front: image.NewRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.front.Bounds().Dx()
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.front.Bounds().Dy()
}

// Format returns RGBA8 (premultiplied, like image.RGBA).
func (s *ImageSurface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// IsValid reports whether the surface has not been released.
func (s *ImageSurface) IsValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.released
}

// LockCanvas returns the back buffer, sized to the surface. Its content is
// whatever was drawn last; callers clear it themselves.
func (s *ImageSurface) LockCanvas() (*gg.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return nil, opError("LockCanvas", ErrSurfaceReleased)
	}
	if s.locked != nil {
		return nil, opError("LockCanvas", ErrAlreadyLocked)
	}

	w, h := s.front.Bounds().Dx(), s.front.Bounds().Dy()
	if s.back == nil {
		s.back = gg.NewContext(w, h)
	} else if err := s.back.Resize(w, h); err != nil {
		return nil, opError("LockCanvas", fmt.Errorf("%w: %v", ErrIllegalState, err))
	}
	s.locked = s.back
	return s.locked, nil
}

// UnlockCanvasAndPost copies canvas into the front buffer and unlocks.
func (s *ImageSurface) UnlockCanvasAndPost(canvas *gg.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return opError("UnlockCanvasAndPost", ErrSurfaceReleased)
	}
	if canvas == nil || canvas != s.locked {
		return opError("UnlockCanvasAndPost", ErrForeignCanvas)
	}

	// A failed GPU flush leaves the CPU-rendered pixels in place.
	_ = canvas.FlushGPU()

	src := canvas.Image()
	xdraw.Copy(s.front, image.Point{}, src, src.Bounds(), xdraw.Src, nil)
	s.locked = nil
	s.frames++
	return nil
}

// Resize reallocates the front buffer. The back buffer follows on the next
// LockCanvas. A canvas locked before the resize can still be posted; it is
// clipped to the new bounds.
func (s *ImageSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return opError("Resize", ErrSurfaceReleased)
	}
	if b := s.front.Bounds(); b.Dx() == width && b.Dy() == height {
		return nil
	}
	s.front = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Release invalidates the surface and frees the back buffer. Any canvas still
// locked is abandoned. Release is idempotent.
func (s *ImageSurface) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return
	}
	s.released = true
	s.locked = nil
	if s.back != nil {
		_ = s.back.Close()
		s.back = nil
	}
}

// Frames returns how many frames have been posted.
func (s *ImageSurface) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Snapshot returns a copy of the front buffer.
func (s *ImageSurface) Snapshot() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()

	img := image.NewRGBA(s.front.Bounds())
	copy(img.Pix, s.front.Pix)
	return img
}

var _ Surface = (*ImageSurface)(nil)
