// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
)

// TestNewImageSurface tests surface creation.
func TestNewImageSurface(t *testing.T) {
	s, err := NewImageSurface(100, 50)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	defer s.Release()

	if s.Width() != 100 || s.Height() != 50 {
		t.Errorf("size = %dx%d, want 100x50", s.Width(), s.Height())
	}
	if !s.IsValid() {
		t.Error("new surface should be valid")
	}
	if s.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", s.Format())
	}
}

// TestNewImageSurfaceInvalidSize tests handling of invalid dimensions.
func TestNewImageSurfaceInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		_, err := NewImageSurface(size[0], size[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewImageSurface(%d, %d) error = %v, want ErrInvalidDimensions", size[0], size[1], err)
		}
	}
}

// TestImageSurfaceLockPost tests one full frame.
func TestImageSurfaceLockPost(t *testing.T) {
	s, _ := NewImageSurface(10, 10)
	defer s.Release()

	dc, err := s.LockCanvas()
	if err != nil {
		t.Fatalf("LockCanvas: %v", err)
	}
	if dc.Width() != 10 || dc.Height() != 10 {
		t.Errorf("canvas size = %dx%d, want 10x10", dc.Width(), dc.Height())
	}
	dc.ClearWithColor(gg.RGB(1, 0, 0))

	if got := s.Snapshot().RGBAAt(5, 5); got.A != 0 {
		t.Errorf("front buffer changed before post: %v", got)
	}

	if err := s.UnlockCanvasAndPost(dc); err != nil {
		t.Fatalf("UnlockCanvasAndPost: %v", err)
	}
	c := s.Snapshot().RGBAAt(5, 5)
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("pixel = %v, want (255, 0, 0, 255)", c)
	}
	if s.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", s.Frames())
	}
}

// TestImageSurfaceLockErrors tests the platform error contract.
func TestImageSurfaceLockErrors(t *testing.T) {
	t.Run("double lock", func(t *testing.T) {
		s, _ := NewImageSurface(4, 4)
		defer s.Release()
		if _, err := s.LockCanvas(); err != nil {
			t.Fatal(err)
		}
		_, err := s.LockCanvas()
		if !errors.Is(err, ErrAlreadyLocked) || !errors.Is(err, ErrIllegalState) {
			t.Errorf("second LockCanvas error = %v, want ErrAlreadyLocked", err)
		}
	})

	t.Run("foreign canvas", func(t *testing.T) {
		s, _ := NewImageSurface(4, 4)
		defer s.Release()
		if _, err := s.LockCanvas(); err != nil {
			t.Fatal(err)
		}
		err := s.UnlockCanvasAndPost(gg.NewContext(4, 4))
		if !errors.Is(err, ErrIllegalArgument) {
			t.Errorf("post foreign canvas error = %v, want ErrIllegalArgument", err)
		}
	})

	t.Run("post without lock", func(t *testing.T) {
		s, _ := NewImageSurface(4, 4)
		defer s.Release()
		if err := s.UnlockCanvasAndPost(nil); !errors.Is(err, ErrForeignCanvas) {
			t.Errorf("post nil error = %v, want ErrForeignCanvas", err)
		}
	})

	t.Run("released", func(t *testing.T) {
		s, _ := NewImageSurface(4, 4)
		dc, err := s.LockCanvas()
		if err != nil {
			t.Fatal(err)
		}
		s.Release()
		s.Release()

		if s.IsValid() {
			t.Error("released surface should be invalid")
		}
		err = s.UnlockCanvasAndPost(dc)
		if !errors.Is(err, ErrSurfaceReleased) {
			t.Errorf("post after release error = %v, want ErrSurfaceReleased", err)
		}
		var serr *Error
		if !errors.As(err, &serr) || serr.Op != "UnlockCanvasAndPost" {
			t.Errorf("error %v should carry the op", err)
		}
		if _, err := s.LockCanvas(); !errors.Is(err, ErrSurfaceReleased) {
			t.Errorf("lock after release error = %v, want ErrSurfaceReleased", err)
		}
		if s.Frames() != 0 {
			t.Errorf("Frames() = %d, want 0", s.Frames())
		}
	})
}

// TestImageSurfaceResize tests that the back buffer follows the front buffer.
func TestImageSurfaceResize(t *testing.T) {
	s, _ := NewImageSurface(8, 8)
	defer s.Release()

	dc, _ := s.LockCanvas()
	_ = s.UnlockCanvasAndPost(dc)

	if err := s.Resize(16, 4); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if s.Width() != 16 || s.Height() != 4 {
		t.Errorf("size = %dx%d, want 16x4", s.Width(), s.Height())
	}
	dc, err := s.LockCanvas()
	if err != nil {
		t.Fatal(err)
	}
	if dc.Width() != 16 || dc.Height() != 4 {
		t.Errorf("canvas size = %dx%d, want 16x4", dc.Width(), dc.Height())
	}
	if err := s.Resize(0, 4); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 4) error = %v, want ErrInvalidDimensions", err)
	}
}
