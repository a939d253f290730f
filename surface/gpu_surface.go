// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// textureDestroyer matches gogpu.Texture.Destroy.
type textureDestroyer interface {
	Destroy()
}

// GPUSurface presents frames into a gogpu window.
//
// The canvas handed out by LockCanvas is a CPU gg.Context; posting uploads its
// pixels to a GPU texture (created lazily, updated in place afterwards) and
// draws that texture through the current gpucontext.TextureDrawer. The drawer
// usually changes every frame, so the window's draw callback calls SetDrawer
// before the view draws:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    gs.SetDrawer(dc.AsTextureDrawer())
//	    view.CollectExtraUpdates(batch)
//	})
//
// GPUSurface is safe for concurrent use.
type GPUSurface struct {
	mu       sync.Mutex
	provider gpucontext.DeviceProvider
	drawer   gpucontext.TextureDrawer

	width, height int
	canvas        *gg.Context
	locked        bool
	sizeChanged   bool
	released      bool

	texture    any // created on first post (*gogpu.Texture)
	oldTexture any // replaced on resize, destroyed once the GPU is idle

	// X, Y is where the frame is drawn in the window.
	x, y float32
}

// NewGPUSurface creates a surface that presents through drawer.
func NewGPUSurface(provider gpucontext.DeviceProvider, drawer gpucontext.TextureDrawer, width, height int) (*GPUSurface, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if drawer == nil {
		return nil, ErrNilDrawer
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &GPUSurface{
		provider: provider,
		drawer:   drawer,
		width:    width,
		height:   height,
	}, nil
}

// SetDrawer replaces the texture drawer used by the next post.
func (s *GPUSurface) SetDrawer(drawer gpucontext.TextureDrawer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawer = drawer
}

// SetPosition sets where frames are drawn in the window.
func (s *GPUSurface) SetPosition(x, y float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.x, s.y = x, y
}

// Width returns the surface width.
func (s *GPUSurface) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width
}

// Height returns the surface height.
func (s *GPUSurface) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.height
}

// Format returns the window surface format reported by the device provider.
func (s *GPUSurface) Format() gputypes.TextureFormat {
	return s.provider.SurfaceFormat()
}

// IsValid reports whether the surface is unreleased and has a drawer.
func (s *GPUSurface) IsValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.released && s.drawer != nil
}

// LockCanvas returns the CPU canvas for the next frame.
func (s *GPUSurface) LockCanvas() (*gg.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return nil, opError("LockCanvas", ErrSurfaceReleased)
	}
	if s.locked {
		return nil, opError("LockCanvas", ErrAlreadyLocked)
	}
	if s.canvas == nil {
		s.canvas = gg.NewContext(s.width, s.height)
	} else if err := s.canvas.Resize(s.width, s.height); err != nil {
		return nil, opError("LockCanvas", fmt.Errorf("%w: %v", ErrIllegalState, err))
	}
	s.locked = true
	return s.canvas, nil
}

// UnlockCanvasAndPost uploads canvas and draws it into the window.
func (s *GPUSurface) UnlockCanvasAndPost(canvas *gg.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return opError("UnlockCanvasAndPost", ErrSurfaceReleased)
	}
	if !s.locked || canvas != s.canvas {
		return opError("UnlockCanvasAndPost", ErrForeignCanvas)
	}
	s.locked = false
	if s.drawer == nil {
		return opError("UnlockCanvasAndPost", fmt.Errorf("%w: no drawer", ErrIllegalState))
	}

	// Pending GPU shapes must reach the pixmap before upload. A failure is
	// not fatal: the CPU fallback has already rendered.
	_ = canvas.FlushGPU()
	data := canvas.ResizeTarget().Data()

	if s.sizeChanged {
		// The current texture may still be referenced by in-flight command
		// buffers; keep it until the next texture write has waited for the GPU.
		destroyTexture(s.oldTexture)
		s.oldTexture = s.texture
		s.texture = nil
		s.sizeChanged = false
	}

	if s.texture == nil {
		creator := s.drawer.TextureCreator()
		if creator == nil {
			return opError("UnlockCanvasAndPost", fmt.Errorf("%w: drawer has no texture creator", ErrIllegalState))
		}
		tex, err := creator.NewTextureFromRGBA(s.width, s.height, data)
		if err != nil {
			return opError("UnlockCanvasAndPost", fmt.Errorf("%w: %v", ErrIllegalState, err))
		}
		// gg pixmaps hold premultiplied alpha.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		s.texture = tex
		destroyTexture(s.oldTexture)
		s.oldTexture = nil
	} else if updater, ok := s.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return opError("UnlockCanvasAndPost", fmt.Errorf("%w: %v", ErrIllegalState, err))
		}
	}

	gpuTex, ok := s.texture.(gpucontext.Texture)
	if !ok {
		return opError("UnlockCanvasAndPost", fmt.Errorf("%w: texture is %T", ErrIllegalArgument, s.texture))
	}
	return s.drawer.DrawTexture(gpuTex, s.x, s.y)
}

// Resize changes the frame size. The texture is recreated on the next post.
func (s *GPUSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return opError("Resize", ErrSurfaceReleased)
	}
	if s.width == width && s.height == height {
		return nil
	}
	s.width, s.height = width, height
	s.sizeChanged = true
	return nil
}

// Release destroys the textures and invalidates the surface. It is idempotent.
func (s *GPUSurface) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return
	}
	s.released = true
	s.locked = false
	destroyTexture(s.oldTexture)
	destroyTexture(s.texture)
	s.oldTexture, s.texture = nil, nil
	if s.canvas != nil {
		_ = s.canvas.Close()
		s.canvas = nil
	}
	s.drawer = nil
}

func destroyTexture(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}

var _ Surface = (*GPUSurface)(nil)
