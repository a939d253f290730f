// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"slices"
	"sync"
)

// Host is a headless windowing subsystem. It owns at most one ImageSurface
// at a time and reports its lifecycle to the registered callbacks, the way a
// platform window reports to its surface listeners.
//
// Callbacks run on the goroutine calling Create, Resize or Destroy, outside
// the host's lock, so they may call back into Surface.
type Host struct {
	mu        sync.Mutex
	surface   *ImageSurface
	callbacks []Callback
}

// NewHost returns a host without a surface.
func NewHost() *Host {
	return &Host{}
}

// AddCallback registers cb for lifecycle notifications.
func (h *Host) AddCallback(cb Callback) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.callbacks = append(h.callbacks, cb)
}

// RemoveCallback unregisters cb.
func (h *Host) RemoveCallback(cb Callback) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.callbacks = slices.DeleteFunc(h.callbacks, func(c Callback) bool { return c == cb })
}

// Surface returns the current surface, or nil. Host implements Holder.
func (h *Host) Surface() Surface {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.surface == nil {
		return nil
	}
	return h.surface
}

// ImageSurface returns the current surface with its concrete type, or nil.
func (h *Host) ImageSurface() *ImageSurface {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.surface
}

// Create allocates a surface and notifies SurfaceCreated.
func (h *Host) Create(width, height int) error {
	s, err := NewImageSurface(width, height)
	if err != nil {
		return err
	}

	h.mu.Lock()
	if h.surface != nil {
		h.mu.Unlock()
		return opError("Create", ErrAlreadyCreated)
	}
	h.surface = s
	cbs := slices.Clone(h.callbacks)
	h.mu.Unlock()

	for _, cb := range cbs {
		cb.SurfaceCreated(h)
	}
	return nil
}

// Resize changes the surface size and notifies SurfaceChanged.
func (h *Host) Resize(width, height int) error {
	h.mu.Lock()
	s := h.surface
	cbs := slices.Clone(h.callbacks)
	h.mu.Unlock()

	if s == nil {
		return opError("Resize", ErrNoSurface)
	}
	if err := s.Resize(width, height); err != nil {
		return fmt.Errorf("host resize: %w", err)
	}
	for _, cb := range cbs {
		cb.SurfaceChanged(h, s.Format(), width, height)
	}
	return nil
}

// Destroy notifies SurfaceDestroyed and then releases the surface.
func (h *Host) Destroy() error {
	h.mu.Lock()
	s := h.surface
	cbs := slices.Clone(h.callbacks)
	h.mu.Unlock()

	if s == nil {
		return opError("Destroy", ErrNoSurface)
	}
	for _, cb := range cbs {
		cb.SurfaceDestroyed(h)
	}

	h.mu.Lock()
	h.surface = nil
	h.mu.Unlock()
	s.Release()
	return nil
}

var _ Holder = (*Host)(nil)
