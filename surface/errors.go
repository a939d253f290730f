// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
)

// Platform error classes. Every error returned by a Surface in this package
// wraps one of them, so callers can classify failures with errors.Is.
var (
	// ErrIllegalArgument reports a bad argument, e.g. posting a canvas that
	// was not locked from the surface.
	ErrIllegalArgument = errors.New("surface: illegal argument")

	// ErrIllegalState reports an operation the surface cannot perform in its
	// current state, e.g. locking a released surface.
	ErrIllegalState = errors.New("surface: illegal state")
)

// Specific failures.
var (
	// ErrSurfaceReleased is returned when a released surface is used.
	ErrSurfaceReleased = fmt.Errorf("%w: surface has been released", ErrIllegalState)

	// ErrAlreadyLocked is returned when LockCanvas is called twice without a post.
	ErrAlreadyLocked = fmt.Errorf("%w: canvas is already locked", ErrIllegalState)

	// ErrForeignCanvas is returned when the posted canvas is not the locked one.
	ErrForeignCanvas = fmt.Errorf("%w: canvas was not locked from this surface", ErrIllegalArgument)

	// ErrAlreadyCreated is returned by Host.Create while a surface exists.
	ErrAlreadyCreated = fmt.Errorf("%w: surface already created", ErrIllegalState)

	// ErrNoSurface is returned by Host operations that need a surface.
	ErrNoSurface = fmt.Errorf("%w: no surface", ErrIllegalState)

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = fmt.Errorf("%w: invalid dimensions", ErrIllegalArgument)

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = fmt.Errorf("%w: nil DeviceProvider", ErrIllegalArgument)

	// ErrNilDrawer is returned when a nil TextureDrawer is passed.
	ErrNilDrawer = fmt.Errorf("%w: nil TextureDrawer", ErrIllegalArgument)
)

// Error records the surface operation that failed.
type Error struct {
	// Op is the failing operation, e.g. "LockCanvas".
	Op string
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is a surface-invalid condition that only
// costs the current frame.
func IsTransient(err error) bool {
	return errors.Is(err, ErrIllegalState) || errors.Is(err, ErrIllegalArgument)
}

func opError(op string, err error) error {
	return &Error{Op: op, Err: err}
}
