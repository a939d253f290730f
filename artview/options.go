// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package artview

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// Option configures a SurfaceView during creation.
//
// Example:
//
//	v := artview.New(
//	    artview.WithLogger(slog.Default()),
//	    artview.WithClearColor(gg.White),
//	)
type Option func(*options)

type options struct {
	logger     *slog.Logger
	clearColor gg.RGBA
	tag        int
}

func defaultOptions() options {
	return options{
		clearColor: gg.Transparent,
	}
}

// WithLogger sets the diagnostic sink for dropped frames and lifecycle
// events. Without it the view uses ggart.Logger() at construction time.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithClearColor sets the color the canvas is cleared to before each frame.
// The default is fully transparent.
func WithClearColor(c gg.RGBA) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

// WithTag overrides the automatically assigned node tag.
func WithTag(tag int) Option {
	return func(o *options) {
		o.tag = tag
	}
}
