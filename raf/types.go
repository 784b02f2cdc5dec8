// Package raf: options and error definitions for the RAF solver.
package raf

import (
	"errors"
	"io"
	"log/slog"
)

// ErrGraphNil is returned when a nil graph pointer is passed.
var ErrGraphNil = errors.New("raf: graph is nil")

// Option configures solver behavior via functional arguments.
type Option func(*Options)

// Options holds parameters for Compute and MaxCycleLength.
type Options struct {
	// Logger receives diagnostic events: post-fixed-point consistency
	// reports from Compute and the witness cycle from MaxCycleLength.
	// Diagnostics never influence results.
	Logger *slog.Logger
}

// DefaultOptions returns Options with a discarding logger, so the
// solver stays silent unless a sink is injected.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger injects a diagnostics sink. A nil logger keeps the
// discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// buildOptions folds opts over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
