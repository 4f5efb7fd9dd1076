// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger used by
// the validation core, with a user-selectable verbosity level
// and colored console output.
package logx

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. Failed prop type
// diagnostics are logged at [slog.LevelWarn], so they are visible
// by default.
var UserLevel = defaultUserLevel

// UseColor is whether to use color in log messages. It is on by default.
var UseColor = true

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger sets the default logger to be a [Handler] writing
// to [os.Stderr] with the level [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Handler is a [slog.Handler] that colors the message of each
// record based on its level, and otherwise writes the record
// in the standard text format.
type Handler struct {
	slog.Handler
	profile termenv.Profile
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{
		Handler: slog.NewTextHandler(w, &slog.HandlerOptions{Level: &UserLevel}),
		profile: termenv.EnvColorProfile(),
	}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if UseColor && h.profile != termenv.Ascii {
		r.Message = termenv.String(r.Message).Foreground(h.levelColor(r.Level)).String()
	}
	return h.Handler.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs), profile: h.profile}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name), profile: h.profile}
}

// levelColor returns the color used for messages at the given level.
func (h *Handler) levelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return h.profile.Color("#ff5555")
	case level >= slog.LevelWarn:
		return h.profile.Color("#f1fa8c")
	case level >= slog.LevelInfo:
		return h.profile.Color("#8be9fd")
	default:
		return h.profile.Color("#6272a4")
	}
}
