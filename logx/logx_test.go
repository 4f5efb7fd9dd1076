// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	UseColor = false
	defer func() { UseColor = true }()

	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf)).With("owner", "scene")
	l.Info("hidden")
	l.Warn("shown")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "owner=scene")
}

func TestSetDefaultLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	SetDefaultLogger()
	assert.IsType(t, &Handler{}, slog.Default().Handler())
}
