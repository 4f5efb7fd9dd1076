// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagtest provides helpers for checking the diagnostics
// emitted during a test.
package diagtest

import (
	"testing"

	"cogentcore.org/proptypes/diag"
	"github.com/stretchr/testify/assert"
)

// Session begins a [diag.Session] on the given sink (or [diag.Default]
// if it is nil) expecting the given messages, and ends it when the test
// finishes, failing the test with the full mismatch if the emitted
// messages differ from the expected ones.
func Session(t testing.TB, s *diag.Sink, expected ...string) *diag.Session {
	t.Helper()
	if s == nil {
		s = diag.Default
	}
	ss := s.Begin()
	ss.Expect(expected...)
	t.Cleanup(func() {
		assert.NoError(t, ss.End())
	})
	return ss
}
