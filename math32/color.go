// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a linear RGB color with components in the range 0 to 1.
type Color struct {
	R float32
	G float32
	B float32
}

// ColorHex returns a new [Color] from the given 0xRRGGBB value.
func ColorHex(hex uint32) Color {
	return Color{
		R: float32(hex>>16&0xff) / 255,
		G: float32(hex>>8&0xff) / 255,
		B: float32(hex&0xff) / 255,
	}
}

// ParseColorHex parses a "#rrggbb" or "0xrrggbb" string into a [Color].
func ParseColorHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil || len(h) != 6 {
		return Color{}, fmt.Errorf("math32.ParseColorHex: invalid color %q", s)
	}
	return ColorHex(uint32(v)), nil
}

// Hex returns the 0xRRGGBB value of this color.
func (c Color) Hex() uint32 {
	r := uint32(Clamp(c.R, 0, 1)*255 + 0.5)
	g := uint32(Clamp(c.G, 0, 1)*255 + 0.5)
	b := uint32(Clamp(c.B, 0, 1)*255 + 0.5)
	return r<<16 | g<<8 | b
}
