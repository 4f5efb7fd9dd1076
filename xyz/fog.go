// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/proptypes/math32"

// Fogger is implemented by the fog types that can be set on a scene.
type Fogger interface {
	// FogColor returns the color of the fog.
	FogColor() math32.Color
}

// Fog is linear fog that grows denser from Near to Far.
type Fog struct {
	Color math32.Color
	Near  float32
	Far   float32
}

// NewFog returns a new [Fog] with the given 0xRRGGBB color and range.
func NewFog(hex uint32, near, far float32) *Fog {
	return &Fog{Color: math32.ColorHex(hex), Near: near, Far: far}
}

func (f Fog) FogColor() math32.Color { return f.Color }

// FogExp2 is exponential squared fog with the given Density.
type FogExp2 struct {
	Color   math32.Color
	Density float32
}

// NewFogExp2 returns a new [FogExp2] with the given 0xRRGGBB color and density.
func NewFogExp2(hex uint32, density float32) *FogExp2 {
	return &FogExp2{Color: math32.ColorHex(hex), Density: density}
}

func (f FogExp2) FogColor() math32.Color { return f.Color }
