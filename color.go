// SPDX-License-Identifier: Unlicense OR MIT

package ogl

// Color is an RGBA color with float32 components in [0, 1], the form the
// driver consumes for clear colors and color parameters.
type Color struct {
	R, G, B, A float32
}

// Float32 returns the color components as a flat array, in RGBA order.
func (c Color) Float32() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
