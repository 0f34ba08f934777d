// SPDX-License-Identifier: Unlicense OR MIT

package ogl

import "github.com/crust/ogl/gl"

// Capability toggles forward directly to the driver without a currency
// check; the driver applies them to whatever context is current on the
// calling thread. Package gl names the common capabilities, BLEND
// through PROGRAM_POINT_SIZE.

// Enable turns on the capability cap.
func (c *Context) Enable(cap gl.Enum) {
	c.f.Enable(cap)
	c.debugCheck("glEnable")
}

// Disable turns off the capability cap.
func (c *Context) Disable(cap gl.Enum) {
	c.f.Disable(cap)
	c.debugCheck("glDisable")
}

// IsEnabled reports whether the capability cap is on.
func (c *Context) IsEnabled(cap gl.Enum) bool {
	return c.f.IsEnabled(cap)
}
