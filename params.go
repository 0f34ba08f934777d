// SPDX-License-Identifier: Unlicense OR MIT

package ogl

import "github.com/crust/ogl/gl"

// Typed parameter readers. Each issues the driver query matching its
// result type; there is no per-call type dispatch. All of them fail with
// ErrInactiveContext when the context is not current on the calling
// thread, and propagate driver errors raised by the query.

// GetInteger returns the value of the integer parameter pname.
func (c *Context) GetInteger(pname gl.Enum) (int, error) {
	if !c.IsCurrent() {
		return 0, ErrInactiveContext
	}
	v := c.f.GetInteger(pname)
	if err := checkGLError(c.f, "glGetIntegerv"); err != nil {
		return 0, err
	}
	return v, nil
}

// GetInteger64 returns the value of the 64-bit integer parameter pname,
// such as TIMESTAMP.
func (c *Context) GetInteger64(pname gl.Enum) (int64, error) {
	if !c.IsCurrent() {
		return 0, ErrInactiveContext
	}
	v := c.f.GetInteger64(pname)
	if err := checkGLError(c.f, "glGetInteger64v"); err != nil {
		return 0, err
	}
	return v, nil
}

// GetBoolean returns the value of the boolean parameter pname, such as
// DEPTH_WRITEMASK.
func (c *Context) GetBoolean(pname gl.Enum) (bool, error) {
	if !c.IsCurrent() {
		return false, ErrInactiveContext
	}
	v := c.f.GetBoolean(pname)
	if err := checkGLError(c.f, "glGetBooleanv"); err != nil {
		return false, err
	}
	return v, nil
}

// GetFloat returns the value of the float parameter pname.
func (c *Context) GetFloat(pname gl.Enum) (float32, error) {
	if !c.IsCurrent() {
		return 0, ErrInactiveContext
	}
	v := c.f.GetFloat(pname)
	if err := checkGLError(c.f, "glGetFloatv"); err != nil {
		return 0, err
	}
	return v, nil
}

// GetDouble returns the value of the double parameter pname.
func (c *Context) GetDouble(pname gl.Enum) (float64, error) {
	if !c.IsCurrent() {
		return 0, ErrInactiveContext
	}
	v := c.f.GetDouble(pname)
	if err := checkGLError(c.f, "glGetDoublev"); err != nil {
		return 0, err
	}
	return v, nil
}

// GetColor returns the value of the four-component color parameter
// pname, such as COLOR_CLEAR_VALUE.
func (c *Context) GetColor(pname gl.Enum) (Color, error) {
	if !c.IsCurrent() {
		return Color{}, ErrInactiveContext
	}
	v := c.f.GetFloat4(pname)
	if err := checkGLError(c.f, "glGetFloatv"); err != nil {
		return Color{}, err
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

// MajorVersion returns the major version number of the context's API.
func (c *Context) MajorVersion() (int, error) {
	return c.GetInteger(gl.MAJOR_VERSION)
}

// MinorVersion returns the minor version number of the context's API.
func (c *Context) MinorVersion() (int, error) {
	return c.GetInteger(gl.MINOR_VERSION)
}
