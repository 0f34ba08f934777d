// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Object handles wrap the driver's raw object names. The zero value of a
// handle type is the driver's "no object" name, so Valid reports whether a
// handle refers to an allocated object. Uniform is the exception; location
// zero is in use and lookup failure is reported as -1.

type (
	Buffer       struct{ V uint }
	Framebuffer  struct{ V uint }
	Object       struct{ V uint }
	Program      struct{ V uint }
	Renderbuffer struct{ V uint }
	Shader       struct{ V uint }
	Uniform      struct{ V int }
	VertexArray  struct{ V uint }
)

func (b Buffer) Valid() bool       { return b.V != 0 }
func (f Framebuffer) Valid() bool  { return f.V != 0 }
func (p Program) Valid() bool      { return p.V != 0 }
func (r Renderbuffer) Valid() bool { return r.V != 0 }
func (s Shader) Valid() bool       { return s.V != 0 }
func (u Uniform) Valid() bool      { return u.V != -1 }
func (a VertexArray) Valid() bool  { return a.V != 0 }
