// SPDX-License-Identifier: Unlicense OR MIT

package ogl

import "github.com/crust/ogl/gl"

// VertexArray captures vertex attribute layout for drawing with a
// program. It is created against a context and must only be used while
// that context is current.
type VertexArray struct {
	ctx  *Context
	prog *Program
	obj  gl.VertexArray
}

// NewVertexArray generates a vertex array object that draws with prog.
func NewVertexArray(ctx *Context, prog *Program) (*VertexArray, error) {
	if !ctx.IsCurrent() {
		return nil, ErrInactiveContext
	}
	obj := ctx.f.CreateVertexArray()
	if err := checkGLError(ctx.f, "glGenVertexArrays"); err != nil {
		return nil, err
	}
	return &VertexArray{ctx: ctx, prog: prog, obj: obj}, nil
}

// Program returns the program the vertex array draws with.
func (a *VertexArray) Program() *Program {
	return a.prog
}

// Enable enables the vertex attribute at location attr.
func (a *VertexArray) Enable(attr gl.Attrib) error {
	if !a.ctx.IsCurrent() {
		return ErrInactiveContext
	}
	a.ctx.f.BindVertexArray(a.obj)
	a.ctx.f.EnableVertexAttribArray(attr)
	return checkGLError(a.ctx.f, "glEnableVertexAttribArray")
}

// Disable disables the vertex attribute at location attr.
func (a *VertexArray) Disable(attr gl.Attrib) error {
	if !a.ctx.IsCurrent() {
		return ErrInactiveContext
	}
	a.ctx.f.BindVertexArray(a.obj)
	a.ctx.f.DisableVertexAttribArray(attr)
	return checkGLError(a.ctx.f, "glDisableVertexAttribArray")
}

// Pointer describes the data layout of the attribute attr: size
// components of type ty read from buf every stride bytes, starting at
// offset. buf is bound as the array buffer as a side effect.
func (a *VertexArray) Pointer(buf *Buffer, attr gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) error {
	if !a.ctx.IsCurrent() {
		return ErrInactiveContext
	}
	a.ctx.f.BindVertexArray(a.obj)
	if err := buf.Bind(gl.ARRAY_BUFFER); err != nil {
		return err
	}
	a.ctx.f.VertexAttribPointer(attr, size, ty, normalized, stride, offset)
	return checkGLError(a.ctx.f, "glVertexAttribPointer")
}

// Draw draws count vertices starting at first with the vertex array's
// layout and program.
func (a *VertexArray) Draw(mode gl.Enum, count, first int) error {
	if err := a.prog.Use(); err != nil {
		return err
	}
	a.ctx.f.BindVertexArray(a.obj)
	a.ctx.f.DrawArrays(mode, first, count)
	return checkGLError(a.ctx.f, "glDrawArrays")
}

// DrawTo draws like Draw with fb bound as the framebuffer.
func (a *VertexArray) DrawTo(fb *Framebuffer, mode gl.Enum, count, first int) error {
	if err := fb.Bind(); err != nil {
		return err
	}
	return a.Draw(mode, count, first)
}

// Release deletes the vertex array object. The program is not released.
func (a *VertexArray) Release() {
	if a.obj.Valid() {
		a.ctx.f.DeleteVertexArray(a.obj)
		a.obj = gl.VertexArray{}
	}
}
