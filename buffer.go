// SPDX-License-Identifier: Unlicense OR MIT

package ogl

import "github.com/crust/ogl/gl"

// Buffer is a GPU data buffer. It is created against a context and must
// only be used while that context is current.
type Buffer struct {
	ctx *Context
	obj gl.Buffer
}

// NewBuffer generates a buffer object. Fails with ErrInactiveContext if
// ctx is not current on the calling thread.
func NewBuffer(ctx *Context) (*Buffer, error) {
	if !ctx.IsCurrent() {
		return nil, ErrInactiveContext
	}
	obj := ctx.f.CreateBuffer()
	if err := checkGLError(ctx.f, "glGenBuffers"); err != nil {
		return nil, err
	}
	return &Buffer{ctx: ctx, obj: obj}, nil
}

// Bind binds the buffer to target, one of the buffer targets named in
// package gl (ARRAY_BUFFER, ELEMENT_ARRAY_BUFFER, UNIFORM_BUFFER...).
func (b *Buffer) Bind(target gl.Enum) error {
	if !b.ctx.IsCurrent() {
		return ErrInactiveContext
	}
	b.ctx.f.BindBuffer(target, b.obj)
	return checkGLError(b.ctx.f, "glBindBuffer")
}

// SetData binds the buffer to target and allocates its storage from
// data with the given usage hint.
func (b *Buffer) SetData(target gl.Enum, data []byte, usage gl.Enum) error {
	if !b.ctx.IsCurrent() {
		return ErrInactiveContext
	}
	b.ctx.f.BindBuffer(target, b.obj)
	b.ctx.f.BufferData(target, data, usage)
	return checkGLError(b.ctx.f, "glBufferData")
}

// SetSubData replaces a range of the buffer's storage starting at
// offset. The storage must have been allocated by a previous SetData.
func (b *Buffer) SetSubData(target gl.Enum, offset int, data []byte) error {
	if !b.ctx.IsCurrent() {
		return ErrInactiveContext
	}
	b.ctx.f.BindBuffer(target, b.obj)
	b.ctx.f.BufferSubData(target, offset, data)
	return checkGLError(b.ctx.f, "glBufferSubData")
}

// Release deletes the buffer object. Further use of the buffer is
// invalid.
func (b *Buffer) Release() {
	if b.obj.Valid() {
		b.ctx.f.DeleteBuffer(b.obj)
		b.obj = gl.Buffer{}
	}
}
