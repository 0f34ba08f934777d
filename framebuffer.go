// SPDX-License-Identifier: Unlicense OR MIT

package ogl

import (
	"fmt"
	"image"

	"github.com/crust/ogl/gl"
)

// Framebuffer is an offscreen render target backed by an RGBA8 color
// renderbuffer and a 16-bit depth renderbuffer. It is created against a
// context and must only be used while that context is current.
type Framebuffer struct {
	ctx    *Context
	obj    gl.Framebuffer
	color  gl.Renderbuffer
	depth  gl.Renderbuffer
	width  int
	height int
}

// NewFramebuffer creates a width by height offscreen render target and
// leaves it bound as the framebuffer.
func NewFramebuffer(ctx *Context, width, height int) (*Framebuffer, error) {
	if !ctx.IsCurrent() {
		return nil, ErrInactiveContext
	}
	f := ctx.f
	fb := &Framebuffer{
		ctx:    ctx,
		obj:    f.CreateFramebuffer(),
		color:  f.CreateRenderbuffer(),
		depth:  f.CreateRenderbuffer(),
		width:  width,
		height: height,
	}
	f.BindRenderbuffer(gl.RENDERBUFFER, fb.color)
	f.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, width, height)
	f.BindRenderbuffer(gl.RENDERBUFFER, fb.depth)
	f.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT16, width, height)
	f.BindFramebuffer(gl.FRAMEBUFFER, fb.obj)
	f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, fb.color)
	f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.depth)
	if st := f.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		fb.Release()
		return nil, fmt.Errorf("ogl: framebuffer incomplete (status 0x%x)", uint(st))
	}
	if err := checkGLError(f, "framebuffer setup"); err != nil {
		fb.Release()
		return nil, err
	}
	return fb, nil
}

// Bind makes the framebuffer the target of draw and read operations.
func (fb *Framebuffer) Bind() error {
	if !fb.ctx.IsCurrent() {
		return ErrInactiveContext
	}
	fb.ctx.f.BindFramebuffer(gl.FRAMEBUFFER, fb.obj)
	return checkGLError(fb.ctx.f, "glBindFramebuffer")
}

// Unbind restores the default framebuffer as the target.
func (fb *Framebuffer) Unbind() error {
	if !fb.ctx.IsCurrent() {
		return ErrInactiveContext
	}
	fb.ctx.f.BindFramebuffer(gl.FRAMEBUFFER, gl.Framebuffer{})
	return checkGLError(fb.ctx.f, "glBindFramebuffer")
}

// Size returns the framebuffer's dimensions in pixels.
func (fb *Framebuffer) Size() (width, height int) {
	return fb.width, fb.height
}

// Image downloads the color attachment into an RGBA image. The read
// framebuffer binding is restored before returning.
func (fb *Framebuffer) Image() (*image.RGBA, error) {
	if !fb.ctx.IsCurrent() {
		return nil, ErrInactiveContext
	}
	f := fb.ctx.f
	prev := gl.Framebuffer(f.GetBinding(gl.READ_FRAMEBUFFER_BINDING))
	f.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.obj)
	defer f.BindFramebuffer(gl.READ_FRAMEBUFFER, prev)
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	f.ReadPixels(0, 0, fb.width, fb.height, gl.RGBA, gl.UNSIGNED_BYTE, img.Pix)
	if err := checkGLError(f, "glReadPixels"); err != nil {
		return nil, err
	}
	// The driver returns rows bottom-up; flip to image order.
	row := make([]byte, img.Stride)
	for y := 0; y < fb.height/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bot := img.Pix[(fb.height-1-y)*img.Stride : (fb.height-y)*img.Stride]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
	return img, nil
}

// Release deletes the framebuffer and its renderbuffers. Further use of
// the framebuffer is invalid.
func (fb *Framebuffer) Release() {
	f := fb.ctx.f
	if fb.obj.Valid() {
		f.DeleteFramebuffer(fb.obj)
		fb.obj = gl.Framebuffer{}
	}
	if fb.color.Valid() {
		f.DeleteRenderbuffer(fb.color)
		fb.color = gl.Renderbuffer{}
	}
	if fb.depth.Valid() {
		f.DeleteRenderbuffer(fb.depth)
		fb.depth = gl.Renderbuffer{}
	}
}
