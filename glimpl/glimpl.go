// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo

// Package glimpl implements gl.Functions on the OpenGL entry points
// loaded by github.com/go-gl/gl. Loading resolves the entry points of
// whatever native context is current on the calling thread, so New must
// run on the thread where the context was made current.
package glimpl

import (
	"fmt"
	"strings"
	"unsafe"

	gogl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/crust/ogl/gl"
)

// Functions forwards gl.Functions calls to the loaded driver.
type Functions struct {
}

var _ gl.Functions = (*Functions)(nil)

// New loads the OpenGL entry points from the context current on the
// calling thread.
func New() (*Functions, error) {
	if err := gogl.Init(); err != nil {
		return nil, fmt.Errorf("glimpl: loading OpenGL entry points failed: %w", err)
	}
	return new(Functions), nil
}

func (f *Functions) AttachShader(p gl.Program, s gl.Shader) {
	gogl.AttachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) BindBuffer(target gl.Enum, b gl.Buffer) {
	gogl.BindBuffer(uint32(target), uint32(b.V))
}

func (f *Functions) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	gogl.BindFramebuffer(uint32(target), uint32(fb.V))
}

func (f *Functions) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	gogl.BindRenderbuffer(uint32(target), uint32(rb.V))
}

func (f *Functions) BindVertexArray(a gl.VertexArray) {
	gogl.BindVertexArray(uint32(a.V))
}

func (f *Functions) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	gogl.BufferData(uint32(target), len(src), gogl.Ptr(src), uint32(usage))
}

func (f *Functions) BufferSubData(target gl.Enum, offset int, src []byte) {
	gogl.BufferSubData(uint32(target), offset, len(src), gogl.Ptr(src))
}

func (f *Functions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	return gl.Enum(gogl.CheckFramebufferStatus(uint32(target)))
}

func (f *Functions) Clear(mask gl.Enum) {
	gogl.Clear(uint32(mask))
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	gogl.ClearColor(red, green, blue, alpha)
}

func (f *Functions) CompileShader(s gl.Shader) {
	gogl.CompileShader(uint32(s.V))
}

func (f *Functions) CreateBuffer() gl.Buffer {
	var buf uint32
	gogl.GenBuffers(1, &buf)
	return gl.Buffer{uint(buf)}
}

func (f *Functions) CreateFramebuffer() gl.Framebuffer {
	var fb uint32
	gogl.GenFramebuffers(1, &fb)
	return gl.Framebuffer{uint(fb)}
}

func (f *Functions) CreateProgram() gl.Program {
	return gl.Program{uint(gogl.CreateProgram())}
}

func (f *Functions) CreateRenderbuffer() gl.Renderbuffer {
	var rb uint32
	gogl.GenRenderbuffers(1, &rb)
	return gl.Renderbuffer{uint(rb)}
}

func (f *Functions) CreateShader(ty gl.Enum) gl.Shader {
	return gl.Shader{uint(gogl.CreateShader(uint32(ty)))}
}

func (f *Functions) CreateVertexArray() gl.VertexArray {
	var a uint32
	gogl.GenVertexArrays(1, &a)
	return gl.VertexArray{uint(a)}
}

func (f *Functions) DeleteBuffer(v gl.Buffer) {
	buf := uint32(v.V)
	gogl.DeleteBuffers(1, &buf)
}

func (f *Functions) DeleteFramebuffer(v gl.Framebuffer) {
	fb := uint32(v.V)
	gogl.DeleteFramebuffers(1, &fb)
}

func (f *Functions) DeleteProgram(p gl.Program) {
	gogl.DeleteProgram(uint32(p.V))
}

func (f *Functions) DeleteRenderbuffer(rb gl.Renderbuffer) {
	r := uint32(rb.V)
	gogl.DeleteRenderbuffers(1, &r)
}

func (f *Functions) DeleteShader(s gl.Shader) {
	gogl.DeleteShader(uint32(s.V))
}

func (f *Functions) DeleteVertexArray(a gl.VertexArray) {
	arr := uint32(a.V)
	gogl.DeleteVertexArrays(1, &arr)
}

func (f *Functions) Disable(cap gl.Enum) {
	gogl.Disable(uint32(cap))
}

func (f *Functions) DisableVertexAttribArray(a gl.Attrib) {
	gogl.DisableVertexAttribArray(uint32(a))
}

func (f *Functions) DrawArrays(mode gl.Enum, first, count int) {
	gogl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	gogl.DrawElements(uint32(mode), int32(count), uint32(ty), unsafe.Pointer(uintptr(offset)))
}

func (f *Functions) Enable(cap gl.Enum) {
	gogl.Enable(uint32(cap))
}

func (f *Functions) EnableVertexAttribArray(a gl.Attrib) {
	gogl.EnableVertexAttribArray(uint32(a))
}

func (f *Functions) Finish() {
	gogl.Finish()
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, renderbuffertarget gl.Enum, rb gl.Renderbuffer) {
	gogl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbuffertarget), uint32(rb.V))
}

func (f *Functions) GetAttribLocation(p gl.Program, name string) int {
	return int(gogl.GetAttribLocation(uint32(p.V), gogl.Str(name+"\x00")))
}

func (f *Functions) GetBinding(pname gl.Enum) gl.Object {
	return gl.Object{uint(f.GetInteger(pname))}
}

func (f *Functions) GetBoolean(pname gl.Enum) bool {
	var v bool
	gogl.GetBooleanv(uint32(pname), &v)
	return v
}

func (f *Functions) GetDouble(pname gl.Enum) float64 {
	var v float64
	gogl.GetDoublev(uint32(pname), &v)
	return v
}

func (f *Functions) GetError() gl.Enum {
	return gl.Enum(gogl.GetError())
}

func (f *Functions) GetFloat(pname gl.Enum) float32 {
	var v float32
	gogl.GetFloatv(uint32(pname), &v)
	return v
}

func (f *Functions) GetFloat4(pname gl.Enum) [4]float32 {
	var v [4]float32
	gogl.GetFloatv(uint32(pname), &v[0])
	return v
}

func (f *Functions) GetInteger(pname gl.Enum) int {
	// Some pnames report several values; leave room for them.
	var p [100]int32
	gogl.GetIntegerv(uint32(pname), &p[0])
	return int(p[0])
}

func (f *Functions) GetInteger64(pname gl.Enum) int64 {
	var v int64
	gogl.GetInteger64v(uint32(pname), &v)
	return v
}

func (f *Functions) GetProgramInfoLog(p gl.Program) string {
	var logLength int32
	gogl.GetProgramiv(uint32(p.V), gogl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gogl.GetProgramInfoLog(uint32(p.V), logLength, nil, gogl.Str(log))
	return log[:logLength]
}

func (f *Functions) GetProgrami(p gl.Program, pname gl.Enum) int {
	var i int32
	gogl.GetProgramiv(uint32(p.V), uint32(pname), &i)
	return int(i)
}

func (f *Functions) GetShaderInfoLog(s gl.Shader) string {
	var logLength int32
	gogl.GetShaderiv(uint32(s.V), gogl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gogl.GetShaderInfoLog(uint32(s.V), logLength, nil, gogl.Str(log))
	return log[:logLength]
}

func (f *Functions) GetShaderi(s gl.Shader, pname gl.Enum) int {
	var i int32
	gogl.GetShaderiv(uint32(s.V), uint32(pname), &i)
	return int(i)
}

func (f *Functions) GetString(pname gl.Enum) string {
	switch {
	case pname == gl.EXTENSIONS:
		// Core profiles don't support glGetString(GL_EXTENSIONS).
		// Use glGetStringi(GL_EXTENSIONS, <index>).
		var exts []string
		nexts := f.GetInteger(gogl.NUM_EXTENSIONS)
		for i := 0; i < nexts; i++ {
			ext := gogl.GetStringi(gogl.EXTENSIONS, uint32(i))
			exts = append(exts, gogl.GoStr(ext))
		}
		return strings.Join(exts, " ")
	default:
		return gogl.GoStr(gogl.GetString(uint32(pname)))
	}
}

func (f *Functions) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	return gl.Uniform{int(gogl.GetUniformLocation(uint32(p.V), gogl.Str(name+"\x00")))}
}

func (f *Functions) IsEnabled(cap gl.Enum) bool {
	return gogl.IsEnabled(uint32(cap))
}

func (f *Functions) LinkProgram(p gl.Program) {
	gogl.LinkProgram(uint32(p.V))
}

func (f *Functions) ReadPixels(x, y, width, height int, format, ty gl.Enum, data []byte) {
	gogl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), unsafe.Pointer(&data[0]))
}

func (f *Functions) RenderbufferStorage(target, internalformat gl.Enum, width, height int) {
	gogl.RenderbufferStorage(uint32(target), uint32(internalformat), int32(width), int32(height))
}

func (f *Functions) ShaderSource(s gl.Shader, src string) {
	csources, free := gogl.Strs(src + "\x00")
	gogl.ShaderSource(uint32(s.V), 1, csources, nil)
	free()
}

func (f *Functions) UseProgram(p gl.Program) {
	gogl.UseProgram(uint32(p.V))
}

func (f *Functions) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	gogl.VertexAttribPointer(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), unsafe.Pointer(uintptr(offset)))
}

func (f *Functions) Viewport(x, y, width, height int) {
	gogl.Viewport(int32(x), int32(y), int32(width), int32(height))
}
