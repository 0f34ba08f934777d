// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Functions is the set of OpenGL entry points the wrappers call. Package
// glimpl implements it on top of loaded driver bindings; tests substitute
// scripted implementations.
//
// Unless a method documents otherwise, calls are forwarded verbatim and
// must happen on the OS thread where the issuing context is current.
type Functions interface {
	AttachShader(p Program, s Shader)
	BindBuffer(target Enum, b Buffer)
	BindFramebuffer(target Enum, f Framebuffer)
	BindRenderbuffer(target Enum, r Renderbuffer)
	BindVertexArray(a VertexArray)
	BufferData(target Enum, src []byte, usage Enum)
	BufferSubData(target Enum, offset int, src []byte)
	CheckFramebufferStatus(target Enum) Enum
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	CompileShader(s Shader)
	CreateBuffer() Buffer
	CreateFramebuffer() Framebuffer
	CreateProgram() Program
	CreateRenderbuffer() Renderbuffer
	CreateShader(ty Enum) Shader
	CreateVertexArray() VertexArray
	DeleteBuffer(v Buffer)
	DeleteFramebuffer(v Framebuffer)
	DeleteProgram(p Program)
	DeleteRenderbuffer(r Renderbuffer)
	DeleteShader(s Shader)
	DeleteVertexArray(a VertexArray)
	Disable(cap Enum)
	DisableVertexAttribArray(a Attrib)
	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, ty Enum, offset int)
	Enable(cap Enum)
	EnableVertexAttribArray(a Attrib)
	Finish()
	FramebufferRenderbuffer(target, attachment, renderbuffertarget Enum, r Renderbuffer)
	// GetAttribLocation returns -1 when the program has no active
	// attribute with the given name.
	GetAttribLocation(p Program, name string) int
	// GetBinding returns the object bound to the binding point named by
	// pname, such as FRAMEBUFFER_BINDING or VERTEX_ARRAY_BINDING.
	GetBinding(pname Enum) Object
	GetBoolean(pname Enum) bool
	GetDouble(pname Enum) float64
	GetError() Enum
	GetFloat(pname Enum) float32
	GetFloat4(pname Enum) [4]float32
	GetInteger(pname Enum) int
	GetInteger64(pname Enum) int64
	GetProgramInfoLog(p Program) string
	GetProgrami(p Program, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetShaderi(s Shader, pname Enum) int
	GetString(pname Enum) string
	GetUniformLocation(p Program, name string) Uniform
	IsEnabled(cap Enum) bool
	LinkProgram(p Program)
	ReadPixels(x, y, width, height int, format, ty Enum, data []byte)
	RenderbufferStorage(target, internalformat Enum, width, height int)
	ShaderSource(s Shader, src string)
	UseProgram(p Program)
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)
}
