// SPDX-License-Identifier: Unlicense OR MIT

// Package gltest provides a scripted gl.Functions implementation for
// exercising the wrappers without a native driver.
package gltest

import (
	"sync"

	"github.com/crust/ogl/gl"
)

// Call records one driver entry point invocation.
type Call struct {
	Name string
	Args []any
}

var _ gl.Functions = (*Driver)(nil)

// Driver implements gl.Functions with scripted results and a call log.
// Create one with New; the zero value has no parameter tables.
//
// Query results come from the exported parameter maps. State set through
// the driver itself (clear color, capability toggles, object bindings) is
// tracked and reflected by the matching queries, so set-then-get
// round-trips behave like a real context. All methods are safe for
// concurrent use.
type Driver struct {
	Ints    map[gl.Enum]int
	Int64s  map[gl.Enum]int64
	Bools   map[gl.Enum]bool
	Floats  map[gl.Enum]float32
	Doubles map[gl.Enum]float64
	Float4s map[gl.Enum][4]float32
	Strings map[gl.Enum]string

	// Attribs and Uniforms script location lookups by name. Names not
	// present report location -1.
	Attribs  map[string]int
	Uniforms map[string]int

	// CompileErr and LinkErr, when non-empty, fail shader compilation
	// or program linking with the given info log.
	CompileErr string
	LinkErr    string

	// FramebufferStatus is reported by CheckFramebufferStatus.
	FramebufferStatus gl.Enum

	mu         sync.Mutex
	calls      []Call
	errq       []gl.Enum
	clearColor [4]float32
	caps       map[gl.Enum]bool
	bindings   map[gl.Enum]uint
	nextID     uint
}

// New returns a driver that reports itself as an OpenGL 4.6 context with
// a complete framebuffer and no scripted failures.
func New() *Driver {
	return &Driver{
		Ints: map[gl.Enum]int{
			gl.MAJOR_VERSION: 4,
			gl.MINOR_VERSION: 6,
		},
		Int64s:  map[gl.Enum]int64{},
		Bools:   map[gl.Enum]bool{},
		Floats:  map[gl.Enum]float32{},
		Doubles: map[gl.Enum]float64{},
		Float4s: map[gl.Enum][4]float32{},
		Strings: map[gl.Enum]string{
			gl.VERSION:  "4.6.0 gltest",
			gl.VENDOR:   "gltest",
			gl.RENDERER: "gltest",
		},
		Attribs:           map[string]int{},
		Uniforms:          map[string]int{},
		FramebufferStatus: gl.FRAMEBUFFER_COMPLETE,
		caps:              map[gl.Enum]bool{},
		bindings:          map[gl.Enum]uint{},
	}
}

// FailNext queues a driver error; the next GetError call reports it.
func (d *Driver) FailNext(code gl.Enum) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errq = append(d.errq, code)
}

// Calls returns the recorded invocations of the named entry point in
// order, or every invocation when name is empty.
func (d *Driver) Calls(name string) []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []Call
	for _, c := range d.calls {
		if name == "" || c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// CallCount returns how many times the named entry point was invoked.
func (d *Driver) CallCount(name string) int {
	return len(d.Calls(name))
}

// LastCall returns the most recent invocation of the named entry point.
func (d *Driver) LastCall(name string) (Call, bool) {
	calls := d.Calls(name)
	if len(calls) == 0 {
		return Call{}, false
	}
	return calls[len(calls)-1], true
}

// Reset clears the call log, leaving scripted results and tracked state
// in place.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = nil
}

func (d *Driver) record(name string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, Call{Name: name, Args: args})
}

// gen records a call and allocates a fresh object name.
func (d *Driver) gen(name string) uint {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, Call{Name: name})
	d.nextID++
	return d.nextID
}

func (d *Driver) AttachShader(p gl.Program, s gl.Shader) { d.record("AttachShader", p, s) }

func (d *Driver) BindBuffer(target gl.Enum, b gl.Buffer) { d.record("BindBuffer", target, b) }

func (d *Driver) BindFramebuffer(target gl.Enum, f gl.Framebuffer) {
	d.record("BindFramebuffer", target, f)
	d.mu.Lock()
	defer d.mu.Unlock()
	// FRAMEBUFFER binds both the draw and read points.
	if target == gl.FRAMEBUFFER || target == gl.DRAW_FRAMEBUFFER {
		d.bindings[gl.FRAMEBUFFER_BINDING] = f.V
	}
	if target == gl.FRAMEBUFFER || target == gl.READ_FRAMEBUFFER {
		d.bindings[gl.READ_FRAMEBUFFER_BINDING] = f.V
	}
}

func (d *Driver) BindRenderbuffer(target gl.Enum, r gl.Renderbuffer) {
	d.record("BindRenderbuffer", target, r)
}

func (d *Driver) BindVertexArray(a gl.VertexArray) {
	d.record("BindVertexArray", a)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bindings[gl.VERTEX_ARRAY_BINDING] = a.V
}

func (d *Driver) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	d.record("BufferData", target, append([]byte(nil), src...), usage)
}

func (d *Driver) BufferSubData(target gl.Enum, offset int, src []byte) {
	d.record("BufferSubData", target, offset, append([]byte(nil), src...))
}

func (d *Driver) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	d.record("CheckFramebufferStatus", target)
	return d.FramebufferStatus
}

func (d *Driver) Clear(mask gl.Enum) { d.record("Clear", mask) }

func (d *Driver) ClearColor(red, green, blue, alpha float32) {
	d.record("ClearColor", red, green, blue, alpha)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearColor = [4]float32{red, green, blue, alpha}
}

func (d *Driver) CompileShader(s gl.Shader) { d.record("CompileShader", s) }

func (d *Driver) CreateBuffer() gl.Buffer { return gl.Buffer{V: d.gen("CreateBuffer")} }

func (d *Driver) CreateFramebuffer() gl.Framebuffer {
	return gl.Framebuffer{V: d.gen("CreateFramebuffer")}
}

func (d *Driver) CreateProgram() gl.Program { return gl.Program{V: d.gen("CreateProgram")} }

func (d *Driver) CreateRenderbuffer() gl.Renderbuffer {
	return gl.Renderbuffer{V: d.gen("CreateRenderbuffer")}
}

func (d *Driver) CreateShader(ty gl.Enum) gl.Shader { return gl.Shader{V: d.gen("CreateShader")} }

func (d *Driver) CreateVertexArray() gl.VertexArray {
	return gl.VertexArray{V: d.gen("CreateVertexArray")}
}

func (d *Driver) DeleteBuffer(v gl.Buffer) { d.record("DeleteBuffer", v) }

func (d *Driver) DeleteFramebuffer(v gl.Framebuffer) { d.record("DeleteFramebuffer", v) }

func (d *Driver) DeleteProgram(p gl.Program) { d.record("DeleteProgram", p) }

func (d *Driver) DeleteRenderbuffer(r gl.Renderbuffer) { d.record("DeleteRenderbuffer", r) }

func (d *Driver) DeleteShader(s gl.Shader) { d.record("DeleteShader", s) }

func (d *Driver) DeleteVertexArray(a gl.VertexArray) { d.record("DeleteVertexArray", a) }

func (d *Driver) Disable(cap gl.Enum) {
	d.record("Disable", cap)
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.caps, cap)
}

func (d *Driver) DisableVertexAttribArray(a gl.Attrib) { d.record("DisableVertexAttribArray", a) }

func (d *Driver) DrawArrays(mode gl.Enum, first, count int) {
	d.record("DrawArrays", mode, first, count)
}

func (d *Driver) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	d.record("DrawElements", mode, count, ty, offset)
}

func (d *Driver) Enable(cap gl.Enum) {
	d.record("Enable", cap)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.caps[cap] = true
}

func (d *Driver) EnableVertexAttribArray(a gl.Attrib) { d.record("EnableVertexAttribArray", a) }

func (d *Driver) Finish() { d.record("Finish") }

func (d *Driver) FramebufferRenderbuffer(target, attachment, renderbuffertarget gl.Enum, r gl.Renderbuffer) {
	d.record("FramebufferRenderbuffer", target, attachment, renderbuffertarget, r)
}

func (d *Driver) GetAttribLocation(p gl.Program, name string) int {
	d.record("GetAttribLocation", p, name)
	d.mu.Lock()
	defer d.mu.Unlock()
	if loc, ok := d.Attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) GetBinding(pname gl.Enum) gl.Object {
	d.record("GetBinding", pname)
	d.mu.Lock()
	defer d.mu.Unlock()
	return gl.Object{V: d.bindings[pname]}
}

func (d *Driver) GetBoolean(pname gl.Enum) bool {
	d.record("GetBoolean", pname)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Bools[pname]
}

func (d *Driver) GetDouble(pname gl.Enum) float64 {
	d.record("GetDouble", pname)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Doubles[pname]
}

func (d *Driver) GetError() gl.Enum {
	d.record("GetError")
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.errq) == 0 {
		return gl.NO_ERROR
	}
	code := d.errq[0]
	d.errq = d.errq[1:]
	return code
}

func (d *Driver) GetFloat(pname gl.Enum) float32 {
	d.record("GetFloat", pname)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Floats[pname]
}

func (d *Driver) GetFloat4(pname gl.Enum) [4]float32 {
	d.record("GetFloat4", pname)
	d.mu.Lock()
	defer d.mu.Unlock()
	if v, ok := d.Float4s[pname]; ok {
		return v
	}
	if pname == gl.COLOR_CLEAR_VALUE {
		return d.clearColor
	}
	return [4]float32{}
}

func (d *Driver) GetInteger(pname gl.Enum) int {
	d.record("GetInteger", pname)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Ints[pname]
}

func (d *Driver) GetInteger64(pname gl.Enum) int64 {
	d.record("GetInteger64", pname)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Int64s[pname]
}

func (d *Driver) GetProgramInfoLog(p gl.Program) string {
	d.record("GetProgramInfoLog", p)
	return d.LinkErr
}

func (d *Driver) GetProgrami(p gl.Program, pname gl.Enum) int {
	d.record("GetProgrami", p, pname)
	switch pname {
	case gl.LINK_STATUS:
		if d.LinkErr != "" {
			return gl.FALSE
		}
		return gl.TRUE
	case gl.INFO_LOG_LENGTH:
		return len(d.LinkErr)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Ints[pname]
}

func (d *Driver) GetShaderInfoLog(s gl.Shader) string {
	d.record("GetShaderInfoLog", s)
	return d.CompileErr
}

func (d *Driver) GetShaderi(s gl.Shader, pname gl.Enum) int {
	d.record("GetShaderi", s, pname)
	switch pname {
	case gl.COMPILE_STATUS:
		if d.CompileErr != "" {
			return gl.FALSE
		}
		return gl.TRUE
	case gl.INFO_LOG_LENGTH:
		return len(d.CompileErr)
	}
	return 0
}

func (d *Driver) GetString(pname gl.Enum) string {
	d.record("GetString", pname)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Strings[pname]
}

func (d *Driver) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	d.record("GetUniformLocation", p, name)
	d.mu.Lock()
	defer d.mu.Unlock()
	if loc, ok := d.Uniforms[name]; ok {
		return gl.Uniform{V: loc}
	}
	return gl.Uniform{V: -1}
}

func (d *Driver) IsEnabled(cap gl.Enum) bool {
	d.record("IsEnabled", cap)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.caps[cap]
}

func (d *Driver) LinkProgram(p gl.Program) { d.record("LinkProgram", p) }

// ReadPixels fills data as if the read buffer had been cleared to the
// current clear color.
func (d *Driver) ReadPixels(x, y, width, height int, format, ty gl.Enum, data []byte) {
	d.record("ReadPixels", x, y, width, height, format, ty)
	d.mu.Lock()
	defer d.mu.Unlock()
	px := [4]byte{
		byte(d.clearColor[0]*255 + 0.5),
		byte(d.clearColor[1]*255 + 0.5),
		byte(d.clearColor[2]*255 + 0.5),
		byte(d.clearColor[3]*255 + 0.5),
	}
	for i := 0; i+4 <= len(data); i += 4 {
		copy(data[i:], px[:])
	}
}

func (d *Driver) RenderbufferStorage(target, internalformat gl.Enum, width, height int) {
	d.record("RenderbufferStorage", target, internalformat, width, height)
}

func (d *Driver) ShaderSource(s gl.Shader, src string) { d.record("ShaderSource", s, src) }

func (d *Driver) UseProgram(p gl.Program) {
	d.record("UseProgram", p)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bindings[gl.CURRENT_PROGRAM] = p.V
}

func (d *Driver) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	d.record("VertexAttribPointer", dst, size, ty, normalized, stride, offset)
}

func (d *Driver) Viewport(x, y, width, height int) { d.record("Viewport", x, y, width, height) }
