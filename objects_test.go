// SPDX-License-Identifier: Unlicense OR MIT

package ogl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/crust/ogl/gl"
	"github.com/crust/ogl/internal/gltest"
)

// callIndex returns the position of the first invocation of name in
// calls, or -1.
func callIndex(calls []gltest.Call, name string) int {
	for i, c := range calls {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func TestBuffer(t *testing.T) {
	d := gltest.New()
	c := NewMonoContext(d, 1, WithRegistry(NewRegistry()))

	b, err := NewBuffer(c)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if err := b.SetData(gl.ARRAY_BUFFER, data, gl.STATIC_DRAW); err != nil {
		t.Fatalf("SetData: %v", err)
	}
	call, ok := d.LastCall("BufferData")
	if !ok {
		t.Fatal("no BufferData issued")
	}
	if target := call.Args[0].(gl.Enum); target != gl.ARRAY_BUFFER {
		t.Errorf("BufferData target 0x%x, expected ARRAY_BUFFER", uint(target))
	}
	if got := call.Args[1].([]byte); !bytes.Equal(got, data) {
		t.Errorf("BufferData payload %v, expected %v", got, data)
	}
	if usage := call.Args[2].(gl.Enum); usage != gl.STATIC_DRAW {
		t.Errorf("BufferData usage 0x%x, expected STATIC_DRAW", uint(usage))
	}

	if err := b.SetSubData(gl.ARRAY_BUFFER, 4, []byte{9, 9}); err != nil {
		t.Fatalf("SetSubData: %v", err)
	}
	call, _ = d.LastCall("BufferSubData")
	if off := call.Args[1].(int); off != 4 {
		t.Errorf("BufferSubData offset %d, expected 4", off)
	}

	b.Release()
	if n := d.CallCount("DeleteBuffer"); n != 1 {
		t.Errorf("%d DeleteBuffer calls, expected 1", n)
	}
	b.Release() // second release is a no-op
	if n := d.CallCount("DeleteBuffer"); n != 1 {
		t.Errorf("%d DeleteBuffer calls after double release", n)
	}
}

func TestBufferRequiresCurrency(t *testing.T) {
	d := gltest.New()
	reg := NewRegistry()
	a := NewMonoContext(d, 1, WithRegistry(reg))

	b, err := NewBuffer(a)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}

	NewMonoContext(d, 2, WithRegistry(reg)) // supersedes a
	if _, err := NewBuffer(a); !errors.Is(err, ErrInactiveContext) {
		t.Errorf("NewBuffer on inactive context: %v", err)
	}
	if err := b.SetData(gl.ARRAY_BUFFER, []byte{1}, gl.STATIC_DRAW); !errors.Is(err, ErrInactiveContext) {
		t.Errorf("SetData on inactive context: %v", err)
	}
	if err := b.Bind(gl.ARRAY_BUFFER); !errors.Is(err, ErrInactiveContext) {
		t.Errorf("Bind on inactive context: %v", err)
	}
}

const (
	testVertexShader = `#version 150
in vec2 position;
void main() { gl_Position = vec4(position, 0.0, 1.0); }
`
	testFragmentShader = `#version 150
out vec4 color;
void main() { color = vec4(1.0); }
`
)

func TestNewProgram(t *testing.T) {
	d := gltest.New()
	c := NewMonoContext(d, 1, WithRegistry(NewRegistry()))

	p, err := NewProgram(c, testVertexShader, testFragmentShader)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	if n := d.CallCount("CreateShader"); n != 2 {
		t.Errorf("%d CreateShader calls, expected 2", n)
	}
	srcs := d.Calls("ShaderSource")
	if len(srcs) != 2 {
		t.Fatalf("%d ShaderSource calls, expected 2", len(srcs))
	}
	if got := srcs[0].Args[1].(string); got != testVertexShader {
		t.Error("vertex source not passed through")
	}
	if n := d.CallCount("LinkProgram"); n != 1 {
		t.Errorf("%d LinkProgram calls, expected 1", n)
	}
	// The shaders are deleted once linked.
	if n := d.CallCount("DeleteShader"); n != 2 {
		t.Errorf("%d DeleteShader calls, expected 2", n)
	}

	if err := p.Use(); err != nil {
		t.Fatalf("Use: %v", err)
	}
	if n := d.CallCount("UseProgram"); n != 1 {
		t.Errorf("%d UseProgram calls, expected 1", n)
	}
}

func TestNewProgramCompileError(t *testing.T) {
	d := gltest.New()
	d.CompileErr = "0:2(1): error: syntax error, unexpected IDENTIFIER"
	c := NewMonoContext(d, 1, WithRegistry(NewRegistry()))

	_, err := NewProgram(c, "nonsense", testFragmentShader)
	if err == nil {
		t.Fatal("NewProgram succeeded with a failing compiler")
	}
	if !strings.Contains(err.Error(), "syntax error") {
		t.Errorf("compile error lost the info log: %v", err)
	}
	if n := d.CallCount("LinkProgram"); n != 0 {
		t.Error("LinkProgram issued after a failed compile")
	}
}

func TestNewProgramLinkError(t *testing.T) {
	d := gltest.New()
	d.LinkErr = "error: unresolved varying"
	c := NewMonoContext(d, 1, WithRegistry(NewRegistry()))

	_, err := NewProgram(c, testVertexShader, testFragmentShader)
	if err == nil {
		t.Fatal("NewProgram succeeded with a failing linker")
	}
	if !strings.Contains(err.Error(), "unresolved varying") {
		t.Errorf("link error lost the info log: %v", err)
	}
	if n := d.CallCount("DeleteProgram"); n != 1 {
		t.Errorf("%d DeleteProgram calls after a failed link, expected 1", n)
	}
}

func TestProgramLocations(t *testing.T) {
	d := gltest.New()
	d.Attribs["position"] = 2
	d.Uniforms["tint"] = 0
	c := NewMonoContext(d, 1, WithRegistry(NewRegistry()))

	p, err := NewProgram(c, testVertexShader, testFragmentShader)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}

	attr, err := p.AttribLocation("position")
	if err != nil {
		t.Fatalf("AttribLocation: %v", err)
	}
	if attr != 2 {
		t.Errorf("AttribLocation = %d, expected 2", attr)
	}
	if _, err := p.AttribLocation("missing"); err == nil {
		t.Error("AttribLocation succeeded for an unknown attribute")
	}

	u, err := p.UniformLocation("tint")
	if err != nil {
		t.Fatalf("UniformLocation: %v", err)
	}
	if u.V != 0 {
		t.Errorf("UniformLocation = %d, expected 0", u.V)
	}
	if _, err := p.UniformLocation("missing"); err == nil {
		t.Error("UniformLocation succeeded for an unknown uniform")
	}
}

func TestVertexArrayDraw(t *testing.T) {
	d := gltest.New()
	d.Attribs["position"] = 0
	c := NewMonoContext(d, 1, WithRegistry(NewRegistry()))

	p, err := NewProgram(c, testVertexShader, testFragmentShader)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	buf, err := NewBuffer(c)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	va, err := NewVertexArray(c, p)
	if err != nil {
		t.Fatalf("NewVertexArray: %v", err)
	}
	if va.Program() != p {
		t.Error("Program() does not return the construction program")
	}

	attr, err := p.AttribLocation("position")
	if err != nil {
		t.Fatalf("AttribLocation: %v", err)
	}
	if err := va.Enable(attr); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	if err := va.Pointer(buf, attr, 2, gl.FLOAT, false, 0, 0); err != nil {
		t.Fatalf("Pointer: %v", err)
	}
	call, ok := d.LastCall("VertexAttribPointer")
	if !ok {
		t.Fatal("no VertexAttribPointer issued")
	}
	if size := call.Args[1].(int); size != 2 {
		t.Errorf("attribute size %d, expected 2", size)
	}
	if ty := call.Args[2].(gl.Enum); ty != gl.FLOAT {
		t.Errorf("attribute type 0x%x, expected FLOAT", uint(ty))
	}

	d.Reset()
	if err := va.Draw(gl.TRIANGLES, 3, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	calls := d.Calls("")
	use, draw := callIndex(calls, "UseProgram"), callIndex(calls, "DrawArrays")
	if use < 0 || draw < 0 || use > draw {
		t.Errorf("draw sequence UseProgram=%d DrawArrays=%d, expected UseProgram first", use, draw)
	}
	dc, _ := d.LastCall("DrawArrays")
	if mode := dc.Args[0].(gl.Enum); mode != gl.TRIANGLES {
		t.Errorf("draw mode 0x%x, expected TRIANGLES", uint(mode))
	}
	if first := dc.Args[1].(int); first != 0 {
		t.Errorf("draw first %d, expected 0", first)
	}
	if count := dc.Args[2].(int); count != 3 {
		t.Errorf("draw count %d, expected 3", count)
	}
}

func TestVertexArrayDrawTo(t *testing.T) {
	d := gltest.New()
	c := NewMonoContext(d, 1, WithRegistry(NewRegistry()))

	p, err := NewProgram(c, testVertexShader, testFragmentShader)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	va, err := NewVertexArray(c, p)
	if err != nil {
		t.Fatalf("NewVertexArray: %v", err)
	}
	fb, err := NewFramebuffer(c, 16, 16)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}

	d.Reset()
	if err := va.DrawTo(fb, gl.TRIANGLE_STRIP, 4, 0); err != nil {
		t.Fatalf("DrawTo: %v", err)
	}
	calls := d.Calls("")
	bind, draw := callIndex(calls, "BindFramebuffer"), callIndex(calls, "DrawArrays")
	if bind < 0 || draw < 0 || bind > draw {
		t.Errorf("draw sequence BindFramebuffer=%d DrawArrays=%d, expected bind first", bind, draw)
	}
}

func TestFramebuffer(t *testing.T) {
	d := gltest.New()
	c := NewMonoContext(d, 1, WithRegistry(NewRegistry()))

	fb, err := NewFramebuffer(c, 32, 8)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	if w, h := fb.Size(); w != 32 || h != 8 {
		t.Errorf("Size() = %dx%d, expected 32x8", w, h)
	}
	// Color and depth renderbuffers are allocated and attached.
	if n := d.CallCount("RenderbufferStorage"); n != 2 {
		t.Errorf("%d RenderbufferStorage calls, expected 2", n)
	}
	if n := d.CallCount("FramebufferRenderbuffer"); n != 2 {
		t.Errorf("%d FramebufferRenderbuffer calls, expected 2", n)
	}

	if err := c.ClearColor(Color{R: 1, G: 0, B: 0, A: 1}); err != nil {
		t.Fatalf("ClearColor: %v", err)
	}
	if err := fb.Unbind(); err != nil {
		t.Fatalf("Unbind: %v", err)
	}
	img, err := fb.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if got := img.Bounds().Dx(); got != 32 {
		t.Errorf("image width %d, expected 32", got)
	}
	r, g, b, a := img.At(3, 5).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("pixel = %d %d %d %d, expected opaque red", r>>8, g>>8, b>>8, a>>8)
	}
	// Image leaves the read binding as it found it.
	call, _ := d.LastCall("BindFramebuffer")
	if prev := call.Args[1].(gl.Framebuffer); prev.Valid() {
		t.Errorf("read framebuffer binding left at %d after Image", prev.V)
	}

	fb.Release()
	if n := d.CallCount("DeleteRenderbuffer"); n != 2 {
		t.Errorf("%d DeleteRenderbuffer calls, expected 2", n)
	}
	if n := d.CallCount("DeleteFramebuffer"); n != 1 {
		t.Errorf("%d DeleteFramebuffer calls, expected 1", n)
	}
}

func TestFramebufferIncomplete(t *testing.T) {
	d := gltest.New()
	d.FramebufferStatus = 0x8cd6 // INCOMPLETE_ATTACHMENT
	c := NewMonoContext(d, 1, WithRegistry(NewRegistry()))

	_, err := NewFramebuffer(c, 16, 16)
	if err == nil {
		t.Fatal("NewFramebuffer succeeded with an incomplete framebuffer")
	}
	if !strings.Contains(err.Error(), "framebuffer incomplete") {
		t.Errorf("unexpected error: %v", err)
	}
	// The partially built objects are torn down.
	if n := d.CallCount("DeleteFramebuffer"); n != 1 {
		t.Errorf("%d DeleteFramebuffer calls, expected 1", n)
	}
	if n := d.CallCount("DeleteRenderbuffer"); n != 2 {
		t.Errorf("%d DeleteRenderbuffer calls, expected 2", n)
	}
}
