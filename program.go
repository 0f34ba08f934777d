// SPDX-License-Identifier: Unlicense OR MIT

package ogl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/crust/ogl/gl"
)

// Program is a linked shader program. It is created against a context
// and must only be used while that context is current.
type Program struct {
	ctx *Context
	obj gl.Program
}

// NewProgram compiles the vertex and fragment shader sources and links
// them into a program. Fails with ErrInactiveContext if ctx is not
// current; compile and link failures carry the driver's info log.
func NewProgram(ctx *Context, vsSrc, fsSrc string) (*Program, error) {
	if !ctx.IsCurrent() {
		return nil, ErrInactiveContext
	}
	f := ctx.f
	vs, err := createShader(f, gl.VERTEX_SHADER, vsSrc)
	if err != nil {
		return nil, err
	}
	defer f.DeleteShader(vs)
	fs, err := createShader(f, gl.FRAGMENT_SHADER, fsSrc)
	if err != nil {
		return nil, err
	}
	defer f.DeleteShader(fs)
	prog := f.CreateProgram()
	if !prog.Valid() {
		return nil, errors.New("ogl: glCreateProgram failed")
	}
	f.AttachShader(prog, vs)
	f.AttachShader(prog, fs)
	f.LinkProgram(prog)
	if f.GetProgrami(prog, gl.LINK_STATUS) == gl.FALSE {
		log := f.GetProgramInfoLog(prog)
		f.DeleteProgram(prog)
		return nil, fmt.Errorf("ogl: program link failed: %s", strings.TrimSpace(log))
	}
	return &Program{ctx: ctx, obj: prog}, nil
}

func createShader(f gl.Functions, typ gl.Enum, src string) (gl.Shader, error) {
	sh := f.CreateShader(typ)
	if !sh.Valid() {
		return gl.Shader{}, errors.New("ogl: glCreateShader failed")
	}
	f.ShaderSource(sh, src)
	f.CompileShader(sh)
	if f.GetShaderi(sh, gl.COMPILE_STATUS) == gl.FALSE {
		log := f.GetShaderInfoLog(sh)
		f.DeleteShader(sh)
		return gl.Shader{}, fmt.Errorf("ogl: shader compilation failed: %s", strings.TrimSpace(log))
	}
	return sh, nil
}

// Use installs the program into the current rendering state.
func (p *Program) Use() error {
	if !p.ctx.IsCurrent() {
		return ErrInactiveContext
	}
	p.ctx.f.UseProgram(p.obj)
	return checkGLError(p.ctx.f, "glUseProgram")
}

// AttribLocation returns the location of the named vertex attribute of
// the linked program.
func (p *Program) AttribLocation(name string) (gl.Attrib, error) {
	if !p.ctx.IsCurrent() {
		return 0, ErrInactiveContext
	}
	loc := p.ctx.f.GetAttribLocation(p.obj, name)
	if loc < 0 {
		return 0, fmt.Errorf("ogl: no active attribute %q", name)
	}
	return gl.Attrib(loc), nil
}

// UniformLocation returns the location of the named uniform of the
// linked program.
func (p *Program) UniformLocation(name string) (gl.Uniform, error) {
	if !p.ctx.IsCurrent() {
		return gl.Uniform{V: -1}, ErrInactiveContext
	}
	loc := p.ctx.f.GetUniformLocation(p.obj, name)
	if !loc.Valid() {
		return loc, fmt.Errorf("ogl: no active uniform %q", name)
	}
	return loc, nil
}

// Release deletes the program object. Further use of the program is
// invalid.
func (p *Program) Release() {
	if p.obj.Valid() {
		p.ctx.f.DeleteProgram(p.obj)
		p.obj = gl.Program{}
	}
}
