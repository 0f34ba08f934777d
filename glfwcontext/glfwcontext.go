// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo

// Package glfwcontext adapts GLFW windows to ogl contexts. The adapter
// performs the driver-level context switches through GLFW and keeps the
// wrapped ogl.Context's currency tracking in step with them.
package glfwcontext

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/crust/ogl"
	"github.com/crust/ogl/glimpl"
)

// Context couples a GLFW window's native context with its ogl wrapper.
type Context struct {
	window *glfw.Window
	ctx    *ogl.Context
}

// Init initializes GLFW and locks the calling goroutine to its thread.
// Call it from the main goroutine before any other use of the package.
func Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfwcontext: initializing GLFW failed: %w", err)
	}
	ogl.Logger().Info("glfwcontext: GLFW initialized")
	return nil
}

// Terminate shuts GLFW down. Call it from the main goroutine after all
// windows are destroyed.
func Terminate() {
	glfw.Terminate()
	ogl.Logger().Info("glfwcontext: GLFW terminated")
}

// WindowHints applies the context hints matching the loaded bindings:
// OpenGL 4.1 core, forward compatible. Call it between Init and
// glfw.CreateWindow.
func WindowHints() {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
}

// New makes win's native context current on the calling thread, loads
// the driver bindings and wraps the pair as a thread-bound ogl.Context.
// The calling goroutine stays locked to its thread until Release. The
// window itself stays with the caller.
func New(win *glfw.Window, opts ...ogl.Option) (*Context, error) {
	// Hold the goroutine on one thread across the driver switch and the
	// wrapper's own thread binding.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	win.MakeContextCurrent()
	f, err := glimpl.New()
	if err != nil {
		return nil, err
	}
	return &Context{
		window: win,
		ctx:    ogl.NewMultiContext(f, uintptr(win.Handle()), opts...),
	}, nil
}

// MakeCurrent records the wrapper as current and switches the window's
// native context onto the calling thread. Fails with ogl.ErrWrongThread
// off the creating thread, leaving the native binding untouched.
func (c *Context) MakeCurrent() error {
	if err := c.ctx.MakeCurrent(); err != nil {
		return err
	}
	c.window.MakeContextCurrent()
	return nil
}

// Context returns the wrapped ogl.Context.
func (c *Context) Context() *ogl.Context {
	return c.ctx
}

// Window returns the underlying GLFW window.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// SwapBuffers presents the window's back buffer.
func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

// Release releases the wrapped context and detaches the native context
// from the thread. The window is not destroyed.
func (c *Context) Release() {
	if c.ctx.IsCurrent() {
		glfw.DetachCurrentContext()
	}
	c.ctx.Release()
}
