// SPDX-License-Identifier: Unlicense OR MIT

package ogl

import (
	"runtime"

	"github.com/crust/ogl/gl"
)

// Context wraps a native rendering context and tracks whether it is
// current. It does not switch the native context at the driver level;
// the windowing layer that created the native context owns that switch,
// and Context records the result so GPU calls can be validated against
// it. See the glfwcontext and headless packages for layers that do both.
//
// A Context exclusively owns its currency state. Release tears the state
// down and empties the context's registry slot if it still holds it.
type Context struct {
	f      gl.Functions
	handle uintptr
	reg    *Registry

	state currency

	clearMask gl.Enum
	debug     bool
	onDetach  func()
}

// Option configures a Context at construction.
type Option func(*Context)

// WithRegistry makes the context track currency in reg instead of the
// package default registry.
func WithRegistry(reg *Registry) Option {
	return func(c *Context) { c.reg = reg }
}

// WithClearMask sets the buffer mask used by Clear. The default clears
// only the color buffer.
func WithClearMask(mask gl.Enum) Option {
	return func(c *Context) { c.clearMask = mask }
}

// WithDebug makes the void forwards, Enable and Disable, poll the
// driver for errors and log failures. Costs a driver round trip per
// call; meant for development builds.
func WithDebug() Option {
	return func(c *Context) { c.debug = true }
}

func newContext(f gl.Functions, handle uintptr, opts []Option) *Context {
	c := &Context{
		f:         f,
		handle:    handle,
		reg:       defaultRegistry,
		clearMask: gl.COLOR_BUFFER_BIT,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewMonoContext wraps handle as a single-owner context and makes it
// current. Single-owner currency is tracked in one process-wide slot
// with no synchronization: every context sharing a registry must be
// created and used from the same thread. Programs that render from more
// than one thread use NewMultiContext instead.
func NewMonoContext(f gl.Functions, handle uintptr, opts ...Option) *Context {
	c := newContext(f, handle, opts)
	state := &monoState{reg: c.reg, ctx: c}
	state.install()
	c.state = state
	Logger().Info("ogl: context created", "kind", "single-owner", "handle", c.handle)
	return c
}

// NewMultiContext wraps handle as a thread-bound context and makes it
// current on the calling thread. The calling goroutine is locked to its
// OS thread for the lifetime of the context; Release unlocks it again.
// The context can only be made current from this thread, and is tracked
// independently of contexts bound to other threads.
func NewMultiContext(f gl.Functions, handle uintptr, opts ...Option) *Context {
	runtime.LockOSThread()
	c := newContext(f, handle, opts)
	state := &threadState{reg: c.reg, ctx: c, tid: threadID()}
	state.install()
	c.state = state
	Logger().Info("ogl: context created", "kind", "thread-bound", "handle", c.handle, "thread", state.tid)
	return c
}

// MakeCurrent records the context as the current one for its scope,
// superseding any previously current context. The superseded context's
// detach callback fires before the switch takes effect. Thread-bound
// contexts fail with ErrWrongThread when called from a thread other
// than their creating thread, leaving the registry untouched.
func (c *Context) MakeCurrent() error {
	if c.state == nil {
		return ErrReleased
	}
	if err := c.state.makeCurrent(); err != nil {
		return err
	}
	Logger().Debug("ogl: context made current", "handle", c.handle)
	return nil
}

// IsCurrent reports whether the context is current on the calling
// thread. For thread-bound contexts queried from a foreign thread the
// answer is false, without an error and without locking.
func (c *Context) IsCurrent() bool {
	if c.state == nil {
		return false
	}
	return c.state.isCurrent()
}

// Release tears down the currency state. If the context is current, its
// registry slot is emptied; no other context becomes current until one
// is explicitly made current. Release is idempotent, and the context
// must not be used afterwards.
func (c *Context) Release() {
	if c.state == nil {
		return
	}
	c.state.release()
	c.state = nil
	Logger().Info("ogl: context released", "handle", c.handle)
}

// SetDetachCallback registers fn to run when another context supersedes
// this one. The callback runs on the superseding thread while this
// context is still current; the default does nothing. Not safe to call
// concurrently with MakeCurrent on the same registry.
func (c *Context) SetDetachCallback(fn func()) {
	c.onDetach = fn
}

func (c *Context) madeNotCurrent() {
	if c.onDetach != nil {
		c.onDetach()
	}
}

// Clear clears the buffers selected by the context's clear mask.
func (c *Context) Clear() error {
	return c.ClearBuffers(c.clearMask)
}

// ClearBuffers clears the buffers selected by mask, which is a bitwise
// OR of COLOR_BUFFER_BIT, DEPTH_BUFFER_BIT and STENCIL_BUFFER_BIT.
func (c *Context) ClearBuffers(mask gl.Enum) error {
	if !c.IsCurrent() {
		return ErrInactiveContext
	}
	c.f.Clear(mask)
	return checkGLError(c.f, "glClear")
}

// SetClearMask changes the buffer mask used by Clear.
func (c *Context) SetClearMask(mask gl.Enum) {
	c.clearMask = mask
}

// ClearMask returns the buffer mask used by Clear.
func (c *Context) ClearMask() gl.Enum {
	return c.clearMask
}

// ClearColor sets the color the color buffer is cleared to.
func (c *Context) ClearColor(col Color) error {
	if !c.IsCurrent() {
		return ErrInactiveContext
	}
	c.f.ClearColor(col.R, col.G, col.B, col.A)
	return checkGLError(c.f, "glClearColor")
}

// NativeHandle returns the opaque native context handle the wrapper was
// created with.
func (c *Context) NativeHandle() uintptr {
	return c.handle
}

// Functions returns the driver interface the context issues calls
// through.
func (c *Context) Functions() gl.Functions {
	return c.f
}
