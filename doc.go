// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ogl is a thin wrapper around OpenGL that gives contexts and the
objects created against them explicit lifetimes and typed handles. Its
core is context currency: tracking, per OS thread, which rendering
context GPU calls are issued against, and failing calls that reach a
context that is not current.

Two currency regimes are supported. A single-owner context
(NewMonoContext) assumes the whole process renders from one thread and
tracks currency in one unsynchronized slot. A thread-bound context
(NewMultiContext) is permanently bound to its creating OS thread and
tracked in a per-thread table, so each rendering thread owns its own
current context independently.

The driver is reached through the gl.Functions interface. Package glimpl
implements it over the go-gl bindings for real contexts; tests use
scripted implementations. Creating the native context itself is the
windowing layer's job; see the glfwcontext and headless packages.
*/
package ogl
