// SPDX-License-Identifier: Unlicense OR MIT

package ogl

import "sync"

// Registry tracks context currency. It holds one process-wide slot for
// single-owner contexts and a per-thread slot table for thread-bound
// contexts. The registry stores non-owning references only; contexts
// insert and erase themselves over their lifecycle.
//
// Most programs use the package default registry implicitly. Tests can
// isolate themselves with NewRegistry and the WithRegistry option.
type Registry struct {
	// mono is the single-owner slot. It is unsynchronized: single-owner
	// contexts require that a single thread creates and uses every
	// context sharing a registry. See NewMonoContext.
	mono *Context

	// mu guards byThread. It is held only for slot reads and writes,
	// never across a detach callback.
	mu       sync.Mutex
	byThread map[uint64]*Context
}

// NewRegistry returns an empty registry, independent of the package
// default.
func NewRegistry() *Registry {
	return &Registry{byThread: make(map[uint64]*Context)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry used by contexts created without
// an explicit WithRegistry option.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func (r *Registry) monoCurrent() *Context {
	return r.mono
}

func (r *Registry) setMono(c *Context) {
	r.mono = c
}

// clearMono empties the single-owner slot if it still refers to c.
func (r *Registry) clearMono(c *Context) {
	if r.mono == c {
		r.mono = nil
	}
}

func (r *Registry) threadCurrent(tid uint64) *Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byThread[tid]
}

func (r *Registry) setThread(tid uint64, c *Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byThread[tid] = c
}

// clearThread erases the slot for tid if it still refers to c.
func (r *Registry) clearThread(tid uint64, c *Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byThread[tid] == c {
		delete(r.byThread, tid)
	}
}
