// SPDX-License-Identifier: Unlicense OR MIT

package ogl

import (
	"fmt"
	"runtime"
)

// currency is the strategy a Context uses to track whether it is the
// current context of its scope: the whole process for single-owner
// contexts, one OS thread for thread-bound contexts.
type currency interface {
	makeCurrent() error
	isCurrent() bool
	release()
}

// monoState is the single-owner strategy. The registry's mono slot is
// read and written without synchronization; the one-thread precondition
// on NewMonoContext makes every access single-threaded.
type monoState struct {
	reg *Registry
	ctx *Context
}

func (s *monoState) makeCurrent() error {
	s.install()
	return nil
}

// install supersedes the slot holder. The previous context's detach
// callback runs before the slot is rewritten, so during the callback the
// previous context is still current.
func (s *monoState) install() {
	if prev := s.reg.monoCurrent(); prev != nil && prev != s.ctx {
		prev.madeNotCurrent()
	}
	s.reg.setMono(s.ctx)
}

func (s *monoState) isCurrent() bool {
	return s.reg.monoCurrent() == s.ctx
}

func (s *monoState) release() {
	s.reg.clearMono(s.ctx)
}

// threadState is the thread-bound strategy. Each instance is permanently
// bound to the OS thread that created it; the registry slot for that
// thread is written only from the thread itself.
type threadState struct {
	reg *Registry
	ctx *Context
	tid uint64
}

func (s *threadState) makeCurrent() error {
	if tid := threadID(); tid != s.tid {
		return fmt.Errorf("%w: bound to thread %d, called from thread %d", ErrWrongThread, s.tid, tid)
	}
	s.install()
	return nil
}

// install supersedes this thread's slot holder. Must be called on the
// bound thread. The registry lock is not held while the previous
// context's detach callback runs, so the callback may query currency;
// the slot still names the previous context at that point.
func (s *threadState) install() {
	prev := s.reg.threadCurrent(s.tid)
	if prev == s.ctx {
		return
	}
	if prev != nil {
		prev.madeNotCurrent()
	}
	s.reg.setThread(s.tid, s.ctx)
}

func (s *threadState) isCurrent() bool {
	// A thread-bound context can only ever be current on its own
	// thread; answering from elsewhere takes no lock.
	if threadID() != s.tid {
		return false
	}
	return s.reg.threadCurrent(s.tid) == s.ctx
}

func (s *threadState) release() {
	s.reg.clearThread(s.tid, s.ctx)
	if threadID() == s.tid {
		runtime.UnlockOSThread()
	} else {
		Logger().Warn("ogl: thread-bound context released off its thread, leaving the creating goroutine locked",
			"thread", s.tid)
	}
}
