// SPDX-License-Identifier: Unlicense OR MIT

package ogl

import (
	"errors"
	"fmt"

	"github.com/crust/ogl/gl"
)

var (
	// ErrInactiveContext is returned when an operation requires the
	// context to be current on the calling thread and it is not.
	ErrInactiveContext = errors.New("ogl: context not current")

	// ErrWrongThread is returned when a thread-bound context is made
	// current from a thread other than the one it was created on.
	ErrWrongThread = errors.New("ogl: context bound to another thread")

	// ErrReleased is returned when a released context is made current.
	ErrReleased = errors.New("ogl: context released")
)

// checkGLError drains the driver error flag after a call and converts a
// raised flag into an error wrapping the gl.Error code. op is the name of
// the driver entry point just issued.
func checkGLError(f gl.Functions, op string) error {
	if code := f.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("ogl: %s failed: %w", op, gl.Error(code))
	}
	return nil
}

// debugCheck polls the driver error flag after a void forward on
// contexts created WithDebug.
func (c *Context) debugCheck(op string) {
	if !c.debug {
		return
	}
	if err := checkGLError(c.f, op); err != nil {
		Logger().Warn("ogl: driver error", "op", op, "err", err)
	}
}
