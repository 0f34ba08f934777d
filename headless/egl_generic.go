// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux

package headless

import (
	"fmt"
	"runtime"

	"github.com/crust/ogl"
)

// Surface is a pbuffer-backed EGL context with no window attached. It
// is only available on Linux.
type Surface struct{}

func errUnsupported() error {
	return fmt.Errorf("headless: EGL offscreen contexts are not supported on %s", runtime.GOOS)
}

// New fails; EGL offscreen contexts are only supported on Linux.
func New(width, height int) (*Surface, error) {
	return nil, errUnsupported()
}

func (s *Surface) MakeCurrent() error { return errUnsupported() }

func (s *Surface) ReleaseCurrent() {}

func (s *Surface) Context(opts ...ogl.Option) (*ogl.Context, error) {
	return nil, errUnsupported()
}

func (s *Surface) NativeContext() uintptr { return 0 }

func (s *Surface) Size() (width, height int) { return 0, 0 }

func (s *Surface) Release() {}
