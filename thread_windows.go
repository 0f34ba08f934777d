// SPDX-License-Identifier: Unlicense OR MIT

package ogl

import "golang.org/x/sys/windows"

// threadID returns the system identity of the calling OS thread. The
// result is only stable while the calling goroutine is locked to its
// thread.
func threadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}
