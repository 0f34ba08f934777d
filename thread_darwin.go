// SPDX-License-Identifier: Unlicense OR MIT

package ogl

/*
#include <pthread.h>
#include <stdint.h>
*/
import "C"

// threadID returns the system identity of the calling OS thread. The
// result is only stable while the calling goroutine is locked to its
// thread.
func threadID() uint64 {
	var tid C.uint64_t
	C.pthread_threadid_np(nil, &tid)
	return uint64(tid)
}
