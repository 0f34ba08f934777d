// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "fmt"

// Error is an OpenGL error flag as reported by GetError.
type Error Enum

var errNames = map[Enum]string{
	INVALID_ENUM:                  "INVALID_ENUM",
	INVALID_VALUE:                 "INVALID_VALUE",
	INVALID_OPERATION:             "INVALID_OPERATION",
	INVALID_FRAMEBUFFER_OPERATION: "INVALID_FRAMEBUFFER_OPERATION",
	OUT_OF_MEMORY:                 "OUT_OF_MEMORY",
	STACK_UNDERFLOW:               "STACK_UNDERFLOW",
	STACK_OVERFLOW:                "STACK_OVERFLOW",
}

func (e Error) Error() string {
	if name, ok := errNames[Enum(e)]; ok {
		return "gl: " + name
	}
	return fmt.Sprintf("gl: error 0x%x", uint(e))
}
