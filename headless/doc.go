// SPDX-License-Identifier: Unlicense OR MIT

// Package headless creates windowless EGL pbuffer contexts for
// offscreen rendering, for GPU work in environments without a display
// server. Only supported on Linux; New fails loudly elsewhere.
package headless
