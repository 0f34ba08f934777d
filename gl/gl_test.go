// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "testing"

func TestParseGLVersion(t *testing.T) {
	tests := []struct {
		version string
		ver     [2]int
		gles    bool
	}{
		{"OpenGL ES 3.1 Mesa 23.0.4", [2]int{3, 1}, true},
		{"OpenGL ES 2.0 (ANGLE 2.1.0)", [2]int{2, 0}, true},
		{"WebGL 2.0 (OpenGL ES 3.0 Chromium)", [2]int{3, 0}, true},
		{"4.6.0 NVIDIA 535.86.05", [2]int{4, 6}, false},
		{"4.1 Metal - 88", [2]int{4, 1}, false},
	}
	for _, tc := range tests {
		ver, gles, err := ParseGLVersion(tc.version)
		if err != nil {
			t.Errorf("ParseGLVersion(%q): %v", tc.version, err)
			continue
		}
		if ver != tc.ver || gles != tc.gles {
			t.Errorf("ParseGLVersion(%q) = %v, gles %v; expected %v, gles %v", tc.version, ver, gles, tc.ver, tc.gles)
		}
	}
	if _, _, err := ParseGLVersion("Vulkan 1.3"); err == nil {
		t.Error("expected an error for an unparseable version string")
	}
}

func TestErrorString(t *testing.T) {
	if got := Error(INVALID_OPERATION).Error(); got != "gl: INVALID_OPERATION" {
		t.Errorf("unexpected error string %q", got)
	}
	if got := Error(0x4242).Error(); got != "gl: error 0x4242" {
		t.Errorf("unexpected error string %q", got)
	}
}

func TestHandleValidity(t *testing.T) {
	if (Buffer{}).Valid() {
		t.Error("zero buffer handle reported valid")
	}
	if !(Buffer{V: 1}).Valid() {
		t.Error("allocated buffer handle reported invalid")
	}
	if (Uniform{V: -1}).Valid() {
		t.Error("missing uniform location reported valid")
	}
	if !(Uniform{}).Valid() {
		t.Error("uniform location 0 reported invalid")
	}
}
