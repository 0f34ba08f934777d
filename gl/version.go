// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "fmt"

// ParseGLVersion parses the major and minor version numbers out of a
// VERSION string and reports whether the string identifies an OpenGL ES
// context rather than a desktop OpenGL context.
func ParseGLVersion(glVer string) ([2]int, bool, error) {
	var ver [2]int
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, true, nil
	} else if _, err := fmt.Sscanf(glVer, "WebGL %d.%d", &ver[0], &ver[1]); err == nil {
		// WebGL major version v corresponds to OpenGL ES version v + 1
		ver[0]++
		return ver, true, nil
	} else if _, err := fmt.Sscanf(glVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, false, nil
	}
	return ver, false, fmt.Errorf("failed to parse OpenGL version (%s)", glVer)
}
