// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"reflect"
	"unsafe"
)

// BytesView returns a byte slice view of a slice.
func BytesView(s interface{}) []byte {
	v := reflect.ValueOf(s)
	first := v.Index(0)
	sz := int(first.Type().Size())
	return unsafe.Slice((*byte)(unsafe.Pointer(first.UnsafeAddr())), sz*v.Len())
}
