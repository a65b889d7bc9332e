//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -I/usr/local/include
#cgo LDFLAGS: -L/usr/local/lib -L/usr/local/lib64 -loqs
#include <stdlib.h>
#include <oqs/oqs.h>
*/
import "C"

import "unsafe"

// zeroByte backs bufPtr for empty slices. liboqs entry points expect a valid
// pointer even when the accompanying length is zero.
var zeroByte byte

// bufPtr returns a C pointer to the first byte of b, or to a one-byte
// placeholder when b is empty.
func bufPtr(b []byte) *C.uint8_t {
	if len(b) == 0 {
		return (*C.uint8_t)(unsafe.Pointer(&zeroByte))
	}
	return (*C.uint8_t)(unsafe.Pointer(&b[0]))
}

// cleanse wipes b using the native library's own cleansing routine, which is
// guaranteed not to be elided by the optimizer.
func cleanse(b []byte) {
	if len(b) == 0 {
		return
	}
	C.OQS_MEM_cleanse(unsafe.Pointer(&b[0]), C.size_t(len(b)))
}

// Init performs the global native library initialization. It must be called
// once per process before any other binding call.
func Init() error {
	C.OQS_init()
	return nil
}

// Destroy tears down global native library state.
func Destroy() {
	C.OQS_destroy()
}

// Version returns the version string reported by the native library.
func Version() string {
	return C.GoString(C.OQS_version())
}
