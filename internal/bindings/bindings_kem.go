//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include <oqs/oqs.h>
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// KEMCount returns the number of KEM algorithm identifiers compiled into the
// binding, including disabled ones.
func KEMCount() int {
	return int(C.OQS_KEM_alg_count())
}

// KEMName returns the canonical identifier of the i-th KEM algorithm, or ""
// when i is out of range.
func KEMName(i int) string {
	if i < 0 || i >= KEMCount() {
		return ""
	}
	return C.GoString(C.OQS_KEM_alg_identifier(C.size_t(i)))
}

// KEMEnabled reports whether the named KEM is enabled in the linked native
// build. Unknown names report false.
func KEMEnabled(name string) bool {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return C.OQS_KEM_alg_is_enabled(cName) == 1
}

// KEMContext owns one native OQS_KEM object together with the size metadata
// read from it at construction time. The size fields stay valid after Free so
// callers can keep reporting descriptor data without touching native memory.
type KEMContext struct {
	ptr             *C.OQS_KEM
	PublicKeyLen    int
	SecretKeyLen    int
	CiphertextLen   int
	SharedSecretLen int
}

// NewKEM constructs a native KEM context for the named algorithm.
func NewKEM(name string) (*KEMContext, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	p := C.OQS_KEM_new(cName)
	if p == nil {
		return nil, ErrAlgorithmUnavailable
	}
	return &KEMContext{
		ptr:             p,
		PublicKeyLen:    int(p.length_public_key),
		SecretKeyLen:    int(p.length_secret_key),
		CiphertextLen:   int(p.length_ciphertext),
		SharedSecretLen: int(p.length_shared_secret),
	}, nil
}

// Free releases the native context. Only the first call frees; the pointer is
// nulled so later calls are no-ops.
func (c *KEMContext) Free() {
	if c == nil || c.ptr == nil {
		return
	}
	C.OQS_KEM_free(c.ptr)
	c.ptr = nil
}

// Keypair generates a fresh key pair into exactly-sized buffers.
func (c *KEMContext) Keypair() (pk, sk []byte, err error) {
	if c.ptr == nil {
		return nil, nil, ErrContextReleased
	}
	pk = make([]byte, c.PublicKeyLen)
	sk = make([]byte, c.SecretKeyLen)
	rc := C.OQS_KEM_keypair(c.ptr, bufPtr(pk), bufPtr(sk))
	runtime.KeepAlive(c)
	if rc != C.OQS_SUCCESS {
		cleanse(sk)
		return nil, nil, ErrNativeFailure
	}
	return pk, sk, nil
}

// Encaps encapsulates against pk. The caller must have validated len(pk)
// against PublicKeyLen; no length is re-derived from native state here.
func (c *KEMContext) Encaps(pk []byte) (ct, ss []byte, err error) {
	if c.ptr == nil {
		return nil, nil, ErrContextReleased
	}
	ct = make([]byte, c.CiphertextLen)
	ss = make([]byte, c.SharedSecretLen)
	rc := C.OQS_KEM_encaps(c.ptr, bufPtr(ct), bufPtr(ss), bufPtr(pk))
	runtime.KeepAlive(c)
	runtime.KeepAlive(pk)
	if rc != C.OQS_SUCCESS {
		cleanse(ss)
		return nil, nil, ErrNativeFailure
	}
	return ct, ss, nil
}

// Decaps recovers the shared secret from ct using sk. Lengths must have been
// validated by the caller.
func (c *KEMContext) Decaps(ct, sk []byte) ([]byte, error) {
	if c.ptr == nil {
		return nil, ErrContextReleased
	}
	ss := make([]byte, c.SharedSecretLen)
	rc := C.OQS_KEM_decaps(c.ptr, bufPtr(ss), bufPtr(ct), bufPtr(sk))
	runtime.KeepAlive(c)
	runtime.KeepAlive(ct)
	runtime.KeepAlive(sk)
	if rc != C.OQS_SUCCESS {
		cleanse(ss)
		return nil, ErrNativeFailure
	}
	return ss, nil
}
