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

// SigCount returns the number of signature algorithm identifiers compiled
// into the binding, including disabled ones.
func SigCount() int {
	return int(C.OQS_SIG_alg_count())
}

// SigName returns the canonical identifier of the i-th signature algorithm,
// or "" when i is out of range.
func SigName(i int) string {
	if i < 0 || i >= SigCount() {
		return ""
	}
	return C.GoString(C.OQS_SIG_alg_identifier(C.size_t(i)))
}

// SigEnabled reports whether the named signature scheme is enabled in the
// linked native build. Unknown names report false.
func SigEnabled(name string) bool {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return C.OQS_SIG_alg_is_enabled(cName) == 1
}

// SigContext owns one native OQS_SIG object together with the size metadata
// read from it at construction time.
type SigContext struct {
	ptr             *C.OQS_SIG
	PublicKeyLen    int
	SecretKeyLen    int
	MaxSignatureLen int
}

// NewSig constructs a native signature context for the named algorithm.
func NewSig(name string) (*SigContext, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	p := C.OQS_SIG_new(cName)
	if p == nil {
		return nil, ErrAlgorithmUnavailable
	}
	return &SigContext{
		ptr:             p,
		PublicKeyLen:    int(p.length_public_key),
		SecretKeyLen:    int(p.length_secret_key),
		MaxSignatureLen: int(p.length_signature),
	}, nil
}

// Free releases the native context. Only the first call frees; the pointer is
// nulled so later calls are no-ops.
func (c *SigContext) Free() {
	if c == nil || c.ptr == nil {
		return
	}
	C.OQS_SIG_free(c.ptr)
	c.ptr = nil
}

// Keypair generates a fresh key pair into exactly-sized buffers.
func (c *SigContext) Keypair() (pk, sk []byte, err error) {
	if c.ptr == nil {
		return nil, nil, ErrContextReleased
	}
	pk = make([]byte, c.PublicKeyLen)
	sk = make([]byte, c.SecretKeyLen)
	rc := C.OQS_SIG_keypair(c.ptr, bufPtr(pk), bufPtr(sk))
	runtime.KeepAlive(c)
	if rc != C.OQS_SUCCESS {
		cleanse(sk)
		return nil, nil, ErrNativeFailure
	}
	return pk, sk, nil
}

// Sign signs msg with sk. The signature buffer is allocated at the algorithm
// maximum; only the prefix the native library reports as written is returned,
// copied into a fresh slice so no stale tail ever escapes.
func (c *SigContext) Sign(msg, sk []byte) ([]byte, error) {
	if c.ptr == nil {
		return nil, ErrContextReleased
	}
	sig := make([]byte, c.MaxSignatureLen)
	var sigLen C.size_t
	rc := C.OQS_SIG_sign(c.ptr, bufPtr(sig), &sigLen, bufPtr(msg), C.size_t(len(msg)), bufPtr(sk))
	runtime.KeepAlive(c)
	runtime.KeepAlive(msg)
	runtime.KeepAlive(sk)
	if rc != C.OQS_SUCCESS {
		return nil, ErrNativeFailure
	}
	if int(sigLen) > len(sig) {
		// Never trust a native-reported length beyond the buffer we allocated.
		return nil, ErrNativeFailure
	}
	out := make([]byte, int(sigLen))
	copy(out, sig[:sigLen])
	return out, nil
}

// Verify checks sig over msg against pk. The native layer reports only
// success or failure, so a malformed signature and an invalid one are both
// reported as false.
func (c *SigContext) Verify(msg, sig, pk []byte) (bool, error) {
	if c.ptr == nil {
		return false, ErrContextReleased
	}
	rc := C.OQS_SIG_verify(c.ptr, bufPtr(msg), C.size_t(len(msg)), bufPtr(sig), C.size_t(len(sig)), bufPtr(pk))
	runtime.KeepAlive(c)
	runtime.KeepAlive(msg)
	runtime.KeepAlive(sig)
	runtime.KeepAlive(pk)
	return rc == C.OQS_SUCCESS, nil
}
