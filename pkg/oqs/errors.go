package oqs

import (
	"errors"
	"fmt"

	"github.com/bardiakzm/oqs/internal/bindings"
)

var (
	// ErrNotInitialized indicates the registry was queried before Init or
	// after Shutdown.
	ErrNotInitialized = errors.New("oqs: library not initialized")

	// ErrAlreadyInitialized indicates a second Init without an intervening
	// Shutdown.
	ErrAlreadyInitialized = errors.New("oqs: library already initialized")

	// ErrUnknownAlgorithm indicates a name not recognized by this binding.
	ErrUnknownAlgorithm = errors.New("oqs: unknown algorithm")

	// ErrAlgorithmDisabled indicates a name the binding recognizes but the
	// linked native build was compiled without.
	ErrAlgorithmDisabled = errors.New("oqs: algorithm disabled in native build")

	// ErrInitialization indicates the native context could not be constructed.
	ErrInitialization = errors.New("oqs: native context initialization failed")

	// ErrInvalidHandle indicates an operation on a released handle.
	ErrInvalidHandle = errors.New("oqs: handle has been released")

	// ErrInvalidKeyLength indicates a caller-supplied key whose length does
	// not match the algorithm descriptor. Checked before any native call.
	ErrInvalidKeyLength = errors.New("oqs: key length does not match algorithm")

	// ErrInvalidInputLength indicates a caller-supplied ciphertext or
	// signature whose length is inconsistent with the algorithm descriptor.
	// Checked before any native call.
	ErrInvalidInputLength = errors.New("oqs: input length does not match algorithm")

	// ErrOperationFailed indicates a non-success status from a native call.
	// The native layer intentionally reports no cause.
	ErrOperationFailed = errors.New("oqs: native operation failed")

	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary.
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrCGONotEnabled signals a build without cgo.
	ErrCGONotEnabled = bindings.ErrCGONotEnabled
)

// Error wraps a failure with the operation attempted and, when known, the
// algorithm involved.
type Error struct {
	Op        string // operation that failed, e.g. "Encapsulate"
	Algorithm string // canonical algorithm name, "" when not applicable
	Err       error  // underlying error
}

func (e *Error) Error() string {
	if e.Algorithm != "" {
		return fmt.Sprintf("oqs.%s: %s: %v", e.Op, e.Algorithm, e.Err)
	}
	return fmt.Sprintf("oqs.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// opErr creates a new Error.
func opErr(op, algorithm string, err error) error {
	return &Error{Op: op, Algorithm: algorithm, Err: err}
}
