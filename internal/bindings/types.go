package bindings

import "errors"

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. Callers can use this to fall back to safer defaults.
	ErrNotBuilt = errors.New("oqs/internal/bindings: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = errors.New("oqs/internal/bindings: cgo not enabled")

	// ErrAlgorithmUnavailable reports that the native library refused to
	// construct a context for the requested algorithm. liboqs returns NULL
	// both for unknown names and for algorithms compiled out of the build,
	// without distinguishing the two.
	ErrAlgorithmUnavailable = errors.New("oqs/internal/bindings: algorithm unavailable in native build")

	// ErrContextReleased reports use of a context after Free.
	ErrContextReleased = errors.New("oqs/internal/bindings: context already released")

	// ErrNativeFailure reports a non-success status from a native call. The
	// native layer exposes no richer error detail.
	ErrNativeFailure = errors.New("oqs/internal/bindings: native call failed")
)
