// Package oqs exposes the KEM and signature primitives of the native liboqs
// library through safe, algorithm-agnostic Go handles.
//
// The package wraps an unsafe C ABI: algorithm metadata is resolved once into
// an immutable registry, native contexts are owned by exactly one KEM or
// Signature value and released exactly once, and every buffer crossing the
// boundary is allocated at the descriptor-declared size before the native
// call runs. Input lengths are validated in Go before any native code is
// reached.
//
// Call Init before anything else and Shutdown when done. The registry is safe
// for concurrent reads after Init. Individual KEM and Signature handles
// serialize their own native calls; share them across goroutines freely, but
// expect operations on the same handle to run one at a time.
//
// The cryptographic algorithms themselves live entirely in the native
// library; this package never reimplements or post-processes them.
package oqs
