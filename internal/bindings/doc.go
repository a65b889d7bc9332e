// Package bindings provides the cgo bindings to the native liboqs library.
// This package should ONLY be imported by the pkg/oqs package.
// All cgo complexity is isolated here.
//
// Every exported entry point exists twice: a cgo-backed implementation
// (cgo && !windows) and a stub (!cgo || windows) that compiles everywhere
// and fails with ErrNotBuilt. The public API in pkg/oqs therefore builds on
// any platform, matching the behavior downstream projects expect when the
// native library is not linked in.
package bindings
