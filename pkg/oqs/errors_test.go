package oqs_test

import (
	"errors"
	"testing"

	"github.com/bardiakzm/oqs/pkg/oqs"
)

func TestErrorFormatting(t *testing.T) {
	err := &oqs.Error{Op: "Encapsulate", Algorithm: "ML-KEM-768", Err: oqs.ErrInvalidKeyLength}
	want := "oqs.Encapsulate: ML-KEM-768: oqs: key length does not match algorithm"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	err = &oqs.Error{Op: "Init", Err: oqs.ErrAlreadyInitialized}
	want = "oqs.Init: oqs: library already initialized"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := &oqs.Error{Op: "Sign", Algorithm: "ML-DSA-65", Err: oqs.ErrOperationFailed}
	if !errors.Is(err, oqs.ErrOperationFailed) {
		t.Fatal("errors.Is failed to reach the sentinel through Error")
	}

	var opErr *oqs.Error
	if !errors.As(error(err), &opErr) {
		t.Fatal("errors.As failed on *oqs.Error")
	}
	if opErr.Op != "Sign" || opErr.Algorithm != "ML-DSA-65" {
		t.Fatalf("unexpected fields: %+v", opErr)
	}
}
