//go:build cgo && !windows

package oqs_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bardiakzm/oqs/pkg/oqs"
)

func TestKEMRoundTrip(t *testing.T) {
	name := testKEMName(t)
	kem, err := oqs.NewKEM(name)
	if err != nil {
		t.Fatalf("NewKEM(%q): %v", name, err)
	}
	defer kem.Close()

	alg := kem.Algorithm()

	kp, err := kem.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if len(kp.PublicKey) != alg.PublicKeyLen {
		t.Fatalf("public key length = %d, want %d", len(kp.PublicKey), alg.PublicKeyLen)
	}
	if len(kp.SecretKey) != alg.SecretKeyLen {
		t.Fatalf("secret key length = %d, want %d", len(kp.SecretKey), alg.SecretKeyLen)
	}

	res, err := kem.Encapsulate(kp.PublicKey)
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}
	if len(res.Ciphertext) != alg.CiphertextLen {
		t.Fatalf("ciphertext length = %d, want %d", len(res.Ciphertext), alg.CiphertextLen)
	}
	if len(res.SharedSecret) != alg.SharedSecretLen {
		t.Fatalf("shared secret length = %d, want %d", len(res.SharedSecret), alg.SharedSecretLen)
	}

	ss, err := kem.Decapsulate(res.Ciphertext, kp.SecretKey)
	if err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}
	if !bytes.Equal(ss, res.SharedSecret) {
		t.Fatal("decapsulated secret differs from encapsulated secret")
	}
}

func TestKEMTamperedCiphertext(t *testing.T) {
	name := testKEMName(t)
	kem, err := oqs.NewKEM(name)
	if err != nil {
		t.Fatalf("NewKEM(%q): %v", name, err)
	}
	defer kem.Close()

	kp, err := kem.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	res, err := kem.Encapsulate(kp.PublicKey)
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}

	// Flip one bit at the start, middle, and end of the ciphertext. With
	// implicit rejection the native algorithm must not error; it returns a
	// secret that, with overwhelming probability, differs from the honest one.
	offsets := []int{0, len(res.Ciphertext) / 2, len(res.Ciphertext) - 1}
	for _, off := range offsets {
		tampered := append([]byte(nil), res.Ciphertext...)
		tampered[off] ^= 0x01

		ss, err := kem.Decapsulate(tampered, kp.SecretKey)
		if err != nil {
			t.Fatalf("Decapsulate(tampered@%d): unexpected error %v", off, err)
		}
		if bytes.Equal(ss, res.SharedSecret) {
			t.Fatalf("Decapsulate(tampered@%d) reproduced the honest secret", off)
		}
	}
}

func TestKEMInputValidation(t *testing.T) {
	name := testKEMName(t)
	kem, err := oqs.NewKEM(name)
	if err != nil {
		t.Fatalf("NewKEM(%q): %v", name, err)
	}
	defer kem.Close()

	alg := kem.Algorithm()
	kp, err := kem.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	res, err := kem.Encapsulate(kp.PublicKey)
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}

	t.Run("short public key", func(t *testing.T) {
		_, err := kem.Encapsulate(kp.PublicKey[:alg.PublicKeyLen-1])
		if !errors.Is(err, oqs.ErrInvalidKeyLength) {
			t.Fatalf("want ErrInvalidKeyLength, got %v", err)
		}
	})

	t.Run("oversized ciphertext", func(t *testing.T) {
		long := append(append([]byte(nil), res.Ciphertext...), 0)
		_, err := kem.Decapsulate(long, kp.SecretKey)
		if !errors.Is(err, oqs.ErrInvalidInputLength) {
			t.Fatalf("want ErrInvalidInputLength, got %v", err)
		}
	})

	t.Run("short secret key", func(t *testing.T) {
		_, err := kem.Decapsulate(res.Ciphertext, kp.SecretKey[:alg.SecretKeyLen-1])
		if !errors.Is(err, oqs.ErrInvalidKeyLength) {
			t.Fatalf("want ErrInvalidKeyLength, got %v", err)
		}
	})

	t.Run("empty inputs", func(t *testing.T) {
		if _, err := kem.Encapsulate(nil); !errors.Is(err, oqs.ErrInvalidKeyLength) {
			t.Fatalf("Encapsulate(nil): want ErrInvalidKeyLength, got %v", err)
		}
		if _, err := kem.Decapsulate(nil, kp.SecretKey); !errors.Is(err, oqs.ErrInvalidInputLength) {
			t.Fatalf("Decapsulate(nil ct): want ErrInvalidInputLength, got %v", err)
		}
	})
}

func TestKEMCloseSemantics(t *testing.T) {
	name := testKEMName(t)
	kem, err := oqs.NewKEM(name)
	if err != nil {
		t.Fatalf("NewKEM(%q): %v", name, err)
	}

	kp, err := kem.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	if err := kem.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := kem.Close(); err != nil {
		t.Fatalf("second Close must be a no-op, got %v", err)
	}

	if _, err := kem.GenerateKeyPair(); !errors.Is(err, oqs.ErrInvalidHandle) {
		t.Fatalf("GenerateKeyPair after Close: want ErrInvalidHandle, got %v", err)
	}
	if _, err := kem.Encapsulate(kp.PublicKey); !errors.Is(err, oqs.ErrInvalidHandle) {
		t.Fatalf("Encapsulate after Close: want ErrInvalidHandle, got %v", err)
	}
	if _, err := kem.Decapsulate(make([]byte, kem.Algorithm().CiphertextLen), kp.SecretKey); !errors.Is(err, oqs.ErrInvalidHandle) {
		t.Fatalf("Decapsulate after Close: want ErrInvalidHandle, got %v", err)
	}

	// Descriptor data survives Close.
	if kem.Algorithm().Name != name {
		t.Fatalf("Algorithm() after Close = %q, want %q", kem.Algorithm().Name, name)
	}
}

func TestNewKEMRejections(t *testing.T) {
	if _, err := oqs.NewKEM("definitely-not-an-algorithm"); !errors.Is(err, oqs.ErrUnknownAlgorithm) {
		t.Fatalf("unknown name: want ErrUnknownAlgorithm, got %v", err)
	}

	// A signature identifier is not a KEM identifier.
	sigName := testSigName(t)
	if _, err := oqs.NewKEM(sigName); !errors.Is(err, oqs.ErrUnknownAlgorithm) {
		t.Fatalf("NewKEM(%q): want ErrUnknownAlgorithm, got %v", sigName, err)
	}
}

func TestKEMIndependentHandles(t *testing.T) {
	name := testKEMName(t)

	a, err := oqs.NewKEM(name)
	if err != nil {
		t.Fatalf("NewKEM: %v", err)
	}
	defer a.Close()
	b, err := oqs.NewKEM(name)
	if err != nil {
		t.Fatalf("NewKEM: %v", err)
	}

	// Closing one handle must not affect the other.
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	kp, err := a.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair on surviving handle: %v", err)
	}
	if _, err := a.Encapsulate(kp.PublicKey); err != nil {
		t.Fatalf("Encapsulate on surviving handle: %v", err)
	}
}
