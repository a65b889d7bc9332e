package oqs

import (
	"context"
	"runtime"
	"sync"

	"github.com/bardiakzm/oqs/internal/bindings"
)

// Signature owns one native signature context for exactly one algorithm.
// The zero value is not usable; construct with NewSignature and release with
// Close. Concurrency semantics match KEM: one native call at a time per
// handle, independent handles fully parallel.
type Signature struct {
	mu  sync.Mutex
	ctx *bindings.SigContext
	alg Algorithm
}

// NewSignature acquires a native context for the named signature algorithm.
func NewSignature(name string) (*Signature, error) {
	desc, err := Describe(name)
	if err != nil {
		return nil, err
	}
	if desc.Kind != KindSignature {
		return nil, opErr("NewSignature", name, ErrUnknownAlgorithm)
	}
	if !desc.Enabled {
		return nil, opErr("NewSignature", name, ErrAlgorithmDisabled)
	}

	ctx, err := bindings.NewSig(name)
	if err != nil {
		return nil, opErr("NewSignature", name, ErrInitialization)
	}

	s := &Signature{ctx: ctx, alg: desc}
	runtime.SetFinalizer(s, func(s *Signature) { _ = s.Close() })

	activeLogger().Debug(context.Background(), "signature context acquired", "algorithm", name)
	return s, nil
}

// Algorithm returns the descriptor this handle was constructed with.
func (s *Signature) Algorithm() Algorithm {
	return s.alg
}

// Close releases the native context. Only the first call frees native
// resources; later calls are no-ops returning nil. Any operation after Close
// fails with ErrInvalidHandle.
func (s *Signature) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		return nil
	}
	runtime.SetFinalizer(s, nil)
	s.ctx.Free()
	s.ctx = nil
	return nil
}

// GenerateKeyPair generates a fresh key pair with exactly the
// descriptor-declared lengths.
func (s *Signature) GenerateKeyPair() (KeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		return KeyPair{}, opErr("GenerateKeyPair", s.alg.Name, ErrInvalidHandle)
	}
	pk, sk, err := s.ctx.Keypair()
	if err != nil {
		return KeyPair{}, opErr("GenerateKeyPair", s.alg.Name, ErrOperationFailed)
	}
	return KeyPair{PublicKey: pk, SecretKey: sk}, nil
}

// Sign signs message with secretKey. The returned signature carries its
// actual length, which may be shorter than the descriptor's
// MaxSignatureLen. The empty message is valid.
func (s *Signature) Sign(message, secretKey []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		return nil, opErr("Sign", s.alg.Name, ErrInvalidHandle)
	}
	if len(secretKey) != s.alg.SecretKeyLen {
		return nil, opErr("Sign", s.alg.Name, ErrInvalidKeyLength)
	}
	sig, err := s.ctx.Sign(message, secretKey)
	if err != nil {
		return nil, opErr("Sign", s.alg.Name, ErrOperationFailed)
	}
	return sig, nil
}

// Verify checks signature over message against publicKey. An invalid
// signature is an ordinary false result, never an error; errors are reserved
// for misuse (released handle, mis-sized inputs). The native layer reports
// only pass or fail, so a structurally malformed signature of plausible
// length also verifies as false.
func (s *Signature) Verify(message, signature, publicKey []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		return false, opErr("Verify", s.alg.Name, ErrInvalidHandle)
	}
	if len(publicKey) != s.alg.PublicKeyLen {
		return false, opErr("Verify", s.alg.Name, ErrInvalidKeyLength)
	}
	if len(signature) > s.alg.MaxSignatureLen {
		return false, opErr("Verify", s.alg.Name, ErrInvalidInputLength)
	}
	ok, err := s.ctx.Verify(message, signature, publicKey)
	if err != nil {
		return false, opErr("Verify", s.alg.Name, ErrOperationFailed)
	}
	return ok, nil
}
