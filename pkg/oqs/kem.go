package oqs

import (
	"context"
	"runtime"
	"sync"

	"github.com/bardiakzm/oqs/internal/bindings"
)

// KEM owns one native key-encapsulation context for exactly one algorithm.
// The zero value is not usable; construct with NewKEM and release with Close.
//
// A KEM may be shared across goroutines: an internal mutex serializes native
// calls and Close, so at most one operation runs on the context at a time.
// Independent KEM values never share native state and run fully in parallel.
type KEM struct {
	mu  sync.Mutex
	ctx *bindings.KEMContext
	alg Algorithm
}

// NewKEM acquires a native context for the named KEM algorithm. The name must
// be an exact canonical identifier; see KEMs for the available set.
func NewKEM(name string) (*KEM, error) {
	desc, err := Describe(name)
	if err != nil {
		return nil, err
	}
	if desc.Kind != KindKEM {
		return nil, opErr("NewKEM", name, ErrUnknownAlgorithm)
	}
	if !desc.Enabled {
		return nil, opErr("NewKEM", name, ErrAlgorithmDisabled)
	}

	ctx, err := bindings.NewKEM(name)
	if err != nil {
		return nil, opErr("NewKEM", name, ErrInitialization)
	}

	k := &KEM{ctx: ctx, alg: desc}
	// Backstop for leaked handles; explicit Close remains the contract.
	runtime.SetFinalizer(k, func(k *KEM) { _ = k.Close() })

	activeLogger().Debug(context.Background(), "kem context acquired", "algorithm", name)
	return k, nil
}

// Algorithm returns the descriptor this handle was constructed with.
func (k *KEM) Algorithm() Algorithm {
	return k.alg
}

// Close releases the native context. Only the first call frees native
// resources; later calls are no-ops returning nil. Any operation after Close
// fails with ErrInvalidHandle.
func (k *KEM) Close() error {
	if k == nil {
		return nil
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.ctx == nil {
		return nil
	}
	runtime.SetFinalizer(k, nil)
	k.ctx.Free()
	k.ctx = nil
	return nil
}

// GenerateKeyPair generates a fresh key pair. The returned buffers have
// exactly the descriptor-declared lengths and are owned by the caller.
func (k *KEM) GenerateKeyPair() (KeyPair, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.ctx == nil {
		return KeyPair{}, opErr("GenerateKeyPair", k.alg.Name, ErrInvalidHandle)
	}
	pk, sk, err := k.ctx.Keypair()
	if err != nil {
		return KeyPair{}, opErr("GenerateKeyPair", k.alg.Name, ErrOperationFailed)
	}
	return KeyPair{PublicKey: pk, SecretKey: sk}, nil
}

// Encapsulate derives a shared secret for publicKey and the ciphertext that
// transports it. The public key length is validated against the descriptor
// before any native code runs.
func (k *KEM) Encapsulate(publicKey []byte) (EncapsulationResult, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.ctx == nil {
		return EncapsulationResult{}, opErr("Encapsulate", k.alg.Name, ErrInvalidHandle)
	}
	if len(publicKey) != k.alg.PublicKeyLen {
		return EncapsulationResult{}, opErr("Encapsulate", k.alg.Name, ErrInvalidKeyLength)
	}
	ct, ss, err := k.ctx.Encaps(publicKey)
	if err != nil {
		return EncapsulationResult{}, opErr("Encapsulate", k.alg.Name, ErrOperationFailed)
	}
	return EncapsulationResult{Ciphertext: ct, SharedSecret: ss}, nil
}

// Decapsulate recovers the shared secret from ciphertext using secretKey.
// Malformed but correctly-sized ciphertexts do not fail: KEMs with implicit
// rejection return a pseudorandom secret instead, exactly as the native
// algorithm defines it. The binding does not normalize those per-algorithm
// semantics.
func (k *KEM) Decapsulate(ciphertext, secretKey []byte) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.ctx == nil {
		return nil, opErr("Decapsulate", k.alg.Name, ErrInvalidHandle)
	}
	if len(ciphertext) != k.alg.CiphertextLen {
		return nil, opErr("Decapsulate", k.alg.Name, ErrInvalidInputLength)
	}
	if len(secretKey) != k.alg.SecretKeyLen {
		return nil, opErr("Decapsulate", k.alg.Name, ErrInvalidKeyLength)
	}
	ss, err := k.ctx.Decaps(ciphertext, secretKey)
	if err != nil {
		return nil, opErr("Decapsulate", k.alg.Name, ErrOperationFailed)
	}
	return ss, nil
}
