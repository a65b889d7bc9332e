package oqs

import "github.com/bardiakzm/oqs/internal/bindings"

// Kind distinguishes the two algorithm families the binding exposes.
type Kind int

const (
	KindKEM Kind = iota + 1
	KindSignature
)

func (k Kind) String() string {
	switch k {
	case KindKEM:
		return "KEM"
	case KindSignature:
		return "signature"
	default:
		return "unknown"
	}
}

// Algorithm is the immutable descriptor for one algorithm, sourced from the
// native library's metadata tables at Init time. Length fields are zero for
// algorithms the native build was compiled without, since the library refuses
// to construct a context for them.
type Algorithm struct {
	Name            string
	Kind            Kind
	PublicKeyLen    int
	SecretKeyLen    int
	CiphertextLen   int // KEM only
	SharedSecretLen int // KEM only
	MaxSignatureLen int // signature only; actual signatures may be shorter
	Enabled         bool
}

// buildRegistry reads the native algorithm tables. Called once under lib.mu
// during Init. Construction of a native context is the enablement probe of
// record: an algorithm the library reports enabled but cannot instantiate is
// listed as disabled.
func buildRegistry() (map[string]Algorithm, []string, []string) {
	byName := make(map[string]Algorithm)

	kems := make([]string, 0, bindings.KEMCount())
	for i := 0; i < bindings.KEMCount(); i++ {
		name := bindings.KEMName(i)
		if name == "" {
			continue
		}
		alg := Algorithm{Name: name, Kind: KindKEM}
		if bindings.KEMEnabled(name) {
			if ctx, err := bindings.NewKEM(name); err == nil {
				alg.Enabled = true
				alg.PublicKeyLen = ctx.PublicKeyLen
				alg.SecretKeyLen = ctx.SecretKeyLen
				alg.CiphertextLen = ctx.CiphertextLen
				alg.SharedSecretLen = ctx.SharedSecretLen
				ctx.Free()
			}
		}
		byName[name] = alg
		kems = append(kems, name)
	}

	sigs := make([]string, 0, bindings.SigCount())
	for i := 0; i < bindings.SigCount(); i++ {
		name := bindings.SigName(i)
		if name == "" {
			continue
		}
		alg := Algorithm{Name: name, Kind: KindSignature}
		if bindings.SigEnabled(name) {
			if ctx, err := bindings.NewSig(name); err == nil {
				alg.Enabled = true
				alg.PublicKeyLen = ctx.PublicKeyLen
				alg.SecretKeyLen = ctx.SecretKeyLen
				alg.MaxSignatureLen = ctx.MaxSignatureLen
				ctx.Free()
			}
		}
		byName[name] = alg
		sigs = append(sigs, name)
	}

	return byName, kems, sigs
}

// KEMs returns the KEM algorithm names known to the binding, in the native
// library's enumeration order. The list includes disabled algorithms; use
// Describe to check Enabled.
func KEMs() ([]string, error) {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	if !lib.initialized {
		return nil, opErr("KEMs", "", ErrNotInitialized)
	}
	return append([]string(nil), lib.kemNames...), nil
}

// Signatures returns the signature algorithm names known to the binding, in
// the native library's enumeration order.
func Signatures() ([]string, error) {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	if !lib.initialized {
		return nil, opErr("Signatures", "", ErrNotInitialized)
	}
	return append([]string(nil), lib.sigNames...), nil
}

// IsSupported reports whether name is a canonical algorithm identifier known
// to this binding. Matching is case-sensitive and exact; there is no aliasing,
// so a caller can never silently select a different security level than
// requested. Returns false before Init.
func IsSupported(name string) bool {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	if !lib.initialized {
		return false
	}
	_, ok := lib.byName[name]
	return ok
}

// Describe returns the descriptor for the named algorithm. Unknown names fail
// with ErrUnknownAlgorithm; names the binding knows but the native build was
// compiled without are returned with Enabled set to false, not as an error,
// so callers can enumerate disabled algorithms.
func Describe(name string) (Algorithm, error) {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	if !lib.initialized {
		return Algorithm{}, opErr("Describe", name, ErrNotInitialized)
	}
	alg, ok := lib.byName[name]
	if !ok {
		return Algorithm{}, opErr("Describe", name, ErrUnknownAlgorithm)
	}
	return alg, nil
}
