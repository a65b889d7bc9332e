//go:build !cgo || windows

package bindings

// Stub implementations for non-CGO builds or Windows.
// These allow the package to compile but return ErrNotBuilt when called.

// Init fails because no native library is linked in.
func Init() error { return ErrNotBuilt }

// Destroy is a no-op without native bindings.
func Destroy() {}

// Version returns "" without native bindings.
func Version() string { return "" }

func KEMCount() int          { return 0 }
func KEMName(int) string     { return "" }
func KEMEnabled(string) bool { return false }
func SigCount() int          { return 0 }
func SigName(int) string     { return "" }
func SigEnabled(string) bool { return false }

// KEMContext mirrors the cgo type so pkg/oqs compiles unchanged.
type KEMContext struct {
	PublicKeyLen    int
	SecretKeyLen    int
	CiphertextLen   int
	SharedSecretLen int
}

func NewKEM(string) (*KEMContext, error) { return nil, ErrNotBuilt }

func (c *KEMContext) Free() {}

func (c *KEMContext) Keypair() (pk, sk []byte, err error) { return nil, nil, ErrNotBuilt }

func (c *KEMContext) Encaps([]byte) (ct, ss []byte, err error) { return nil, nil, ErrNotBuilt }

func (c *KEMContext) Decaps(ct, sk []byte) ([]byte, error) { return nil, ErrNotBuilt }

// SigContext mirrors the cgo type so pkg/oqs compiles unchanged.
type SigContext struct {
	PublicKeyLen    int
	SecretKeyLen    int
	MaxSignatureLen int
}

func NewSig(string) (*SigContext, error) { return nil, ErrNotBuilt }

func (c *SigContext) Free() {}

func (c *SigContext) Keypair() (pk, sk []byte, err error) { return nil, nil, ErrNotBuilt }

func (c *SigContext) Sign(msg, sk []byte) ([]byte, error) { return nil, ErrNotBuilt }

func (c *SigContext) Verify(msg, sig, pk []byte) (bool, error) { return false, ErrNotBuilt }
