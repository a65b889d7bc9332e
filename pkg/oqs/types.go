package oqs

// KeyPair holds a freshly generated key pair. Both slices have exactly the
// lengths declared by the algorithm descriptor. Ownership of the secret key
// transfers fully to the caller; the binding retains no copy. Callers should
// ZeroizeBytes the secret key once it is no longer needed.
type KeyPair struct {
	PublicKey []byte
	SecretKey []byte
}

// EncapsulationResult holds the output of a KEM encapsulation. Both slices
// have exactly the lengths declared by the algorithm descriptor.
type EncapsulationResult struct {
	Ciphertext   []byte
	SharedSecret []byte
}
