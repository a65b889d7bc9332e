// Package logging provides a minimal logging facade for the oqs binding.
//
// The Logger interface wraps a subset of the standard library's log/slog
// functionality. It is intentionally small so applications can provide their
// own implementation for testing, redaction policies, or integration with
// existing logging systems.
//
// The binding never logs key material, ciphertexts, shared secrets, or
// signatures. Use Redacted to mark attributes whose value was intentionally
// withheld:
//
//	logger.Debug(ctx, "key pair generated",
//	    "algorithm", "ML-KEM-768",
//	    logging.Redacted("secret_key"),
//	)
package logging
