// Package internalcheck provides internal validation and testing utilities.
//
// This package contains static-analysis policy tests run against the public
// oqs package: secret material must never be hex-formatted into logs or
// errors, and byte sequences must never be compared with == / != where a
// constant-time comparison belongs. It is not intended for external use and
// the API may change without notice.
package internalcheck
