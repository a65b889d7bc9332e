//go:build cgo && !windows

package oqs_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bardiakzm/oqs/pkg/oqs"
)

func TestMain(m *testing.M) {
	if err := oqs.Init(oqs.Config{}); err != nil {
		fmt.Fprintf(os.Stderr, "oqs.Init: %v\n", err)
		os.Exit(1)
	}
	code := m.Run()
	if err := oqs.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "oqs.Shutdown: %v\n", err)
		if code == 0 {
			code = 1
		}
	}
	os.Exit(code)
}

// testKEMName returns ML-KEM-768 when the native build enables it, otherwise
// the first enabled KEM. Skips the test when the build has none.
func testKEMName(t *testing.T) string {
	t.Helper()
	if alg, err := oqs.Describe("ML-KEM-768"); err == nil && alg.Enabled {
		return alg.Name
	}
	names, err := oqs.KEMs()
	if err != nil {
		t.Fatalf("KEMs: %v", err)
	}
	for _, name := range names {
		if alg, err := oqs.Describe(name); err == nil && alg.Enabled {
			return name
		}
	}
	t.Skip("no enabled KEM algorithms in native build")
	return ""
}

// testSigName returns ML-DSA-65 when the native build enables it, otherwise
// the first enabled signature scheme. Skips the test when the build has none.
func testSigName(t *testing.T) string {
	t.Helper()
	if alg, err := oqs.Describe("ML-DSA-65"); err == nil && alg.Enabled {
		return alg.Name
	}
	names, err := oqs.Signatures()
	if err != nil {
		t.Fatalf("Signatures: %v", err)
	}
	for _, name := range names {
		if alg, err := oqs.Describe(name); err == nil && alg.Enabled {
			return name
		}
	}
	t.Skip("no enabled signature algorithms in native build")
	return ""
}
