// Command oqs-info initializes the native library and prints the algorithm
// tables it was compiled with. Useful as a smoke test for a liboqs install.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/bardiakzm/oqs/pkg/oqs"
)

func main() {
	if err := oqs.Init(oqs.Config{}); err != nil {
		if errors.Is(err, oqs.ErrNotBuilt) || errors.Is(err, oqs.ErrCGONotEnabled) {
			fmt.Printf("native library unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected failure initializing library: %v", err)
	}
	defer func() {
		if err := oqs.Shutdown(); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	fmt.Printf("liboqs %s\n", oqs.NativeVersion())

	kems, err := oqs.KEMs()
	if err != nil {
		log.Fatalf("list KEMs: %v", err)
	}
	fmt.Printf("\nKEM algorithms (%d):\n", len(kems))
	for _, name := range kems {
		alg, err := oqs.Describe(name)
		if err != nil {
			log.Fatalf("describe %s: %v", name, err)
		}
		if !alg.Enabled {
			fmt.Printf("  %-44s disabled\n", name)
			continue
		}
		fmt.Printf("  %-44s pk=%-5d sk=%-5d ct=%-5d ss=%d\n",
			name, alg.PublicKeyLen, alg.SecretKeyLen, alg.CiphertextLen, alg.SharedSecretLen)
	}

	sigs, err := oqs.Signatures()
	if err != nil {
		log.Fatalf("list signatures: %v", err)
	}
	fmt.Printf("\nSignature algorithms (%d):\n", len(sigs))
	for _, name := range sigs {
		alg, err := oqs.Describe(name)
		if err != nil {
			log.Fatalf("describe %s: %v", name, err)
		}
		if !alg.Enabled {
			fmt.Printf("  %-44s disabled\n", name)
			continue
		}
		fmt.Printf("  %-44s pk=%-5d sk=%-5d sig<=%d\n",
			name, alg.PublicKeyLen, alg.SecretKeyLen, alg.MaxSignatureLen)
	}
}
