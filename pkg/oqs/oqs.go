package oqs

import (
	"context"
	"sync"

	"github.com/bardiakzm/oqs/internal/bindings"
	"github.com/bardiakzm/oqs/pkg/oqs/logging"
)

// lib holds the process-wide library state. The registry inside it is built
// once by Init and never mutated until Shutdown, so reads after
// initialization are safe from any goroutine.
var lib struct {
	mu          sync.Mutex
	initialized bool
	logger      logging.Logger
	byName      map[string]Algorithm
	kemNames    []string
	sigNames    []string
}

// Init opens the native library and builds the algorithm registry from its
// static metadata tables. It must be called exactly once before any other
// call into this package; a second Init without an intervening Shutdown
// fails with ErrAlreadyInitialized.
func Init(cfg Config) error {
	lib.mu.Lock()
	defer lib.mu.Unlock()

	if lib.initialized {
		return opErr("Init", "", ErrAlreadyInitialized)
	}
	if err := bindings.Init(); err != nil {
		return opErr("Init", "", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.New(nil)
	}

	lib.byName, lib.kemNames, lib.sigNames = buildRegistry()
	lib.logger = logger
	lib.initialized = true

	logger.Info(context.Background(), "native library initialized",
		"version", bindings.Version(),
		"kems", len(lib.kemNames),
		"signatures", len(lib.sigNames),
	)
	return nil
}

// Shutdown releases global native library state. After Shutdown the registry
// may no longer be queried and no new handles may be created; handles still
// open must be closed by their owners before Shutdown is called. A second
// Shutdown fails with ErrNotInitialized.
func Shutdown() error {
	lib.mu.Lock()
	defer lib.mu.Unlock()

	if !lib.initialized {
		return opErr("Shutdown", "", ErrNotInitialized)
	}
	bindings.Destroy()
	lib.initialized = false
	lib.byName = nil
	lib.kemNames = nil
	lib.sigNames = nil

	lib.logger.Info(context.Background(), "native library shut down")
	return nil
}

// NativeVersion returns the version string reported by the linked native
// library, or "" when the bindings are not built.
func NativeVersion() string {
	return bindings.Version()
}

// activeLogger returns the configured logger, falling back to the slog
// default before Init has run.
func activeLogger() logging.Logger {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	if lib.logger != nil {
		return lib.logger
	}
	return logging.New(nil)
}
