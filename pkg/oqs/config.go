package oqs

import "github.com/bardiakzm/oqs/pkg/oqs/logging"

// Config expresses the construction-time knobs for the native library. The
// value is passed explicitly to Init instead of living in ambient process
// state.
type Config struct {
	// Logger receives lifecycle and operation events. Secret material is
	// never logged, only algorithm names and buffer lengths. Nil binds to
	// slog.Default via the logging package.
	Logger logging.Logger
}
