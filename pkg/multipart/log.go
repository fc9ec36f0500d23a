package multipart

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-level structured logger. It defaults to a disabled
// (no-op) logger; call SetLogger to observe the encoder's skipped-part
// warning and cleanup failures during a failed decode. Preamble discard
// and temp-file creation/removal are not logged.
var Logger zerolog.Logger = zerolog.Nop()

// SetLogger installs l as the package logger.
func SetLogger(l zerolog.Logger) {
	Logger = l
}

// NewDefaultLogger returns a human-readable console logger writing to
// stderr at info level, convenient for callers who just want visibility
// without configuring zerolog themselves.
func NewDefaultLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}
