// Package logging configures zerolog for the whole process.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures zerolog with sane defaults.
// Uses console writer for human-readable logs by default.
func Setup() {
	zerolog.TimeFieldFormat = time.RFC3339

	cw := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stdout
		w.TimeFormat = time.RFC3339
	})

	log.Logger = zerolog.New(cw).With().Timestamp().Logger()
}
