// Package logging configures the global zerolog logger for the CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup routes the global logger through a console writer on w and applies
// the requested level. Unknown level names fall back to warn so a typo in
// config.yaml never silences errors.
func Setup(w io.Writer, level string) {
	if w == nil {
		w = os.Stderr
	}
	writer := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	log.Logger = log.Output(writer)

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
