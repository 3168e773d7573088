// Package logging configures the global zerolog logger.
//
// Game output owns stdout, so logs always go to stderr.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/config"
)

// Setup installs the level and writer described by cfg on the global logger.
func Setup(cfg config.Config) {
	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = New(cfg, os.Stderr)
}

// New builds a logger writing to w in the configured format.
func New(cfg config.Config, w io.Writer) zerolog.Logger {
	if cfg.LogFormat == config.FormatJSON {
		return zerolog.New(w).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
