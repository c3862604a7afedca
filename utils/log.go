package utils

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var setTimeFormat sync.Once

// NewLogger returns a stderr logger; an unparsable level falls back to info.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	setTimeFormat.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	})
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
