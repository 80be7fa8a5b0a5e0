package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func InitLog() *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	Logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return &Logger
}

// Nop returns a logger that discards everything, for tests.
func Nop() *zerolog.Logger {
	Logger := zerolog.New(io.Discard)
	return &Logger
}
