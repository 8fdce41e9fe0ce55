// Package logger exposes the package-level zerolog.Logger shared by the
// constraint system builder. It never influences control flow; disabling it
// entirely (Logger().Level(zerolog.Disabled)) must not change behavior.
package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	log     zerolog.Logger
	once    sync.Once
	initLog = func() {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			With().Timestamp().Logger().
			Level(zerolog.InfoLevel)
	}
)

// Logger returns the shared logger instance.
func Logger() *zerolog.Logger {
	once.Do(initLog)
	return &log
}

// SetOutput replaces the writer the shared logger writes to; used by tests
// that want to assert on emitted events.
func SetOutput(w zerolog.ConsoleWriter) {
	once.Do(initLog)
	log = zerolog.New(w).With().Timestamp().Logger().Level(log.GetLevel())
}
