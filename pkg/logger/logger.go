// Package logger holds the process-wide zerolog logger. Call Init once during
// startup; Get returns the same instance everywhere after that.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger on first initialisation.
type Options struct {
	// Level is the minimum level to emit (trace, debug, info, warn, error).
	// Empty or unrecognised values fall back to info.
	Level string
	// Pretty switches to human-readable console output instead of JSON.
	Pretty bool
	// Output receives the log stream. Defaults to os.Stdout.
	Output io.Writer
}

var (
	base  zerolog.Logger
	once  sync.Once
	ready bool
)

// Init builds the singleton logger. Calls after the first are no-ops and
// return the already-built instance.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		var out io.Writer = os.Stdout
		if opts.Output != nil {
			out = opts.Output
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		lvl := levelFrom(opts.Level)
		zerolog.SetGlobalLevel(lvl)

		base = zerolog.New(out).Level(lvl).With().Timestamp().Caller().Logger()
		ready = true
	})
	return base
}

// Get returns the singleton logger and panics when Init has not run yet.
func Get() zerolog.Logger {
	if !ready {
		panic("logger: Get() called before Init()")
	}
	return base
}

// Reset discards the singleton so the next Init rebuilds it. Test helper.
func Reset() {
	once = sync.Once{}
	base = zerolog.Logger{}
	ready = false
}

var levels = map[string]zerolog.Level{
	"trace":   zerolog.TraceLevel,
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

func levelFrom(s string) zerolog.Level {
	if lvl, ok := levels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lvl
	}
	return zerolog.InfoLevel
}
