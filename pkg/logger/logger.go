// Package logger holds the process-wide zerolog logger.
//
// Call Init once from main. Packages that cannot take a logger as a
// dependency read it with Get.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rs/zerolog"
)

const defaultMaxAge = 7 * 24 * time.Hour

type Options struct {
	// Level is one of trace, debug, info, warn or error. Anything else is info.
	Level string
	// Pretty switches stdout to zerolog's console format. JSON otherwise.
	Pretty bool
	// Output replaces stdout, mainly for tests.
	Output io.Writer
	// File additionally writes JSON lines to a daily rotated file. Rotated
	// copies older than MaxAge (default a week) are removed.
	File   string
	MaxAge time.Duration
}

var (
	mu      sync.Mutex
	current *zerolog.Logger
)

// Init builds the logger from opts. Later calls return the first logger
// until Reset is called.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if current != nil {
		return *current
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	l := zerolog.New(writer(opts)).Level(lvl).With().Timestamp().Caller().Logger()
	current = &l
	return l
}

// Get returns the logger built by Init. It panics before Init.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		panic("logger: Get called before Init")
	}
	return *current
}

// Reset forgets the current logger. Tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = nil
}

func writer(opts Options) io.Writer {
	var out io.Writer = os.Stdout
	if opts.Output != nil {
		out = opts.Output
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	if opts.File == "" {
		return out
	}

	file, err := RotatingFile(opts.File, opts.MaxAge)
	if err != nil {
		l := zerolog.New(out)
		l.Warn().Err(err).Str("file", opts.File).Msg("log file disabled")
		return out
	}
	return zerolog.MultiLevelWriter(out, file)
}

// RotatingFile returns a writer that starts a new file at path.YYYYMMDD each
// day and keeps path linked to the live one.
func RotatingFile(path string, maxAge time.Duration) (io.Writer, error) {
	if maxAge <= 0 {
		maxAge = defaultMaxAge
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return rotatelogs.New(
		path+".%Y%m%d",
		rotatelogs.WithLinkName(path),
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" || lvl > zerolog.ErrorLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
