// Package logger is a thin facade over zerolog shared by all components.
package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Config for logger
type Config struct {
	Level   string
	Service string
	Pretty  bool
}

var (
	mu            sync.Mutex
	defaultLogger = zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().Timestamp().Logger()
)

// Init configures the default logger. Safe to call more than once; the last
// call wins, so startup can log before configuration is loaded.
func Init(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	out := zerolog.New(os.Stdout)
	if cfg.Pretty {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	service := cfg.Service
	if service == "" {
		service = "backend"
	}

	mu.Lock()
	defer mu.Unlock()
	defaultLogger = out.Level(level).With().
		Timestamp().
		Str("service", service).
		Logger()
}

// Default returns the default logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// Entry carries accumulated fields toward a single log line.
type Entry struct {
	l zerolog.Logger
}

// WithError attaches an error to the entry.
func WithError(err error) *Entry {
	return &Entry{l: Default().With().Err(err).Logger()}
}

// WithField attaches a single field to the entry.
func WithField(key string, value any) *Entry {
	return &Entry{l: Default().With().Interface(key, value).Logger()}
}

// WithFields attaches several fields to the entry.
func WithFields(fields map[string]any) *Entry {
	ctx := Default().With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Entry{l: ctx.Logger()}
}

func (e *Entry) WithError(err error) *Entry {
	return &Entry{l: e.l.With().Err(err).Logger()}
}

func (e *Entry) WithField(key string, value any) *Entry {
	return &Entry{l: e.l.With().Interface(key, value).Logger()}
}

func (e *Entry) Debug(msg string, args ...any) { e.l.Debug().Msgf(msg, args...) }
func (e *Entry) Info(msg string, args ...any)  { e.l.Info().Msgf(msg, args...) }
func (e *Entry) Warn(msg string, args ...any)  { e.l.Warn().Msgf(msg, args...) }
func (e *Entry) Error(msg string, args ...any) { e.l.Error().Msgf(msg, args...) }

// Package-level helpers mirroring the printf-style call sites.
func Debug(msg string, args ...any) { Default().Debug().Msgf(msg, args...) }
func Info(msg string, args ...any)  { Default().Info().Msgf(msg, args...) }
func Warn(msg string, args ...any)  { Default().Warn().Msgf(msg, args...) }
func Error(msg string, args ...any) { Default().Error().Msgf(msg, args...) }
func Fatal(msg string, args ...any) { Default().Fatal().Msgf(msg, args...) }
