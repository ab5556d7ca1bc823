package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the single-method logging dependency handed to services.
type Logger interface {
	Log(args ...interface{})
}

type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger passes every Log call through to l at info level.
func NewLogrusLogger(l *logrus.Logger) Logger {
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

// WithField returns a Logger whose lines carry an extra structured field.
func WithField(l *logrus.Logger, key string, value interface{}) Logger {
	return &logrusLogger{entry: l.WithField(key, value)}
}

func (l *logrusLogger) Log(args ...interface{}) {
	l.entry.Info(args...)
}

// New builds the process logger from the configured level and format
// ("text" or "json").
func New(level, format string) (*logrus.Logger, error) {
	return NewWithOutput(level, format, os.Stderr)
}

func NewWithOutput(level, format string, out io.Writer) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	l.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return l, nil
}
