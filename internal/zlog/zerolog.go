// Package zlog adapts zerolog to the client's RequestLogger interface.
package zlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Adapter implements client.RequestLogger using zerolog.
type Adapter struct {
	logger zerolog.Logger
}

// New creates a console logger writing to stderr at the given level.
func New(level string) (*Adapter, error) {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a console logger writing to w at the given level.
func NewWithWriter(w io.Writer, level string) (*Adapter, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).Level(lvl).With().Timestamp().Logger()

	return &Adapter{logger: logger}, nil
}

// NewWithLogger wraps an existing zerolog.Logger.
func NewWithLogger(logger zerolog.Logger) *Adapter {
	return &Adapter{logger: logger}
}

// ParseLevel maps a level name to a zerolog level. An empty name means info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", level, err)
	}

	return lvl, nil
}

func (a *Adapter) Debugf(format string, v ...any) {
	a.logger.Debug().Msgf(format, v...)
}

func (a *Adapter) Infof(format string, v ...any) {
	a.logger.Info().Msgf(format, v...)
}

func (a *Adapter) Warnf(format string, v ...any) {
	a.logger.Warn().Msgf(format, v...)
}

func (a *Adapter) Errorf(format string, v ...any) {
	a.logger.Error().Msgf(format, v...)
}

// Logger returns the underlying zerolog.Logger.
func (a *Adapter) Logger() zerolog.Logger {
	return a.logger
}
