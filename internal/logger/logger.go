package logger

import (
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

var levels = map[string]pterm.LogLevel{
	"trace":    pterm.LogLevelTrace,
	"debug":    pterm.LogLevelDebug,
	"info":     pterm.LogLevelInfo,
	"warn":     pterm.LogLevelWarn,
	"warning":  pterm.LogLevelWarn,
	"error":    pterm.LogLevelError,
	"disabled": pterm.LogLevelDisabled,
}

// ParseLevel разбирает уровень логирования, неизвестный уровень даёт info
func ParseLevel(s string) pterm.LogLevel {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l
	}
	return pterm.LogLevelInfo
}

// New создаёт структурированный логгер, пишущий в stderr
func New(level string) *pterm.Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter создаёт логгер с произвольным writer
func NewWithWriter(level string, w io.Writer) *pterm.Logger {
	return pterm.DefaultLogger.
		WithLevel(ParseLevel(level)).
		WithTime(true).
		WithWriter(w)
}
