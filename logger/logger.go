// Package logger writes prefixed, levelled log lines.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
)

const (
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
)

var ErrNoWriter = errors.New("logger needs a writer")

// Logger prefixes every line with "[PREFIX] [LEVEL]". The prefix is wrapped
// in color when one is given.
type Logger struct {
	prefix string
	out    *log.Logger
}

func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNoWriter
	}
	tag := fmt.Sprintf("[%s]", prefix)
	if color != "" {
		tag = color + tag + ColorReset
	}
	return &Logger{
		prefix: tag,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{out: log.New(io.Discard, "", 0)}
}

func (l *Logger) Info(msg string) {
	l.print("INFO", msg)
}

func (l *Logger) Warning(msg string) {
	l.print("WARNING", msg)
}

func (l *Logger) Error(msg string) {
	l.print("ERROR", msg)
}

func (l *Logger) print(level, msg string) {
	l.out.Printf("%s [%s] %s", l.prefix, level, msg)
}
