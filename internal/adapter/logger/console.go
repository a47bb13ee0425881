// Package logger provides leveled console logging for sfz commands.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

const (
	levelTrace int = iota
	levelDebug
	levelInfo
	levelWarn
	levelError
)

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines to a writer.
// Messages below the configured level are dropped. Levels are colored when
// the writer is a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a logger at logLevel (trace, debug, info, warn,
// error). Unknown levels fall back to info. A nil writer discards output.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		level:       logLevelToInt(normalizeLogLevel(logLevel)),
		colorOutput: isTerminal(writer),
	}
}

func isTerminal(w io.Writer) bool {
	if w == os.Stdout || w == os.Stderr {
		return !color.NoColor
	}
	return false
}

func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	default:
		return "info"
	}
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (cl *ConsoleLogger) Tracef(format string, args ...interface{}) {
	cl.logf(levelTrace, "TRACE", format, args...)
}

func (cl *ConsoleLogger) Debugf(format string, args ...interface{}) {
	cl.logf(levelDebug, "DEBUG", format, args...)
}

func (cl *ConsoleLogger) Infof(format string, args ...interface{}) {
	cl.logf(levelInfo, "INFO", format, args...)
}

func (cl *ConsoleLogger) Warnf(format string, args ...interface{}) {
	cl.logf(levelWarn, "WARN", format, args...)
}

func (cl *ConsoleLogger) Errorf(format string, args ...interface{}) {
	cl.logf(levelError, "ERROR", format, args...)
}

func (cl *ConsoleLogger) logf(level int, name, format string, args ...interface{}) {
	if cl.writer == nil || level < cl.level {
		return
	}
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := time.Now().Format("15:04:05")
	if cl.colorOutput {
		name = levelColor(name).Sprint(name)
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", ts, name, message)
}

func levelColor(name string) *color.Color {
	switch name {
	case "TRACE":
		return color.New(color.FgHiBlack)
	case "DEBUG":
		return color.New(color.FgCyan)
	case "WARN":
		return color.New(color.FgYellow)
	case "ERROR":
		return color.New(color.FgRed)
	default:
		return color.New(color.FgBlue)
	}
}

// NopLogger discards everything.
type NopLogger struct{}

func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (NopLogger) Debugf(string, ...interface{}) {}
func (NopLogger) Infof(string, ...interface{})  {}
func (NopLogger) Warnf(string, ...interface{})  {}
func (NopLogger) Errorf(string, ...interface{}) {}
