// Package logging provides the leveled, optionally colored console logger
// with an optional plain-text file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/backmassage/namecorpus/internal/config"
	"github.com/backmassage/namecorpus/internal/term"
)

// Level tags, one color each.
var (
	levelInfo     = color.New(color.FgHiBlue, color.Bold)
	levelSuccess  = color.New(color.FgHiGreen, color.Bold)
	levelWarn     = color.New(color.FgHiYellow, color.Bold)
	levelError    = color.New(color.FgHiRed, color.Bold)
	levelFallback = color.New(color.FgYellow, color.Bold)
	levelDebug    = color.New(color.FgHiCyan, color.Bold)
)

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu     sync.Mutex
	color  bool
	out    io.Writer
	errOut io.Writer
	file   *os.File
}

// NewLogger resolves colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	enable := term.Configure(cfg.ColorMode)
	return newLogger(cfg, enable, os.Stdout, os.Stderr)
}

// NewLoggerTo is like NewLogger but writes console output to out and errOut
// and never colors it.
func NewLoggerTo(cfg *config.Config, out, errOut io.Writer) (*Logger, error) {
	return newLogger(cfg, false, out, errOut)
}

func newLogger(cfg *config.Config, enable bool, out, errOut io.Writer) (*Logger, error) {
	l := &Logger{color: enable, out: out, errOut: errOut}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, c *color.Color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	plain := ts + " [" + level + "] " + text + "\n"
	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	if l.color {
		_, _ = io.WriteString(out, ts+" "+c.Sprint("["+level+"]")+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, plain)
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", levelInfo, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", levelSuccess, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", levelWarn, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to the error stream.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", levelError, fmt.Sprintf(format, args...))
}

// Fallback logs a candidate that was written under a substitute name.
func (l *Logger) Fallback(format string, args ...interface{}) {
	l.line("FALLBACK", levelFallback, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", levelDebug, fmt.Sprintf(format, args...))
}
