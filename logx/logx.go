// Package logx provides a standard logger implementation for the witsml-studio project.
package logx

import (
	"log"
	"os"
	"sync"
)

// Level identifies the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the canonical name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Logger defines the interface for logging.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	SetLevel(level Level)
}

// DefaultLogger provides a basic logger implementation using the standard log package.
type DefaultLogger struct {
	logger *log.Logger
	level  Level
	mu     sync.Mutex
}

// NewDefaultLogger creates a new logger writing to stderr with standard flags.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		logger: log.New(os.Stderr, "[WitsmlStudio] ", log.LstdFlags|log.Lmsgprefix),
		level:  LevelInfo,
	}
}

// NewLogger creates a new logger with the given prefix, writing to stderr.
func NewLogger(prefix string) Logger {
	return &DefaultLogger{
		logger: log.New(os.Stderr, prefix, log.LstdFlags|log.Lmsgprefix),
		level:  LevelInfo,
	}
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) { l.logf(LevelDebug, format, v...) }
func (l *DefaultLogger) Info(format string, v ...interface{})  { l.logf(LevelInfo, format, v...) }
func (l *DefaultLogger) Warn(format string, v ...interface{})  { l.logf(LevelWarn, format, v...) }
func (l *DefaultLogger) Error(format string, v ...interface{}) { l.logf(LevelError, format, v...) }

// SetLevel updates the minimum level the logger emits.
func (l *DefaultLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *DefaultLogger) logf(level Level, format string, v ...interface{}) {
	l.mu.Lock()
	min := l.level
	l.mu.Unlock()
	if level < min {
		return
	}
	switch level {
	case LevelDebug:
		l.logger.Printf("DEBUG: "+format, v...)
	case LevelInfo:
		l.logger.Printf("INFO: "+format, v...)
	case LevelWarn:
		l.logger.Printf("WARN: "+format, v...)
	case LevelError:
		l.logger.Printf("ERROR: "+format, v...)
	}
}

// Ensure interface compliance
var _ Logger = (*DefaultLogger)(nil)

// NilLogger discards all log output. Useful in tests.
type NilLogger struct{}

// NewNilLogger creates a logger that discards everything.
func NewNilLogger() *NilLogger { return &NilLogger{} }

func (n *NilLogger) Debug(format string, v ...interface{}) {}
func (n *NilLogger) Info(format string, v ...interface{})  {}
func (n *NilLogger) Warn(format string, v ...interface{})  {}
func (n *NilLogger) Error(format string, v ...interface{}) {}
func (n *NilLogger) SetLevel(level Level)                  {}

var _ Logger = (*NilLogger)(nil)

// StandardLoggerAdapter adapts a standard log.Logger to implement the Logger interface.
type StandardLoggerAdapter struct {
	logger *log.Logger
	level  Level
	mu     sync.Mutex
}

// NewStandardLoggerAdapter creates a Logger that wraps a standard Go log.Logger.
func NewStandardLoggerAdapter(logger *log.Logger) Logger {
	if logger == nil {
		logger = log.New(os.Stderr, "[WitsmlStudio] ", log.LstdFlags)
	}
	return &StandardLoggerAdapter{
		logger: logger,
		level:  LevelInfo,
	}
}

func (a *StandardLoggerAdapter) Debug(format string, v ...interface{}) {
	a.logger.Printf("DEBUG: "+format, v...)
}

func (a *StandardLoggerAdapter) Info(format string, v ...interface{}) {
	a.logger.Printf("INFO: "+format, v...)
}

func (a *StandardLoggerAdapter) Warn(format string, v ...interface{}) {
	a.logger.Printf("WARN: "+format, v...)
}

func (a *StandardLoggerAdapter) Error(format string, v ...interface{}) {
	a.logger.Printf("ERROR: "+format, v...)
}

// SetLevel sets the logging level.
func (a *StandardLoggerAdapter) SetLevel(level Level) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.level = level
}

var _ Logger = (*StandardLoggerAdapter)(nil)
