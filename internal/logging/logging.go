// Package logging holds the process-wide zap logger.
package logging

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger *zap.Logger
)

// Init builds the console logger. Debug output is enabled when verbose is
// set; otherwise Info and above are written. Errors carry the caller.
func Init(verbose bool) {
	Set(New(os.Stderr, verbose))
}

// New returns a console logger writing to w.
func New(w io.Writer, verbose bool) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeCaller = zapcore.ShortCallerEncoder

	encNoCaller := enc
	encNoCaller.CallerKey = ""
	encWithCaller := enc
	encWithCaller.CallerKey = "caller"

	minLevel := zapcore.InfoLevel
	if verbose {
		minLevel = zapcore.DebugLevel
	}

	ws := zapcore.Lock(zapcore.AddSync(w))
	plain := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encNoCaller), ws,
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool { return lvl >= minLevel && lvl < zapcore.ErrorLevel }),
	)
	withCaller := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encWithCaller), ws,
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool { return lvl >= zapcore.ErrorLevel }),
	)
	return zap.New(zapcore.NewTee(plain, withCaller), zap.AddCaller())
}

// Set replaces the process logger. Tests use it to install an observer.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// L returns the process logger, initializing a default one on first use.
func L() *zap.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = New(os.Stderr, false)
	}
	return logger
}

// Sync flushes buffered entries; errors are ignored.
func Sync() { _ = L().Sync() }
