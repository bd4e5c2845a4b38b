package engine

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerMu   sync.Mutex
	loggerOnce sync.Once
)

// Logger returns the engine's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		loggerMu.Lock()
		if logger == nil {
			logger = zap.NewNop()
		}
		loggerMu.Unlock()
	})
	loggerMu.Lock()
	defer loggerMu.Unlock()
	return logger
}

// SetLogger replaces the package logger used by hosts created without
// Config.Logger. A nil l restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}
