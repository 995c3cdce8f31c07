// Package logging holds the process-wide zap logger.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
	mu         sync.RWMutex
)

// Logger returns the shared logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		mu.Lock()
		if logger == nil {
			logger = zap.NewNop()
		}
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()

	return logger
}

// SetLogger replaces the shared logger. A nil logger restores the no-op default.
// Components capture the logger when they are constructed, so call this first.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}

	mu.Lock()
	logger = l
	mu.Unlock()
}

// NewDebug builds a development logger writing to stderr at debug level.
func NewDebug() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
