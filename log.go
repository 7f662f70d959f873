package versionflag

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	logMu  sync.RWMutex
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "versionflag",
		Level:  log.WarnLevel,
	})
)

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	logMu.Lock()
	logger = l
	logMu.Unlock()
}

// Logger returns the package logger.
func Logger() *log.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}
