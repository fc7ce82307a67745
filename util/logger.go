// Package util holds the SDK's leveled logging hooks.
package util

import (
	"fmt"
	"log"
	"strings"
	"sync"
)

var (
	globalLogger Logger = defaultLogger{}
	globalLock   sync.Mutex
)

// Logger receives the SDK's diagnostic output. Implementations must be safe
// for concurrent use.
type Logger interface {
	Printf(format string, a ...any)
	Infof(format string, a ...any)
	// Debugf is used for tracing, mostly around stream lifecycles.
	Debugf(format string, a ...any)
	Warnf(format string, a ...any)
	// Errorf logs and returns the formatted error.
	Errorf(format string, a ...any) error
}

// SetLogger replaces the logger used by the whole SDK.
func SetLogger(l Logger) {
	if l == nil {
		panic("Can't set the logger to nil")
	}
	globalLock.Lock()
	globalLogger = l
	globalLock.Unlock()
}

func Printf(format string, a ...any) { globalLogger.Printf(format, a...) }
func Infof(format string, a ...any)  { globalLogger.Infof(format, a...) }
func Debugf(format string, a ...any) { globalLogger.Debugf(format, a...) }
func Warnf(format string, a ...any)  { globalLogger.Warnf(format, a...) }

func Errorf(format string, a ...any) error {
	return globalLogger.Errorf(format, a...)
}

// defaultLogger writes to the standard library logger with a level prefix.
type defaultLogger struct{}

func logf(prefix, format string, a ...any) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	log.Printf(prefix+format, a...)
}

func (defaultLogger) Printf(format string, a ...any) { logf("", format, a...) }
func (defaultLogger) Infof(format string, a ...any)  { logf("INFO: ", format, a...) }
func (defaultLogger) Debugf(format string, a ...any) { logf("DEBUG: ", format, a...) }
func (defaultLogger) Warnf(format string, a ...any)  { logf("WARN: ", format, a...) }

func (defaultLogger) Errorf(format string, a ...any) error {
	logf("ERROR: ", format, a...)
	return fmt.Errorf(format, a...)
}

// DiscardLogger silences all SDK output.
type DiscardLogger struct{}

func (DiscardLogger) Printf(string, ...any) {}
func (DiscardLogger) Infof(string, ...any)  {}
func (DiscardLogger) Debugf(string, ...any) {}
func (DiscardLogger) Warnf(string, ...any)  {}

func (DiscardLogger) Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}
