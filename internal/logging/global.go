package logging

import "sync"

var (
	globalMu     sync.RWMutex
	globalLogger *Logger
	noopLogger   = NewNoop()
)

// Global returns the process-wide logger, or a no-op logger when none is
// installed.
func Global() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return noopLogger
	}
	return globalLogger
}

// SetGlobal installs l as the process-wide logger. Passing nil restores the
// no-op logger without closing the previous one.
func SetGlobal(l *Logger) {
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
}

// InitGlobal builds a logger from config and installs it. A nil config
// means DefaultConfig.
func InitGlobal(config *Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}

	globalMu.Lock()
	prev := globalLogger
	globalLogger = l
	globalMu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// CloseGlobal closes the installed logger and falls back to the no-op one.
func CloseGlobal() error {
	globalMu.Lock()
	l := globalLogger
	globalLogger = nil
	globalMu.Unlock()

	if l == nil {
		return nil
	}
	return l.Close()
}

func Debug(msg string, args ...any) { Global().Debug(msg, args...) }
func Info(msg string, args ...any)  { Global().Info(msg, args...) }
func Warn(msg string, args ...any)  { Global().Warn(msg, args...) }
func Error(msg string, args ...any) { Global().Error(msg, args...) }

// With returns the global logger with args attached.
func With(args ...any) *Logger {
	return Global().With(args...)
}
