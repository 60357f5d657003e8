package logger

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Global variables are required for the global logger singleton pattern
var (
	global   atomic.Value // stores *logger
	setOnce  sync.Once    // ensures SetGlobal is called once
	initOnce sync.Once    // ensures lazy initialization happens once
)

// SetGlobal sets the global logger instance. Host applications call this once
// during startup; until then the global logger is a no-op, which keeps the
// SDK silent by default.
func SetGlobal(cfg Config) {
	called := false
	setOnce.Do(func() {
		// Prevent lazy initialization from happening after this
		initOnce.Do(func() {})

		l, err := newLogger(cfg)
		if err != nil {
			panic("[logger]: failed to initialize global logger: " + err.Error())
		}
		global.Store(l)
		called = true
	})
	if !called {
		panic("[logger]: SetGlobal can only be called once")
	}
}

// Named returns the global logger with a sub-scope added to its name.
func Named(name string) Logger {
	return getGlobal().Named(name)
}

// With returns the global logger enriched with the given key-value pairs.
func With(keysAndValues ...any) Logger {
	return getGlobal().With(keysAndValues...)
}

// Sync flushes the global logger's buffered entries.
func Sync() error {
	return getGlobal().Sync()
}

func initDefault() {
	initOnce.Do(func() {
		global.Store(&logger{zap.NewNop().Sugar()})
	})
}

func getGlobal() Logger {
	if l, ok := global.Load().(*logger); ok {
		return l
	}
	initDefault()

	l, ok := global.Load().(*logger)
	if !ok {
		panic("[logger]: global contains invalid type after initialization")
	}
	return l
}
