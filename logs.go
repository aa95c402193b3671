package sdl3

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/gosdl/sdl3/internal/ffi"
)

// Native log priorities.
const (
	logPriorityTrace    = 1
	logPriorityVerbose  = 2
	logPriorityDebug    = 3
	logPriorityInfo     = 4
	logPriorityWarn     = 5
	logPriorityError    = 6
	logPriorityCritical = 7
)

func slogLevel(priority uintptr) slog.Level {
	switch priority {
	case logPriorityTrace, logPriorityVerbose, logPriorityDebug:
		return slog.LevelDebug
	case logPriorityInfo:
		return slog.LevelInfo
	case logPriorityWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// The native callback is created once per process; the callback slot
// count in the runtime is finite.
var (
	logCallbackOnce sync.Once
	logCallbackPtr  uintptr
)

func nativeLogCallback(_, category, priority, message uintptr) uintptr {
	Logger().Log(context.Background(), slogLevel(priority),
		ffi.GoString(message), "source", "sdl", "category", int(category))
	return 0
}

// RouteNativeLogs redirects the native library's own log output into
// the package logger (see SetLogger). Routing stays in effect for the
// rest of the native library's lifetime.
func (s *SDL) RouteNativeLogs() error {
	if err := s.alive(); err != nil {
		return err
	}
	logCallbackOnce.Do(func() {
		logCallbackPtr = purego.NewCallback(nativeLogCallback)
	})
	s.api.SetLogOutputFunction(logCallbackPtr, 0)
	return nil
}
