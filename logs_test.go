package sdl3

import (
	"log/slog"
	"testing"
)

func TestSlogLevelMapping(t *testing.T) {
	tests := []struct {
		priority uintptr
		want     slog.Level
	}{
		{logPriorityTrace, slog.LevelDebug},
		{logPriorityVerbose, slog.LevelDebug},
		{logPriorityDebug, slog.LevelDebug},
		{logPriorityInfo, slog.LevelInfo},
		{logPriorityWarn, slog.LevelWarn},
		{logPriorityError, slog.LevelError},
		{logPriorityCritical, slog.LevelError},
		{99, slog.LevelError},
	}
	for _, tt := range tests {
		if got := slogLevel(tt.priority); got != tt.want {
			t.Errorf("slogLevel(%d) = %v, want %v", tt.priority, got, tt.want)
		}
	}
}
