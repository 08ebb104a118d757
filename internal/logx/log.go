package logx

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// Log emits msg through logger at lvl with the caller at skip attached as
// source. A nil or disabled logger is a no-op.
func Log(msg string, logger *slog.Logger, lvl slog.Level, skip int, args ...any) {
	if logger == nil || !logger.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	_ = logger.With(args...).Handler().Handle(context.Background(), r)
}

func Debug(msg string, logger *slog.Logger, args ...any) {
	Log(msg, logger, slog.LevelDebug, 3, args...)
}

func Info(msg string, logger *slog.Logger, args ...any) {
	Log(msg, logger, slog.LevelInfo, 3, args...)
}

func Warn(msg string, logger *slog.Logger, args ...any) {
	Log(msg, logger, slog.LevelWarn, 3, args...)
}

func Error(msg string, logger *slog.Logger, args ...any) {
	Log(msg, logger, slog.LevelError, 3, args...)
}
