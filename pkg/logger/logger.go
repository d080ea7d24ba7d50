package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init sets up the shared JSON logger. Callers that log before Init get the
// slog default instead of a nil pointer.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	Log = slog.New(handler)
	slog.SetDefault(Log)
}

func init() {
	Log = slog.Default()
}
