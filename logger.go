package graphview

import (
	"log/slog"

	"github.com/gogpu/graphview/internal/logging"
)

// SetLogger configures the logger for graphview and all its sub-packages.
// By default, graphview produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by graphview:
//   - [slog.LevelDebug]: degenerate geometry skipped, surface resizes, font fallbacks
//   - [slog.LevelWarn]: unrecognized color tokens or font descriptors
//
// Example:
//
//	graphview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by graphview.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
