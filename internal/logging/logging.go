package logging

import (
	"io"
	"log/slog"
	"os"
)

// logger receives Debug and Warn. Until Setup runs it logs warnings to stderr.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelInfo,
}))

// Options selects the level and format of the debug log. The command line
// and the config file each produce one.
type Options struct {
	Verbose bool
	JSON    bool
}

// Merge returns options with every setting either side enables
func (o Options) Merge(other Options) Options {
	return Options{
		Verbose: o.Verbose || other.Verbose,
		JSON:    o.JSON || other.JSON,
	}
}

// Setup installs a logger writing to w (stderr when nil) configured by the
// merge of all opts. Verbose lowers the level to debug.
func Setup(w io.Writer, opts ...Options) {
	var merged Options
	for _, o := range opts {
		merged = merged.Merge(o)
	}

	level := slog.LevelInfo
	if merged.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if w == nil {
		w = os.Stderr
	}

	if merged.JSON {
		logger = slog.New(slog.NewJSONHandler(w, handlerOpts))
	} else {
		logger = slog.New(slog.NewTextHandler(w, handlerOpts))
	}
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}
