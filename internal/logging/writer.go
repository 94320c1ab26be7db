package logging

import (
	"log/slog"
	"strings"
)

// Writer is an io.Writer that forwards subprocess output to slog. Each
// non-empty line is logged at debug level with the originating tool name,
// so `npm install` noise stays out of the default output but remains
// recoverable with --log-level debug.
type Writer struct {
	logger *slog.Logger
	tool   string
}

// NewWriter constructs a Writer bound to the provided logger and tool name.
func NewWriter(logger *slog.Logger, tool string) *Writer {
	return &Writer{logger: logger, tool: tool}
}

// Write logs each non-empty line of p at debug level.
func (w *Writer) Write(p []byte) (int, error) {
	if w.logger != nil {
		for _, line := range strings.Split(string(p), "\n") {
			line = strings.TrimRight(line, "\r")
			if line != "" {
				w.logger.Debug("tool output", "tool", w.tool, "line", line)
			}
		}
	}
	return len(p), nil
}
