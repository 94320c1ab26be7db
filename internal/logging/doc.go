// Package logging provides structured, colorized logging for the CLI.
// It wraps log/slog with a tint handler, textual level parsing for the
// --log-level flag, and an io.Writer adapter that forwards subprocess
// output into the log stream.
package logging
