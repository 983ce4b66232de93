// Package logging provides logging utilities for nextfit.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog. Setup merges the command-line and
// config-file options; either one can enable debug level or JSON output:
//
//	logging.Setup(os.Stderr, flags, cfg.Log.Options())
//	logging.Debug("allocate", "process", name, "size", size)
//	logging.Warn("unknown config key", "key", key)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Loaded %d blocks", n)
//	logging.UserSuccess("Allocated %d KB to %s", size, name)
//	logging.UserWarning("Skipping request %q", raw)
//
// Output destinations default to stdout (info, success) and stderr
// (warning) and can be redirected with SetUserOutput.
package logging
