// Package log provides secure logging functionality with automatic sanitization
// of sensitive information, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic masking of candidate passwords and other secrets
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Security Features
//
// The SecureHandler sanitizes sensitive information in log output:
//   - Attributes whose key names a candidate (password, candidate, generated, raw)
//   - Secret values detected by pattern matching (tokens, keys)
//   - Values that look like a generated password (long, no spaces, all
//     four character classes)
//
// Even in verbose mode, sensitive values are masked so that a debug log
// shared in a bug report never leaks a password someone is about to use.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//
//	logger.Debug("committed candidate",
//	    "candidate", "hunter2",  // logged as ***REDACTED***
//	    "score", 12,
//	)
//
//	slog.SetDefault(logger)
package log
