// Package logging provides structured logging configuration for the
// structmatch CLI.
//
// It wraps log/slog with configurable levels and output formats:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//
//	logger.Info("pattern compiled", "file", path, "keys", len(keys))
//
// The matching engine itself is a pure computation and takes no logger;
// components that optionally log should accept a *slog.Logger and fall
// back to logging.Nop().
package logging
