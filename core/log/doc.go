// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides structured, leveled logging for the
//              istring command line tool.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial package documentation

// Package log provides structured logging for the istr tool.
//
// The logger is synchronous and value-oriented: With* methods return
// copies so command handlers can derive loggers with extra context fields
// without affecting each other. Output is formatted as JSON or text
// through the Formatter interface.
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//	}).WithName("istr")
//	logger.Info("replace done", log.Int("count", n))
//
// The istring library itself performs no logging; every failure is
// surfaced as a structured error instead.
package log
