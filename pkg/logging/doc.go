// Package logging provides structured logging utilities for the sysinfo binaries.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults:
// JSON output to stderr, module/version attributes on every record, a level
// taken from LOG_LEVEL, and source locations for debug logs.
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("sysinfod", version)
//	    slog.Info("server starting", "port", 8080)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("sysinfo", version, "warn")
//
// # Log Levels
//
// Supported log levels (case-insensitive): debug, info (default), warn/warning, error.
//
//	LOG_LEVEL=debug sysinfod
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "sysinfod",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
package logging
