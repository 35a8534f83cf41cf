// Package logger provides a structured logging facility based on Zap.
//
// A logger writes to up to three destinations: an error-only file, a combined
// file receiving every record at or above the configured level and, in
// development, a coloured console. Files and console share the same text
// layout:
//
//	07/03/2026 - 8:05:09 info: message
//
// File destinations can be switched to newline-delimited JSON with
// Format "json".
//
// # Structured Messages
//
// Log accepts either a string or any other value as the message. Values are
// serialised as indented JSON on text destinations and kept as a nested
// object under the "message" key on JSON destinations.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it
// to the log entry, so every line of a request can be correlated.
//
// # Usage
//
//	log, closeLogs, err := logger.New(&cfg.Log, cfg.IsDevelopment())
//	defer closeLogs()
//	log.Info("Server started")
//	logger.Log(log, zapcore.InfoLevel, map[string]any{"a": 1})
package logger
