// Package logging wraps log/slog for structured logging across the
// simulator.
//
// Records carry the service and version fields by default. Format
// (json/text), level, and output stream come from the logging section
// of config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// Usage:
//
//	log := logging.New(cfg.Logging, version)
//	log.Info("simulation run started", "run_id", id)
//
// Structured log records share the process stdout with the simulation's
// console lines, so runs that care about clean console output should
// log to stderr or at error level.
package logging
