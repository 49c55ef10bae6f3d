// Package log provides structured protocol logging for the access-point
// control plane.
//
// This package defines the Logger interface and Event types for capturing
// per-client lifecycle events: state transitions, outbound MLME records,
// key-exchange progress, timeouts and protocol errors. It is separate from
// operational logging (slog) - protocol capture provides a machine-readable
// event trace for debugging a misbehaving station.
//
// # Basic Usage
//
// Hosts configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	logger, _ := log.NewFileLogger("/var/log/softap/clients.aplog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files use CBOR encoding with integer map keys, one event per record.
package log
