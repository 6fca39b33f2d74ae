// Package log provides structured tracing of property protocol
// operations.
//
// Every operation routed through the access layer (read, write, probe,
// bind, extent query) can be captured as an Event. Applications plug in
// a Logger implementation to decide what happens to events:
//
//   - NoopLogger discards everything (the default).
//   - SlogAdapter forwards events to a log/slog logger for console output.
//   - FileLogger persists events to a CBOR trace file.
//   - MultiLogger fans out to several of the above.
//
// Reader iterates a trace file back into Events, optionally filtered by
// device, property, operation, outcome, or time range.
package log
