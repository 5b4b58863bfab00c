// Package logging provides concrete implementations of the fs2dt.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes leveled messages to stderr through zerolog
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
