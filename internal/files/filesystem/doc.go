// Package filesystem provides the file access used to read and write sidecars.
//
// FileSystemProvider hides the backing store so the exporter can be tested
// against memory or a read-only view while production writes go to the OS.
//
// Implementations (all backed by afero):
//   - NewOSFileSystem: Production implementation using the OS filesystem
//   - NewMemoryFileSystem: In-memory implementation for testing
//   - NewReadOnlyFileSystem: Rejects every write, for failure-path testing
package filesystem
