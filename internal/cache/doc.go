// Package cache persists disambiguation results between CLI runs.
//
// Results are content-addressed: the key is the BLAKE3 digest of the
// canonical input envelope, so identical names with identical upstream tags
// hit the cache regardless of where they were scanned. Payloads are stored
// xz-compressed in a SQLite database under the configured cache directory.
// A file lock serializes store initialization between concurrent CLI
// invocations; SQLite's own locking covers the rest.
package cache
