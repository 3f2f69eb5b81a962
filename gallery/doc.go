// Package gallery keeps the session's rectified documents.
//
// The store is purely in-memory and keyed by document ID. Insertion order is
// preserved so the UI layer can show scans in the order they were made.
// Re-cropping or filtering a document replaces its raster in place and keeps
// its identity; documents leave the store only through an explicit Remove.
//
// Export writes every document as a PNG through an afero filesystem, which
// keeps tests on a memory-backed fs and the CLI on the real disk.
package gallery
