// Package mathindex provides a CLI-based indexer for math in notebooks.
// It walks directory trees of notebook documents, extracts LaTeX math from
// markdown cells and rendered code-cell outputs, and reports every
// occurrence with a fragment identifier usable as a deep link into a
// notebook viewer.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gomarkdown/, billy/, slog/).
package mathindex
