// Package sources implements the channel-list readers feeding the build
// pipeline. Each source parses one local file format into a sequence of
// [playlist.Record] values in file order.
//
// Sources report missing or unreadable files as ordinary errors; the build
// engine treats them as non-fatal, so a missing source simply contributes
// zero records.
package sources

import "github.com/time2shine/m3ugen/internal/playlist"

// Source loads channel records from one input file.
type Source interface {
	// Name identifies the source in diagnostics and progress output.
	Name() string

	// Rank returns the precedence weight stamped on every record this
	// source produces. Lower ranks win merge collisions.
	Rank() int

	// Load parses the source file into records in file order. A missing
	// file is returned as an error wrapping fs.ErrNotExist, never a panic.
	Load() ([]playlist.Record, error)
}
