// Package tasks orchestrates the playlist build pipeline with real-time progress reporting.
//
// # Core Operation
//
// The [BuildEngine] interface defines a single operation:
//
//  1. [BuildEngine.Run] : Full source-to-playlist build
//     - Loads the M3U playlist and JSON channel sources (a missing file
//       degrades to zero records with a logged diagnostic)
//     - Merges both sequences under source precedence with first-write-wins
//       deduplication on display name
//     - Arranges the survivors group-major (priority groups first, the rest
//       lexicographic) and name-minor (case-insensitive)
//     - Writes the combined M3U output file
//
// The helper stages [Merge] and [Arrange] are exported separately so the
// precedence and ordering rules can be exercised in isolation.
//
// # Progress Reporting
//
// # All operations use non-blocking channels for progress updates
//
// The [ProgressUpdate] struct contains the phase, a record count, and a
// display message. Updates use select with default to prevent blocking, so
// a missing or saturated consumer never affects pipeline correctness.
//
// # Implementation
//
// [Builder] implements [BuildEngine] with dependencies on:
//   - [sources.Source] : the two channel-list file readers
//   - [formatter.WriteFile] : M3U serialization of the final order
package tasks
