package tasks

import (
	"fmt"
	"time"
)

// ProgressUpdate represents a progress event during a pipeline run.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Pipeline phase
	Count   int    // Records involved in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data
}

// Pipeline phase enumeration
type Phase int

const (
	LoadPlaylist Phase = iota
	LoadChannels
	MergeRecords
	ArrangeRecords
	WriteOutput
)

func (p Phase) String() string {
	switch p {
	case LoadPlaylist:
		return "load_playlist"
	case LoadChannels:
		return "load_channels"
	case MergeRecords:
		return "merge_records"
	case ArrangeRecords:
		return "arrange_records"
	case WriteOutput:
		return "write_output"
	default:
		return ""
	}
}

func loadedPlaylistUpdate(count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LoadPlaylist,
		Count:   count,
		Message: fmt.Sprintf("M3U channels: %d", count),
	}
}

func loadedChannelsUpdate(count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LoadChannels,
		Count:   count,
		Message: fmt.Sprintf("Static channels (online): %d", count),
	}
}

func mergedUpdate(duplicatesRemoved int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   MergeRecords,
		Count:   duplicatesRemoved,
		Message: fmt.Sprintf("Duplicates removed: %d", duplicatesRemoved),
	}
}

func arrangedUpdate(count, groups int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ArrangeRecords,
		Count:   count,
		Message: fmt.Sprintf("Arranged %d channels across %d groups", count, groups),
	}
}

func wroteOutputUpdate(count int, path string, elapsed time.Duration) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteOutput,
		Count:   count,
		Message: fmt.Sprintf("Saved %d channels to %s in %.2fs", count, path, elapsed.Seconds()),
		Data:    path,
	}
}
