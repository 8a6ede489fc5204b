// package tasks implements the playlist build pipeline.
//
// The core abstraction is BuildEngine, which orchestrates loading the two
// channel sources, merging them under source precedence, arranging the
// result, and writing the combined playlist.
// Operations emit progress updates via channels for non-blocking status reporting to CLI layers.
package tasks

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/time2shine/m3ugen/internal/formatter"
	"github.com/time2shine/m3ugen/internal/playlist"
	"github.com/time2shine/m3ugen/internal/shared"
	"github.com/time2shine/m3ugen/internal/sources"
)

// BuildResult contains all data from a full pipeline run, in the order the
// status output reports it.
type BuildResult struct {
	PlaylistCount     int           // Records parsed from the M3U source
	ChannelCount      int           // Online records parsed from the JSON source
	DuplicatesRemoved int           // Records discarded by the merge
	OutputCount       int           // Records written to the output file
	OutputPath        string        // Destination path
	Elapsed           time.Duration // Wall time for the whole run
}

// BuildEngine defines the playlist build pipeline.
type BuildEngine interface {
	// Run executes the full pipeline: load both sources, merge, arrange,
	// and write the combined playlist. Only an output-write failure is an
	// error; an unreadable source degrades to zero records.
	Run(progress chan<- ProgressUpdate) (*BuildResult, error)
}

// Builder implements BuildEngine over the two file sources.
type Builder struct {
	playlist sources.Source
	channels sources.Source
	priority []string
	output   string
	guideURL string
	logger   *log.Logger
}

// BuilderOpts contains configuration options for creating a Builder.
type BuilderOpts struct {
	Playlist sources.Source
	Channels sources.Source
	Priority []string
	Output   string
	GuideURL string
	Logger   *log.Logger
}

// NewBuilder creates a new Builder with the provided sources and output settings.
func NewBuilder(opts BuilderOpts) *Builder {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Builder{
		playlist: opts.Playlist,
		channels: opts.Channels,
		priority: opts.Priority,
		output:   opts.Output,
		guideURL: opts.GuideURL,
		logger:   opts.Logger,
	}
}

// Run executes the pipeline sequentially. Progress updates carry, in
// order: the playlist record count, the online channel record count, the
// duplicate count, and the final write summary.
func (b *Builder) Run(progress chan<- ProgressUpdate) (*BuildResult, error) {
	start := time.Now()

	playlistRecords := b.load(b.playlist)
	b.sendProgress(progress, loadedPlaylistUpdate(len(playlistRecords)))

	channelRecords := b.load(b.channels)
	b.sendProgress(progress, loadedChannelsUpdate(len(channelRecords)))

	combined := make([]playlist.Record, 0, len(channelRecords)+len(playlistRecords))
	combined = append(combined, channelRecords...)
	combined = append(combined, playlistRecords...)

	merged, duplicates := Merge(combined)
	b.sendProgress(progress, mergedUpdate(duplicates))

	ordered := Arrange(merged, b.priority)
	b.sendProgress(progress, arrangedUpdate(len(ordered), countGroups(ordered)))

	if err := formatter.WriteFile(b.output, b.guideURL, ordered); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	b.sendProgress(progress, wroteOutputUpdate(len(ordered), b.output, elapsed))

	return &BuildResult{
		PlaylistCount:     len(playlistRecords),
		ChannelCount:      len(channelRecords),
		DuplicatesRemoved: duplicates,
		OutputCount:       len(ordered),
		OutputPath:        b.output,
		Elapsed:           elapsed,
	}, nil
}

// load reads one source, degrading any failure to a warning plus zero
// records. A missing input file is an expected condition, not an error.
func (b *Builder) load(src sources.Source) []playlist.Record {
	records, err := src.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", shared.ErrMissingSource, src.Name())
		}
		b.logger.Warn("source unavailable, skipping", "source", src.Name(), "err", err)
		return nil
	}
	return records
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (b *Builder) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// Merge deduplicates records by exact display name under source
// precedence: records are stably ordered by ascending rank first, so a
// lower-rank record always wins a name collision regardless of input
// order, and equal-rank ties keep their original sequence. Losing records
// contribute nothing, even when they carry richer metadata.
func Merge(records []playlist.Record) ([]playlist.Record, int) {
	ranked := make([]playlist.Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rank < ranked[j].Rank
	})

	seen := make(map[string]struct{}, len(ranked))
	kept := make([]playlist.Record, 0, len(ranked))
	duplicates := 0

	for _, rec := range ranked {
		if _, ok := seen[rec.Name]; ok {
			duplicates++
			continue
		}
		seen[rec.Name] = struct{}{}
		kept = append(kept, rec)
	}

	return kept, duplicates
}

// Arrange imposes the total output order: groups named in the priority
// list come first, in list order, followed by every remaining group in
// lexicographic order; within a group, records sort by name
// case-insensitively with insertion order breaking ties.
func Arrange(records []playlist.Record, priority []string) []playlist.Record {
	buckets := make(map[string][]playlist.Record)
	for _, rec := range records {
		buckets[rec.Group] = append(buckets[rec.Group], rec)
	}

	for group := range buckets {
		bucket := buckets[group]
		sort.SliceStable(bucket, func(i, j int) bool {
			return strings.ToLower(bucket[i].Name) < strings.ToLower(bucket[j].Name)
		})
	}

	prioritized := make(map[string]bool, len(priority))
	for _, group := range priority {
		prioritized[group] = true
	}

	var rest []string
	for group := range buckets {
		if !prioritized[group] {
			rest = append(rest, group)
		}
	}
	sort.Strings(rest)

	ordered := make([]playlist.Record, 0, len(records))
	for _, group := range append(append([]string{}, priority...), rest...) {
		ordered = append(ordered, buckets[group]...)
	}

	return ordered
}

func countGroups(records []playlist.Record) int {
	groups := make(map[string]struct{})
	for _, rec := range records {
		groups[rec.Group] = struct{}{}
	}
	return len(groups)
}
