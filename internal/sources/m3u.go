package sources

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"github.com/time2shine/m3ugen/internal/playlist"
)

// attrPattern matches one key="value" pair on an EXTINF metadata line.
var attrPattern = regexp.MustCompile(`([A-Za-z0-9][A-Za-z0-9_-]*)="([^"]*)"`)

// M3USource reads a line-oriented M3U playlist: an #EXTINF metadata line
// followed by a bare URL line per channel.
type M3USource struct {
	path string
}

var _ Source = (*M3USource)(nil)

// NewM3USource creates a playlist source for the given file path.
func NewM3USource(path string) *M3USource {
	return &M3USource{path: path}
}

func (s *M3USource) Name() string { return "playlist" }

func (s *M3USource) Rank() int { return playlist.RankPlaylist }

// Load scans the playlist line by line. An #EXTINF line opens a pending
// entry; the next non-empty, non-comment line completes it as the link. A
// pending entry displaced by a new #EXTINF line, or left dangling at end of
// file, is dropped. Malformed attributes and undecodable bytes never abort
// the scan.
func (s *M3USource) Load() ([]playlist.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []playlist.Record
	var pending *playlist.Record
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(strings.ToValidUTF8(scanner.Text(), ""))

		switch {
		case strings.HasPrefix(line, "#EXTINF"):
			pending = parseExtinf(line)
		case line == "" || strings.HasPrefix(line, "#"):
			// Headers, comments, and blank lines do not complete an entry.
		case pending != nil:
			pending.Link = line
			records = append(records, *pending)
			pending = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return records, err
	}

	return records, nil
}

// parseExtinf extracts the display name and attributes from a metadata
// line. The name is the trimmed text after the last comma; a line without
// one carries no usable name and is rejected.
func parseExtinf(line string) *playlist.Record {
	comma := strings.LastIndex(line, ",")
	if comma < 0 {
		return nil
	}

	name := strings.TrimSpace(line[comma+1:])
	if name == "" {
		return nil
	}

	rec := &playlist.Record{
		Name:  name,
		Group: playlist.DefaultGroup,
		Rank:  playlist.RankPlaylist,
	}

	for _, m := range attrPattern.FindAllStringSubmatch(line[:comma], -1) {
		key, value := m[1], m[2]
		switch key {
		case "tvg-id":
			rec.TvgID = value
		case "tvg-logo":
			rec.TvgLogo = value
		case "group-title":
			if value != "" {
				rec.Group = value
			}
		default:
			rec.Extra = append(rec.Extra, playlist.Attribute{Key: key, Value: value})
		}
	}

	return rec
}
