package sources

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/time2shine/m3ugen/internal/playlist"
)

// endpointStatusOnline marks a channel endpoint as playable. Only online
// endpoints are eligible links.
const endpointStatusOnline = "online"

// channelEntry is the JSON shape of one curated channel, keyed by display
// name in the enclosing object.
type channelEntry struct {
	Group   string        `json:"group"`
	TvgID   string        `json:"tvg_id"`
	TvgLogo string        `json:"tvg_logo"`
	Links   []channelLink `json:"links"`
}

type channelLink struct {
	URL    string `json:"url"`
	Status string `json:"status"`
}

// ChannelsSource reads the structured JSON channel file: an object mapping
// channel name to metadata plus candidate endpoints.
type ChannelsSource struct {
	path string
}

var _ Source = (*ChannelsSource)(nil)

// NewChannelsSource creates a structured-channel source for the given path.
func NewChannelsSource(path string) *ChannelsSource {
	return &ChannelsSource{path: path}
}

func (s *ChannelsSource) Name() string { return "channels" }

func (s *ChannelsSource) Rank() int { return playlist.RankChannels }

// Load decodes the channel object with a token walk rather than a map so
// records come out in input key order, which keeps the downstream merge and
// sort fully deterministic. Entries with no online endpoint contribute
// nothing; a malformed entry is skipped without aborting the rest of the
// file.
func (s *ChannelsSource) Load() ([]playlist.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("decoding %s: top-level value is not an object", s.path)
	}

	var records []playlist.Record
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return records, fmt.Errorf("decoding %s: %w", s.path, err)
		}
		name, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return records, fmt.Errorf("decoding %s: %w", s.path, err)
		}

		var entry channelEntry
		if name == "" || json.Unmarshal(raw, &entry) != nil {
			continue
		}

		link := firstOnlineLink(entry.Links)
		if link == "" {
			continue
		}

		rec := playlist.Record{
			Name:    name,
			Link:    link,
			Group:   entry.Group,
			TvgID:   entry.TvgID,
			TvgLogo: entry.TvgLogo,
			Rank:    playlist.RankChannels,
		}
		if rec.Group == "" {
			rec.Group = playlist.DefaultGroup
		}
		if rec.TvgID == "" {
			rec.TvgID = playlist.SynthesizeID(name)
		}
		records = append(records, rec)
	}

	return records, nil
}

func firstOnlineLink(links []channelLink) string {
	for _, l := range links {
		if l.Status == endpointStatusOnline && l.URL != "" {
			return l.URL
		}
	}
	return ""
}
