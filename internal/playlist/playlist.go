package playlist

import (
	"regexp"
	"strings"
)

// Source precedence weights. Lower ranks win name collisions during the
// merge, so curated channel data beats scraped playlist entries.
const (
	RankChannels = 2 // structured JSON channel file
	RankPlaylist = 3 // line-oriented M3U playlist
)

// DefaultGroup is assigned when a source carries no category for an entry.
const DefaultGroup = "Other"

// Attribute is one key="value" pair from an EXTINF metadata line that the
// tool does not model as a typed field. Order is preserved.
type Attribute struct {
	Key   string
	Value string
}

// Record is one channel entry.
type Record struct {
	Name    string      // display name; dedup key and default sort key
	Link    string      // playable URL, opaque to the tool
	Group   string      // category label, DefaultGroup when absent
	TvgID   string      // EPG identifier, empty when unset
	TvgLogo string      // logo URL, empty when unset
	Extra   []Attribute // unmodeled EXTINF attributes in original order
	Rank    int         // source precedence weight, lower wins
}

var idUnsafe = regexp.MustCompile(`[^A-Za-z0-9_]`)

// SynthesizeID derives a stable tvg-id from a display name by replacing
// every rune outside [A-Za-z0-9_] with an underscore.
func SynthesizeID(name string) string {
	return idUnsafe.ReplaceAllString(strings.TrimSpace(name), "_")
}
