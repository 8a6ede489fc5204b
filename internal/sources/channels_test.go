package sources

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/time2shine/m3ugen/internal/playlist"
)

func TestChannelsSource(t *testing.T) {
	t.Run("selects the first online endpoint", func(t *testing.T) {
		path := writeFixture(t, "channels.json", `{
  "BBC One": {
    "group": "International News",
    "tvg_id": "bbc.one",
    "tvg_logo": "http://logo/bbc.png",
    "links": [
      {"url": "http://stream/offline", "status": "offline"},
      {"url": "http://stream/bbc", "status": "online"},
      {"url": "http://stream/backup", "status": "online"}
    ]
  }
}`)

		records, err := NewChannelsSource(path).Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}

		rec := records[0]
		if rec.Link != "http://stream/bbc" {
			t.Errorf("expected first online link, got %q", rec.Link)
		}
		if rec.Name != "BBC One" || rec.TvgID != "bbc.one" || rec.TvgLogo != "http://logo/bbc.png" {
			t.Errorf("unexpected record metadata: %+v", rec)
		}
		if rec.Rank != playlist.RankChannels {
			t.Errorf("expected rank %d, got %d", playlist.RankChannels, rec.Rank)
		}
	})

	t.Run("skips entries with no online endpoint", func(t *testing.T) {
		path := writeFixture(t, "channels.json", `{
  "Dead Channel": {
    "group": "Music",
    "links": [{"url": "http://stream/a", "status": "offline"}]
  },
  "No Links": {"group": "Music"}
}`)

		records, err := NewChannelsSource(path).Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected zero records, got %+v", records)
		}
	})

	t.Run("synthesizes tvg-id and defaults group", func(t *testing.T) {
		path := writeFixture(t, "channels.json", `{
  "My Channel!": {
    "links": [{"url": "http://stream/mine", "status": "online"}]
  }
}`)

		records, err := NewChannelsSource(path).Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		if records[0].TvgID != "My_Channel_" {
			t.Errorf("expected synthesized id My_Channel_, got %q", records[0].TvgID)
		}
		if records[0].Group != playlist.DefaultGroup {
			t.Errorf("expected default group, got %q", records[0].Group)
		}
	})

	t.Run("preserves input key order", func(t *testing.T) {
		path := writeFixture(t, "channels.json", `{
  "Zebra": {"links": [{"url": "http://z", "status": "online"}]},
  "Alpha": {"links": [{"url": "http://a", "status": "online"}]},
  "Mango": {"links": [{"url": "http://m", "status": "online"}]}
}`)

		records, err := NewChannelsSource(path).Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		var names []string
		for _, rec := range records {
			names = append(names, rec.Name)
		}
		want := []string{"Zebra", "Alpha", "Mango"}
		for i := range want {
			if i >= len(names) || names[i] != want[i] {
				t.Fatalf("expected order %v, got %v", want, names)
			}
		}
	})

	t.Run("skips malformed entries without aborting", func(t *testing.T) {
		path := writeFixture(t, "channels.json", `{
  "Broken": {"links": "not a list"},
  "Fine": {"links": [{"url": "http://fine", "status": "online"}]}
}`)

		records, err := NewChannelsSource(path).Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(records) != 1 || records[0].Name != "Fine" {
			t.Fatalf("expected only the Fine record, got %+v", records)
		}
	})

	t.Run("empty file yields zero records", func(t *testing.T) {
		path := writeFixture(t, "channels.json", "")

		records, err := NewChannelsSource(path).Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected zero records, got %d", len(records))
		}
	})

	t.Run("rejects a non-object top level", func(t *testing.T) {
		path := writeFixture(t, "channels.json", `["not", "an", "object"]`)

		if _, err := NewChannelsSource(path).Load(); err == nil {
			t.Error("expected an error for non-object input")
		}
	})

	t.Run("missing file reports fs.ErrNotExist", func(t *testing.T) {
		_, err := NewChannelsSource(filepath.Join(t.TempDir(), "missing.json")).Load()
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected fs.ErrNotExist, got %v", err)
		}
	})
}
