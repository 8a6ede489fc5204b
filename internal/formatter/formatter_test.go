package formatter

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/time2shine/m3ugen/internal/playlist"
	"github.com/time2shine/m3ugen/internal/shared"
	tu "github.com/time2shine/m3ugen/internal/testing"
)

const guideURL = "http://example.com/epg.xml"

func TestEncode(t *testing.T) {
	t.Run("embeds the guide URL twice in the header", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, guideURL, nil); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		want := `#EXTM3U url-tvg="http://example.com/epg.xml" x-tvg-url="http://example.com/epg.xml"` + "\n"
		if buf.String() != want {
			t.Errorf("unexpected header:\n got %q\nwant %q", buf.String(), want)
		}
	})

	t.Run("writes one metadata line and one link line per record", func(t *testing.T) {
		records := []playlist.Record{
			{
				Name:    "BBC One",
				Link:    "http://stream/bbc",
				Group:   "International News",
				TvgID:   "bbc.one",
				TvgLogo: "http://logo/bbc.png",
			},
			{
				Name:  "Jazz FM",
				Link:  "http://stream/jazz",
				Group: "Music",
				Extra: []playlist.Attribute{{Key: "radio", Value: "true"}},
			},
		}

		var buf bytes.Buffer
		if err := Encode(&buf, guideURL, records); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if len(lines) != 5 {
			t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), buf.String())
		}

		if lines[1] != `#EXTINF:-1 tvg-id="bbc.one" tvg-logo="http://logo/bbc.png" group-title="International News",BBC One` {
			t.Errorf("unexpected first metadata line: %q", lines[1])
		}
		if lines[2] != "http://stream/bbc" {
			t.Errorf("unexpected first link line: %q", lines[2])
		}
		if lines[3] != `#EXTINF:-1 group-title="Music" radio="true",Jazz FM` {
			t.Errorf("unexpected second metadata line: %q", lines[3])
		}
		if lines[4] != "http://stream/jazz" {
			t.Errorf("unexpected second link line: %q", lines[4])
		}
	})

	t.Run("omits unset optional tags", func(t *testing.T) {
		records := []playlist.Record{{Name: "Bare", Link: "http://stream/bare", Group: "Other"}}

		var buf bytes.Buffer
		if err := Encode(&buf, guideURL, records); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		if strings.Contains(buf.String(), "tvg-id") || strings.Contains(buf.String(), "tvg-logo") {
			t.Errorf("expected no tvg tags, got:\n%s", buf.String())
		}
	})

	t.Run("propagates writer failures", func(t *testing.T) {
		if err := Encode(&tu.FWriter{}, guideURL, nil); err == nil {
			t.Error("expected an error from the failing writer")
		}
	})

	t.Run("stops when the writer fails mid-stream", func(t *testing.T) {
		records := []playlist.Record{{Name: "BBC One", Link: "http://stream/bbc", Group: "Other"}}

		var buf bytes.Buffer
		// One write is enough for the header, not for the first record.
		lw := tu.NewLimitedWriter(1, 0, &buf)

		if err := Encode(&lw, guideURL, records); err == nil {
			t.Fatal("expected an error once the write limit is hit")
		}
		if !strings.HasPrefix(buf.String(), "#EXTM3U") {
			t.Errorf("expected the header to land before the failure, got %q", buf.String())
		}
		if strings.Contains(buf.String(), "http://stream/bbc") {
			t.Errorf("expected no link line after the failure, got %q", buf.String())
		}
	})
}

func TestWriteFile(t *testing.T) {
	records := []playlist.Record{{Name: "BBC One", Link: "http://stream/bbc", Group: "International News"}}

	t.Run("writes the playlist to disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "combined.m3u")

		if err := WriteFile(path, guideURL, records); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		tu.AssertFileExists(t, path)
		content := tu.MustReadFile(t, path)
		if !strings.Contains(content, "BBC One") || !strings.Contains(content, "http://stream/bbc") {
			t.Errorf("output missing record data:\n%s", content)
		}
	})

	t.Run("overwrites a previous output file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "combined.m3u")
		tu.MustWriteFile(t, path, "stale content that should vanish")

		if err := WriteFile(path, guideURL, records); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		if strings.Contains(tu.MustReadFile(t, path), "stale") {
			t.Error("expected previous content to be replaced")
		}
	})

	t.Run("wraps destination failures in ErrOutputWrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no-such-dir", "combined.m3u")

		err := WriteFile(path, guideURL, records)
		if !errors.Is(err, shared.ErrOutputWrite) {
			t.Errorf("expected ErrOutputWrite, got %v", err)
		}
	})
}
