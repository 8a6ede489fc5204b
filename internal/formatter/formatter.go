// package formatter renders ordered channel records back into M3U playlist
// text and writes the final output file.
package formatter

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/time2shine/m3ugen/internal/playlist"
	"github.com/time2shine/m3ugen/internal/shared"
)

// Encode writes the playlist header followed by one metadata line and one
// link line per record. The guide URL is embedded twice in the header, once
// per tag convention, so both player families pick it up.
func Encode(w io.Writer, guideURL string, records []playlist.Record) error {
	if _, err := fmt.Fprintf(w, "#EXTM3U url-tvg=\"%s\" x-tvg-url=\"%s\"\n", guideURL, guideURL); err != nil {
		return err
	}

	for i := range records {
		if err := encodeRecord(w, &records[i]); err != nil {
			return err
		}
	}

	return nil
}

// encodeRecord rebuilds the EXTINF line from the record's structured
// fields: known tvg tags first, then any preserved unknown attributes in
// their original order, then the display name after the closing comma.
func encodeRecord(w io.Writer, rec *playlist.Record) error {
	if _, err := fmt.Fprintf(w, "#EXTINF:-1"); err != nil {
		return err
	}

	if rec.TvgID != "" {
		if _, err := fmt.Fprintf(w, " tvg-id=\"%s\"", rec.TvgID); err != nil {
			return err
		}
	}

	if rec.TvgLogo != "" {
		if _, err := fmt.Fprintf(w, " tvg-logo=\"%s\"", rec.TvgLogo); err != nil {
			return err
		}
	}

	if rec.Group != "" {
		if _, err := fmt.Fprintf(w, " group-title=\"%s\"", rec.Group); err != nil {
			return err
		}
	}

	for _, attr := range rec.Extra {
		if _, err := fmt.Fprintf(w, " %s=\"%s\"", attr.Key, attr.Value); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, ",%s\n%s\n", rec.Name, rec.Link); err != nil {
		return err
	}

	return nil
}

// WriteFile encodes the records to path, overwriting any previous output.
// Unlike a missing input, a write failure is fatal to the run and is
// returned wrapped in [shared.ErrOutputWrite].
func WriteFile(path, guideURL string, records []playlist.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrOutputWrite, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, guideURL, records); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrOutputWrite, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrOutputWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrOutputWrite, err)
	}

	return nil
}
