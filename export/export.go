// Package export serializes a bounded prefix of filtered records for
// download, as CSV or JSON-lines.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mozgsvina/sis-app/codec"
	"github.com/mozgsvina/sis-app/corpus"
)

// Limit caps how many records a single export may contain.
const Limit = 20

// Format selects the export serialization.
type Format string

const (
	// FormatCSV exports fixed columns, token-level tags omitted.
	FormatCSV Format = "csv"
	// FormatJSONL exports one verbatim record object per line.
	FormatJSONL Format = "jsonl"
)

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSONL:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "application/x-ndjson; charset=utf-8"
	}
}

// csvHeader is the fixed CSV column set.
var csvHeader = []string{
	"Story ID", "Part", "Author", "Title", "Year", "Text",
	"Sound Type", "Volume Human", "Volume Nature", "Volume Artificial",
}

// Write serializes at most Limit records in the given format, preserving
// the order of the input.
func Write(w io.Writer, f Format, records []corpus.Record, c codec.Codec) error {
	if len(records) > Limit {
		records = records[:Limit]
	}
	switch f {
	case FormatCSV:
		return writeCSV(w, records)
	case FormatJSONL:
		return writeJSONL(w, records, c)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

func writeCSV(w io.Writer, records []corpus.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i := range records {
		rec := &records[i]

		year := ""
		if y, ok := rec.Year(); ok {
			year = strconv.Itoa(y)
		}

		pl := rec.Annotations.ParagraphLevel
		row := []string{
			rec.StoryID,
			strconv.Itoa(rec.Part),
			rec.Meta.Author,
			rec.Meta.Title,
			year,
			rec.Text,
			string(pl.SoundType),
			strconv.Itoa(pl.Volume.Human),
			strconv.Itoa(pl.Volume.Nature),
			strconv.Itoa(pl.Volume.Artificial),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// writeJSONL writes one JSON object per line, newline-joined with no
// trailing newline. Records decoded from a JSONL dump are reproduced
// byte-for-byte; UTF-8 stays unescaped either way.
func writeJSONL(w io.Writer, records []corpus.Record, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}

	for i := range records {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		line := []byte(records[i].Raw())
		if line == nil {
			var err error
			line, err = c.Marshal(&records[i])
			if err != nil {
				return fmt.Errorf("marshal record %s/%d: %w", records[i].StoryID, records[i].Part, err)
			}
		}

		if _, err := w.Write(line); err != nil {
			return err
		}
	}

	return nil
}
