package corpus

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mozgsvina/sis-app/codec"
)

// maxLineBytes bounds a single JSONL line. Annotated paragraphs stay well
// under this; the bound exists to fail loudly on corrupt input instead of
// scanning forever.
const maxLineBytes = 4 << 20

// ErrBadRecord indicates a JSONL line that could not be decoded.
//
// The underlying decode error can be accessed via errors.Unwrap.
type ErrBadRecord struct {
	Line  int
	cause error
}

func (e *ErrBadRecord) Error() string {
	return fmt.Sprintf("bad annotation record at line %d: %v", e.Line, e.cause)
}

func (e *ErrBadRecord) Unwrap() error { return e.cause }

// DecodeRecords decodes a line-delimited JSON blob into annotation records.
//
// Cleaning mirrors the upstream annotation pipeline: sound types are
// whitespace-trimmed and rows whose sound type is missing, "0", or not one
// of the known types are dropped. Relative order of surviving records is
// the file order. If c is nil, codec.Default is used.
func DecodeRecords(data []byte, c codec.Codec) ([]Record, error) {
	if c == nil {
		c = codec.Default
	}

	var records []Record

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}

		var rec Record
		if err := c.Unmarshal(line, &rec); err != nil {
			return nil, &ErrBadRecord{Line: lineNo, cause: err}
		}

		st := SoundType(strings.TrimSpace(string(rec.Annotations.ParagraphLevel.SoundType)))
		if !st.Valid() {
			continue
		}
		rec.Annotations.ParagraphLevel.SoundType = st

		rec.raw = json.RawMessage(bytes.Clone(line))
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan annotation records: %w", err)
	}

	return records, nil
}
