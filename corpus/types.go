package corpus

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SoundType classifies whether a described sound originates within the
// story's depicted world (diegetic), outside it (non-diegetic), or both.
type SoundType string

const (
	// SoundDiegetic marks sounds produced inside the depicted world.
	SoundDiegetic SoundType = "d"
	// SoundNonDiegetic marks sounds external to the depicted world.
	SoundNonDiegetic SoundType = "nd"
	// SoundBoth marks paragraphs with both diegetic and non-diegetic sound.
	SoundBoth SoundType = "dnd"
)

// SoundTypes lists all valid sound types in display order.
var SoundTypes = []SoundType{SoundDiegetic, SoundNonDiegetic, SoundBoth}

// Valid reports whether s is one of the known sound types.
func (s SoundType) Valid() bool {
	switch s {
	case SoundDiegetic, SoundNonDiegetic, SoundBoth:
		return true
	}
	return false
}

// VolumeMax is the upper bound of the volume scale (inclusive).
const VolumeMax = 4

// Volume rates the perceived loudness of the three sound sources in a
// paragraph on a 0-4 scale. Values that cannot be parsed as integers
// decode as 0.
type Volume struct {
	Human      int `json:"human"`
	Nature     int `json:"nature"`
	Artificial int `json:"artificial"`
}

// Dim returns the volume for a named dimension ("human", "nature",
// "artificial"). Unknown dimensions return 0.
func (v Volume) Dim(name string) int {
	switch name {
	case "human":
		return v.Human
	case "nature":
		return v.Nature
	case "artificial":
		return v.Artificial
	}
	return 0
}

// UnmarshalJSON accepts integers, floats and numeric strings for each
// dimension. Anything else degrades to 0 rather than failing the record.
func (v *Volume) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.Human = flexInt(raw["human"])
	v.Nature = flexInt(raw["nature"])
	v.Artificial = flexInt(raw["artificial"])
	return nil
}

// TokenLabel is a category tag attached to a word span within a paragraph.
// Start and End are character offsets into the paragraph text and are
// treated as trusted input.
type TokenLabel struct {
	Text   string   `json:"text"`
	Lemma  string   `json:"lemma"`
	Labels []string `json:"labels"`
	Start  int      `json:"start"`
	End    int      `json:"end"`
}

// TokenLevel holds the ordered token tags of a paragraph.
type TokenLevel struct {
	Labels []TokenLabel `json:"labels"`
}

// ParagraphLevel holds the paragraph-wide annotations.
type ParagraphLevel struct {
	SoundType SoundType `json:"sound_type"`
	Volume    Volume    `json:"volume"`
}

// Annotations groups the two annotation layers of a record.
type Annotations struct {
	TokenLevel     TokenLevel     `json:"token_level"`
	ParagraphLevel ParagraphLevel `json:"paragraph_level"`
}

// Meta carries the story-level bibliographic fields. Year is nil when the
// source record has no year; a present year is normalized to an integer
// even when it arrives as a float from a spreadsheet export.
type Meta struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	Year   *int   `json:"year"`
}

// UnmarshalJSON normalizes the year field from any JSON numeric form.
func (m *Meta) UnmarshalJSON(data []byte) error {
	var aux struct {
		Author string          `json:"author"`
		Title  string          `json:"title"`
		Year   json.RawMessage `json:"year"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.Author = aux.Author
	m.Title = aux.Title
	m.Year = nil
	if y, ok := flexIntOK(aux.Year); ok {
		m.Year = &y
	}
	return nil
}

// Record is one annotated paragraph of one story. Records are immutable
// after decoding.
type Record struct {
	StoryID        string      `json:"story_id"`
	Part           int         `json:"part"`
	Text           string      `json:"text"`
	LemmatizedText string      `json:"lemmatized_text"`
	Meta           Meta        `json:"metadata"`
	Annotations    Annotations `json:"annotations"`

	// raw preserves the original JSONL line so exports can reproduce the
	// record byte-for-byte.
	raw json.RawMessage
}

// Raw returns the original JSONL line the record was decoded from, or nil
// for records constructed in memory.
func (r *Record) Raw() json.RawMessage { return r.raw }

// Year returns the normalized publication year and whether one is present.
func (r *Record) Year() (int, bool) {
	if r.Meta.Year == nil {
		return 0, false
	}
	return *r.Meta.Year, true
}

// HasAnyLabel reports whether at least one token of the record carries a
// label from the given set.
func (r *Record) HasAnyLabel(labels map[string]struct{}) bool {
	if len(labels) == 0 {
		return true
	}
	for _, tok := range r.Annotations.TokenLevel.Labels {
		for _, l := range tok.Labels {
			if _, ok := labels[l]; ok {
				return true
			}
		}
	}
	return false
}

// FrequencyRow is one (category, lemma) entry of the word-frequency table.
// Category values are drawn from the same space as token-level labels.
type FrequencyRow struct {
	Category string `json:"category"`
	Lemma    string `json:"lemma"`
	Freq     int    `json:"freq"`
}

// flexInt parses a JSON value that should be an integer but may arrive as
// a float, a quoted number, or garbage. Unparseable input yields 0.
func flexInt(raw json.RawMessage) int {
	n, _ := flexIntOK(raw)
	return n
}

func flexIntOK(raw json.RawMessage) (int, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, false
	}
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return int(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}
