package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
)

// RecordSpec declares one annotation record for test corpora. Zero values
// produce a minimal valid record; Year nil means "no year in metadata",
// and volume fields accept any JSON-encodable value so tests can exercise
// the flexible numeric normalization (floats, quoted numbers, garbage).
type RecordSpec struct {
	StoryID    string
	Part       int
	Text       string
	Author     string
	Title      string
	Year       *int
	SoundType  string
	Human      any
	Nature     any
	Artificial any
	Labels     [][]string // one label set per token
	Lemmas     []string   // lemma per token, padded with "w<i>"
}

// Year returns a pointer to y, for RecordSpec literals.
func Year(y int) *int { return &y }

func orZero(v any) any {
	if v == nil {
		return 0
	}
	return v
}

// JSONLine renders one spec as a single JSONL line.
func JSONLine(spec RecordSpec) []byte {
	if spec.StoryID == "" {
		spec.StoryID = "story_1"
	}
	if spec.Text == "" {
		spec.Text = "За окном шумел ветер."
	}
	if spec.SoundType == "" {
		spec.SoundType = "d"
	}

	meta := map[string]any{
		"author": spec.Author,
		"title":  spec.Title,
	}
	if spec.Year != nil {
		meta["year"] = *spec.Year
	}

	volume := map[string]any{
		"human":      orZero(spec.Human),
		"nature":     orZero(spec.Nature),
		"artificial": orZero(spec.Artificial),
	}

	tokens := make([]map[string]any, 0, len(spec.Labels))
	for i, labels := range spec.Labels {
		lemma := fmt.Sprintf("w%d", i)
		if i < len(spec.Lemmas) {
			lemma = spec.Lemmas[i]
		}
		tokens = append(tokens, map[string]any{
			"text":   lemma,
			"lemma":  lemma,
			"labels": labels,
			"start":  i * 2,
			"end":    i*2 + 1,
		})
	}

	rec := map[string]any{
		"story_id":        spec.StoryID,
		"part":            spec.Part,
		"text":            spec.Text,
		"lemmatized_text": spec.Text,
		"metadata":        meta,
		"annotations": map[string]any{
			"token_level": map[string]any{
				"labels": tokens,
			},
			"paragraph_level": map[string]any{
				"sound_type": spec.SoundType,
				"volume":     volume,
			},
		},
	}

	line, err := json.Marshal(rec)
	if err != nil {
		panic(fmt.Errorf("testutil: marshal record spec: %w", err))
	}
	return line
}

// JSONL renders the specs as a line-delimited JSON blob.
func JSONL(specs ...RecordSpec) []byte {
	var buf bytes.Buffer
	for i, spec := range specs {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(JSONLine(spec))
	}
	return buf.Bytes()
}

// FrequencyCSV renders (category, lemma, freq) triples as a csv blob with
// a header row.
func FrequencyCSV(rows ...[3]string) []byte {
	var buf bytes.Buffer
	buf.WriteString("category,lemma,freq")
	for _, row := range rows {
		buf.WriteByte('\n')
		buf.WriteString(row[0] + "," + row[1] + "," + row[2])
	}
	return buf.Bytes()
}

// RNG is a seeded random source for generated corpora. Thread-safe.
type RNG struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{rand: rand.New(rand.NewSource(seed))}
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

var (
	rngSoundTypes = []string{"d", "nd", "dnd"}
	rngLabels     = []string{"human", "nature", "artificial"}
)

// RandomCorpus generates n record specs with years in [1900, 1999],
// random sound types, volumes and label sets. Roughly one record in ten
// has no year, to exercise the year-exclusion path.
func (r *RNG) RandomCorpus(n int) []RecordSpec {
	specs := make([]RecordSpec, n)
	for i := range specs {
		spec := RecordSpec{
			StoryID:    fmt.Sprintf("story_%d", i/10+1),
			Part:       i % 10,
			SoundType:  rngSoundTypes[r.Intn(len(rngSoundTypes))],
			Human:      r.Intn(5),
			Nature:     r.Intn(5),
			Artificial: r.Intn(5),
		}
		if r.Intn(10) > 0 {
			spec.Year = Year(1900 + r.Intn(100))
		}
		for t := 0; t < 1+r.Intn(3); t++ {
			spec.Labels = append(spec.Labels, []string{rngLabels[r.Intn(len(rngLabels))]})
		}
		specs[i] = spec
	}
	return specs
}
