package filter_test

import (
	"testing"

	"github.com/mozgsvina/sis-app/corpus"
	"github.com/mozgsvina/sis-app/filter"
	"github.com/mozgsvina/sis-app/testutil"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, specs ...testutil.RecordSpec) []corpus.Record {
	t.Helper()
	records, err := corpus.DecodeRecords(testutil.JSONL(specs...), nil)
	require.NoError(t, err)
	require.Len(t, records, len(specs))
	return records
}

func TestApply_Empty(t *testing.T) {
	out := filter.Apply(nil, nil, filter.Config{})
	require.Empty(t, out)
}

func TestApply_NoPredicates(t *testing.T) {
	records := decode(t,
		testutil.RecordSpec{StoryID: "s1", Year: testutil.Year(1920)},
		testutil.RecordSpec{StoryID: "s2"},
		testutil.RecordSpec{StoryID: "s3", Year: testutil.Year(1999)},
	)

	out := filter.Apply(records, nil, filter.Config{})
	require.Len(t, out, 3)
	require.Equal(t, "s1", out[0].StoryID)
	require.Equal(t, "s2", out[1].StoryID)
	require.Equal(t, "s3", out[2].StoryID)
}

func TestApply_YearRange(t *testing.T) {
	records := decode(t,
		testutil.RecordSpec{StoryID: "s1", Year: testutil.Year(1920)},
		testutil.RecordSpec{StoryID: "s2", Year: testutil.Year(1950)},
		testutil.RecordSpec{StoryID: "s3", Year: testutil.Year(1999)},
	)

	out := filter.Apply(records, nil, filter.Config{
		Years: &filter.YearRange{Start: 1930, End: 1960},
	})
	require.Len(t, out, 1)
	require.Equal(t, "s2", out[0].StoryID)
}

func TestApply_YearRangeInclusive(t *testing.T) {
	records := decode(t,
		testutil.RecordSpec{StoryID: "s1", Year: testutil.Year(1930)},
		testutil.RecordSpec{StoryID: "s2", Year: testutil.Year(1960)},
	)

	out := filter.Apply(records, nil, filter.Config{
		Years: &filter.YearRange{Start: 1930, End: 1960},
	})
	require.Len(t, out, 2)
}

func TestApply_MissingYearExcluded(t *testing.T) {
	records := decode(t,
		testutil.RecordSpec{StoryID: "dated", Year: testutil.Year(1950)},
		testutil.RecordSpec{StoryID: "undated"},
	)

	// Even the full observed span excludes records with no year.
	out := filter.Apply(records, nil, filter.Config{
		Years: &filter.YearRange{Start: 1900, End: 2000},
	})
	require.Len(t, out, 1)
	require.Equal(t, "dated", out[0].StoryID)
}

func TestApply_NilYearsKeepsUndated(t *testing.T) {
	records := decode(t,
		testutil.RecordSpec{StoryID: "dated", Year: testutil.Year(1950)},
		testutil.RecordSpec{StoryID: "undated"},
	)

	out := filter.Apply(records, nil, filter.Config{})
	require.Len(t, out, 2)
}

func TestApply_SoundTypes(t *testing.T) {
	records := decode(t,
		testutil.RecordSpec{StoryID: "s1", SoundType: "d"},
		testutil.RecordSpec{StoryID: "s2", SoundType: "nd"},
		testutil.RecordSpec{StoryID: "s3", SoundType: "dnd"},
		testutil.RecordSpec{StoryID: "s4", SoundType: "nd"},
	)

	out := filter.Apply(records, nil, filter.Config{
		SoundTypes: []corpus.SoundType{corpus.SoundNonDiegetic, corpus.SoundBoth},
	})
	require.Len(t, out, 3)
	require.Equal(t, "s2", out[0].StoryID)
	require.Equal(t, "s3", out[1].StoryID)
	require.Equal(t, "s4", out[2].StoryID)
}

func TestApply_VolumeRanges(t *testing.T) {
	records := decode(t,
		testutil.RecordSpec{StoryID: "quiet", Human: 0, Nature: 1, Artificial: 0},
		testutil.RecordSpec{StoryID: "mid", Human: 2, Nature: 2, Artificial: 1},
		testutil.RecordSpec{StoryID: "loud", Human: 4, Nature: 3, Artificial: 4},
	)

	out := filter.Apply(records, nil, filter.Config{
		Human: &filter.VolumeRange{Lo: 1, Hi: 3},
	})
	require.Len(t, out, 1)
	require.Equal(t, "mid", out[0].StoryID)

	out = filter.Apply(records, nil, filter.Config{
		Nature: &filter.VolumeRange{Lo: 2, Hi: 4},
	})
	require.Len(t, out, 2)
	require.Equal(t, "mid", out[0].StoryID)
	require.Equal(t, "loud", out[1].StoryID)
}

func TestApply_FullVolumeRangeIsNoop(t *testing.T) {
	records := decode(t,
		testutil.RecordSpec{StoryID: "s1", Human: 0},
		testutil.RecordSpec{StoryID: "s2", Human: 4},
	)

	full := filter.FullVolumeRange
	out := filter.Apply(records, nil, filter.Config{Human: &full})
	require.Len(t, out, 2)
}

func TestApply_Labels(t *testing.T) {
	records := decode(t,
		testutil.RecordSpec{StoryID: "s1", Labels: [][]string{{"nature"}}},
		testutil.RecordSpec{StoryID: "s2", Labels: [][]string{{"human"}}},
		testutil.RecordSpec{StoryID: "s3", Labels: [][]string{{"artificial", "nature"}}},
		testutil.RecordSpec{StoryID: "s4"},
	)

	cfg := filter.Config{Labels: []string{"nature"}}

	// Scanning and index-backed evaluation must agree.
	scanned := filter.Apply(records, nil, cfg)
	idx := filter.BuildLabelIndex(records)
	indexed := filter.Apply(records, idx, cfg)

	require.Equal(t, scanned, indexed)
	require.Len(t, scanned, 2)
	require.Equal(t, "s1", scanned[0].StoryID)
	require.Equal(t, "s3", scanned[1].StoryID)
}

func TestApply_UnknownLabel(t *testing.T) {
	records := decode(t,
		testutil.RecordSpec{StoryID: "s1", Labels: [][]string{{"nature"}}},
	)

	idx := filter.BuildLabelIndex(records)
	out := filter.Apply(records, idx, filter.Config{Labels: []string{"machine"}})
	require.Empty(t, out)
}

func TestApply_Conjunction(t *testing.T) {
	records := decode(t,
		testutil.RecordSpec{StoryID: "s1", Year: testutil.Year(1950), SoundType: "d", Labels: [][]string{{"nature"}}},
		testutil.RecordSpec{StoryID: "s2", Year: testutil.Year(1950), SoundType: "nd", Labels: [][]string{{"nature"}}},
		testutil.RecordSpec{StoryID: "s3", Year: testutil.Year(1980), SoundType: "d", Labels: [][]string{{"nature"}}},
		testutil.RecordSpec{StoryID: "s4", Year: testutil.Year(1950), SoundType: "d", Labels: [][]string{{"human"}}},
	)

	idx := filter.BuildLabelIndex(records)
	out := filter.Apply(records, idx, filter.Config{
		Years:      &filter.YearRange{Start: 1940, End: 1960},
		SoundTypes: []corpus.SoundType{corpus.SoundDiegetic},
		Labels:     []string{"nature"},
	})
	require.Len(t, out, 1)
	require.Equal(t, "s1", out[0].StoryID)
}

func TestApply_SubsetAndOrder(t *testing.T) {
	rng := testutil.NewRNG(42)
	records := decode(t, rng.RandomCorpus(200)...)
	idx := filter.BuildLabelIndex(records)

	cfg := filter.Config{
		Years:      &filter.YearRange{Start: 1925, End: 1975},
		SoundTypes: []corpus.SoundType{corpus.SoundDiegetic, corpus.SoundBoth},
		Nature:     &filter.VolumeRange{Lo: 1, Hi: 3},
		Labels:     []string{"nature", "human"},
	}

	out := filter.Apply(records, idx, cfg)
	require.LessOrEqual(t, len(out), len(records))

	// Narrowing the year range never grows the result.
	narrower := cfg
	narrower.Years = &filter.YearRange{Start: 1940, End: 1960}
	require.LessOrEqual(t, len(filter.Apply(records, idx, narrower)), len(out))

	// Every returned record satisfies every predicate, in corpus order.
	pos := -1
	for _, rec := range out {
		y, ok := rec.Year()
		require.True(t, ok)
		require.True(t, cfg.Years.Contains(y))
		require.Contains(t, cfg.SoundTypes, rec.Annotations.ParagraphLevel.SoundType)
		require.True(t, cfg.Nature.Contains(rec.Annotations.ParagraphLevel.Volume.Nature))

		next := indexOf(records, rec.StoryID, rec.Part, pos)
		require.Greater(t, next, pos)
		pos = next
	}
}

func indexOf(records []corpus.Record, storyID string, part int, after int) int {
	for i := after + 1; i < len(records); i++ {
		if records[i].StoryID == storyID && records[i].Part == part {
			return i
		}
	}
	return -1
}

func TestLabelIndex(t *testing.T) {
	records := decode(t,
		testutil.RecordSpec{StoryID: "s1", Labels: [][]string{{"nature"}}},
		testutil.RecordSpec{StoryID: "s2", Labels: [][]string{{"human"}, {"nature"}}},
		testutil.RecordSpec{StoryID: "s3", Labels: [][]string{{"artificial"}}},
	)

	idx := filter.BuildLabelIndex(records)
	require.Equal(t, 3, idx.Len())
	require.Equal(t, []string{"artificial", "human", "nature"}, idx.Labels())

	bm := idx.Union([]string{"nature", "human"})
	require.Equal(t, uint64(2), bm.GetCardinality())
	require.True(t, bm.Contains(0))
	require.True(t, bm.Contains(1))
	require.False(t, bm.Contains(2))
}
