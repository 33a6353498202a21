// Package stats computes the aggregations shown on the dashboard: mean
// volume grouped by sound type, mean volume per year, and summary
// statistics over the current filtered subset.
package stats

import (
	"math"
	"sort"

	"github.com/mozgsvina/sis-app/corpus"
)

// VolumeMeans holds the mean of each volume dimension over one group.
type VolumeMeans struct {
	Human      float64 `json:"human"`
	Nature     float64 `json:"nature"`
	Artificial float64 `json:"artificial"`
	Count      int     `json:"count"`
}

// TypeMeans is one row of the mean-volume-by-sound-type aggregation.
type TypeMeans struct {
	SoundType corpus.SoundType `json:"sound_type"`
	VolumeMeans
}

// YearMeans is one row of the mean-volume-by-year aggregation.
type YearMeans struct {
	Year int `json:"year"`
	VolumeMeans
}

// MeanVolumeBySoundType averages each volume dimension per sound type,
// in the fixed d/nd/dnd display order. Types with no records are omitted.
func MeanVolumeBySoundType(records []corpus.Record) []TypeMeans {
	acc := make(map[corpus.SoundType]*accum)
	for i := range records {
		pl := records[i].Annotations.ParagraphLevel
		a, ok := acc[pl.SoundType]
		if !ok {
			a = &accum{}
			acc[pl.SoundType] = a
		}
		a.add(pl.Volume)
	}

	var out []TypeMeans
	for _, st := range corpus.SoundTypes {
		if a, ok := acc[st]; ok {
			out = append(out, TypeMeans{SoundType: st, VolumeMeans: a.means()})
		}
	}
	return out
}

// MeanVolumeByYear averages each volume dimension per observed year,
// sorted ascending. Records without a year are skipped.
func MeanVolumeByYear(records []corpus.Record) []YearMeans {
	acc := make(map[int]*accum)
	for i := range records {
		y, ok := records[i].Year()
		if !ok {
			continue
		}
		a, found := acc[y]
		if !found {
			a = &accum{}
			acc[y] = a
		}
		a.add(records[i].Annotations.ParagraphLevel.Volume)
	}

	years := make([]int, 0, len(acc))
	for y := range acc {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]YearMeans, 0, len(years))
	for _, y := range years {
		out = append(out, YearMeans{Year: y, VolumeMeans: acc[y].means()})
	}
	return out
}

// Summary describes one volume dimension over a record set.
type Summary struct {
	Dimension string  `json:"dimension"`
	Count     int     `json:"count"`
	Mean      float64 `json:"mean"`
	Min       int     `json:"min"`
	Max       int     `json:"max"`
	StdDev    float64 `json:"stddev"`
}

// Describe computes count/mean/min/max/stddev for each volume dimension.
// StdDev is the sample standard deviation (n-1 denominator), matching the
// summary table the upstream dashboard showed; fewer than two records
// yield 0. An empty record set yields zero-valued summaries.
func Describe(records []corpus.Record) []Summary {
	dims := []string{"human", "nature", "artificial"}
	out := make([]Summary, 0, len(dims))

	for _, dim := range dims {
		s := Summary{Dimension: dim}
		var sum, sumSq float64
		for i := range records {
			v := records[i].Annotations.ParagraphLevel.Volume.Dim(dim)
			if s.Count == 0 || v < s.Min {
				s.Min = v
			}
			if s.Count == 0 || v > s.Max {
				s.Max = v
			}
			sum += float64(v)
			sumSq += float64(v) * float64(v)
			s.Count++
		}
		if s.Count > 0 {
			s.Mean = sum / float64(s.Count)
		}
		if s.Count > 1 {
			variance := (sumSq - float64(s.Count)*s.Mean*s.Mean) / float64(s.Count-1)
			if variance > 0 {
				s.StdDev = math.Sqrt(variance)
			}
		}
		out = append(out, s)
	}
	return out
}

type accum struct {
	human, nature, artificial int
	n                         int
}

func (a *accum) add(v corpus.Volume) {
	a.human += v.Human
	a.nature += v.Nature
	a.artificial += v.Artificial
	a.n++
}

func (a *accum) means() VolumeMeans {
	if a.n == 0 {
		return VolumeMeans{}
	}
	n := float64(a.n)
	return VolumeMeans{
		Human:      float64(a.human) / n,
		Nature:     float64(a.nature) / n,
		Artificial: float64(a.artificial) / n,
		Count:      a.n,
	}
}
