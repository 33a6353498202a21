package filter

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/mozgsvina/sis-app/corpus"
)

// YearRange restricts records to start <= year <= end (inclusive).
//
// A record with no publication year never satisfies a year range, full
// observed span included.
type YearRange struct {
	Start int
	End   int
}

// Contains reports whether y falls inside the range.
func (r YearRange) Contains(y int) bool {
	return r.Start <= y && y <= r.End
}

// VolumeRange restricts one volume dimension to [Lo, Hi] (inclusive).
// The full scale [0, corpus.VolumeMax] is the no-restriction value.
type VolumeRange struct {
	Lo int
	Hi int
}

// FullVolumeRange is the no-restriction volume range.
var FullVolumeRange = VolumeRange{Lo: 0, Hi: corpus.VolumeMax}

func (r VolumeRange) noop() bool {
	return r.Lo <= 0 && r.Hi >= corpus.VolumeMax
}

// Contains reports whether v falls inside the range.
func (r VolumeRange) Contains(v int) bool {
	return r.Lo <= v && v <= r.Hi
}

// Config is a filter configuration. All set predicates must hold (logical
// AND); each is skippable by its zero/no-restriction value:
//
//   - Years: nil skips the year predicate entirely.
//   - SoundTypes: empty selects all three types.
//   - Human/Nature/Artificial: nil or [0, 4] places no restriction.
//   - Labels: empty places no restriction.
type Config struct {
	Years      *YearRange
	SoundTypes []corpus.SoundType
	Human      *VolumeRange
	Nature     *VolumeRange
	Artificial *VolumeRange
	Labels     []string
}

// Apply returns the ordered subsequence of records satisfying every active
// predicate. idx may be nil, in which case label membership is evaluated by
// scanning each record's tokens.
func Apply(records []corpus.Record, idx *LabelIndex, cfg Config) []corpus.Record {
	var (
		soundSet map[corpus.SoundType]struct{}
		labelSet map[string]struct{}
		labelBM  *roaring.Bitmap
	)

	if len(cfg.SoundTypes) > 0 {
		soundSet = make(map[corpus.SoundType]struct{}, len(cfg.SoundTypes))
		for _, st := range cfg.SoundTypes {
			soundSet[st] = struct{}{}
		}
	}

	if len(cfg.Labels) > 0 {
		if idx != nil {
			labelBM = idx.Union(cfg.Labels)
		} else {
			labelSet = make(map[string]struct{}, len(cfg.Labels))
			for _, l := range cfg.Labels {
				labelSet[l] = struct{}{}
			}
		}
	}

	var out []corpus.Record
	for i := range records {
		rec := &records[i]

		if cfg.Years != nil {
			y, ok := rec.Year()
			if !ok || !cfg.Years.Contains(y) {
				continue
			}
		}

		if soundSet != nil {
			if _, ok := soundSet[rec.Annotations.ParagraphLevel.SoundType]; !ok {
				continue
			}
		}

		vol := rec.Annotations.ParagraphLevel.Volume
		if !volumeOK(cfg.Human, vol.Human) ||
			!volumeOK(cfg.Nature, vol.Nature) ||
			!volumeOK(cfg.Artificial, vol.Artificial) {
			continue
		}

		if labelBM != nil {
			if !labelBM.Contains(uint32(i)) {
				continue
			}
		} else if labelSet != nil {
			if !rec.HasAnyLabel(labelSet) {
				continue
			}
		}

		out = append(out, records[i])
	}

	return out
}

func volumeOK(r *VolumeRange, v int) bool {
	if r == nil || r.noop() {
		return true
	}
	return r.Contains(v)
}
