package filter

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/mozgsvina/sis-app/corpus"
)

// LabelIndex is an inverted index from token label to the set of record
// ordinals carrying at least one token with that label. It is built once
// per corpus and is read-only afterwards.
type LabelIndex struct {
	bitmaps map[string]*roaring.Bitmap
	n       int
}

// BuildLabelIndex indexes the token labels of all records.
func BuildLabelIndex(records []corpus.Record) *LabelIndex {
	ix := &LabelIndex{
		bitmaps: make(map[string]*roaring.Bitmap),
		n:       len(records),
	}

	for i := range records {
		for _, tok := range records[i].Annotations.TokenLevel.Labels {
			for _, l := range tok.Labels {
				bm, ok := ix.bitmaps[l]
				if !ok {
					bm = roaring.New()
					ix.bitmaps[l] = bm
				}
				bm.Add(uint32(i))
			}
		}
	}

	return ix
}

// Len returns the number of indexed records.
func (ix *LabelIndex) Len() int { return ix.n }

// Labels returns the indexed label vocabulary, sorted.
func (ix *LabelIndex) Labels() []string {
	out := make([]string, 0, len(ix.bitmaps))
	for l := range ix.bitmaps {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Union returns the set of record ordinals matching any of the given
// labels. Unknown labels contribute nothing.
func (ix *LabelIndex) Union(labels []string) *roaring.Bitmap {
	bms := make([]*roaring.Bitmap, 0, len(labels))
	for _, l := range labels {
		if bm, ok := ix.bitmaps[l]; ok {
			bms = append(bms, bm)
		}
	}
	return roaring.FastOr(bms...)
}
