package corpus

import "sort"

// Vocabulary returns the sorted set union of all token labels across all
// records. It is computed once at load time and offered to the user as the
// label filter choices.
func Vocabulary(records []Record) []string {
	seen := make(map[string]struct{})
	for i := range records {
		for _, tok := range records[i].Annotations.TokenLevel.Labels {
			for _, l := range tok.Labels {
				seen[l] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// YearSpan returns the observed [min, max] year across records that carry
// one. ok is false when no record has a year.
func YearSpan(records []Record) (lo, hi int, ok bool) {
	for i := range records {
		y, has := records[i].Year()
		if !has {
			continue
		}
		if !ok {
			lo, hi, ok = y, y, true
			continue
		}
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	return lo, hi, ok
}
