// Package filter implements the record filter engine: a conjunction of
// independent predicates (year range, sound type, volume ranges, label
// membership) evaluated over the in-memory corpus.
//
// Every predicate is skippable by its "no restriction" value, filtering
// preserves the original record order, and no configuration can fail: a
// record that lacks a field required by an active predicate is excluded,
// never an error.
//
// Label membership is evaluated through a Roaring-bitmap inverted index
// built once at load time (label -> set of record ordinals).
package filter
