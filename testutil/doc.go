// Package testutil provides deterministic corpus builders for tests:
// declarative record specs rendered to JSONL, and a seeded generator for
// larger random corpora.
package testutil
