// Package corpus defines the annotation data model and the decoders that
// turn fetched blobs into in-memory records.
//
// A corpus consists of two immutable inputs:
//
//   - A line-delimited JSON file of per-paragraph annotation records
//     (one Record per line).
//   - A tabular word-frequency file (xlsx or csv) of FrequencyRow entries.
//
// Both are decoded once per session and never written back. Decoding applies
// the same cleaning the upstream annotation pipeline relies on: sound types
// are whitespace-trimmed, rows with a zero/unknown sound type are dropped,
// and numeric fields that arrive in a non-integral form (floats from
// spreadsheet exports, quoted numbers) are normalized to integers.
package corpus
