// Package sisapp provides the exploration engine for a sound-annotated
// corpus of short stories.
//
// An Explorer loads two immutable inputs from blob storage once per
// process (a JSON-lines file of per-paragraph annotation records and a
// tabular word-frequency file) and serves read-only views over them:
// predicate filtering, single-record pagination, bounded CSV/JSONL export,
// volume aggregations, and word-cloud inputs.
//
// # Quick Start
//
//	store, err := s3.NewStoreFromEnv(ctx, "eu-central-1", "sis-annotation", "")
//	if err != nil { ... }
//
//	exp, err := sisapp.Open(ctx, sisapp.Source{
//	    Store:          store,
//	    AnnotationsKey: "tumanova.jsonl",
//	    FrequenciesKey: "frequencies.xlsx",
//	}, sisapp.WithLogLevel(slog.LevelInfo))
//	if err != nil { ... }
//
//	sess := exp.NewSession()
//	sess.SetFilter(filter.Config{
//	    Years:      &filter.YearRange{Start: 1930, End: 1960},
//	    SoundTypes: []corpus.SoundType{corpus.SoundDiegetic},
//	})
//	rec, ok := sess.Current()
//
// Fetches are memoized for the process lifetime; repeat opens against the
// same objects never re-hit the external store. Remote failures during Open
// are fatal to the session: there is no retry policy and no partial
// degradation.
package sisapp
