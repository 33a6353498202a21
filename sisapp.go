package sisapp

import (
	"context"
	"fmt"
	"time"

	"github.com/mozgsvina/sis-app/blobstore"
	"github.com/mozgsvina/sis-app/corpus"
	"github.com/mozgsvina/sis-app/filter"
	"github.com/mozgsvina/sis-app/internal/cache"
	"github.com/mozgsvina/sis-app/wordcloud"
	"golang.org/x/sync/errgroup"
)

// Source names the two corpus objects inside a blob store.
type Source struct {
	// Store is the backend the corpus is fetched from.
	Store blobstore.BlobStore

	// AnnotationsKey is the object name of the JSON-lines annotation dump.
	// A compression suffix (.gz/.zst/.lz4) is honored.
	AnnotationsKey string

	// FrequenciesKey is the object name of the word-frequency table
	// (xlsx or csv, optionally compressed). Empty disables the
	// frequency-based views.
	FrequenciesKey string
}

// Explorer holds one loaded corpus and serves read-only views over it.
// The loaded data is immutable; an Explorer is safe for concurrent use.
// Mutable browsing state lives in Session.
type Explorer struct {
	records     []corpus.Record
	frequencies []corpus.FrequencyRow

	vocabulary []string
	yearLo     int
	yearHi     int
	hasYears   bool

	index *filter.LabelIndex

	opts options
}

// Open fetches and decodes the corpus. The two objects are fetched
// concurrently; a failure of either is fatal (no retry, no partial load).
//
// Fetches go through a memoizing cache. By default each Open builds its
// own; pass a shared cache with WithByteCache so re-opening the same
// source in one process does not re-hit the external store.
func Open(ctx context.Context, src Source, optFns ...Option) (*Explorer, error) {
	if src.Store == nil {
		return nil, ErrNoStore
	}
	if src.AnnotationsKey == "" {
		return nil, ErrNoAnnotationsKey
	}

	opts := applyOptions(optFns)
	logger := opts.logger.WithSource(src.AnnotationsKey, src.FrequenciesKey)

	store := src.Store
	if !opts.disableCache {
		bc := opts.byteCache
		if bc == nil {
			bc = cache.NewLRU(opts.cacheCapacity)
		}
		store = blobstore.NewCachingStore(store, bc, storeID(src.Store))
	}

	start := time.Now()

	var (
		records     []corpus.Record
		frequencies []corpus.FrequencyRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := store.Fetch(gctx, src.AnnotationsKey)
		if err != nil {
			return fmt.Errorf("fetch annotations %q: %w", src.AnnotationsKey, err)
		}
		raw, err = blobstore.Decompress(src.AnnotationsKey, raw)
		if err != nil {
			return err
		}
		records, err = corpus.DecodeRecords(raw, opts.codec)
		return err
	})
	if src.FrequenciesKey != "" {
		g.Go(func() error {
			raw, err := store.Fetch(gctx, src.FrequenciesKey)
			if err != nil {
				return fmt.Errorf("fetch frequencies %q: %w", src.FrequenciesKey, err)
			}
			raw, err = blobstore.Decompress(src.FrequenciesKey, raw)
			if err != nil {
				return err
			}
			frequencies, err = corpus.ParseFrequencyTable(
				blobstore.TrimCompressionSuffix(src.FrequenciesKey), raw)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		opts.metricsCollector.RecordLoad(0, time.Since(start), err)
		logger.LogLoad(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}

	exp := &Explorer{
		records:     records,
		frequencies: frequencies,
		vocabulary:  corpus.Vocabulary(records),
		index:       filter.BuildLabelIndex(records),
		opts:        opts,
	}
	exp.yearLo, exp.yearHi, exp.hasYears = corpus.YearSpan(records)

	opts.metricsCollector.RecordLoad(len(records), time.Since(start), nil)
	logger.LogLoad(ctx, len(records), len(frequencies), time.Since(start), nil)

	return exp, nil
}

// storeID derives the cache key prefix for a backend. Stores naming their
// backend via blobstore.Identifier stay distinct inside a shared cache;
// for anything else the dynamic type plus instance address has to do.
func storeID(store blobstore.BlobStore) string {
	if id, ok := store.(blobstore.Identifier); ok {
		return id.StoreID()
	}
	return fmt.Sprintf("%T@%p", store, store)
}

// Records returns all loaded records in corpus order. The slice is shared;
// callers must not mutate it.
func (e *Explorer) Records() []corpus.Record { return e.records }

// Frequencies returns the word-frequency table. The slice is shared;
// callers must not mutate it.
func (e *Explorer) Frequencies() []corpus.FrequencyRow { return e.frequencies }

// Vocabulary returns the sorted union of all token labels, computed once
// at load time.
func (e *Explorer) Vocabulary() []string { return e.vocabulary }

// YearSpan returns the observed [min, max] year. ok is false when no
// record carries a year.
func (e *Explorer) YearSpan() (lo, hi int, ok bool) {
	return e.yearLo, e.yearHi, e.hasYears
}

// Categories returns the distinct word-cloud categories of the frequency
// table in first-seen order.
func (e *Explorer) Categories() []string {
	return wordcloud.Categories(e.frequencies)
}

// DefaultFilter returns the no-restriction configuration the UI starts
// from: the full observed year span, all sound types, full volume scales,
// and no label selection.
//
// Note that even this configuration excludes records without a year; the
// year slider always constrains to the observed span.
func (e *Explorer) DefaultFilter() filter.Config {
	cfg := filter.Config{}
	if e.hasYears {
		cfg.Years = &filter.YearRange{Start: e.yearLo, End: e.yearHi}
	}
	return cfg
}

// Filter evaluates cfg over the full corpus and returns the ordered
// matching subsequence.
func (e *Explorer) Filter(cfg filter.Config) []corpus.Record {
	start := time.Now()
	matched := filter.Apply(e.records, e.index, cfg)
	e.opts.metricsCollector.RecordFilter(len(matched), time.Since(start))
	e.opts.logger.LogFilter(context.Background(), len(e.records), len(matched), time.Since(start))
	return matched
}

// WordCloudInput returns the lemma -> frequency mapping for one category.
// Returns wordcloud.ErrNoData when the category has no rows.
func (e *Explorer) WordCloudInput(category string) (map[string]int, error) {
	return wordcloud.BuildInput(e.frequencies, category)
}

// NewSession creates a browsing session starting from the default filter
// at page 1.
func (e *Explorer) NewSession() *Session {
	return e.NewSessionWith(e.DefaultFilter())
}

// NewSessionWith creates a browsing session starting from cfg at page 1.
func (e *Explorer) NewSessionWith(cfg filter.Config) *Session {
	s := &Session{exp: e}
	s.SetFilter(cfg)
	return s
}
