package sisapp

import (
	"context"
	"io"

	"github.com/mozgsvina/sis-app/corpus"
	"github.com/mozgsvina/sis-app/export"
	"github.com/mozgsvina/sis-app/filter"
)

// Session is the per-user browsing state: the current filter configuration
// and the pagination position over its result. Page size is fixed at one
// record.
//
// A Session is owned by a single interaction loop and is not safe for
// concurrent use; the Explorer it reads from is.
type Session struct {
	exp      *Explorer
	cfg      filter.Config
	filtered []corpus.Record
	page     int // 1-based, clamped to [1, TotalPages()]
}

// SetFilter replaces the filter configuration, re-evaluates it, and resets
// the position to page 1.
func (s *Session) SetFilter(cfg filter.Config) {
	s.cfg = cfg
	s.filtered = s.exp.Filter(cfg)
	s.page = 1
}

// Filter returns the active filter configuration.
func (s *Session) Filter() filter.Config { return s.cfg }

// Records returns the filtered subset in corpus order. The slice is shared;
// callers must not mutate it.
func (s *Session) Records() []corpus.Record { return s.filtered }

// Matches returns the number of records satisfying the active filter.
func (s *Session) Matches() int { return len(s.filtered) }

// TotalPages returns the page count. An empty result still has one
// (empty) page so the position stays well-defined.
func (s *Session) TotalPages() int {
	if len(s.filtered) == 0 {
		return 1
	}
	return len(s.filtered)
}

// Page returns the current 1-based page index.
func (s *Session) Page() int { return s.page }

// Current returns the record at the current page. ok is false when the
// filtered set is empty.
func (s *Session) Current() (*corpus.Record, bool) {
	if len(s.filtered) == 0 {
		return nil, false
	}
	return &s.filtered[s.page-1], true
}

// Next advances one page. Navigating past the last page is a no-op.
func (s *Session) Next() {
	if s.page < s.TotalPages() {
		s.page++
	}
}

// Prev goes back one page. Navigating before page 1 is a no-op.
func (s *Session) Prev() {
	if s.page > 1 {
		s.page--
	}
}

// GoTo jumps to the given page, clamped to [1, TotalPages()].
func (s *Session) GoTo(page int) {
	if page < 1 {
		page = 1
	}
	if tp := s.TotalPages(); page > tp {
		page = tp
	}
	s.page = page
}

// Export serializes up to export.Limit filtered records to w in the given
// format, preserving order.
func (s *Session) Export(w io.Writer, f export.Format) error {
	n := len(s.filtered)
	if n > export.Limit {
		n = export.Limit
	}
	err := export.Write(w, f, s.filtered, s.exp.opts.codec)
	s.exp.opts.metricsCollector.RecordExport(string(f), n, err)
	s.exp.opts.logger.LogExport(context.Background(), string(f), n, err)
	return err
}
