// Package server exposes the explorer over HTTP: filtered record browsing,
// bounded exports, aggregation charts, and word-cloud images.
//
// Every request re-evaluates the filter from its query parameters against
// the loaded corpus; the only cross-request state is the corpus itself.
package server

import (
	"fmt"
	"net/http"
	"strconv"

	sisapp "github.com/mozgsvina/sis-app"
	"github.com/mozgsvina/sis-app/codec"
	"github.com/mozgsvina/sis-app/corpus"
	"github.com/mozgsvina/sis-app/export"
	"github.com/mozgsvina/sis-app/filter"
	"github.com/mozgsvina/sis-app/wordcloud"
	"golang.org/x/time/rate"
)

// Options configures the HTTP server.
type Options struct {
	// Renderer draws word-cloud images; nil disables /wordcloud.png.
	Renderer *wordcloud.Renderer

	// ExportLimiter throttles the export endpoint; nil means unlimited.
	ExportLimiter *rate.Limiter

	// Codec serializes JSON responses. Nil uses codec.Default.
	Codec codec.Codec

	// Logger defaults to the noop logger.
	Logger *sisapp.Logger
}

// Server serves the dashboard endpoints for one loaded corpus.
type Server struct {
	exp      *sisapp.Explorer
	renderer *wordcloud.Renderer
	limiter  *rate.Limiter
	codec    codec.Codec
	logger   *sisapp.Logger
}

// New creates a Server over an opened Explorer.
func New(exp *sisapp.Explorer, opts Options) *Server {
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	if opts.Logger == nil {
		opts.Logger = sisapp.NoopLogger()
	}
	return &Server{
		exp:      exp,
		renderer: opts.Renderer,
		limiter:  opts.ExportLimiter,
		codec:    opts.Codec,
		logger:   opts.Logger,
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /records", s.handleRecords)
	mux.HandleFunc("GET /export", s.handleExport)
	mux.HandleFunc("GET /labels", s.handleLabels)
	mux.HandleFunc("GET /categories", s.handleCategories)
	mux.HandleFunc("GET /stats/summary", s.handleSummary)
	mux.HandleFunc("GET /charts/volume-by-type", s.handleVolumeByType)
	mux.HandleFunc("GET /charts/volume-by-year", s.handleVolumeByYear)
	mux.HandleFunc("GET /wordcloud.png", s.handleWordCloud)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return mux
}

// recordPage is the JSON shape of a paged record listing.
type recordPage struct {
	Matches    int            `json:"matches"`
	TotalPages int            `json:"total_pages"`
	Page       int            `json:"page"`
	Record     *corpus.Record `json:"record,omitempty"`
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	cfg := s.filterFromQuery(r)
	sess := s.exp.NewSessionWith(cfg)

	q := r.URL.Query()
	if q.Has("page") {
		page, err := strconv.Atoi(q.Get("page"))
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("bad page: %w", err))
			return
		}
		sess.GoTo(page)

		rec, _ := sess.Current()
		s.writeJSON(w, http.StatusOK, recordPage{
			Matches:    sess.Matches(),
			TotalPages: sess.TotalPages(),
			Page:       sess.Page(),
			Record:     rec,
		})
		return
	}

	s.writeJSON(w, http.StatusOK, struct {
		Matches int             `json:"matches"`
		Records []corpus.Record `json:"records"`
	}{
		Matches: sess.Matches(),
		Records: sess.Records(),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if s.limiter != nil && !s.limiter.Allow() {
		s.writeError(w, http.StatusTooManyRequests, fmt.Errorf("export rate exceeded"))
		return
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	sess := s.exp.NewSessionWith(s.filterFromQuery(r))

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="annotations.`+string(format)+`"`)

	if err := sess.Export(w, format); err != nil {
		// Headers are gone; all we can do is log.
		s.logger.ErrorContext(r.Context(), "export write failed", "error", err)
	}
}

func (s *Server) handleLabels(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, struct {
		Labels []string `json:"labels"`
	}{Labels: s.exp.Vocabulary()})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, struct {
		Categories []string `json:"categories"`
	}{Categories: s.exp.Categories()})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, struct {
		Status  string `json:"status"`
		Records int    `json:"records"`
	}{Status: "ok", Records: len(s.exp.Records())})
}

// filterFromQuery builds a filter configuration from query parameters.
// Absent parameters keep their no-restriction defaults; the year range
// defaults to the full observed span.
func (s *Server) filterFromQuery(r *http.Request) filter.Config {
	q := r.URL.Query()
	cfg := s.exp.DefaultFilter()

	if cfg.Years != nil {
		if v, err := strconv.Atoi(q.Get("year_from")); err == nil {
			cfg.Years.Start = v
		}
		if v, err := strconv.Atoi(q.Get("year_to")); err == nil {
			cfg.Years.End = v
		}
	}

	for _, st := range q["sound_type"] {
		if t := corpus.SoundType(st); t.Valid() {
			cfg.SoundTypes = append(cfg.SoundTypes, t)
		}
	}

	cfg.Human = volumeRangeFromQuery(q.Get("human_min"), q.Get("human_max"))
	cfg.Nature = volumeRangeFromQuery(q.Get("nature_min"), q.Get("nature_max"))
	cfg.Artificial = volumeRangeFromQuery(q.Get("artificial_min"), q.Get("artificial_max"))

	cfg.Labels = append(cfg.Labels, q["label"]...)

	return cfg
}

func volumeRangeFromQuery(minS, maxS string) *filter.VolumeRange {
	vr := filter.FullVolumeRange
	set := false
	if v, err := strconv.Atoi(minS); err == nil {
		vr.Lo = v
		set = true
	}
	if v, err := strconv.Atoi(maxS); err == nil {
		vr.Hi = v
		set = true
	}
	if !set {
		return nil
	}
	return &vr
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := s.codec.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, struct {
		Error string `json:"error"`
	}{Error: err.Error()})
}
