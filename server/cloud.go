package server

import (
	"errors"
	"fmt"
	"image/png"
	"net/http"

	"github.com/mozgsvina/sis-app/wordcloud"
)

// handleWordCloud renders the frequency cloud of one category as PNG.
// An unknown or empty category yields a "no data" response, not an error.
func (s *Server) handleWordCloud(w http.ResponseWriter, r *http.Request) {
	if s.renderer == nil {
		s.writeError(w, http.StatusNotImplemented, fmt.Errorf("word-cloud rendering is not configured"))
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("category is required"))
		return
	}

	input, err := s.exp.WordCloudInput(category)
	if err != nil {
		if errors.Is(err, wordcloud.ErrNoData) {
			s.writeJSON(w, http.StatusNotFound, struct {
				Error    string `json:"error"`
				Category string `json:"category"`
			}{Error: "no data for category", Category: category})
			s.logger.LogRender(r.Context(), category, 0, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	img, err := s.renderer.Render(input)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		s.logger.LogRender(r.Context(), category, len(input), err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		s.logger.ErrorContext(r.Context(), "png encode failed", "category", category, "error", err)
		return
	}
	s.logger.LogRender(r.Context(), category, len(input), nil)
}
