package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/mozgsvina/sis-app/stats"
)

// volumeDims is the series order of every volume chart.
var volumeDims = []string{"human", "nature", "artificial"}

// handleVolumeByType renders the average-volume-per-sound-type bar chart
// over the currently filtered subset.
func (s *Server) handleVolumeByType(w http.ResponseWriter, r *http.Request) {
	records := s.exp.Filter(s.filterFromQuery(r))
	rows := stats.MeanVolumeBySoundType(records)

	xAxis := make([]string, 0, len(rows))
	series := map[string][]opts.BarData{}
	for _, row := range rows {
		xAxis = append(xAxis, string(row.SoundType))
		series["human"] = append(series["human"], opts.BarData{Value: round2(row.Human)})
		series["nature"] = append(series["nature"], opts.BarData{Value: round2(row.Nature)})
		series["artificial"] = append(series["artificial"], opts.BarData{Value: round2(row.Artificial)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Average Sound Volume by Sound Type",
			Subtitle: fmt.Sprintf("%d paragraphs", len(records)),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Volume (0-4)"}),
	)
	bar.SetXAxis(xAxis)
	for _, dim := range volumeDims {
		bar.AddSeries(dim, series[dim])
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := bar.Render(w); err != nil {
		s.logger.ErrorContext(r.Context(), "chart render failed", "chart", "volume-by-type", "error", err)
	}
}

// handleVolumeByYear renders the volume-trends-over-time line chart over
// the currently filtered subset.
func (s *Server) handleVolumeByYear(w http.ResponseWriter, r *http.Request) {
	records := s.exp.Filter(s.filterFromQuery(r))
	rows := stats.MeanVolumeByYear(records)

	xAxis := make([]string, 0, len(rows))
	series := map[string][]opts.LineData{}
	for _, row := range rows {
		xAxis = append(xAxis, strconv.Itoa(row.Year))
		series["human"] = append(series["human"], opts.LineData{Value: round2(row.Human)})
		series["nature"] = append(series["nature"], opts.LineData{Value: round2(row.Nature)})
		series["artificial"] = append(series["artificial"], opts.LineData{Value: round2(row.Artificial)})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Sound Volume Trends Over Time",
			Subtitle: fmt.Sprintf("%d paragraphs", len(records)),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Volume (0-4)"}),
	)
	line.SetXAxis(xAxis)
	for _, dim := range volumeDims {
		line.AddSeries(dim, series[dim])
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(w); err != nil {
		s.logger.ErrorContext(r.Context(), "chart render failed", "chart", "volume-by-year", "error", err)
	}
}

// handleSummary returns descriptive statistics of the filtered subset.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	records := s.exp.Filter(s.filterFromQuery(r))
	s.writeJSON(w, http.StatusOK, struct {
		Matches int             `json:"matches"`
		Volume  []stats.Summary `json:"volume"`
	}{
		Matches: len(records),
		Volume:  stats.Describe(records),
	})
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
