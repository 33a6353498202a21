package server_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sisapp "github.com/mozgsvina/sis-app"
	"github.com/mozgsvina/sis-app/blobstore"
	"github.com/mozgsvina/sis-app/server"
	"github.com/mozgsvina/sis-app/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestServer(t *testing.T, opts server.Options) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	data := testutil.JSONL(
		testutil.RecordSpec{StoryID: "s1", Year: testutil.Year(1920), SoundType: "d", Labels: [][]string{{"nature"}}},
		testutil.RecordSpec{StoryID: "s2", Year: testutil.Year(1950), SoundType: "nd", Labels: [][]string{{"human"}}},
		testutil.RecordSpec{StoryID: "s3", Year: testutil.Year(1999), SoundType: "dnd", Labels: [][]string{{"nature"}}},
		testutil.RecordSpec{StoryID: "s4", SoundType: "d"},
	)
	require.NoError(t, store.Put(ctx, "tumanova.jsonl", data))
	require.NoError(t, store.Put(ctx, "frequencies.csv", testutil.FrequencyCSV(
		[3]string{"nature", "ветер", "12"},
		[3]string{"human", "голос", "20"},
	)))

	exp, err := sisapp.Open(ctx, sisapp.Source{
		Store:          store,
		AnnotationsKey: "tumanova.jsonl",
		FrequenciesKey: "frequencies.csv",
	})
	require.NoError(t, err)

	ts := httptest.NewServer(server.New(exp, opts).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if v != nil {
		require.NoError(t, json.Unmarshal(body, v), "body: %s", body)
	}
	return resp.StatusCode
}

func TestRecords(t *testing.T) {
	ts := newTestServer(t, server.Options{})

	var out struct {
		Matches int `json:"matches"`
		Records []struct {
			StoryID string `json:"story_id"`
		} `json:"records"`
	}
	status := getJSON(t, ts.URL+"/records", &out)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 3, out.Matches) // default span drops the undated record
	require.Len(t, out.Records, 3)
	require.Equal(t, "s1", out.Records[0].StoryID)
}

func TestRecords_Filtered(t *testing.T) {
	ts := newTestServer(t, server.Options{})

	var out struct {
		Matches int `json:"matches"`
	}
	getJSON(t, ts.URL+"/records?year_from=1930&year_to=1960", &out)
	require.Equal(t, 1, out.Matches)

	getJSON(t, ts.URL+"/records?label=nature", &out)
	require.Equal(t, 2, out.Matches)

	getJSON(t, ts.URL+"/records?sound_type=d&sound_type=nd", &out)
	require.Equal(t, 2, out.Matches)
}

func TestRecords_Paged(t *testing.T) {
	ts := newTestServer(t, server.Options{})

	var page struct {
		Matches    int `json:"matches"`
		TotalPages int `json:"total_pages"`
		Page       int `json:"page"`
		Record     *struct {
			StoryID string `json:"story_id"`
		} `json:"record"`
	}

	getJSON(t, ts.URL+"/records?page=2", &page)
	require.Equal(t, 3, page.Matches)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, 2, page.Page)
	require.NotNil(t, page.Record)
	require.Equal(t, "s2", page.Record.StoryID)

	// Out-of-range pages clamp.
	getJSON(t, ts.URL+"/records?page=99", &page)
	require.Equal(t, 3, page.Page)

	status := getJSON(t, ts.URL+"/records?page=abc", nil)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestExport(t *testing.T) {
	ts := newTestServer(t, server.Options{})

	resp, err := http.Get(ts.URL + "/export?format=csv")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	require.Contains(t, resp.Header.Get("Content-Disposition"), "annotations.csv")

	rows, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 3 dated records

	resp, err = http.Get(ts.URL + "/export?format=jsonl&label=nature")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Len(t, strings.Split(string(body), "\n"), 2)
}

func TestExport_BadFormat(t *testing.T) {
	ts := newTestServer(t, server.Options{})
	status := getJSON(t, ts.URL+"/export?format=pdf", nil)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestExport_RateLimited(t *testing.T) {
	ts := newTestServer(t, server.Options{
		ExportLimiter: rate.NewLimiter(rate.Limit(0.001), 2),
	})

	for i := 0; i < 2; i++ {
		status := getJSON(t, ts.URL+"/export?format=csv", nil)
		require.Equal(t, http.StatusOK, status)
	}
	status := getJSON(t, ts.URL+"/export?format=csv", nil)
	require.Equal(t, http.StatusTooManyRequests, status)
}

func TestLabelsAndCategories(t *testing.T) {
	ts := newTestServer(t, server.Options{})

	var labels struct {
		Labels []string `json:"labels"`
	}
	getJSON(t, ts.URL+"/labels", &labels)
	require.Equal(t, []string{"human", "nature"}, labels.Labels)

	var cats struct {
		Categories []string `json:"categories"`
	}
	getJSON(t, ts.URL+"/categories", &cats)
	require.Equal(t, []string{"nature", "human"}, cats.Categories)
}

func TestSummary(t *testing.T) {
	ts := newTestServer(t, server.Options{})

	var out struct {
		Matches int `json:"matches"`
		Volume  []struct {
			Dimension string `json:"dimension"`
			Count     int    `json:"count"`
		} `json:"volume"`
	}
	getJSON(t, ts.URL+"/stats/summary", &out)
	require.Equal(t, 3, out.Matches)
	require.Len(t, out.Volume, 3)
	require.Equal(t, "human", out.Volume[0].Dimension)
	require.Equal(t, 3, out.Volume[0].Count)
}

func TestCharts(t *testing.T) {
	ts := newTestServer(t, server.Options{})

	for _, path := range []string{"/charts/volume-by-type", "/charts/volume-by-year"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, readErr)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		require.Contains(t, string(body), "echarts", path)
	}
}

func TestWordCloud_NotConfigured(t *testing.T) {
	ts := newTestServer(t, server.Options{})
	status := getJSON(t, ts.URL+"/wordcloud.png?category=nature", nil)
	require.Equal(t, http.StatusNotImplemented, status)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, server.Options{})

	var out struct {
		Status  string `json:"status"`
		Records int    `json:"records"`
	}
	status := getJSON(t, ts.URL+"/healthz", &out)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", out.Status)
	require.Equal(t, 4, out.Records)
}
