package corpus

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseFrequencyTable decodes a tabular word-frequency blob. The format is
// chosen by the object name suffix: ".xlsx" is read as a spreadsheet, and
// everything else as comma-separated text.
//
// The first row may be a header; recognized column names are "category",
// "lemma" and "freq" (also "frequency" or "count"). Without a recognizable
// header the columns are taken positionally as (category, lemma, freq).
// Rows with fewer than three cells are skipped; a frequency cell that does
// not parse as a number decodes as 0.
func ParseFrequencyTable(name string, data []byte) ([]FrequencyRow, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".xlsx":
		return parseFrequencyXLSX(data)
	default:
		return parseFrequencyCSV(data)
	}
}

func parseFrequencyXLSX(data []byte) ([]FrequencyRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open frequency spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read frequency sheet %q: %w", sheet, err)
	}

	return frequencyRows(rows), nil
}

func parseFrequencyCSV(data []byte) ([]FrequencyRow, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read frequency csv: %w", err)
	}

	return frequencyRows(rows), nil
}

func frequencyRows(rows [][]string) []FrequencyRow {
	cat, lem, freq := 0, 1, 2
	start := 0

	if len(rows) > 0 && len(rows[0]) >= 3 {
		if c, l, f, ok := headerColumns(rows[0]); ok {
			cat, lem, freq = c, l, f
			start = 1
		}
	}

	var out []FrequencyRow
	for _, row := range rows[start:] {
		maxIdx := cat
		if lem > maxIdx {
			maxIdx = lem
		}
		if freq > maxIdx {
			maxIdx = freq
		}
		if len(row) <= maxIdx {
			continue
		}

		category := strings.TrimSpace(row[cat])
		lemma := strings.TrimSpace(row[lem])
		if category == "" || lemma == "" {
			continue
		}

		out = append(out, FrequencyRow{
			Category: category,
			Lemma:    lemma,
			Freq:     parseCellInt(row[freq]),
		})
	}
	return out
}

func headerColumns(header []string) (cat, lem, freq int, ok bool) {
	cat, lem, freq = -1, -1, -1
	for i, cell := range header {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "category":
			cat = i
		case "lemma":
			lem = i
		case "freq", "frequency", "count":
			freq = i
		}
	}
	if cat < 0 || lem < 0 || freq < 0 {
		return 0, 0, 0, false
	}
	return cat, lem, freq, true
}

func parseCellInt(s string) int {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
