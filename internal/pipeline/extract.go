package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"mixwise/internal"
)

// LoadRawRecords reads the source dataset from a CSV or XLSX export,
// mapping columns by header name. Only id and name are required.
func LoadRawRecords(path string) ([]internal.RawRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return loadRawXLSX(path)
	default:
		return loadRawCSV(path)
	}
}

func loadRawCSV(path string) ([]internal.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty csv: %s", path)
	}

	return rowsToRecords(rows[0], rows[1:])
}

func loadRawXLSX(path string) ([]internal.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty sheet in %s", path)
	}

	return rowsToRecords(rows[0], rows[1:])
}

func rowsToRecords(header []string, rows [][]string) ([]internal.RawRecord, error) {
	index := map[string]int{}
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	if _, ok := index["id"]; !ok {
		return nil, fmt.Errorf("missing required column: id")
	}
	if _, ok := index["name"]; !ok {
		return nil, fmt.Errorf("missing required column: name")
	}

	pick := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	out := make([]internal.RawRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, internal.RawRecord{
			ID:           pick(row, "id"),
			Name:         pick(row, "name"),
			ImageURL:     pick(row, "image_url"),
			Glass:        pick(row, "glass"),
			Instructions: pick(row, "instructions"),
		})
	}
	return out, nil
}
