// Package validate holds the post-hoc checks that run against an
// already-written enriched dataset. Each validator re-reads the file
// itself so it can run independently of the enricher.
package validate

import (
	"encoding/csv"
	"os"
	"strings"
)

func readRows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	raw, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	header := make([]string, len(raw[0]))
	for i, col := range raw[0] {
		header[i] = strings.ToLower(strings.TrimSpace(col))
	}

	out := make([]map[string]string, 0, len(raw)-1)
	for _, row := range raw[1:] {
		m := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				m[col] = row[i]
			}
		}
		out = append(out, m)
	}
	return out, nil
}
