package pipeline

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"mixwise/internal"
	"mixwise/internal/config"
	"mixwise/internal/storage"
)

// EnrichmentService runs the full curation pass: load, classify,
// enrich, dedup slugs, write. The db is optional; when present each
// run records an audit row.
type EnrichmentService struct {
	db  *storage.DB
	cfg config.Config
}

func NewEnrichmentService(db *storage.DB, cfg config.Config) *EnrichmentService {
	return &EnrichmentService{db: db, cfg: cfg}
}

func (s *EnrichmentService) Run(inputPath, outputPath string) (internal.RunSummary, error) {
	start := time.Now()

	rows, err := LoadRawRecords(inputPath)
	if err != nil {
		return internal.RunSummary{}, err
	}

	summary := internal.RunSummary{Loaded: len(rows)}
	kept := make([]internal.RawRecord, 0, len(rows))
	for _, row := range rows {
		if IsLegitimate(row.Name) {
			kept = append(kept, row)
		} else {
			summary.RemovedNames = append(summary.RemovedNames, strings.TrimSpace(row.Name))
		}
	}
	summary.Legitimate = len(kept)

	registry := NewSlugRegistry()
	enriched := make([]internal.EnrichedRecord, 0, len(kept))
	for _, row := range kept {
		record, err := Enrich(row)
		if err != nil {
			fmt.Printf("warning: failed to enrich %q: %v\n", row.Name, err)
			continue
		}

		final, renamed := registry.Claim(record.Slug, record.ID)
		if renamed {
			fmt.Printf("duplicate slug %q renamed to %q\n", record.Slug, final)
			summary.Renames = append(summary.Renames, internal.SlugRename{From: record.Slug, To: final, ID: record.ID})
			record.Slug = final
		}
		enriched = append(enriched, record)
	}
	summary.Enriched = len(enriched)

	if err := WriteEnrichedCSV(enriched, outputPath); err != nil {
		return summary, err
	}

	if s.db != nil {
		counts := map[string]int{
			"loaded":     summary.Loaded,
			"legitimate": summary.Legitimate,
			"removed":    summary.Removed(),
			"enriched":   summary.Enriched,
			"renamed":    len(summary.Renames),
		}
		timings := map[string]float64{"totalMs": float64(time.Since(start).Milliseconds())}
		if err := s.db.InsertRun(traceID(), inputPath, timings, counts); err != nil {
			fmt.Printf("warning: failed to record run: %v\n", err)
		}
	}

	return summary, nil
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
