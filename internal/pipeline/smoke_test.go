package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"mixwise/internal/config"
	"mixwise/internal/storage"
	"mixwise/internal/validate"
)

func TestSmokeEnrichToValidators(t *testing.T) {
	tmp := t.TempDir()

	raw := "id,name,image_url,glass,instructions\n" +
		"1,Martini,,Cocktail glass,Stir with ice. Strain into chilled glass.\n" +
		"2,Brain Fart,,,\n" +
		"3,Old Fashioned,,Old-fashioned glass,\n"
	input := filepath.Join(tmp, "cocktails_rows.csv")
	if err := os.WriteFile(input, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	db, err := storage.Open(filepath.Join(tmp, "app.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	cfg, _ := config.Load()
	output := filepath.Join(tmp, "cocktails_enriched.csv")
	svc := NewEnrichmentService(db, cfg)
	summary, err := svc.Run(input, output)
	if err != nil {
		t.Fatal(err)
	}

	if summary.Loaded != 3 || summary.Legitimate != 2 || summary.Removed() != 1 || summary.Enriched != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(summary.RemovedNames) != 1 || summary.RemovedNames[0] != "Brain Fart" {
		t.Fatalf("unexpected removed names: %v", summary.RemovedNames)
	}

	rows, err := ReadEnrichedCSV(output)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 enriched rows, got %d", len(rows))
	}
	if rows[0].Name != "Martini" || rows[1].Name != "Old Fashioned" {
		t.Fatalf("input order not preserved: %q, %q", rows[0].Name, rows[1].Name)
	}
	for _, row := range rows {
		if row.Slug == "" || row.Ingredients == "" || row.BaseSpirit == "" {
			t.Fatalf("row %q has empty derived fields: %+v", row.Name, row)
		}
	}

	ingredientReport, err := validate.Ingredients(output, cfg.MinIngredients, cfg.MaxIngredients)
	if err != nil {
		t.Fatal(err)
	}
	if !ingredientReport.OK() {
		t.Fatalf("ingredient validation failed: %v", ingredientReport.Errors)
	}

	slugReport, err := validate.Slugs(output)
	if err != nil {
		t.Fatal(err)
	}
	if !slugReport.OK() {
		t.Fatalf("slug validation failed: %v %v", slugReport.Errors, slugReport.Duplicates)
	}

	// Round-trip the enriched rows through the sqlite store and the
	// xlsx exporter.
	if err := db.UpsertCocktails(rows); err != nil {
		t.Fatal(err)
	}
	count, err := db.CocktailCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("expected 2 cocktails in store, got %d", count)
	}

	xlsxOut := filepath.Join(tmp, "cocktails_enriched.xlsx")
	if err := ExportRowsToXLSX(rows, xlsxOut); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(xlsxOut); err != nil {
		t.Fatal(err)
	}
}

func TestSlugDedupAcrossRun(t *testing.T) {
	tmp := t.TempDir()

	raw := "id,name\n" +
		"5,Margarita\n" +
		"9,MARGARITA\n"
	input := filepath.Join(tmp, "rows.csv")
	if err := os.WriteFile(input, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _ := config.Load()
	output := filepath.Join(tmp, "enriched.csv")
	svc := NewEnrichmentService(nil, cfg)
	summary, err := svc.Run(input, output)
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Renames) != 1 {
		t.Fatalf("expected 1 rename, got %+v", summary.Renames)
	}

	rows, err := ReadEnrichedCSV(output)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Slug != "margarita" {
		t.Fatalf("first slug = %q", rows[0].Slug)
	}
	if rows[1].Slug != "margarita-9" {
		t.Fatalf("second slug = %q", rows[1].Slug)
	}
}

func TestRunMissingInput(t *testing.T) {
	cfg, _ := config.Load()
	svc := NewEnrichmentService(nil, cfg)
	if _, err := svc.Run(filepath.Join(t.TempDir(), "missing.csv"), filepath.Join(t.TempDir(), "out.csv")); err == nil {
		t.Fatal("expected error for missing input file")
	}
}
