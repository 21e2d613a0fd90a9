package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mixwise/internal"
	"mixwise/internal/config"
	"mixwise/internal/pipeline"
	"mixwise/internal/storage"
	"mixwise/internal/validate"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "enrich":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.RawCSVPath, "raw dataset path (.csv or .xlsx)")
		output := fs.String("output", cfg.EnrichedCSVPath, "enriched csv output path")
		_ = fs.Parse(os.Args[2:])

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		svc := pipeline.NewEnrichmentService(db, cfg)
		summary, err := svc.Run(*input, *output)
		must(err)
		printSummary(summary, *input, *output, cfg.RemovedPreviewLimit)
	case "validate:ingredients":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		file := fs.String("file", cfg.EnrichedCSVPath, "enriched csv path")
		_ = fs.Parse(os.Args[2:])

		report, err := validate.Ingredients(*file, cfg.MinIngredients, cfg.MaxIngredients)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		report.Print(cfg.MaxErrorsShown, cfg.MaxWarningsShown)
		if !report.OK() {
			os.Exit(1)
		}
	case "validate:slugs":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		file := fs.String("file", cfg.EnrichedCSVPath, "enriched csv path")
		_ = fs.Parse(os.Args[2:])

		report, err := validate.Slugs(*file)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		report.Print()
		if !report.OK() {
			os.Exit(1)
		}
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.EnrichedCSVPath, "enriched csv path")
		out := fs.String("out", filepath.Join(cfg.OutputDir, "cocktails_enriched.xlsx"), "output xlsx path")
		_ = fs.Parse(os.Args[2:])

		rows, err := pipeline.ReadEnrichedCSV(*input)
		must(err)
		must(pipeline.ExportRowsToXLSX(rows, *out))
		fmt.Printf("exported %d rows to %s\n", len(rows), *out)
	case "db:load":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.EnrichedCSVPath, "enriched csv path")
		_ = fs.Parse(os.Args[2:])

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		rows, err := pipeline.ReadEnrichedCSV(*input)
		must(err)
		must(db.UpsertCocktails(rows))
		total, err := db.CocktailCount()
		must(err)
		fmt.Printf("loaded %d cocktails into %s (total %d)\n", len(rows), cfg.DBPath, total)
	default:
		usage()
		os.Exit(1)
	}
}

func printSummary(s internal.RunSummary, input, output string, previewLimit int) {
	fmt.Println("Cocktail Dataset Enrichment")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Loaded %d cocktails from %s\n", s.Loaded, input)
	fmt.Printf("Saved enriched dataset to %s\n", output)
	fmt.Println("\nSummary:")
	fmt.Printf("   Total input:     %d\n", s.Loaded)
	fmt.Printf("   Legitimate:      %d\n", s.Legitimate)
	fmt.Printf("   Junk removed:    %d\n", s.Removed())
	fmt.Printf("   Final dataset:   %d\n", s.Enriched)
	fmt.Println("\nEnrichment complete.")

	if s.Removed() > 0 {
		limit := previewLimit
		if limit > s.Removed() {
			limit = s.Removed()
		}
		fmt.Printf("\nFirst %d removed cocktails:\n", limit)
		for _, name := range s.RemovedNames[:limit] {
			fmt.Printf("   - %s\n", name)
		}
	}
}

func usage() {
	fmt.Println("usage: mixwise <command>")
	fmt.Println("commands:")
	fmt.Println("  enrich [--input=data/cocktails_rows.csv] [--output=data/cocktails_enriched.csv]")
	fmt.Println("  validate:ingredients [--file=data/cocktails_enriched.csv]")
	fmt.Println("  validate:slugs [--file=data/cocktails_enriched.csv]")
	fmt.Println("  export:xlsx [--input=...csv] [--out=out/cocktails_enriched.xlsx]")
	fmt.Println("  db:load [--input=...csv]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
