package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"mixwise/internal"
)

// EnrichedColumns is the output schema, in exact column order.
var EnrichedColumns = []string{
	"id", "slug", "name", "short_description", "long_description", "seo_description",
	"base_spirit", "category_primary", "categories_all", "tags", "image_url", "image_alt",
	"glassware", "garnish", "technique", "difficulty", "flavor_strength", "flavor_sweetness",
	"flavor_tartness", "flavor_bitterness", "flavor_aroma", "flavor_texture", "notes",
	"fun_fact", "fun_fact_source", "metadata_json", "ingredients", "instructions",
}

func recordValues(r internal.EnrichedRecord) []string {
	return []string{
		r.ID, r.Slug, r.Name, r.ShortDescription, r.LongDescription, r.SEODescription,
		r.BaseSpirit, r.CategoryPrimary, r.CategoriesAll, r.Tags, r.ImageURL, r.ImageAlt,
		r.Glassware, r.Garnish, r.Technique, r.Difficulty,
		strconv.Itoa(r.FlavorStrength), strconv.Itoa(r.FlavorSweetness),
		strconv.Itoa(r.FlavorTartness), strconv.Itoa(r.FlavorBitterness),
		strconv.Itoa(r.FlavorAroma), strconv.Itoa(r.FlavorTexture),
		r.Notes, r.FunFact, r.FunFactSource, r.MetadataJSON, r.Ingredients, r.Instructions,
	}
}

func WriteEnrichedCSV(rows []internal.EnrichedRecord, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(EnrichedColumns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(recordValues(row)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadEnrichedCSV loads a previously written enriched dataset, mapping
// columns by header so hand-edited files round-trip.
func ReadEnrichedCSV(path string) ([]internal.EnrichedRecord, error) {
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

	index := map[string]int{}
	for i, col := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	pick := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}
	pickInt := func(row []string, col string) int {
		n, _ := strconv.Atoi(strings.TrimSpace(pick(row, col)))
		return n
	}

	out := make([]internal.EnrichedRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out = append(out, internal.EnrichedRecord{
			ID:               pick(row, "id"),
			Slug:             pick(row, "slug"),
			Name:             pick(row, "name"),
			ShortDescription: pick(row, "short_description"),
			LongDescription:  pick(row, "long_description"),
			SEODescription:   pick(row, "seo_description"),
			BaseSpirit:       pick(row, "base_spirit"),
			CategoryPrimary:  pick(row, "category_primary"),
			CategoriesAll:    pick(row, "categories_all"),
			Tags:             pick(row, "tags"),
			ImageURL:         pick(row, "image_url"),
			ImageAlt:         pick(row, "image_alt"),
			Glassware:        pick(row, "glassware"),
			Garnish:          pick(row, "garnish"),
			Technique:        pick(row, "technique"),
			Difficulty:       pick(row, "difficulty"),
			FlavorStrength:   pickInt(row, "flavor_strength"),
			FlavorSweetness:  pickInt(row, "flavor_sweetness"),
			FlavorTartness:   pickInt(row, "flavor_tartness"),
			FlavorBitterness: pickInt(row, "flavor_bitterness"),
			FlavorAroma:      pickInt(row, "flavor_aroma"),
			FlavorTexture:    pickInt(row, "flavor_texture"),
			Notes:            pick(row, "notes"),
			FunFact:          pick(row, "fun_fact"),
			FunFactSource:    pick(row, "fun_fact_source"),
			MetadataJSON:     pick(row, "metadata_json"),
			Ingredients:      pick(row, "ingredients"),
			Instructions:     pick(row, "instructions"),
		})
	}
	return out, nil
}

// ExportRowsToXLSX writes the enriched dataset as a single-sheet
// workbook with the same columns as the CSV.
func ExportRowsToXLSX(rows []internal.EnrichedRecord, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range EnrichedColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.ID)
		set(2, row.Slug)
		set(3, row.Name)
		set(4, row.ShortDescription)
		set(5, row.LongDescription)
		set(6, row.SEODescription)
		set(7, row.BaseSpirit)
		set(8, row.CategoryPrimary)
		set(9, row.CategoriesAll)
		set(10, row.Tags)
		set(11, row.ImageURL)
		set(12, row.ImageAlt)
		set(13, row.Glassware)
		set(14, row.Garnish)
		set(15, row.Technique)
		set(16, row.Difficulty)
		set(17, row.FlavorStrength)
		set(18, row.FlavorSweetness)
		set(19, row.FlavorTartness)
		set(20, row.FlavorBitterness)
		set(21, row.FlavorAroma)
		set(22, row.FlavorTexture)
		set(23, row.Notes)
		set(24, row.FunFact)
		set(25, row.FunFactSource)
		set(26, row.MetadataJSON)
		set(27, row.Ingredients)
		set(28, row.Instructions)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
