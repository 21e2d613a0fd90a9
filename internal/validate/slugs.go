package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var reURLSafe = regexp.MustCompile(`^[a-z0-9-]+$`)

// CheckSlug returns every format violation for one slug; checks do not
// short-circuit, so a bad slug can carry multiple errors. Emptiness is
// handled at the row level.
func CheckSlug(slug string) []string {
	var errs []string
	if slug != strings.ToLower(slug) {
		errs = append(errs, "contains uppercase letters")
	}
	if !reURLSafe.MatchString(slug) {
		errs = append(errs, "is not URL-safe (use only lowercase letters, numbers, and hyphens)")
	}
	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		errs = append(errs, "has leading or trailing hyphens")
	}
	return errs
}

type SlugCount struct {
	Slug  string
	Count int
}

type SlugReport struct {
	File       string
	Total      int
	Unique     int
	Errors     []string
	Warnings   []string
	Duplicates []SlugCount
}

func (r SlugReport) OK() bool {
	return len(r.Errors) == 0 && len(r.Duplicates) == 0
}

// Slugs scans the enriched CSV, checking slug format per row and slug
// uniqueness across the whole file.
func Slugs(path string) (SlugReport, error) {
	rows, err := readRows(path)
	if err != nil {
		return SlugReport{File: path}, err
	}

	report := SlugReport{File: path}
	var slugs []string
	for i, row := range rows {
		line := i + 2 // header is line 1
		slug := strings.TrimSpace(row["slug"])
		name := strings.TrimSpace(row["name"])

		if slug == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("Line %d: Empty slug for cocktail '%s'", line, name))
			continue
		}

		for _, reason := range CheckSlug(slug) {
			report.Errors = append(report.Errors, fmt.Sprintf("Line %d: Slug '%s' %s", line, slug, reason))
		}
		if strings.Contains(slug, "--") {
			report.Warnings = append(report.Warnings, fmt.Sprintf("Line %d: Slug '%s' contains consecutive hyphens", line, slug))
		}

		slugs = append(slugs, slug)
	}

	report.Total = len(slugs)
	counts := make(map[string]int, len(slugs))
	for _, slug := range slugs {
		counts[slug]++
	}
	report.Unique = len(counts)

	// First-appearance order, each duplicate reported once.
	reported := map[string]bool{}
	for _, slug := range slugs {
		if counts[slug] > 1 && !reported[slug] {
			reported[slug] = true
			report.Duplicates = append(report.Duplicates, SlugCount{Slug: slug, Count: counts[slug]})
		}
	}

	return report, nil
}

func (r SlugReport) Print() {
	fmt.Println("Slug Uniqueness Validator")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Validating: %s\n\n", r.File)

	fmt.Printf("Total slugs checked: %d\n", r.Total)
	fmt.Printf("Unique slugs: %d\n", r.Unique)

	if len(r.Errors) > 0 {
		fmt.Printf("\nFound %d error(s):\n", len(r.Errors))
		for _, msg := range r.Errors {
			fmt.Printf("   %s\n", msg)
		}
	}

	if len(r.Duplicates) > 0 {
		fmt.Println("\nDuplicate slugs found:")
		for _, dup := range r.Duplicates {
			fmt.Printf("   '%s' appears %d times\n", dup.Slug, dup.Count)
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("\nFound %d warning(s):\n", len(r.Warnings))
		for _, msg := range r.Warnings {
			fmt.Printf("   %s\n", msg)
		}
	}

	if r.OK() {
		fmt.Println("\nAll slugs are valid and unique.")
	} else {
		fmt.Println("\nValidation failed. Fix the errors above.")
	}
}
