package validate

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCheckSlug(t *testing.T) {
	cases := []struct {
		slug string
		errs []string
	}{
		{"old-fashioned", nil},
		{"b52", nil},
		{"margarita-9", nil},
		{"Old-Fashioned", []string{
			"contains uppercase letters",
			"is not URL-safe (use only lowercase letters, numbers, and hyphens)",
		}},
		{"old_fashioned", []string{
			"is not URL-safe (use only lowercase letters, numbers, and hyphens)",
		}},
		{"-old-fashioned", []string{
			"has leading or trailing hyphens",
		}},
		{"old-fashioned-", []string{
			"has leading or trailing hyphens",
		}},
		{"old--fashioned", nil},
	}

	for _, tc := range cases {
		got := CheckSlug(tc.slug)
		if !reflect.DeepEqual(got, tc.errs) {
			t.Errorf("CheckSlug(%q) = %v, want %v", tc.slug, got, tc.errs)
		}
	}
}

func TestSlugsReport(t *testing.T) {
	tmp := t.TempDir()
	csv := "id,name,slug\n" +
		"1,Margarita,margarita\n" +
		"2,Margarita Too,margarita\n" +
		"3,Nameless,\n" +
		"4,Double Dash,double--dash\n" +
		"5,Margarita Three,margarita\n"
	path := filepath.Join(tmp, "enriched.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := Slugs(path)
	if err != nil {
		t.Fatal(err)
	}

	// The empty slug errors and is excluded from the totals.
	if report.Total != 4 {
		t.Fatalf("Total = %d, want 4", report.Total)
	}
	if report.Unique != 2 {
		t.Fatalf("Unique = %d, want 2", report.Unique)
	}
	if len(report.Errors) != 1 || report.Errors[0] != "Line 4: Empty slug for cocktail 'Nameless'" {
		t.Fatalf("Errors = %v", report.Errors)
	}
	if len(report.Warnings) != 1 || report.Warnings[0] != "Line 5: Slug 'double--dash' contains consecutive hyphens" {
		t.Fatalf("Warnings = %v", report.Warnings)
	}
	if len(report.Duplicates) != 1 || report.Duplicates[0] != (SlugCount{Slug: "margarita", Count: 3}) {
		t.Fatalf("Duplicates = %v", report.Duplicates)
	}
	if report.OK() {
		t.Fatal("expected report to fail")
	}
}

func TestSlugsAllValid(t *testing.T) {
	tmp := t.TempDir()
	csv := "id,name,slug\n" +
		"1,Martini,martini\n" +
		"2,Old Fashioned,old-fashioned\n"
	path := filepath.Join(tmp, "enriched.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := Slugs(path)
	if err != nil {
		t.Fatal(err)
	}
	if !report.OK() {
		t.Fatalf("expected clean report: %+v", report)
	}
	if report.Total != 2 || report.Unique != 2 {
		t.Fatalf("Total = %d, Unique = %d", report.Total, report.Unique)
	}
}
