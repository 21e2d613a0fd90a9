package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckIngredient(t *testing.T) {
	cases := []struct {
		token  string
		valid  bool
		reason string
	}{
		{"2 oz gin", true, ""},
		{"Lemon twist", true, ""},
		{"  0.5 oz dry vermouth  ", true, ""},
		{"", false, "Empty ingredient"},
		{"   ", false, "Empty ingredient"},
		{"gin???", false, "Contains '???'"},
		{"null", false, "Invalid null value"},
		{"None", false, "Invalid null value"},
		{"a", false, "Too short"},
		{"2 oz gin|1 oz vermouth", false, "Contains pipe character (should be split)"},
		{"123", false, "No ingredient name found"},
		{"2.5", false, "No ingredient name found"},
	}

	for _, tc := range cases {
		valid, reason := CheckIngredient(tc.token)
		if valid != tc.valid || reason != tc.reason {
			t.Errorf("CheckIngredient(%q) = (%v, %q), want (%v, %q)", tc.token, valid, reason, tc.valid, tc.reason)
		}
	}
}

func TestIngredientsReport(t *testing.T) {
	tmp := t.TempDir()
	csv := "id,name,slug,ingredients\n" +
		"1,Martini,martini,2.5 oz gin|0.5 oz dry vermouth|Lemon twist\n" +
		"2,Mystery,mystery,\n" +
		"3,Shorty,shorty,2 oz rum\n" +
		"4,Bad Batch,bad-batch,null|2 oz gin\n"
	path := filepath.Join(tmp, "enriched.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := Ingredients(path, 2, 15)
	if err != nil {
		t.Fatal(err)
	}

	if report.Rows != 4 {
		t.Fatalf("Rows = %d, want 4", report.Rows)
	}
	// Row 2 has no tokens counted; rows 1, 3 and 4 contribute 3+1+2.
	if report.Ingredients != 6 {
		t.Fatalf("Ingredients = %d, want 6", report.Ingredients)
	}
	if report.OK() {
		t.Fatal("expected report to fail")
	}

	if len(report.Errors) != 2 {
		t.Fatalf("Errors = %v, want 2 entries", report.Errors)
	}
	if report.Errors[0] != "Line 3 (Mystery): No ingredients listed" {
		t.Fatalf("first error = %q", report.Errors[0])
	}
	if !strings.Contains(report.Errors[1], "Line 5 (Bad Batch), ingredient #1: Invalid null value - 'null'") {
		t.Fatalf("second error = %q", report.Errors[1])
	}

	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "Line 4 (Shorty): Only 1 ingredient(s) listed") {
		t.Fatalf("Warnings = %v", report.Warnings)
	}
}

func TestIngredientsTooMany(t *testing.T) {
	tmp := t.TempDir()
	tokens := make([]string, 16)
	for i := range tokens {
		tokens[i] = "1 oz mixer"
	}
	csv := "id,name,slug,ingredients\n" +
		"1,Kitchen Sink,kitchen-sink," + strings.Join(tokens, "|") + "\n"
	path := filepath.Join(tmp, "enriched.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := Ingredients(path, 2, 15)
	if err != nil {
		t.Fatal(err)
	}
	if !report.OK() {
		t.Fatalf("unexpected errors: %v", report.Errors)
	}
	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "16 ingredients listed (very complex cocktail)") {
		t.Fatalf("Warnings = %v", report.Warnings)
	}
}

func TestIngredientsMissingFile(t *testing.T) {
	if _, err := Ingredients(filepath.Join(t.TempDir(), "missing.csv"), 2, 15); err == nil {
		t.Fatal("expected error for missing file")
	}
}
