package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var reHasLetter = regexp.MustCompile(`[a-zA-Z]`)

// CheckIngredient validates one pipe-split ingredient token. Rules run
// in order and the first failure wins.
func CheckIngredient(token string) (bool, string) {
	token = strings.TrimSpace(token)

	if token == "" {
		return false, "Empty ingredient"
	}
	if strings.Contains(token, "???") {
		return false, "Contains '???'"
	}
	if token == "null" || token == "None" {
		return false, "Invalid null value"
	}
	if utf8.RuneCountInString(token) < 2 {
		return false, "Too short"
	}
	if strings.Contains(token, "|") {
		return false, "Contains pipe character (should be split)"
	}
	if !reHasLetter.MatchString(token) {
		return false, "No ingredient name found"
	}

	return true, ""
}

type IngredientReport struct {
	File        string
	Rows        int
	Ingredients int
	Errors      []string
	Warnings    []string
}

func (r IngredientReport) OK() bool {
	return len(r.Errors) == 0
}

// Ingredients scans the enriched CSV and validates every ingredient
// token. The scan never aborts on a violation; all diagnostics are
// accumulated. Row counts below min or above max produce warnings only.
func Ingredients(path string, minPerRow, maxPerRow int) (IngredientReport, error) {
	rows, err := readRows(path)
	if err != nil {
		return IngredientReport{File: path}, err
	}

	report := IngredientReport{File: path}
	for i, row := range rows {
		line := i + 2 // header is line 1
		report.Rows++
		name := strings.TrimSpace(row["name"])
		field := strings.TrimSpace(row["ingredients"])

		if field == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("Line %d (%s): No ingredients listed", line, name))
			continue
		}

		tokens := strings.Split(field, "|")
		report.Ingredients += len(tokens)

		for j, token := range tokens {
			token = strings.TrimSpace(token)
			if valid, reason := CheckIngredient(token); !valid {
				report.Errors = append(report.Errors,
					fmt.Sprintf("Line %d (%s), ingredient #%d: %s - '%s'", line, name, j+1, reason, token))
			}
		}

		if len(tokens) < minPerRow {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Line %d (%s): Only %d ingredient(s) listed", line, name, len(tokens)))
		}
		if len(tokens) > maxPerRow {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Line %d (%s): %d ingredients listed (very complex cocktail)", line, name, len(tokens)))
		}
	}

	return report, nil
}

// Print writes the human-readable report, truncating errors and
// warnings at the given limits.
func (r IngredientReport) Print(maxErrors, maxWarnings int) {
	fmt.Println("Ingredient Format Validator")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Validating: %s\n\n", r.File)

	fmt.Printf("Total cocktails checked: %d\n", r.Rows)
	fmt.Printf("Total ingredients validated: %d\n", r.Ingredients)
	if r.Rows > 0 {
		fmt.Printf("Average ingredients per cocktail: %.1f\n", float64(r.Ingredients)/float64(r.Rows))
	}

	if len(r.Errors) > 0 {
		fmt.Printf("\nFound %d error(s):\n", len(r.Errors))
		for i, msg := range r.Errors {
			if i >= maxErrors {
				fmt.Printf("   ... and %d more errors\n", len(r.Errors)-maxErrors)
				break
			}
			fmt.Printf("   %s\n", msg)
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("\nFound %d warning(s):\n", len(r.Warnings))
		for i, msg := range r.Warnings {
			if i >= maxWarnings {
				fmt.Printf("   ... and %d more warnings\n", len(r.Warnings)-maxWarnings)
				break
			}
			fmt.Printf("   %s\n", msg)
		}
	}

	if r.OK() {
		fmt.Println("\nAll ingredients are properly formatted.")
	} else {
		fmt.Println("\nValidation failed. Fix the errors above.")
	}
}
