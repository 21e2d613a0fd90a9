package util

import "testing"

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "Old Fashioned", want: "old fashioned"},
		{name: "punctuation stripped", input: "Dark 'N' Stormy", want: "dark n stormy"},
		{name: "hyphen stripped", input: "B-52", want: "b52"},
		{name: "trim", input: "  Margarita  ", want: "margarita"},
		{name: "accents kept", input: "Piña Colada", want: "piña colada"},
		{name: "empty", input: "", want: ""},
		{name: "only punctuation", input: "?!&", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeName(tc.input); got != tc.want {
				t.Fatalf("NormalizeName(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "spaces to hyphens", input: "Old Fashioned", want: "old-fashioned"},
		{name: "underscores to hyphens", input: "old_fashioned", want: "old-fashioned"},
		{name: "hyphen kept", input: "B-52", want: "b-52"},
		{name: "punctuation dropped", input: "Planter's Punch", want: "planters-punch"},
		{name: "surrounding space", input: "  Margarita  ", want: "margarita"},
		{name: "whitespace run", input: "Mai   Tai", want: "mai-tai"},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.input); got != tc.want {
				t.Fatalf("Slugify(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Old Fashioned", "B-52", "Dark 'N' Stormy", "  Sex on the Beach ", "corn n oil"}
	for _, input := range inputs {
		once := Slugify(input)
		if twice := Slugify(once); twice != once {
			t.Fatalf("Slugify not idempotent for %q: %q -> %q", input, once, twice)
		}
	}
}
