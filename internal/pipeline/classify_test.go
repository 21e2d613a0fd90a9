package pipeline

import "testing"

func TestIsLegitimate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "allow-list hit", input: "Martini", want: true},
		{name: "allow-list hit with punctuation", input: "Old Fashioned", want: true},
		{name: "case insensitive", input: "MOJITO", want: true},
		{name: "surrounding whitespace", input: "  Margarita ", want: true},
		{name: "junk pattern", input: "Brain Fart", want: false},
		{name: "junk wins over allow-list", input: "Affair", want: false},
		{name: "single letter", input: "Q", want: false},
		{name: "unknown name", input: "Uncle Bob's Surprise", want: false},
		{name: "empty", input: "", want: false},
		{name: "whitespace only", input: "   ", want: false},
		{name: "punctuation only", input: "?!", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsLegitimate(tc.input); got != tc.want {
				t.Fatalf("IsLegitimate(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
