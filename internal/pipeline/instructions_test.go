package pipeline

import "testing"

func TestCleanInstructions(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty gets default",
			input: "",
			want:  "1. Combine ingredients in shaker with ice. 2. Shake well for 15 seconds. 3. Strain into chilled glass. 4. Garnish and serve.",
		},
		{
			name:  "whitespace only gets default",
			input: "   \n\t ",
			want:  "1. Combine ingredients in shaker with ice. 2. Shake well for 15 seconds. 3. Strain into chilled glass. 4. Garnish and serve.",
		},
		{
			name:  "already numbered kept as-is",
			input: "1. Stir with ice.  2. Strain.",
			want:  "1. Stir with ice. 2. Strain.",
		},
		{
			name:  "sentences renumbered",
			input: "Shake all ingredients. Strain into glass. Garnish with lime.",
			want:  "1. Shake all ingredients. 2. Strain into glass. 3. Garnish with lime.",
		},
		{
			name:  "internal whitespace collapsed",
			input: "Shake   well.\nStrain  into glass.",
			want:  "1. Shake well. 2. Strain into glass.",
		},
		{
			name:  "single unterminated sentence",
			input: "Build in glass over ice",
			want:  "1. Build in glass over ice.",
		},
		{
			name:  "markup stripped before renumbering",
			input: "<p>Shake all ingredients.</p><p>Strain into glass.</p>",
			want:  "1. Shake all ingredients. 2. Strain into glass.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanInstructions(tc.input); got != tc.want {
				t.Fatalf("CleanInstructions(%q)\n got %q\nwant %q", tc.input, got, tc.want)
			}
		})
	}
}
