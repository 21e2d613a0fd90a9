package catalog

import "testing"

func TestLookupsNormalizeNames(t *testing.T) {
	if _, ok := Recipe("MARTINI"); !ok {
		t.Fatal("Recipe should match regardless of case")
	}
	if _, ok := Recipe("Planter's Punch"); ok {
		t.Fatal("Recipe table has no Planter's Punch entry")
	}
	if desc, ok := ShortDescription("old fashioned"); !ok || desc == "" {
		t.Fatalf("ShortDescription lookup failed: %q %v", desc, ok)
	}
	if src, ok := FunFactSource("Sazerac"); !ok || src != "New Orleans cocktail history" {
		t.Fatalf("unexpected fun fact source: %q %v", src, ok)
	}
}

func TestStandardGlassware(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Cocktail glass", "Coupe Glass"},
		{"chilled cocktail glass", "Coupe Glass"},
		{"Rocks glass", "Old Fashioned Glass"},
		{"Highball glass", "Highball Glass"},
		{"", "Coupe Glass"},
		{"mason jar", "Coupe Glass"},
	}
	for _, tc := range cases {
		if got := StandardGlassware(tc.input); got != tc.want {
			t.Errorf("StandardGlassware(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestAllowList(t *testing.T) {
	for _, name := range []string{"martini", "old fashioned", "b-52", "piña colada"} {
		if !IsAllowed(name) {
			t.Errorf("expected %q on the allow-list", name)
		}
	}
	if IsAllowed("brain fart") {
		t.Error("brain fart should not be allowed")
	}
}

func TestIsJunk(t *testing.T) {
	junk := []string{"brain fart", "brainfart", "a", "abc", "diesel", "flanders flake", "big red"}
	for _, name := range junk {
		if !IsJunk(name) {
			t.Errorf("expected %q to match a junk pattern", name)
		}
	}
	clean := []string{"martini", "big red barn", "", "old fashioned"}
	for _, name := range clean {
		if name != "" && IsJunk(name) {
			t.Errorf("did not expect %q to match a junk pattern", name)
		}
	}
}
