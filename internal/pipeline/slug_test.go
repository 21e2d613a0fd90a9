package pipeline

import "testing"

func TestSlugRegistryClaim(t *testing.T) {
	reg := NewSlugRegistry()

	first, renamed := reg.Claim("foo", "5")
	if first != "foo" || renamed {
		t.Fatalf("first claim: got %q renamed=%v", first, renamed)
	}

	second, renamed := reg.Claim("foo", "9")
	if second != "foo-9" || !renamed {
		t.Fatalf("second claim: got %q renamed=%v", second, renamed)
	}

	// A renamed variant is never registered, so a third collision on
	// the same base gets its own id suffix.
	third, renamed := reg.Claim("foo", "12")
	if third != "foo-12" || !renamed {
		t.Fatalf("third claim: got %q renamed=%v", third, renamed)
	}
}

func TestSlugRegistryDistinctSlugs(t *testing.T) {
	reg := NewSlugRegistry()
	for i, slug := range []string{"margarita", "mojito", "negroni"} {
		got, renamed := reg.Claim(slug, string(rune('1'+i)))
		if got != slug || renamed {
			t.Fatalf("Claim(%q) = %q renamed=%v", slug, got, renamed)
		}
	}
}
