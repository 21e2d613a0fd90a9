package pipeline

import "strings"

// Flavor aspects on a 1-10 scale, each rated independently of the
// others by its own keyword groups.
const (
	AspectStrength   = "strength"
	AspectSweetness  = "sweetness"
	AspectTartness   = "tartness"
	AspectBitterness = "bitterness"
	AspectAroma      = "aroma"
	AspectTexture    = "texture"
)

func FlavorScore(name, aspect string) int {
	n := strings.ToLower(name)

	switch aspect {
	case AspectStrength:
		if containsAny(n, "martini", "manhattan", "negroni", "sazerac", "old fashioned") {
			return 8
		}
		if containsAny(n, "shot", "shooter") {
			return 9
		}
		if containsAny(n, "spritz", "mimosa", "bellini") {
			return 3
		}
		return 6

	case AspectSweetness:
		if containsAny(n, "pina colada", "mai tai", "sex on the beach") {
			return 8
		}
		if containsAny(n, "martini", "negroni", "sazerac") {
			return 2
		}
		return 5

	case AspectTartness:
		if containsAny(n, "sour", "daiquiri", "margarita", "gimlet") {
			return 7
		}
		if containsAny(n, "old fashioned", "manhattan", "negroni") {
			return 2
		}
		return 4

	case AspectBitterness:
		if containsAny(n, "negroni", "americano", "aperol") {
			return 7
		}
		if containsAny(n, "daiquiri", "mojito", "pina colada") {
			return 1
		}
		return 3

	case AspectAroma:
		if containsAny(n, "martini", "gin", "aviation", "negroni") {
			return 7
		}
		return 5

	case AspectTexture:
		if containsAny(n, "flip", "sour") && strings.Contains(n, "egg") {
			return 8
		}
		if containsAny(n, "frozen", "blended", "pina colada") {
			return 7
		}
		if containsAny(n, "martini", "manhattan") {
			return 4
		}
		return 5
	}

	return 5
}
